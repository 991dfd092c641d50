package geoplot

import (
	"fmt"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	scatterRows = 3
	scatterCols = 4
)

// ScatterOptions configures Scatterplot. The zero value uses the defaults.
type ScatterOptions struct {
	Width  float64 // mm, default 406.4 (16 inch)
	Height float64 // mm, default 304.8 (12 inch)
	LogX   bool
	LogY   bool
}

// Scatterplot draws a 3×4 grid of scatterplots of total population against
// each amenity metric, one panel per metric. The first ten non-population
// rows are plotted and the two remaining grid cells stay empty. It fails
// when the population row is missing or fewer than ten metric rows exist.
func Scatterplot(t *Table, opts *ScatterOptions) (*canvas.Canvas, error) {
	if opts == nil {
		opts = &ScatterOptions{}
	}
	width, height := opts.Width, opts.Height
	if width == 0.0 {
		width = 16.0 * mmPerInch
	}
	if height == 0.0 {
		height = 12.0 * mmPerInch
	}

	plots, err := scatterGrid(t, opts.LogX, opts.LogY)
	if err != nil {
		return nil, err
	}

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0.0, 0.0, canvas.Rectangle(c.W, c.H))

	dc := renderers.NewGonumPlot(c)
	for k, p := range plots {
		x0, y0, x1, y1 := cellRect(k, scatterRows, scatterCols, width, height)
		sub := draw.Crop(dc, mmLength(x0), mmLength(x1-width), mmLength(y0), mmLength(y1-height))
		p.Draw(sub)
	}
	return c, nil
}

// scatterGrid builds one plot per metric in row order, capped at maxPanels.
func scatterGrid(t *Table, logX, logY bool) ([]*plot.Plot, error) {
	population, ok := t.Row(PopulationRow)
	if !ok {
		return nil, fmt.Errorf("geoplot: table has no %s row", PopulationRow)
	}
	metrics := t.metrics()
	if len(metrics) < maxPanels {
		return nil, fmt.Errorf("geoplot: table has %d metric rows, need %d", len(metrics), maxPanels)
	}

	plots := make([]*plot.Plot, 0, maxPanels)
	for _, name := range metrics[:maxPanels] {
		values, _ := t.Row(name)
		scatter, err := plotter.NewScatter(scatterPoints(population, values))
		if err != nil {
			return nil, err
		}

		p := plot.New()
		p.Title.Text = metricTitle(name)
		p.X.Label.Text = "Total population per borough"
		p.Y.Label.Text = "Number of amenity in a borough"
		if logX {
			p.X.Scale = plot.LogScale{}
			p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		}
		if logY {
			p.Y.Scale = plot.LogScale{}
			p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
		}
		p.Add(scatter)
		plots = append(plots, p)
	}
	return plots, nil
}

func scatterPoints(population, values []float64) plotter.XYs {
	points := make(plotter.XYs, len(population))
	for i := range population {
		points[i].X = population[i]
		points[i].Y = values[i]
	}
	return points
}

func mmLength(mm float64) vg.Length {
	return vg.Length(mm) * vg.Millimeter
}
