package geoplot

import (
	"fmt"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/wcharczuk/go-chart/v2"
)

// TotalsOptions configures TotalsChart. The zero value uses the defaults.
type TotalsOptions struct {
	Width      int               // px, default 1024
	Height     int               // px, default 512
	Resolution canvas.Resolution // default 5 px/mm
}

// TotalsChart writes a PNG bar chart of the summed count per amenity
// category, one bar per metric row of the table. The population row is
// skipped.
func TotalsChart(t *Table, w io.Writer, opts *TotalsOptions) error {
	if opts == nil {
		opts = &TotalsOptions{}
	}
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = 1024
	}
	if height == 0 {
		height = 512
	}
	resolution := opts.Resolution
	if resolution == 0.0 {
		resolution = canvas.DPMM(5.0)
	}

	metrics := t.metrics()
	if len(metrics) == 0 {
		return fmt.Errorf("geoplot: table has no metric rows")
	}

	bars := make([]chart.Value, 0, len(metrics))
	for _, name := range metrics {
		values, _ := t.Row(name)
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		bars = append(bars, chart.Value{Label: metricTitle(name), Value: sum})
	}

	graph := chart.BarChart{
		Title:    "Amenities per category",
		Width:    width,
		Height:   height,
		BarWidth: (width - 100) / (2 * len(bars)),
		Bars:     bars,
	}
	return graph.Render(renderers.NewGoChart(renderers.PNG(resolution)), w)
}
