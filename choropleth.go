package geoplot

import (
	"fmt"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/paulmach/orb"
	"github.com/tdewolff/canvas"
	"github.com/wroge/wgs84/v2"
)

const (
	choroplethRows = 4
	choroplethCols = 3
)

const ptPerMm = 72.0 / 25.4

// ChoroplethOptions configures Choropleth. The zero value uses the defaults.
type ChoroplethOptions struct {
	Width   float64  // mm, default 508 (20 inch)
	Height  float64  // mm, default 508 (20 inch)
	Color   ColorMap // default Viridis
	Classes int      // Fisher–Jenks classes, default 5
}

// Choropleth draws a 4×3 grid of borough maps, one filled map per amenity
// metric. The first ten metric columns are drawn and the two remaining grid
// cells stay empty. Geometries are reprojected from WGS84 lon/lat to web
// mercator (EPSG:3857), values are classified with Fisher–Jenks, and each
// panel gets a centered title and a class-range legend. No axes are drawn.
// It fails when the table has fewer than thirteen columns or no features.
func Choropleth(g *GeoTable, opts *ChoroplethOptions) (*canvas.Canvas, error) {
	if opts == nil {
		opts = &ChoroplethOptions{}
	}
	width, height := opts.Width, opts.Height
	if width == 0.0 {
		width = 20.0 * mmPerInch
	}
	if height == 0.0 {
		height = 20.0 * mmPerInch
	}
	cmap := opts.Color
	if cmap == nil {
		cmap = Viridis
	}
	classes := opts.Classes
	if classes == 0 {
		classes = 5
	}

	metrics, err := g.metricColumns()
	if err != nil {
		return nil, err
	} else if len(g.Features) == 0 {
		return nil, fmt.Errorf("geoplot: geotable has no features")
	}

	paths, bounds, err := projectFeatures(g)
	if err != nil {
		return nil, err
	}

	family := canvas.NewFontFamily("latin-modern")
	if err := family.LoadFont(lmroman10regular.TTF, 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	if err := family.LoadFont(lmroman10bold.TTF, 0, canvas.FontBold); err != nil {
		return nil, err
	}

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0.0, 0.0, canvas.Rectangle(c.W, c.H))

	for k, name := range metrics {
		x0, y0, x1, y1 := cellRect(k, choroplethRows, choroplethCols, width, height)
		values := g.columnValues(name)
		breaks, err := FisherJenks(values, classes)
		if err != nil {
			return nil, err
		}
		drawPanel(ctx, family, panel{
			title:  metricTitle(name),
			x0:     x0,
			y0:     y0,
			x1:     x1,
			y1:     y1,
			paths:  paths,
			bounds: bounds,
			values: values,
			breaks: breaks,
			cmap:   cmap,
		})
	}
	return c, nil
}

type panel struct {
	title          string
	x0, y0, x1, y1 float64
	paths          []*canvas.Path
	bounds         canvas.Rect
	values         []float64
	breaks         []float64
	cmap           ColorMap
}

// drawPanel fills one grid cell: title band on top, the map fitted below it,
// and the class legend in the lower-left corner.
func drawPanel(ctx *canvas.Context, family *canvas.FontFamily, p panel) {
	cw, ch := p.x1-p.x0, p.y1-p.y0
	pad := 0.03 * ch
	titleBand := 0.08 * ch

	titleFace := family.Face(ptSize(0.5*titleBand), canvas.Black, canvas.FontBold, canvas.FontNormal)
	ctx.DrawText(p.x0+cw/2.0, p.y1-titleBand/2.0, canvas.NewTextLine(titleFace, p.title, canvas.Center))

	// fit the projected bounds into the cell below the title band
	innerW := cw - 2.0*pad
	innerH := ch - titleBand - 2.0*pad
	scale := innerW / p.bounds.W()
	if s := innerH / p.bounds.H(); s < scale {
		scale = s
	}
	tx := p.x0 + pad + (innerW-p.bounds.W()*scale)/2.0
	ty := p.y0 + pad + (innerH-p.bounds.H()*scale)/2.0
	view := canvas.Identity.Translate(tx, ty).Scale(scale, scale).Translate(-p.bounds.X0, -p.bounds.Y0)

	ctx.SetStrokeColor(canvas.Darkgray)
	ctx.SetStrokeWidth(0.002 * ch)
	nclasses := len(p.breaks)
	for i, path := range p.paths {
		ctx.SetFillColor(p.cmap(classPosition(classIndex(p.values[i], p.breaks), nclasses)))
		ctx.DrawPath(0.0, 0.0, path.Copy().Transform(view))
	}
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.SetStrokeWidth(0.0)

	drawLegend(ctx, family, p)
}

// drawLegend stacks one swatch per class with its value range, bottom-up.
func drawLegend(ctx *canvas.Context, family *canvas.FontFamily, p panel) {
	ch := p.y1 - p.y0
	pad := 0.03 * ch
	swatch := 0.025 * ch
	face := family.Face(ptSize(swatch), canvas.Black, canvas.FontRegular, canvas.FontNormal)

	low := minValue(p.values)
	nclasses := len(p.breaks)
	for m, high := range p.breaks {
		y := p.y0 + pad + float64(nclasses-1-m)*1.4*swatch
		ctx.SetFillColor(p.cmap(classPosition(m, nclasses)))
		ctx.DrawPath(p.x0+pad, y, canvas.Rectangle(swatch, swatch))

		label := fmt.Sprintf("%.6g – %.6g", low, high)
		ctx.SetFillColor(canvas.Black)
		ctx.DrawText(p.x0+pad+1.5*swatch, y+0.2*swatch, canvas.NewTextLine(face, label, canvas.Left))
		low = high
	}
}

// classPosition spreads class indices over [0,1] for color lookup.
func classPosition(class, nclasses int) float64 {
	if nclasses <= 1 {
		return 0.0
	}
	return float64(class) / float64(nclasses-1)
}

// projectFeatures reprojects every feature to web mercator and converts it
// to a canvas path, returning the paths in feature order together with their
// combined bounds. Coordinates are scaled to kilometers to keep path values
// small.
func projectFeatures(g *GeoTable) ([]*canvas.Path, canvas.Rect, error) {
	toMercator := wgs84.Transform(wgs84.EPSG(4326), wgs84.EPSG(3857))
	project := func(lon, lat float64) (float64, float64) {
		x, y, _ := toMercator(lon, lat, 0.0)
		return x / 1e3, y / 1e3
	}

	paths := make([]*canvas.Path, len(g.Features))
	var bounds canvas.Rect
	for i, f := range g.Features {
		path, err := featurePath(f.Geometry, project)
		if err != nil {
			return nil, canvas.Rect{}, fmt.Errorf("geoplot: feature %s: %w", f.ID, err)
		}
		paths[i] = path
		if i == 0 {
			bounds = path.Bounds()
		} else {
			bounds = bounds.Add(path.Bounds())
		}
	}
	return paths, bounds, nil
}

// featurePath converts a polygonal geometry to a canvas path, applying
// project to every point.
func featurePath(g orb.Geometry, project func(float64, float64) (float64, float64)) (*canvas.Path, error) {
	p := &canvas.Path{}
	switch g := g.(type) {
	case orb.Polygon:
		appendRings(p, g, project)
	case orb.MultiPolygon:
		for _, polygon := range g {
			appendRings(p, polygon, project)
		}
	default:
		return nil, fmt.Errorf("unsupported geometry: %T", g)
	}
	return p, nil
}

func appendRings(p *canvas.Path, polygon orb.Polygon, project func(float64, float64) (float64, float64)) {
	for _, ring := range polygon {
		if len(ring) == 0 {
			continue
		}
		x, y := project(ring[0][0], ring[0][1])
		p.MoveTo(x, y)
		for _, point := range ring[1:] {
			x, y = project(point[0], point[1])
			p.LineTo(x, y)
		}
		p.Close()
	}
}

func minValue(values []float64) float64 {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func ptSize(mm float64) float64 {
	return mm * ptPerMm
}
