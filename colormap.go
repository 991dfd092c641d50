package geoplot

import "image/color"

// ColorMap maps a value in [0,1] to a color. Values outside the range clamp
// to the nearest end.
type ColorMap func(float64) color.RGBA

// gradientStop is an anchor point of a piecewise-linear gradient: a position
// in [0,1] and an sRGB color in [0,255].
type gradientStop struct {
	pos     float64
	r, g, b float64
}

// gradient creates a color map interpolating linearly between stops, which
// must be in ascending position order.
func gradient(stops []gradientStop) ColorMap {
	return func(y float64) color.RGBA {
		index := 0
		for ; index < len(stops) && stops[index].pos < y; index++ {
		}
		var r, g, b float64
		if index == 0 {
			r, g, b = stops[0].r, stops[0].g, stops[0].b
		} else if index == len(stops) {
			last := stops[len(stops)-1]
			r, g, b = last.r, last.g, last.b
		} else {
			prev, next := stops[index-1], stops[index]
			t := (y - prev.pos) / (next.pos - prev.pos)
			r = interpolate(prev.r, next.r, t)
			g = interpolate(prev.g, next.g, t)
			b = interpolate(prev.b, next.b, t)
		}
		return color.RGBA{uint8(r + 0.5), uint8(g + 0.5), uint8(b + 0.5), 255}
	}
}

func interpolate(a, b, t float64) float64 {
	return a*(1.0-t) + b*t
}

// Sequential color maps, anchored on the matplotlib palettes of the same
// name.
var (
	Viridis = gradient([]gradientStop{
		{0.00, 68, 1, 84},
		{0.25, 59, 82, 139},
		{0.50, 33, 145, 140},
		{0.75, 94, 201, 98},
		{1.00, 253, 231, 37},
	})
	Plasma = gradient([]gradientStop{
		{0.00, 13, 8, 135},
		{0.25, 126, 3, 168},
		{0.50, 204, 71, 120},
		{0.75, 248, 149, 64},
		{1.00, 240, 249, 33},
	})
	Cividis = gradient([]gradientStop{
		{0.00, 0, 32, 76},
		{0.25, 69, 77, 103},
		{0.50, 124, 123, 120},
		{0.75, 187, 175, 113},
		{1.00, 255, 234, 70},
	})
	Grays = gradient([]gradientStop{
		{0.00, 255, 255, 255},
		{1.00, 0, 0, 0},
	})
)

var colorMaps = map[string]ColorMap{
	"viridis": Viridis,
	"plasma":  Plasma,
	"cividis": Cividis,
	"grays":   Grays,
}

// ColorMapByName returns the color map registered under name.
func ColorMapByName(name string) (ColorMap, bool) {
	cmap, ok := colorMaps[name]
	return cmap, ok
}
