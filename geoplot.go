// Package geoplot renders figures over pre-joined borough data: a grid of
// scatterplots of total population against amenity counts per category, a
// grid of choropleth maps of amenity density per category, and a bar chart
// of category totals. The package draws onto github.com/tdewolff/canvas
// canvases; writing the result to a file or stream is the caller's concern,
// typically through github.com/tdewolff/canvas/renderers.
package geoplot

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const mmPerInch = 25.4

// maxPanels is the number of populated cells in both figure grids; the
// remaining cells of the grid stay empty.
const maxPanels = 10

// metricTitle formats a metric name as a panel title: lowercased,
// underscores replaced by spaces, first letter capitalized.
func metricTitle(name string) string {
	name = strings.ReplaceAll(strings.ToLower(name), "_", " ")
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// cellRect returns the rectangle in mm of panel k on a nrows×ncols grid over
// a width×height canvas. Panels are laid out row-major starting at the
// top-left, while canvas coordinates have their origin at the bottom-left.
func cellRect(k, nrows, ncols int, width, height float64) (x0, y0, x1, y1 float64) {
	cw := width / float64(ncols)
	ch := height / float64(nrows)
	i := k / ncols
	j := k % ncols
	x0 = float64(j) * cw
	y1 = height - float64(i)*ch
	return x0, y1 - ch, x0 + cw, y1
}
