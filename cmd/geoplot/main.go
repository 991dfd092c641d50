package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/geoplot"
)

type Scatter struct {
	Output string  `short:"o" default:"scatter.png" desc:"Output file (png, jpg, svg, pdf, tiff)"`
	Width  float64 `default:"406.4" desc:"Figure width in mm"`
	Height float64 `default:"304.8" desc:"Figure height in mm"`
	LogX   bool    `desc:"Logarithmic x axis"`
	LogY   bool    `desc:"Logarithmic y axis"`
	DPMM   float64 `default:"5.0" desc:"Raster resolution in pixels per mm"`
	Input  string  `index:"0" desc:"Input CSV with metric rows over borough columns"`
}

type Choropleth struct {
	Output  string  `short:"o" default:"choropleth.png" desc:"Output file (png, jpg, svg, pdf, tiff)"`
	Width   float64 `default:"508.0" desc:"Figure width in mm"`
	Height  float64 `default:"508.0" desc:"Figure height in mm"`
	Cmap    string  `short:"c" default:"viridis" desc:"Color map (viridis, plasma, cividis, grays)"`
	Classes int     `short:"k" default:"5" desc:"Number of Fisher-Jenks classes"`
	DPMM    float64 `default:"5.0" desc:"Raster resolution in pixels per mm"`
	Input   string  `index:"0" desc:"Input GeoJSON with amenity-count properties per borough"`
}

type Totals struct {
	Output string `short:"o" default:"totals.png" desc:"Output PNG file"`
	Width  int    `default:"1024" desc:"Chart width in px"`
	Height int    `default:"512" desc:"Chart height in px"`
	Input  string `index:"0" desc:"Input CSV with metric rows over borough columns"`
}

func main() {
	root := argp.NewCmd(&Scatter{}, "Borough amenity figures by Taco de Wolff")
	root.AddCmd(&Scatter{}, "scatter", "Render the population vs amenity-count scatterplot grid")
	root.AddCmd(&Choropleth{}, "choropleth", "Render the amenity choropleth map grid")
	root.AddCmd(&Totals{}, "totals", "Render the amenity totals bar chart")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Scatter) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	table, err := readTable(cmd.Input)
	if err != nil {
		return err
	}

	c, err := geoplot.Scatterplot(table, &geoplot.ScatterOptions{
		Width:  cmd.Width,
		Height: cmd.Height,
		LogX:   cmd.LogX,
		LogY:   cmd.LogY,
	})
	if err != nil {
		return err
	}
	return renderers.Write(cmd.Output, c, canvas.DPMM(cmd.DPMM))
}

func (cmd *Choropleth) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	cmap, ok := geoplot.ColorMapByName(cmd.Cmap)
	if !ok {
		return fmt.Errorf("unknown color map: %s", cmd.Cmap)
	}

	b, err := os.ReadFile(cmd.Input)
	if err != nil {
		return err
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return err
	}

	g, err := geoplot.GeoTableFromFeatureCollection(fc, numericProperties(fc))
	if err != nil {
		return err
	}

	c, err := geoplot.Choropleth(g, &geoplot.ChoroplethOptions{
		Width:   cmd.Width,
		Height:  cmd.Height,
		Color:   cmap,
		Classes: cmd.Classes,
	})
	if err != nil {
		return err
	}
	return renderers.Write(cmd.Output, c, canvas.DPMM(cmd.DPMM))
}

func (cmd *Totals) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	table, err := readTable(cmd.Input)
	if err != nil {
		return err
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	return geoplot.TotalsChart(table, f, &geoplot.TotalsOptions{
		Width:  cmd.Width,
		Height: cmd.Height,
	})
}

// readTable reads a CSV whose header names the borough columns and whose
// rows hold a metric name followed by one value per borough.
func readTable(filename string) (*geoplot.Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, err
	} else if len(header) < 2 {
		return nil, fmt.Errorf("%s: header has no borough columns", filename)
	}

	table := geoplot.NewTable(header[1:])
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		values := make([]float64, len(row)-1)
		for i, field := range row[1:] {
			if values[i], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, fmt.Errorf("%s: row %s: %v", filename, row[0], err)
			}
		}
		if err := table.SetRow(row[0], values); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// numericProperties returns the numeric property keys of the first feature
// in alphabetical order, the metric columns of a plain GeoJSON export.
func numericProperties(fc *geojson.FeatureCollection) []string {
	if len(fc.Features) == 0 {
		return nil
	}
	metrics := []string{}
	for key, value := range fc.Features[0].Properties {
		if _, ok := value.(float64); ok {
			metrics = append(metrics, key)
		}
	}
	sort.Strings(metrics)
	return metrics
}
