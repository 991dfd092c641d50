package geoplot

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// trailingColumns is the number of non-metric columns at the end of a
// GeoTable's column list (identifier, name, geometry).
const trailingColumns = 3

// GeoFeature is one borough: a geometry in WGS84 lon/lat with its metric
// values.
type GeoFeature struct {
	ID       string
	Name     string
	Geometry orb.Geometry
	Values   map[string]float64
}

// GeoTable is a geometry-bearing metric table. The trailing three columns
// are non-metric (identifier, name, geometry); the leading columns name the
// amenity metrics stored in each feature's Values.
type GeoTable struct {
	Columns  []string
	Features []GeoFeature
}

// metricColumns returns the first maxPanels metric columns, failing when the
// table has fewer than trailingColumns+maxPanels columns.
func (g *GeoTable) metricColumns() ([]string, error) {
	if len(g.Columns) < trailingColumns+maxPanels {
		return nil, fmt.Errorf("geoplot: geotable has %d columns, need at least %d", len(g.Columns), trailingColumns+maxPanels)
	}
	return g.Columns[:len(g.Columns)-trailingColumns][:maxPanels], nil
}

// columnValues returns the given metric for every feature, in feature order.
func (g *GeoTable) columnValues(name string) []float64 {
	values := make([]float64, len(g.Features))
	for i, f := range g.Features {
		values[i] = f.Values[name]
	}
	return values
}

// GeoTableFromFeatureCollection builds a GeoTable from GeoJSON features.
// The metrics slice names the properties to extract as metric columns, in
// column order; the trailing non-metric columns are appended automatically.
// Features whose named metric properties are missing get zero values, like
// an outer join.
func GeoTableFromFeatureCollection(fc *geojson.FeatureCollection, metrics []string) (*GeoTable, error) {
	if fc == nil || len(fc.Features) == 0 {
		return nil, fmt.Errorf("geoplot: feature collection is empty")
	}
	columns := append(append([]string{}, metrics...), "id", "name", "geometry")
	g := &GeoTable{Columns: columns}
	for _, f := range fc.Features {
		if f.Geometry == nil {
			return nil, fmt.Errorf("geoplot: feature %v has no geometry", f.ID)
		}
		feature := GeoFeature{
			Geometry: f.Geometry,
			Values:   map[string]float64{},
		}
		if f.ID != nil {
			feature.ID = fmt.Sprint(f.ID)
		}
		if name, ok := f.Properties["name"].(string); ok {
			feature.Name = name
		}
		for _, metric := range metrics {
			switch v := f.Properties[metric].(type) {
			case float64:
				feature.Values[metric] = v
			case int:
				feature.Values[metric] = float64(v)
			}
		}
		g.Features = append(g.Features, feature)
	}
	return g, nil
}
