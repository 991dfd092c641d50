package geoplot

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func square(lon, lat, size float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{lon, lat},
		{lon + size, lat},
		{lon + size, lat + size},
		{lon, lat + size},
		{lon, lat},
	}}
}

func testGeoTable(nmetrics int) *GeoTable {
	columns := append(append([]string{}, testMetrics[:nmetrics]...), "id", "name", "geometry")
	g := &GeoTable{Columns: columns}
	boroughs := []string{"Centrum", "Noord", "Oost", "West"}
	for i, name := range boroughs {
		values := map[string]float64{}
		for k, metric := range testMetrics[:nmetrics] {
			values[metric] = float64((k + 1) * (i + 1))
		}
		g.Features = append(g.Features, GeoFeature{
			ID:       name,
			Name:     name,
			Geometry: square(4.85+0.02*float64(i), 52.35, 0.02),
			Values:   values,
		})
	}
	return g
}

func TestMetricColumns(t *testing.T) {
	metrics, err := testGeoTable(10).metricColumns()
	test.Error(t, err)
	test.T(t, len(metrics), maxPanels)
	test.T(t, metrics, testMetrics)

	_, err = testGeoTable(9).metricColumns()
	test.That(t, err != nil)
}

func TestColumnValues(t *testing.T) {
	g := testGeoTable(10)
	test.T(t, g.columnValues("cafe"), []float64{2.0, 4.0, 6.0, 8.0})
}

func TestFeaturePath(t *testing.T) {
	identity := func(lon, lat float64) (float64, float64) { return lon, lat }

	p, err := featurePath(square(0.0, 0.0, 2.0), identity)
	test.Error(t, err)
	bounds := p.Bounds()
	test.Float(t, bounds.W(), 2.0)
	test.Float(t, bounds.H(), 2.0)

	multi := orb.MultiPolygon{square(0.0, 0.0, 1.0), square(2.0, 2.0, 1.0)}
	p, err = featurePath(multi, identity)
	test.Error(t, err)
	test.Float(t, p.Bounds().W(), 3.0)

	_, err = featurePath(orb.Point{0.0, 0.0}, identity)
	test.That(t, err != nil)
}

func TestProjectFeatures(t *testing.T) {
	g := testGeoTable(10)
	paths, bounds, err := projectFeatures(g)
	test.Error(t, err)
	test.T(t, len(paths), len(g.Features))
	test.That(t, 0.0 < bounds.W() && 0.0 < bounds.H())
}

func TestClassPosition(t *testing.T) {
	test.Float(t, classPosition(0, 5), 0.0)
	test.Float(t, classPosition(2, 5), 0.5)
	test.Float(t, classPosition(4, 5), 1.0)
	test.Float(t, classPosition(0, 1), 0.0)
}

func TestChoropleth(t *testing.T) {
	c, err := Choropleth(testGeoTable(10), nil)
	test.Error(t, err)
	test.Float(t, c.W, 508.0)
	test.Float(t, c.H, 508.0)
}

func TestChoroplethTooFewColumns(t *testing.T) {
	_, err := Choropleth(testGeoTable(9), nil)
	test.That(t, err != nil)
}

func TestChoroplethNoFeatures(t *testing.T) {
	g := &GeoTable{Columns: testGeoTable(10).Columns}
	_, err := Choropleth(g, nil)
	test.That(t, err != nil)
}
