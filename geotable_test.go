package geoplot

import (
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/test"
)

func TestGeoTableFromFeatureCollection(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	for i, name := range []string{"Centrum", "Noord"} {
		f := geojson.NewFeature(square(4.85+0.02*float64(i), 52.35, 0.02))
		f.ID = name
		f.Properties["name"] = name
		f.Properties["bar"] = float64(10 * (i + 1))
		f.Properties["cafe"] = 5.0
		fc.Append(f)
	}

	g, err := GeoTableFromFeatureCollection(fc, []string{"bar", "cafe"})
	test.Error(t, err)
	test.T(t, g.Columns, []string{"bar", "cafe", "id", "name", "geometry"})
	test.T(t, len(g.Features), 2)
	test.String(t, g.Features[0].Name, "Centrum")
	test.Float(t, g.Features[1].Values["bar"], 20.0)
	test.T(t, g.columnValues("cafe"), []float64{5.0, 5.0})
}

func TestGeoTableFromFeatureCollectionEmpty(t *testing.T) {
	_, err := GeoTableFromFeatureCollection(geojson.NewFeatureCollection(), nil)
	test.That(t, err != nil)

	_, err = GeoTableFromFeatureCollection(nil, nil)
	test.That(t, err != nil)
}

func TestGeoTableFromFeatureCollectionMissingMetric(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	f := geojson.NewFeature(square(4.85, 52.35, 0.02))
	f.Properties["bar"] = 10.0
	fc.Append(f)

	g, err := GeoTableFromFeatureCollection(fc, []string{"bar", "cafe"})
	test.Error(t, err)
	test.Float(t, g.Features[0].Values["cafe"], 0.0)
}
