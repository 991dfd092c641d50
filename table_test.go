package geoplot

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTable(t *testing.T) {
	table := NewTable([]string{"Centrum", "Noord", "Zuid"})
	test.Error(t, table.SetRow(PopulationRow, []float64{86000.0, 94000.0, 144000.0}))
	test.Error(t, table.SetRow("bar", []float64{120.0, 14.0, 60.0}))
	test.T(t, table.Len(), 2)
	test.T(t, table.Index(), []string{PopulationRow, "bar"})

	values, ok := table.Row("bar")
	test.That(t, ok)
	test.Float(t, values[2], 60.0)

	_, ok = table.Row("cafe")
	test.That(t, !ok)

	test.That(t, table.SetRow("cafe", []float64{1.0}) != nil)

	// replacing a row keeps its position
	test.Error(t, table.SetRow("bar", []float64{121.0, 14.0, 60.0}))
	test.T(t, table.Len(), 2)
	values, _ = table.Row("bar")
	test.Float(t, values[0], 121.0)

	test.T(t, table.metrics(), []string{"bar"})
}
