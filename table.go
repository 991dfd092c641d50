package geoplot

import "fmt"

// PopulationRow is the distinguished Table row that holds the total
// population per borough. Scatterplot uses it as the x axis of every panel.
const PopulationRow = "total_population"

// Table is an in-memory metric table: every row is a metric keyed by name,
// every column a borough. Rows keep their insertion order.
type Table struct {
	columns []string
	index   []string
	rows    map[string][]float64
}

// NewTable returns an empty table with the given borough columns.
func NewTable(columns []string) *Table {
	return &Table{
		columns: columns,
		rows:    map[string][]float64{},
	}
}

// Columns returns the borough column names.
func (t *Table) Columns() []string {
	return t.columns
}

// Index returns the row names in insertion order.
func (t *Table) Index() []string {
	return t.index
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.index)
}

// SetRow adds or replaces a row. The number of values must match the number
// of columns.
func (t *Table) SetRow(name string, values []float64) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("geoplot: row %s has %d values, table has %d columns", name, len(values), len(t.columns))
	}
	if _, ok := t.rows[name]; !ok {
		t.index = append(t.index, name)
	}
	t.rows[name] = values
	return nil
}

// Row returns the values of the named row.
func (t *Table) Row(name string) ([]float64, bool) {
	values, ok := t.rows[name]
	return values, ok
}

// metrics returns the row names excluding the population row, in order.
func (t *Table) metrics() []string {
	metrics := make([]string, 0, len(t.index))
	for _, name := range t.index {
		if name != PopulationRow {
			metrics = append(metrics, name)
		}
	}
	return metrics
}
