package edgearc

import (
	"errors"
	"fmt"
	"slices"
)

// Errors reported for malformed input batches. All of them are batch-fatal:
// the transform fails before producing any output.
var (
	ErrMissingColumn = errors.New("missing required column")
	ErrColumnType    = errors.New("unexpected column type")
	ErrColumnLength  = errors.New("column length mismatch")
	ErrSampleCount   = errors.New("sample count out of range")
	ErrGroupPairing  = errors.New("malformed edge grouping")
)

// Column is a named column of cell values.
type Column struct {
	Name   string
	Values []any
}

// Table is a column-oriented record batch. Tables are immutable: transforms
// never modify their input and always build a fresh output table. Callers
// must not mutate slices handed to [NewTable] or returned by
// [Table.Column].
type Table struct {
	names []string
	cols  map[string][]any
	rows  int
}

// NewTable builds a table from the given columns. All columns must have the
// same length, and names must be unique.
func NewTable(cols ...Column) (*Table, error) {
	t := &Table{cols: make(map[string][]any, len(cols))}
	for i, col := range cols {
		if _, ok := t.cols[col.Name]; ok {
			return nil, fmt.Errorf("duplicate column %q", col.Name)
		}
		if i == 0 {
			t.rows = len(col.Values)
		} else if len(col.Values) != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w",
				col.Name, len(col.Values), t.rows, ErrColumnLength)
		}
		t.names = append(t.names, col.Name)
		t.cols[col.Name] = col.Values
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// Names returns the column names in their original order.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// Has reports whether the table has a column of the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the cells of the named column, or nil if there is no such
// column.
func (t *Table) Column(name string) []any {
	return t.cols[name]
}

// Floats returns the named column converted to float64. Integer cells are
// widened; any other cell type is an [ErrColumnType] error, and a missing
// column is an [ErrMissingColumn] error.
func (t *Table) Floats(name string) ([]float64, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrMissingColumn)
	}
	out := make([]float64, len(col))
	for i, cell := range col {
		f, ok := asFloat(cell)
		if !ok {
			return nil, fmt.Errorf("column %q, row %d: got %T, want a number: %w",
				name, i, cell, ErrColumnType)
		}
		out[i] = f
	}
	return out, nil
}

// Bools returns the named column as booleans. A missing column is an
// [ErrMissingColumn] error and a non-boolean cell an [ErrColumnType] error.
func (t *Table) Bools(name string) ([]bool, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrMissingColumn)
	}
	out := make([]bool, len(col))
	for i, cell := range col {
		b, ok := cell.(bool)
		if !ok {
			return nil, fmt.Errorf("column %q, row %d: got %T, want bool: %w",
				name, i, cell, ErrColumnType)
		}
		out[i] = b
	}
	return out, nil
}

func asFloat(cell any) (float64, bool) {
	switch v := cell.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
