// Package catalog provides the in-memory columnar tables that flow through
// mock population: a halo table on the way in, a galaxy table on the way
// out. Columns are plain Go slices so that component model methods can
// write rows in place; column data types are declared with Arrow types so
// the tables can be allocated directly from a galprops.Schema.
package catalog

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"

	"github.com/eteq/halotools/galprops"
)

// Table is a fixed-length collection of named columns. Columns preserve
// insertion order. All columns share the table length.
type Table struct {
	length int
	names  []string
	cols   map[string]any
}

// New creates an empty table with the given row count.
func New(length int) *Table {
	return &Table{
		length: length,
		cols:   make(map[string]any),
	}
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.length }

// ColumnNames returns the column names in insertion order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Has reports whether the table holds a column with the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

func (t *Table) add(name string, col any, n int) error {
	if _, exists := t.cols[name]; exists {
		return fmt.Errorf("%w: %s", ErrColumnExists, name)
	}
	if n != t.length {
		return fmt.Errorf("%w: column %s has %d rows, table has %d",
			ErrLengthMismatch, name, n, t.length)
	}
	t.names = append(t.names, name)
	t.cols[name] = col
	return nil
}

// AddFloat64 adds a float64 column. The slice is held by reference.
func (t *Table) AddFloat64(name string, vals []float64) error {
	return t.add(name, vals, len(vals))
}

// AddInt64 adds an int64 column.
func (t *Table) AddInt64(name string, vals []int64) error {
	return t.add(name, vals, len(vals))
}

// AddBool adds a boolean column.
func (t *Table) AddBool(name string, vals []bool) error {
	return t.add(name, vals, len(vals))
}

// AddString adds a string column.
func (t *Table) AddString(name string, vals []string) error {
	return t.add(name, vals, len(vals))
}

// Allocate adds a zero-valued column of the given Arrow data type.
func (t *Table) Allocate(name string, dt arrow.DataType) error {
	switch {
	case arrow.TypeEqual(dt, arrow.PrimitiveTypes.Float64):
		return t.AddFloat64(name, make([]float64, t.length))
	case arrow.TypeEqual(dt, arrow.PrimitiveTypes.Int64):
		return t.AddInt64(name, make([]int64, t.length))
	case arrow.TypeEqual(dt, arrow.FixedWidthTypes.Boolean):
		return t.AddBool(name, make([]bool, t.length))
	case arrow.TypeEqual(dt, arrow.BinaryTypes.String):
		return t.AddString(name, make([]string, t.length))
	default:
		return fmt.Errorf("%w: column %s has dtype %s", ErrUnsupportedDtype, name, dt)
	}
}

// AllocateSchema adds a zero-valued column for every schema entry not
// already present on the table.
func (t *Table) AllocateSchema(s galprops.Schema) error {
	for _, col := range s {
		if t.Has(col.Name) {
			continue
		}
		if err := t.Allocate(col.Name, col.Type); err != nil {
			return err
		}
	}
	return nil
}

// Float64s returns the live backing slice of a float64 column. Mutations
// write through to the table.
func (t *Table) Float64s(name string) ([]float64, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}
	vals, ok := col.([]float64)
	if !ok {
		return nil, fmt.Errorf("%w: column %s is not float64", ErrDtypeMismatch, name)
	}
	return vals, nil
}

// Int64s returns the live backing slice of an int64 column.
func (t *Table) Int64s(name string) ([]int64, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}
	vals, ok := col.([]int64)
	if !ok {
		return nil, fmt.Errorf("%w: column %s is not int64", ErrDtypeMismatch, name)
	}
	return vals, nil
}

// Bools returns the live backing slice of a boolean column.
func (t *Table) Bools(name string) ([]bool, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}
	vals, ok := col.([]bool)
	if !ok {
		return nil, fmt.Errorf("%w: column %s is not bool", ErrDtypeMismatch, name)
	}
	return vals, nil
}

// Strings returns the live backing slice of a string column.
func (t *Table) Strings(name string) ([]string, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}
	vals, ok := col.([]string)
	if !ok {
		return nil, fmt.Errorf("%w: column %s is not string", ErrDtypeMismatch, name)
	}
	return vals, nil
}

// Filter returns a new table holding only the rows where mask is true.
// The mask length must equal the table length.
func (t *Table) Filter(mask []bool) (*Table, error) {
	if len(mask) != t.length {
		return nil, fmt.Errorf("%w: mask has %d rows, table has %d",
			ErrLengthMismatch, len(mask), t.length)
	}

	kept := 0
	for _, keep := range mask {
		if keep {
			kept++
		}
	}

	out := New(kept)
	for _, name := range t.names {
		switch vals := t.cols[name].(type) {
		case []float64:
			filtered := make([]float64, 0, kept)
			for i, keep := range mask {
				if keep {
					filtered = append(filtered, vals[i])
				}
			}
			out.names = append(out.names, name)
			out.cols[name] = filtered
		case []int64:
			filtered := make([]int64, 0, kept)
			for i, keep := range mask {
				if keep {
					filtered = append(filtered, vals[i])
				}
			}
			out.names = append(out.names, name)
			out.cols[name] = filtered
		case []bool:
			filtered := make([]bool, 0, kept)
			for i, keep := range mask {
				if keep {
					filtered = append(filtered, vals[i])
				}
			}
			out.names = append(out.names, name)
			out.cols[name] = filtered
		case []string:
			filtered := make([]string, 0, kept)
			for i, keep := range mask {
				if keep {
					filtered = append(filtered, vals[i])
				}
			}
			out.names = append(out.names, name)
			out.cols[name] = filtered
		}
	}
	return out, nil
}
