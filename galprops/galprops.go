// Package galprops describes the galaxy-property columns a component model
// allocates in the mock galaxy table. A Schema is an ordered list of
// (column name, Arrow data type) pairs; Arrow types give us a shared dtype
// vocabulary with exact equality semantics.
package galprops

import (
	"github.com/apache/arrow/go/v17/arrow"
)

// Column is a single galaxy-property column declaration.
type Column struct {
	Name string
	Type arrow.DataType
}

// Schema is an ordered set of column declarations. The zero value is a
// valid, empty schema. Column names are unique within a single schema.
type Schema []Column

// Float64 declares a float64 column.
func Float64(name string) Column {
	return Column{Name: name, Type: arrow.PrimitiveTypes.Float64}
}

// Int64 declares an int64 column.
func Int64(name string) Column {
	return Column{Name: name, Type: arrow.PrimitiveTypes.Int64}
}

// Bool declares a boolean column.
func Bool(name string) Column {
	return Column{Name: name, Type: arrow.FixedWidthTypes.Boolean}
}

// String declares a string column.
func String(name string) Column {
	return Column{Name: name, Type: arrow.BinaryTypes.String}
}

// Names returns the column names in declaration order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, col := range s {
		names[i] = col.Name
	}
	return names
}

// Lookup returns the data type declared for name.
func (s Schema) Lookup(name string) (arrow.DataType, bool) {
	for _, col := range s {
		if col.Name == name {
			return col.Type, true
		}
	}
	return nil, false
}

// Contains reports whether the schema declares a column with the given name.
func (s Schema) Contains(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}
