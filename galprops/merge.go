package galprops

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
)

// DtypeConflictError reports a column declared with two disagreeing data
// types by different schemas in a merge.
type DtypeConflictError struct {
	Column   string
	Existing arrow.DataType
	Incoming arrow.DataType
}

func (e *DtypeConflictError) Error() string {
	return fmt.Sprintf(
		"galaxy property %q declared with conflicting dtypes: %s vs %s",
		e.Column, e.Existing, e.Incoming)
}

// Merge unions the input schemas in order. A column name appearing in more
// than one schema must carry the same data type everywhere; the first
// declaration fixes the column's position in the merged schema. A dtype
// disagreement returns a *DtypeConflictError.
func Merge(schemas ...Schema) (Schema, error) {
	var merged Schema
	seen := make(map[string]arrow.DataType)

	for _, s := range schemas {
		for _, col := range s {
			existing, ok := seen[col.Name]
			if !ok {
				seen[col.Name] = col.Type
				merged = append(merged, col)
				continue
			}
			if !arrow.TypeEqual(existing, col.Type) {
				return nil, &DtypeConflictError{
					Column:   col.Name,
					Existing: existing,
					Incoming: col.Type,
				}
			}
		}
	}
	return merged, nil
}
