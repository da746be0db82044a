package catalog

import "errors"

var (
	// ErrColumnExists is returned when adding a column whose name is taken.
	ErrColumnExists = errors.New("column already exists")

	// ErrUnknownColumn is returned when accessing a column that was never added.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrDtypeMismatch is returned when accessing a column through the wrong
	// typed accessor.
	ErrDtypeMismatch = errors.New("column dtype mismatch")

	// ErrLengthMismatch is returned when a column or mask length disagrees
	// with the table length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrUnsupportedDtype is returned when allocating a column with an Arrow
	// type the table cannot represent.
	ErrUnsupportedDtype = errors.New("unsupported dtype")
)
