package romserve

import "errors"

var (
	// ErrNotFound is returned when an asset is not in the table
	ErrNotFound = errors.New("not found")
	// ErrInvalidTable is returned when a table fails validation
	ErrInvalidTable = errors.New("invalid table")
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
