package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds indicates request geometry exceeding the grid dimensions.
var ErrOutOfBounds = errors.New("out of bounds")

// ErrCellConflict indicates a request overlapping an occupied position.
var ErrCellConflict = errors.New("cell conflict")

// PlacementError describes a rejected placement request.
type PlacementError struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
	// At is the offending position (the occupied cell for conflicts).
	At  Pos
	Err error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("place (%d,%d) span %dx%d: %v at %s", e.Row, e.Col, e.RowSpan, e.ColSpan, e.Err, e.At)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}

func newPlacementError(row, col, rowspan, colspan int, at Pos, err error) *PlacementError {
	return &PlacementError{
		Row:     row,
		Col:     col,
		RowSpan: rowspan,
		ColSpan: colspan,
		At:      at,
		Err:     err,
	}
}
