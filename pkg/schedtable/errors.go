package schedtable

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates an input or config file of unknown type.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrDayNotFound indicates a selected day missing from the schedule.
var ErrDayNotFound = errors.New("day not found")

// ErrNoRooms indicates there are no rooms to lay events out in.
var ErrNoRooms = errors.New("no rooms")

// ConversionError represents an error while converting one schedule day.
type ConversionError struct {
	Day       string
	Component string // "schedule", "grid", "render"
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion error for day %q (%s): %v", e.Day, e.Component, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(day, component string, err error) *ConversionError {
	return &ConversionError{
		Day:       day,
		Component: component,
		Err:       err,
	}
}
