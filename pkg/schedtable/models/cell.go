// Package models defines data structures for schedule tables.
package models

// CellKind tags a rendered table cell.
type CellKind string

const (
	// CellEmpty is a free slot with no event.
	CellEmpty CellKind = "empty"
	// CellContent holds a formatted event and its span.
	CellContent CellKind = "content"
)

// TableCell represents one emitted cell of a table row.
// Positions covered by another cell's span are not emitted at all.
type TableCell struct {
	// Kind is either CellEmpty or CellContent.
	Kind CellKind `json:"kind"`
	// Col is the grid column (0-based) the cell starts in.
	Col int `json:"col"`
	// RowSpan is the number of time slots covered (content cells only).
	RowSpan int `json:"rowspan,omitempty"`
	// ColSpan is the number of rooms covered (content cells only).
	ColSpan int `json:"colspan,omitempty"`
	// Content is the formatter output for the cell payload.
	Content string `json:"content,omitempty"`
	// Classes are optional styling hints derived from the payload.
	Classes []string `json:"classes,omitempty"`
}

// IsEmpty reports whether the cell marks a free slot.
func (c TableCell) IsEmpty() bool {
	return c.Kind == CellEmpty
}
