package grid

import "fmt"

// Kind tags the state of a grid position.
type Kind uint8

const (
	// KindEmpty is a free position.
	KindEmpty Kind = iota
	// KindPrimary holds a payload and the span it covers.
	KindPrimary
	// KindSecondary is a position consumed by the span of a primary cell.
	KindSecondary
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindPrimary:
		return "primary"
	case KindSecondary:
		return "secondary"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Pos is a (row, col) grid position, both 0-based.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is the value stored at one grid position.
//
// Payload, RowSpan and ColSpan are only set for primary cells; Owner is only
// set for secondary cells and points at the primary that consumes them.
type Cell[P comparable] struct {
	Pos
	Kind    Kind
	Payload P
	RowSpan int
	ColSpan int
	Owner   Pos
}

// IsEmpty reports whether the position is free.
func (c Cell[P]) IsEmpty() bool { return c.Kind == KindEmpty }

// IsPrimary reports whether the cell holds a payload.
func (c Cell[P]) IsPrimary() bool { return c.Kind == KindPrimary }

// IsSecondary reports whether the cell is covered by another cell's span.
func (c Cell[P]) IsSecondary() bool { return c.Kind == KindSecondary }

func (c Cell[P]) String() string {
	switch c.Kind {
	case KindPrimary:
		return fmt.Sprintf("primary%s[%dx%d]", c.Pos, c.RowSpan, c.ColSpan)
	case KindSecondary:
		return fmt.Sprintf("secondary%s->%s", c.Pos, c.Owner)
	}
	return fmt.Sprintf("empty%s", c.Pos)
}

func emptyCell[P comparable](row, col int) Cell[P] {
	return Cell[P]{Pos: Pos{row, col}}
}

func primaryCell[P comparable](row, col int, payload P, rowspan, colspan int) Cell[P] {
	return Cell[P]{
		Pos:     Pos{row, col},
		Kind:    KindPrimary,
		Payload: payload,
		RowSpan: rowspan,
		ColSpan: colspan,
	}
}

func secondaryCell[P comparable](row, col int, owner Pos) Cell[P] {
	return Cell[P]{
		Pos:   Pos{row, col},
		Kind:  KindSecondary,
		Owner: owner,
	}
}
