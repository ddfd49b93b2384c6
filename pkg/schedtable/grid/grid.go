// Package grid implements the allocation model behind schedule tables:
// a fixed rows x cols grid of cells where a placed payload may span several
// rows and columns without overlapping any other placement.
//
// A grid is built once, filled through Place, optionally compacted with
// TrimTrailingEmptyRows and MergeHorizontal, rendered and discarded.
// It is not safe for concurrent use.
package grid

import "fmt"

// Grid is a dense rows x cols matrix of cells carrying payloads of type P.
// Payload equality (==) is the identity used when merging cells.
type Grid[P comparable] struct {
	rows  int
	cols  int
	cells [][]Cell[P]

	// Caption is an optional table caption.
	Caption string
	// ColHeaders holds one label per column, or nothing.
	ColHeaders []string
	// RowHeaders holds at least one label per row, or nothing.
	RowHeaders []string
	// Class is an identity/category label handed through to rendering.
	Class string
}

// New creates a grid with every position empty.
func New[P comparable](rows, cols int) (*Grid[P], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid size %dx%d: %w", rows, cols, ErrOutOfBounds)
	}
	cells := make([][]Cell[P], rows)
	for r := range cells {
		cells[r] = make([]Cell[P], cols)
		for c := range cells[r] {
			cells[r][c] = emptyCell[P](r, c)
		}
	}
	return &Grid[P]{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the current number of rows.
func (g *Grid[P]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[P]) Cols() int { return g.cols }

// At returns a copy of the cell at (row, col).
func (g *Grid[P]) At(row, col int) (Cell[P], bool) {
	if !g.contains(row, col) {
		return Cell[P]{}, false
	}
	return g.cells[row][col], true
}

// Owner returns the primary cell whose footprint includes (row, col).
// It reports false for empty or out of range positions.
func (g *Grid[P]) Owner(row, col int) (Cell[P], bool) {
	c, ok := g.At(row, col)
	if !ok {
		return Cell[P]{}, false
	}
	switch c.Kind {
	case KindPrimary:
		return c, true
	case KindSecondary:
		return g.At(c.Owner.Row, c.Owner.Col)
	}
	return Cell[P]{}, false
}

// Put places a payload into a single cell.
func (g *Grid[P]) Put(row, col int, payload P) error {
	return g.Place(row, col, 1, 1, payload)
}

// Place commits payload at (row, col) covering rowspan x colspan positions.
//
// It fails with ErrOutOfBounds when the footprint leaves the grid and with
// ErrCellConflict when any footprint position is already taken. A rejected
// request leaves the grid unchanged.
func (g *Grid[P]) Place(row, col, rowspan, colspan int, payload P) error {
	if err := g.Fits(row, col, rowspan, colspan); err != nil {
		return err
	}

	owner := Pos{row, col}
	for i := 0; i < rowspan; i++ {
		for j := 0; j < colspan; j++ {
			if i == 0 && j == 0 {
				continue
			}
			r, c := row+i, col+j
			if !g.cells[r][c].IsEmpty() {
				return newPlacementError(row, col, rowspan, colspan, Pos{r, c}, ErrCellConflict)
			}
			g.cells[r][c] = secondaryCell[P](r, c, owner)
		}
	}
	g.cells[row][col] = primaryCell(row, col, payload, rowspan, colspan)
	return nil
}

// Fits validates a placement request without changing the grid.
func (g *Grid[P]) Fits(row, col, rowspan, colspan int) error {
	if !g.contains(row, col) {
		return newPlacementError(row, col, rowspan, colspan, Pos{row, col}, ErrOutOfBounds)
	}
	if rowspan < 1 || colspan < 1 || row+rowspan > g.rows || col+colspan > g.cols {
		return newPlacementError(row, col, rowspan, colspan, Pos{row + rowspan - 1, col + colspan - 1}, ErrOutOfBounds)
	}
	if !g.cells[row][col].IsEmpty() {
		return newPlacementError(row, col, rowspan, colspan, Pos{row, col}, ErrCellConflict)
	}
	for i := 0; i < rowspan; i++ {
		for j := 0; j < colspan; j++ {
			if !g.cells[row+i][col+j].IsEmpty() {
				return newPlacementError(row, col, rowspan, colspan, Pos{row + i, col + j}, ErrCellConflict)
			}
		}
	}
	return nil
}

func (g *Grid[P]) contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid[P]) rowEmpty(row int) bool {
	for _, c := range g.cells[row] {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
