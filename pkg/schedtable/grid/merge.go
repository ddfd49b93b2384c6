package grid

// MergeHorizontal joins runs of horizontally adjacent primary cells that
// carry the same payload into the leftmost cell of the run, and returns the
// number of absorbed cells.
//
// A run only continues through a primary cell starting right where the
// current span ends, with an equal payload and the same row span; any empty,
// secondary or different cell ends it. Absorbed footprints become secondary
// cells of the surviving one. The pass is meant to run once.
func (g *Grid[P]) MergeHorizontal() int {
	merged := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cur := g.cells[r][c]
			if !cur.IsPrimary() {
				continue
			}
			width := cur.ColSpan
			for next := c + width; next < g.cols; {
				n := g.cells[r][next]
				if !n.IsPrimary() || n.Payload != cur.Payload || n.RowSpan != cur.RowSpan {
					break
				}
				g.absorb(cur.Pos, n)
				width += n.ColSpan
				next += n.ColSpan
				merged++
			}
			if width != cur.ColSpan {
				g.cells[r][c] = primaryCell(r, c, cur.Payload, cur.RowSpan, width)
			}
		}
	}
	return merged
}

// absorb re-tags the footprint of cell as secondary positions of owner.
func (g *Grid[P]) absorb(owner Pos, cell Cell[P]) {
	for i := 0; i < cell.RowSpan; i++ {
		for j := 0; j < cell.ColSpan; j++ {
			r, c := cell.Row+i, cell.Col+j
			g.cells[r][c] = secondaryCell[P](r, c, owner)
		}
	}
}
