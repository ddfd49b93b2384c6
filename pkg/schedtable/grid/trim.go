package grid

// TrimTrailingEmptyRows drops the run of all-empty rows at the end of the
// grid and returns how many rows were removed.
//
// Scanning stops at the last row holding anything, so empty rows before it
// are kept. Row headers are left as they are.
func (g *Grid[P]) TrimTrailingEmptyRows() int {
	keep := g.rows
	for keep > 0 && g.rowEmpty(keep-1) {
		keep--
	}
	removed := g.rows - keep
	g.cells = g.cells[:keep]
	g.rows = keep
	return removed
}
