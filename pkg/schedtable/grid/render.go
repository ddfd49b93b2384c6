package grid

import (
	"fmt"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
)

// FormatFunc turns a payload into cell content.
type FormatFunc[P any] func(P) string

// ClassFunc derives styling classes from a payload.
type ClassFunc[P any] func(P) []string

// Render walks the grid in row-major order and builds the table document.
// A nil format falls back to fmt.Sprint.
func (g *Grid[P]) Render(format FormatFunc[P]) (*models.Table, error) {
	return g.RenderWith(format, nil)
}

// RenderWith is Render with an optional classifier attaching classes to
// content cells.
//
// Secondary cells are not emitted, empty cells become empty markers and
// primary cells carry their span and the formatted payload.
func (g *Grid[P]) RenderWith(format FormatFunc[P], classify ClassFunc[P]) (*models.Table, error) {
	if format == nil {
		format = func(p P) string { return fmt.Sprint(p) }
	}
	hasRowHeaders := len(g.RowHeaders) > 0
	if hasRowHeaders && len(g.RowHeaders) < g.rows {
		return nil, fmt.Errorf("%d row headers for %d rows: %w", len(g.RowHeaders), g.rows, ErrOutOfBounds)
	}
	if len(g.ColHeaders) > 0 && len(g.ColHeaders) != g.cols {
		return nil, fmt.Errorf("%d column headers for %d columns: %w", len(g.ColHeaders), g.cols, ErrOutOfBounds)
	}

	doc := &models.Table{
		Caption:    g.Caption,
		Class:      g.Class,
		RowHeaders: hasRowHeaders,
		Rows:       make([]models.TableRow, 0, g.rows),
	}
	if len(g.ColHeaders) > 0 {
		doc.Header = &models.HeaderRow{
			Corner: hasRowHeaders,
			Labels: append([]string(nil), g.ColHeaders...),
		}
	}

	for r := 0; r < g.rows; r++ {
		row := models.TableRow{Index: r}
		if hasRowHeaders {
			row.Header = g.RowHeaders[r]
		}
		for _, cell := range g.cells[r] {
			switch cell.Kind {
			case KindSecondary:
				// covered by the owner's span
			case KindEmpty:
				row.Cells = append(row.Cells, models.TableCell{Kind: models.CellEmpty, Col: cell.Col})
			case KindPrimary:
				tc := models.TableCell{
					Kind:    models.CellContent,
					Col:     cell.Col,
					RowSpan: cell.RowSpan,
					ColSpan: cell.ColSpan,
					Content: format(cell.Payload),
				}
				if classify != nil {
					tc.Classes = classify(cell.Payload)
				}
				row.Cells = append(row.Cells, tc)
			}
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc, nil
}
