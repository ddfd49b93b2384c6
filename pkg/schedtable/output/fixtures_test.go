package output

import "github.com/ukaji3/schedtable-go/pkg/schedtable/models"

// sampleTable is a 3 slot x 3 room table: a keynote over two rooms and two
// slots, a single-slot talk and free slots.
func sampleTable() *models.Table {
	keynote := &models.Event{Title: "Opening Keynote", Category: "Keynote", Speakers: []string{"Ada"}}
	talk := &models.Event{Title: "Go & Grids"}
	return &models.Table{
		Caption:    "monday",
		Class:      "day-monday",
		RowHeaders: true,
		Header:     &models.HeaderRow{Corner: true, Labels: []string{"C01", "B09", "A08"}},
		Rows: []models.TableRow{
			{Index: 0, Header: "09:00h", Cells: []models.TableCell{
				{Kind: models.CellContent, Col: 0, RowSpan: 2, ColSpan: 2, Content: FormatEvent(keynote), Classes: EventClasses(keynote)},
				{Kind: models.CellEmpty, Col: 2},
			}},
			{Index: 1, Header: "09:15h", Cells: []models.TableCell{
				{Kind: models.CellContent, Col: 2, RowSpan: 1, ColSpan: 1, Content: FormatEvent(talk), Classes: EventClasses(talk)},
			}},
			{Index: 2, Header: "09:30h", Cells: []models.TableCell{
				{Kind: models.CellEmpty, Col: 0},
				{Kind: models.CellEmpty, Col: 1},
				{Kind: models.CellEmpty, Col: 2},
			}},
		},
	}
}
