package schedtable

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/grid"
	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
)

func TestConvert(t *testing.T) {
	path := writeFile(t, "schedule.xml", sampleXML)
	opts := testOptions()
	opts.Days = []DaySelection{{Date: "2014-07-21"}}

	tt, err := Convert(path, opts)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if tt.Source != "schedule.xml" || len(tt.Days) != 1 {
		t.Fatalf("Expected one day from schedule.xml, got %+v", tt)
	}

	day := tt.Days[0]
	if day.Name != "monday" || day.Table.Caption != "monday" || day.Table.Class != "day-monday" {
		t.Errorf("Unexpected labels %q %q %q", day.Name, day.Table.Caption, day.Table.Class)
	}
	table := day.Table
	if len(table.Rows) != 6 {
		t.Fatalf("Expected 6 rows after trimming, got %d", len(table.Rows))
	}
	if table.Header == nil || strings.Join(table.Header.Labels, ",") != "C01,B09,A08" {
		t.Errorf("Unexpected header %+v", table.Header)
	}

	first := table.Rows[0].Cells
	if len(first) != 2 {
		t.Fatalf("Expected merged keynote plus one empty cell, got %+v", first)
	}
	if first[0].ColSpan != 2 || first[0].RowSpan != 3 {
		t.Errorf("Expected keynote 3x2, got %+v", first[0])
	}
	if !strings.Contains(first[0].Content, `<div class="title">Opening Keynote</div>`) {
		t.Errorf("Expected formatted event content, got %q", first[0].Content)
	}
	if len(first[0].Classes) != 1 || first[0].Classes[0] != "title-opening-keynote" {
		t.Errorf("Expected title class, got %v", first[0].Classes)
	}
	if !first[1].IsEmpty() || first[1].Col != 2 {
		t.Errorf("Expected empty A08 slot, got %+v", first[1])
	}
	if cells := table.Rows[4].Cells; len(cells) != 1 || cells[0].ColSpan != 3 {
		t.Errorf("Expected plenary row, got %+v", cells)
	}
}

func TestConvertWithoutTrimAndMerge(t *testing.T) {
	path := writeFile(t, "schedule.xml", sampleXML)
	opts := testOptions()
	opts.Days = []DaySelection{{Date: "2014-07-21", Name: "day1"}}
	off := false
	opts.Trim, opts.Merge = &off, &off
	opts.Format = func(e *models.Event) string { return e.Title }

	tt, err := Convert(path, opts)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	table := tt.Days[0].Table
	if len(table.Rows) != 12 {
		t.Errorf("Expected all 12 slots, got %d", len(table.Rows))
	}
	first := table.Rows[0].Cells
	if len(first) != 3 || first[0].Content != "Opening Keynote" || first[1].Content != "Opening Keynote" {
		t.Errorf("Expected unmerged keynote cells, got %+v", first)
	}
	if table.Class != "day-day1" {
		t.Errorf("Expected class day-day1, got %q", table.Class)
	}
}

func TestConvertCollectsDayErrors(t *testing.T) {
	path := writeFile(t, "schedule.xml", sampleXML)
	opts := testOptions()
	opts.Days = []DaySelection{{Date: "2014-07-21"}, {Date: "2014-07-22"}, {Date: "2014-07-23"}}

	tt, err := Convert(path, opts)
	if err == nil {
		t.Fatal("Expected error")
	}
	if len(tt.Days) != 1 || tt.Days[0].Date != "2014-07-21" {
		t.Errorf("Expected the good day to survive, got %+v", tt.Days)
	}
	if !errors.Is(err, grid.ErrCellConflict) {
		t.Errorf("Expected conflict in error chain, got %v", err)
	}
	if !errors.Is(err, ErrDayNotFound) {
		t.Errorf("Expected missing day in error chain, got %v", err)
	}
	var cerr *ConversionError
	if !errors.As(err, &cerr) || cerr.Day != "2014-07-22" || cerr.Component != "grid" {
		t.Errorf("Expected grid ConversionError for 2014-07-22, got %v", err)
	}

	opts.OnConflict = ConflictSkip
	opts.Days = nil
	tt, err = Convert(path, opts)
	if err != nil {
		t.Fatalf("Convert with skip policy failed: %v", err)
	}
	if len(tt.Days) != 2 || tt.Days[1].Name != "tuesday" {
		t.Errorf("Expected monday and tuesday, got %+v", tt.Days)
	}
}

func TestConvertXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]interface{}{
		{"date", "start", "duration", "room", "title"},
		{"2014-07-21", 900, 30, "B9,B10", "Talk"},
		{"2014-07-21", 930, 15, "A1", "Other"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "events.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	opts := testOptions()
	opts.Rooms = nil

	tt, err := Convert(path, opts)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	table := tt.Days[0].Table
	if got := strings.Join(table.Header.Labels, ","); got != "A1,B9,B10" {
		t.Errorf("Expected rooms in natural order, got %s", got)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.Rows))
	}
	first := table.Rows[0].Cells
	if len(first) != 2 || !first[0].IsEmpty() || first[1].ColSpan != 2 {
		t.Errorf("Expected talk merged over B9 and B10, got %+v", first)
	}
}

func TestLoadScheduleErrors(t *testing.T) {
	if _, err := LoadSchedule(filepath.Join(t.TempDir(), "missing.xml"), ""); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
	if _, err := LoadSchedule(writeFile(t, "schedule.csv", "a,b"), ""); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestScheduleRooms(t *testing.T) {
	s := &models.Schedule{Days: []models.Day{{Events: []*models.Event{
		{Rooms: []string{"B10", "B9"}},
		{Rooms: []string{"A1", "B9"}},
	}}}}
	if got := strings.Join(scheduleRooms(s), ","); got != "A1,B9,B10" {
		t.Errorf("scheduleRooms = %s, expected A1,B9,B10", got)
	}
}
