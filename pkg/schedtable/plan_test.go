package schedtable

import (
	"errors"
	"strings"
	"testing"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/grid"
	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
	"github.com/ukaji3/schedtable-go/pkg/schedtable/parser"
)

func loadSample(t *testing.T) (*models.Schedule, error) {
	t.Helper()
	return parser.ParseScheduleXML(strings.NewReader(sampleXML))
}

func TestPlanDay(t *testing.T) {
	schedule, err := loadSample(t)
	if err != nil {
		t.Fatalf("ParseScheduleXML failed: %v", err)
	}
	day, _ := schedule.Day("2014-07-21")
	opts := testOptions()

	g, err := PlanDay(day, DaySelection{Date: day.Date}, opts.Rooms, opts)
	if err != nil {
		t.Fatalf("PlanDay failed: %v", err)
	}
	if g.Rows() != 12 || g.Cols() != 3 {
		t.Fatalf("Expected 12x3 grid, got %dx%d", g.Rows(), g.Cols())
	}
	if g.Caption != "monday" || g.Class != "day-monday" {
		t.Errorf("Expected monday caption/class, got %q %q", g.Caption, g.Class)
	}
	if len(g.RowHeaders) < g.Rows() || g.RowHeaders[0] != "09:00h" {
		t.Errorf("Unexpected row headers %v", g.RowHeaders)
	}

	keynote := day.Events[0]
	for col := 0; col < 2; col++ {
		cell, _ := g.At(0, col)
		if !cell.IsPrimary() || cell.Payload != keynote || cell.RowSpan != 3 {
			t.Errorf("Expected keynote 3 slots tall in column %d, got %v", col, cell)
		}
	}
	coffee, _ := g.At(4, 0)
	if !coffee.IsPrimary() || coffee.ColSpan != 3 || coffee.RowSpan != 2 {
		t.Errorf("Expected plenary coffee across all rooms, got %v", coffee)
	}
	if cell, _ := g.At(1, 2); !cell.IsPrimary() || cell.Payload.Title != "Lightning Talk" {
		t.Errorf("Expected lightning talk at (1,2), got %v", cell)
	}
	if cell, _ := g.At(2, 2); !cell.IsEmpty() {
		t.Errorf("Expected unknown room event left out, got %v", cell)
	}
}

func TestPlanDayConflict(t *testing.T) {
	schedule, err := loadSample(t)
	if err != nil {
		t.Fatalf("ParseScheduleXML failed: %v", err)
	}
	day, _ := schedule.Day("2014-07-22")
	opts := testOptions()

	_, err = PlanDay(day, DaySelection{Date: day.Date, Name: "tuesday"}, opts.Rooms, opts)
	if !errors.Is(err, grid.ErrCellConflict) {
		t.Fatalf("Expected ErrCellConflict, got %v", err)
	}

	opts.OnConflict = ConflictSkip
	g, err := PlanDay(day, DaySelection{Date: day.Date}, opts.Rooms, opts)
	if err != nil {
		t.Fatalf("PlanDay with skip policy failed: %v", err)
	}
	if cell, _ := g.At(0, 0); cell.Payload.Title != "First" {
		t.Errorf("Expected first booking kept, got %v", cell)
	}
	if cell, _ := g.At(1, 1); !cell.IsPrimary() || cell.Payload.Title != "Double Booked" {
		t.Errorf("Expected free room of the double booking placed, got %v", cell)
	}
}

func TestPlanDayOutOfHours(t *testing.T) {
	schedule, err := loadSample(t)
	if err != nil {
		t.Fatalf("ParseScheduleXML failed: %v", err)
	}
	day, _ := schedule.Day("2014-07-21")
	opts := testOptions()
	opts.Layout.HourEnd = 10 // coffee at 10:00 falls outside

	_, err = PlanDay(day, DaySelection{Date: day.Date}, opts.Rooms, opts)
	if !errors.Is(err, grid.ErrOutOfBounds) {
		t.Fatalf("Expected ErrOutOfBounds, got %v", err)
	}
}

func TestPlanDayNoRooms(t *testing.T) {
	schedule, err := loadSample(t)
	if err != nil {
		t.Fatalf("ParseScheduleXML failed: %v", err)
	}
	day, _ := schedule.Day("2014-07-21")
	if _, err := PlanDay(day, DaySelection{}, nil, testOptions()); !errors.Is(err, ErrNoRooms) {
		t.Errorf("Expected ErrNoRooms, got %v", err)
	}
}

func TestLabelDay(t *testing.T) {
	tests := []struct {
		sel      DaySelection
		expected DaySelection
	}{
		{DaySelection{Date: "2014-07-26"}, DaySelection{Date: "2014-07-26", Name: "saturday", Caption: "saturday"}},
		{DaySelection{Date: "2014-07-21", Name: "day1"}, DaySelection{Date: "2014-07-21", Name: "day1", Caption: "day1"}},
		{DaySelection{Date: "2014-07-21", Caption: "Monday 21st"}, DaySelection{Date: "2014-07-21", Name: "monday", Caption: "Monday 21st"}},
		{DaySelection{Date: "someday"}, DaySelection{Date: "someday", Name: "someday", Caption: "someday"}},
	}
	for _, tt := range tests {
		if got := labelDay(tt.sel); got != tt.expected {
			t.Errorf("labelDay(%+v) = %+v, expected %+v", tt.sel, got, tt.expected)
		}
	}
}

func TestPlanDayPartialSlots(t *testing.T) {
	first := &models.Event{ID: "1", Date: "2014-07-21", Start: 600, Duration: 20, Rooms: []string{"C01"}, Title: "First"}
	next := &models.Event{ID: "2", Date: "2014-07-21", Start: 615, Duration: 30, Rooms: []string{"C01"}, Title: "Next"}
	day := &models.Day{Date: "2014-07-21", Events: []*models.Event{first, next}}
	opts := testOptions()
	opts.Layout = parser.SlotLayout{HourStart: 9, HourEnd: 22, Resolution: 15}

	g, err := PlanDay(day, DaySelection{Date: day.Date}, []string{"C01"}, opts)
	if err != nil {
		t.Fatalf("PlanDay failed: %v", err)
	}

	tests := []struct {
		row     int
		payload *models.Event
		rowspan int
	}{
		{4, first, 1},
		{5, next, 2},
	}
	for _, tt := range tests {
		cell, _ := g.At(tt.row, 0)
		if !cell.IsPrimary() || cell.Payload != tt.payload || cell.RowSpan != tt.rowspan {
			t.Errorf("row %d: expected %s with rowspan %d, got %v", tt.row, tt.payload.Title, tt.rowspan, cell)
		}
	}
	if owner, ok := g.Owner(6, 0); !ok || owner.Payload != next {
		t.Errorf("Expected (6,0) to belong to %s, got %v", next.Title, owner)
	}
}
