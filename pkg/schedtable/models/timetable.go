package models

// DayTable is the rendered table of a single schedule day.
type DayTable struct {
	// Date is the day in YYYY-MM-DD form.
	Date string `json:"date"`
	// Name is the display name of the day (e.g. weekday).
	Name string `json:"name"`
	// Table is the rendered grid.
	Table *Table `json:"table"`
}

// Timetable is the container of all rendered days of a schedule source.
type Timetable struct {
	// Source is the schedule file name (no path).
	Source string `json:"source"`
	// Days holds the rendered days in schedule order.
	Days []DayTable `json:"days"`
}
