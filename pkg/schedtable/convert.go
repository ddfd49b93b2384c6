package schedtable

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
	"github.com/ukaji3/schedtable-go/pkg/schedtable/output"
	"github.com/ukaji3/schedtable-go/pkg/schedtable/parser"
)

// Convert reads a schedule file and renders the selected days as tables.
//
// Days that fail are reported as *ConversionError values combined into the
// returned error; the timetable still holds every day that succeeded.
func Convert(path string, opts Options) (*models.Timetable, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := opts.logger()

	schedule, err := LoadSchedule(path, opts.Sheet)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded schedule", "source", path, "days", len(schedule.Days))

	rooms := opts.Rooms
	if len(rooms) == 0 {
		rooms = scheduleRooms(schedule)
	}

	days := opts.Days
	if len(days) == 0 {
		for _, d := range schedule.Days {
			days = append(days, DaySelection{Date: d.Date})
		}
	}

	tt := &models.Timetable{Source: filepath.Base(path)}
	var errs error
	for _, sel := range days {
		day, ok := schedule.Day(sel.Date)
		if !ok {
			errs = multierr.Append(errs, NewConversionError(sel.Date, "schedule", ErrDayNotFound))
			continue
		}
		dt, err := convertDay(day, sel, rooms, opts)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		tt.Days = append(tt.Days, *dt)
	}
	return tt, errs
}

func convertDay(day *models.Day, sel DaySelection, rooms []string, opts Options) (*models.DayTable, error) {
	logger := opts.logger()
	sel = labelDay(sel)

	g, err := PlanDay(day, sel, rooms, opts)
	if err != nil {
		return nil, NewConversionError(day.Date, "grid", err)
	}
	if opts.ShouldTrim() {
		n := g.TrimTrailingEmptyRows()
		logger.Debug("Trimmed trailing slots", "day", day.Date, "rows", n)
	}
	if opts.ShouldMerge() {
		n := g.MergeHorizontal()
		logger.Debug("Merged cells", "day", day.Date, "cells", n)
	}

	format, classify := opts.Format, opts.Classify
	if format == nil {
		format = output.FormatEvent
	}
	if classify == nil {
		classify = output.EventClasses
	}
	table, err := g.RenderWith(format, classify)
	if err != nil {
		return nil, NewConversionError(day.Date, "render", err)
	}

	logger.Info("Rendered day", "day", day.Date, "name", sel.Name, "events", len(day.Events), "rows", g.Rows())
	return &models.DayTable{Date: day.Date, Name: sel.Name, Table: table}, nil
}

// LoadSchedule reads a schedule from an .xml or .xlsx file. For xlsx files
// sheet names the event sheet; empty selects the first sheet.
func LoadSchedule(path, sheet string) (*models.Schedule, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return parser.ParseScheduleXML(f)
	case ".xlsx":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if sheet == "" {
			sheet = f.GetSheetList()[0]
		}
		return parser.ExtractEvents(f, sheet)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
