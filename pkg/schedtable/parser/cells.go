package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
	"github.com/xuri/excelize/v2"
)

// Column names recognised in the header row of an event sheet.
const (
	colID       = "id"
	colDate     = "date"
	colStart    = "start"
	colDuration = "duration"
	colRoom     = "room"
	colTitle    = "title"
	colCategory = "category"
	colTopics   = "topics"
	colSpeakers = "speakers"
)

var requiredColumns = []string{colDate, colStart, colDuration, colRoom, colTitle}

// ExtractEvents reads events from a sheet laid out as one event per row.
// The first non-empty row is the header naming the columns; topics and
// speakers are separated by semicolons.
func ExtractEvents(f *excelize.File, sheetName string) (*models.Schedule, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	headerIdx := -1
	for i, row := range rows {
		if !isBlankRow(row) {
			headerIdx = i
			break
		}
	}
	b := newScheduleBuilder()
	if headerIdx < 0 {
		return b.build(), nil
	}

	columns := make(map[string]int)
	for colIdx, name := range rows[headerIdx] {
		columns[strings.ToLower(strings.TrimSpace(name))] = colIdx
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("sheet %q: missing column %q", sheetName, name)
		}
	}

	for rowIdx := headerIdx + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if isBlankRow(row) {
			continue
		}
		rowNum := rowIdx + 1 // 1-based row index
		get := func(name string) string {
			colIdx, ok := columns[name]
			if !ok || colIdx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[colIdx])
		}

		e, err := eventFromRow(get)
		if err != nil {
			cellName, _ := excelize.CoordinatesToCellName(1, rowNum)
			return nil, fmt.Errorf("sheet %q row %s: %w", sheetName, cellName, err)
		}
		if e.ID == "" {
			e.ID = "row-" + strconv.Itoa(rowNum)
		}
		b.add(e)
	}

	return b.build(), nil
}

func eventFromRow(get func(string) string) (*models.Event, error) {
	date := get(colDate)
	if date == "" {
		return nil, fmt.Errorf("missing date")
	}

	start, err := ParseClock(clockValue(parseValue(get(colStart))))
	if err != nil {
		return nil, err
	}

	var duration int
	switch v := parseValue(get(colDuration)).(type) {
	case int64:
		duration = int(v)
	case float64:
		duration = int(v)
	case string:
		if duration, err = parseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid duration %q", v)
		}
	}

	rooms, all := parseRooms(get(colRoom))
	return &models.Event{
		ID:       get(colID),
		Date:     date,
		Start:    start,
		Duration: duration,
		Rooms:    rooms,
		AllRooms: all,
		Title:    get(colTitle),
		Category: get(colCategory),
		Topics:   splitList(get(colTopics), ";"),
		Speakers: splitList(get(colSpeakers), ";"),
	}, nil
}

// clockValue turns a parsed start cell back into clock text;
// numeric cells like 900 lose their leading zero in the sheet.
func clockValue(v interface{}) string {
	switch n := v.(type) {
	case int64:
		return fmt.Sprintf("%04d", n)
	case float64:
		return fmt.Sprintf("%04d", int64(n))
	}
	return v.(string)
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
