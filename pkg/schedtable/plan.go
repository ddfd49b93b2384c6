package schedtable

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/grid"
	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
)

// PlanDay lays the events of day out on a grid with one row per time slot
// and one column per room.
//
// Events booked into rooms outside the room list are left out. A plenary
// event covers every column. Collisions either fail the day or are dropped,
// depending on opts.OnConflict.
func PlanDay(day *models.Day, sel DaySelection, rooms []string, opts Options) (*grid.Grid[*models.Event], error) {
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}
	if err := opts.Layout.Validate(); err != nil {
		return nil, err
	}
	logger := opts.logger().With("day", day.Date)

	g, err := grid.New[*models.Event](opts.Layout.Rows(), len(rooms))
	if err != nil {
		return nil, err
	}
	sel = labelDay(sel)
	g.Caption = sel.Caption
	g.Class = "day-" + sel.Name
	g.ColHeaders = append([]string(nil), rooms...)
	g.RowHeaders = opts.Layout.Headers()

	columns := make(map[string]int, len(rooms))
	for i, room := range rooms {
		if _, dup := columns[room]; !dup {
			columns[room] = i
		}
	}

	place := func(e *models.Event, row, col, rowspan, colspan int) error {
		if opts.OnConflict == ConflictSkip {
			if err := g.Fits(row, col, rowspan, colspan); err != nil {
				logger.Warn("Skipping placement", "event", e.Title, "start", e.Clock(), "room", rooms[col], "err", err)
				return nil
			}
		}
		if err := g.Place(row, col, rowspan, colspan, e); err != nil {
			return fmt.Errorf("event %s: %w", e, err)
		}
		return nil
	}

	for _, e := range day.Events {
		row := opts.Layout.Row(e.Start)
		rowspan := opts.Layout.Span(e.Duration)

		if e.AllRooms {
			if err := place(e, row, 0, rowspan, len(rooms)); err != nil {
				return nil, err
			}
			continue
		}
		for _, room := range e.Rooms {
			col, ok := columns[room]
			if !ok {
				logger.Debug("Room not in table", "event", e.Title, "room", room)
				continue
			}
			if err := place(e, row, col, rowspan, 1); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// labelDay fills in the default name and caption of a selection.
func labelDay(sel DaySelection) DaySelection {
	if sel.Name == "" {
		sel.Name = weekday(sel.Date)
	}
	if sel.Caption == "" {
		sel.Caption = sel.Name
	}
	return sel
}

// weekday returns the lower-case weekday of a YYYY-MM-DD date, or the date
// itself if it does not parse.
func weekday(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return strings.ToLower(t.Weekday().String())
}

// scheduleRooms returns all rooms of a schedule in natural order
// ("B9" before "B10").
func scheduleRooms(s *models.Schedule) []string {
	rooms := s.Rooms()
	sort.Sort(natural.StringSlice(rooms))
	return rooms
}
