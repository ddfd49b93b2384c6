package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
)

// AllRooms is the room value of events spanning every room.
const AllRooms = "ALL"

// scheduleBuilder groups events by date keeping first-seen date order.
type scheduleBuilder struct {
	schedule models.Schedule
	index    map[string]int
}

func newScheduleBuilder() *scheduleBuilder {
	return &scheduleBuilder{index: make(map[string]int)}
}

func (b *scheduleBuilder) day(date string) *models.Day {
	i, ok := b.index[date]
	if !ok {
		i = len(b.schedule.Days)
		b.index[date] = i
		b.schedule.Days = append(b.schedule.Days, models.Day{Date: date})
	}
	return &b.schedule.Days[i]
}

func (b *scheduleBuilder) add(e *models.Event) {
	d := b.day(e.Date)
	d.Events = append(d.Events, e)
}

func (b *scheduleBuilder) build() *models.Schedule {
	return &b.schedule
}

// parseRooms splits a room list; "ALL" selects every room.
func parseRooms(s string) (rooms []string, all bool) {
	if strings.TrimSpace(s) == AllRooms {
		return nil, true
	}
	return splitList(s, ","), false
}

// parseDuration accepts plain minutes or an "H:MM" length.
func parseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ":") {
		return ParseClock(s)
	}
	return strconv.Atoi(s)
}

func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
