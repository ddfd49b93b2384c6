// Package parser reads schedule sources and maps clock times onto time slots.
package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerHour is the number of minutes in an hour.
const MinutesPerHour = 60

// SlotLayout describes how a day is cut into equally long time slots.
type SlotLayout struct {
	// HourStart is the first hour shown (0-23).
	HourStart int `toml:"hour_start" yaml:"hour_start"`
	// HourEnd is the hour the table ends at (exclusive, 1-24).
	HourEnd int `toml:"hour_end" yaml:"hour_end"`
	// Resolution is the slot length in minutes; it must divide an hour.
	Resolution int `toml:"resolution" yaml:"resolution"`
}

// DefaultSlotLayout returns a whole-day layout with 15 minute slots.
func DefaultSlotLayout() SlotLayout {
	return SlotLayout{
		HourStart:  0,
		HourEnd:    24,
		Resolution: 15,
	}
}

// Validate checks the layout bounds.
func (l SlotLayout) Validate() error {
	if l.HourStart < 0 || l.HourEnd > 24 || l.HourStart >= l.HourEnd {
		return fmt.Errorf("invalid hour range %d-%d", l.HourStart, l.HourEnd)
	}
	if l.Resolution <= 0 || MinutesPerHour%l.Resolution != 0 {
		return fmt.Errorf("invalid resolution %d: must divide %d minutes", l.Resolution, MinutesPerHour)
	}
	return nil
}

// Rows returns the number of slots between HourStart and HourEnd.
func (l SlotLayout) Rows() int {
	return (l.HourEnd - l.HourStart) * (MinutesPerHour / l.Resolution)
}

// Row returns the slot index holding the given minute of the day.
// Times before HourStart give negative rows.
func (l SlotLayout) Row(minute int) int {
	offset := minute - l.HourStart*MinutesPerHour
	if offset < 0 {
		// round toward negative infinity so early starts stay out of range
		return (offset - l.Resolution + 1) / l.Resolution
	}
	return offset / l.Resolution
}

// Span returns the number of whole slots a duration covers. A duration
// running past a slot boundary does not claim the next slot; every event
// covers at least one slot.
func (l SlotLayout) Span(duration int) int {
	return max(1, duration/l.Resolution)
}

// Headers returns slot labels ("HH:MMh") from HourStart through HourEnd,
// so there are always more labels than rows.
func (l SlotLayout) Headers() []string {
	var headers []string
	for hour := l.HourStart; hour <= l.HourEnd; hour++ {
		for minute := 0; minute < MinutesPerHour; minute += l.Resolution {
			headers = append(headers, fmt.Sprintf("%02d:%02dh", hour, minute))
		}
	}
	return headers
}

// ParseClock parses "HHMM", "HMM" or "HH:MM" into minutes after midnight.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	digits := strings.ReplaceAll(s, ":", "")
	if digits == "" || len(digits) > 4 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, minute := n/100, n%100
	if hour > 24 || minute >= MinutesPerHour || (hour == 24 && minute != 0) {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	return hour*MinutesPerHour + minute, nil
}
