// Package schedtable lays out schedule events as time slot x room tables.
package schedtable

import (
	"github.com/charmbracelet/log"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/grid"
	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
	"github.com/ukaji3/schedtable-go/pkg/schedtable/parser"
)

// ConflictPolicy decides what happens when two events claim the same slot.
type ConflictPolicy string

const (
	// ConflictFail aborts the day on the first colliding placement.
	ConflictFail ConflictPolicy = "fail"
	// ConflictSkip drops colliding placements with a warning.
	ConflictSkip ConflictPolicy = "skip"
)

// DaySelection picks a schedule day and how it is labelled.
type DaySelection struct {
	// Date is the day in YYYY-MM-DD form.
	Date string `toml:"date" yaml:"date"`
	// Name is the display name; defaults to the lower-case weekday.
	Name string `toml:"name" yaml:"name"`
	// Caption is the table caption; defaults to Name.
	Caption string `toml:"caption" yaml:"caption"`
}

// Options configures conversion behavior.
type Options struct {
	// Layout maps clock times onto table rows.
	Layout parser.SlotLayout `toml:"layout" yaml:"layout"`
	// Rooms are the table columns in order.
	// If empty, every room named in the schedule is used in natural order.
	Rooms []string `toml:"rooms" yaml:"rooms"`
	// Days selects the days to render. If empty, all days are rendered.
	Days []DaySelection `toml:"days" yaml:"days"`
	// Sheet is the event sheet of xlsx sources (default: first sheet).
	Sheet string `toml:"sheet" yaml:"sheet"`
	// OnConflict selects the conflict policy (default: fail).
	OnConflict ConflictPolicy `toml:"on_conflict" yaml:"on_conflict"`
	// Trim specifies whether trailing empty time slots are dropped.
	// If nil, defaults to true.
	Trim *bool `toml:"trim" yaml:"trim"`
	// Merge specifies whether one event booked into neighbouring rooms is
	// shown as a single wide cell. If nil, defaults to true.
	Merge *bool `toml:"merge" yaml:"merge"`

	// Format renders event cells; defaults to output.FormatEvent.
	Format grid.FormatFunc[*models.Event] `toml:"-" yaml:"-"`
	// Classify derives cell classes; defaults to output.EventClasses.
	Classify grid.ClassFunc[*models.Event] `toml:"-" yaml:"-"`
	// Logger receives progress messages; defaults to log.Default().
	Logger *log.Logger `toml:"-" yaml:"-"`
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Layout:     parser.DefaultSlotLayout(),
		OnConflict: ConflictFail,
	}
}

// ShouldTrim returns whether to drop trailing empty time slots.
func (o Options) ShouldTrim() bool {
	if o.Trim != nil {
		return *o.Trim
	}
	return true
}

// ShouldMerge returns whether to merge neighbouring cells of one event.
func (o Options) ShouldMerge() bool {
	if o.Merge != nil {
		return *o.Merge
	}
	return true
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}
