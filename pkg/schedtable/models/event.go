package models

import "fmt"

// Event is a scheduled session as read from a schedule source.
// Events are handled by pointer; the pointer is the event identity.
type Event struct {
	// ID is the source identifier (optional).
	ID string `json:"id,omitempty"`
	// Date is the day in YYYY-MM-DD form.
	Date string `json:"date"`
	// Start is the start time in minutes after midnight.
	Start int `json:"start"`
	// Duration is the length in minutes.
	Duration int `json:"duration"`
	// Rooms lists the rooms the event takes place in.
	Rooms []string `json:"rooms,omitempty"`
	// AllRooms marks a plenary event spanning every room.
	AllRooms bool     `json:"all_rooms,omitempty"`
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Topics   []string `json:"topics,omitempty"`
	Speakers []string `json:"speakers,omitempty"`
}

// Clock formats the start time as HH:MM.
func (e *Event) Clock() string {
	return fmt.Sprintf("%02d:%02d", e.Start/60, e.Start%60)
}

func (e *Event) String() string {
	return fmt.Sprintf("%s %s %q", e.Date, e.Clock(), e.Title)
}
