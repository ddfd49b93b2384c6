package models

// Day groups the events of one schedule date.
type Day struct {
	// Date is the day in YYYY-MM-DD form.
	Date   string   `json:"date"`
	Events []*Event `json:"events"`
}

// Schedule is a parsed schedule source.
type Schedule struct {
	// Days holds days in source order.
	Days []Day `json:"days"`
}

// Day returns the day with the given date.
func (s *Schedule) Day(date string) (*Day, bool) {
	for i := range s.Days {
		if s.Days[i].Date == date {
			return &s.Days[i], true
		}
	}
	return nil, false
}

// Rooms returns every distinct room named by an event, in first-seen order.
func (s *Schedule) Rooms() []string {
	seen := make(map[string]bool)
	var rooms []string
	for _, d := range s.Days {
		for _, e := range d.Events {
			for _, r := range e.Rooms {
				if !seen[r] {
					seen[r] = true
					rooms = append(rooms, r)
				}
			}
		}
	}
	return rooms
}
