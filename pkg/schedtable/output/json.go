package output

import (
	"encoding/json"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
)

// ToJSON serializes a timetable.
func ToJSON(tt *models.Timetable, pretty bool) ([]byte, error) {
	return marshal(tt, pretty)
}

// DayToJSON serializes a single day table.
func DayToJSON(d *models.DayTable, pretty bool) ([]byte, error) {
	return marshal(d, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
