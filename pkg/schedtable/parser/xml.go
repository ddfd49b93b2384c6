package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
)

// ParseScheduleXML reads a schedule document of the form
//
//	<schedule>
//	  <day date="2014-07-21">
//	    <entry id="1">
//	      <start>0900</start><duration>45</duration><room>C01,B09</room>
//	      <title>...</title><category>...</category>
//	      <topics><topic>...</topic></topics>
//	      <speakers><speaker><name>...</name></speaker></speakers>
//	    </entry>
//	  </day>
//	</schedule>
func ParseScheduleXML(r io.Reader) (*models.Schedule, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		Permissive: true,
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to read schedule XML: %w", err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("schedule XML has no root element")
	}

	b := newScheduleBuilder()
	for _, day := range doc.FindElements("//day") {
		date := strings.TrimSpace(day.SelectAttrValue("date", ""))
		if date == "" {
			return nil, fmt.Errorf("day element without date attribute")
		}
		b.day(date)
		for i, entry := range day.SelectElements("entry") {
			e, err := parseEntry(entry, date)
			if err != nil {
				return nil, fmt.Errorf("day %s entry %d: %w", date, i+1, err)
			}
			b.add(e)
		}
	}
	return b.build(), nil
}

func parseEntry(entry *etree.Element, date string) (*models.Event, error) {
	start, err := ParseClock(childText(entry, "start"))
	if err != nil {
		return nil, err
	}
	duration, err := parseDuration(childText(entry, "duration"))
	if err != nil {
		return nil, fmt.Errorf("invalid duration: %w", err)
	}
	rooms, all := parseRooms(childText(entry, "room"))

	e := &models.Event{
		ID:       entry.SelectAttrValue("id", ""),
		Date:     date,
		Start:    start,
		Duration: duration,
		Rooms:    rooms,
		AllRooms: all,
		Title:    childText(entry, "title"),
		Category: childText(entry, "category"),
	}
	for _, topic := range entry.FindElements("topics/topic") {
		if s := strings.TrimSpace(topic.Text()); s != "" {
			e.Topics = append(e.Topics, s)
		}
	}
	for _, speaker := range entry.FindElements("speakers/speaker") {
		name := childText(speaker, "name")
		if name == "" {
			name = strings.TrimSpace(speaker.Text())
		}
		if name != "" {
			e.Speakers = append(e.Speakers, name)
		}
	}
	return e, nil
}

func childText(el *etree.Element, tag string) string {
	if c := el.SelectElement(tag); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}
