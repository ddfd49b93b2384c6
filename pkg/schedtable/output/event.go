// Package output serializes rendered schedule tables.
package output

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/gosimple/slug"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
)

// Normalize turns a label into a string usable as a CSS class.
func Normalize(s string) string {
	return slug.Make(s)
}

// EventClasses returns the styling classes of an event cell.
func EventClasses(e *models.Event) []string {
	if e.Title == "" {
		return nil
	}
	return []string{"title-" + Normalize(e.Title)}
}

// FormatEvent renders an event as an HTML fragment:
//
//	<div class="entry topic-… category-…">
//	  <div class="title">…</div>
//	  <div class="speakers"><div class="speaker">…</div></div>
//	</div>
func FormatEvent(e *models.Event) string {
	doc := newFragmentDocument()

	classes := []string{"entry"}
	for _, topic := range e.Topics {
		classes = append(classes, "topic-"+Normalize(topic))
	}
	if e.Category != "" {
		classes = append(classes, "category-"+Normalize(e.Category))
	}

	entry := doc.CreateElement("div")
	entry.CreateAttr("class", strings.Join(classes, " "))

	title := entry.CreateElement("div")
	title.CreateAttr("class", "title")
	title.SetText(e.Title)

	speakers := entry.CreateElement("div")
	speakers.CreateAttr("class", "speakers")
	for _, name := range e.Speakers {
		speaker := speakers.CreateElement("div")
		speaker.CreateAttr("class", "speaker")
		speaker.SetText(name)
	}

	s, err := doc.WriteToString()
	if err != nil {
		return e.Title
	}
	return s
}

func newFragmentDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalEndTags: true,
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	return doc
}

// parseFragment parses markup produced by a cell formatter. It reports false
// when the content is not well-formed markup.
func parseFragment(content string) (*etree.Element, bool) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<fragment>" + content + "</fragment>"); err != nil {
		return nil, false
	}
	return doc.Root(), true
}

// fragmentText extracts the text lines of formatted cell content.
func fragmentText(content string) string {
	root, ok := parseFragment(content)
	if !ok {
		return content
	}
	var lines []string
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, tok := range el.Child {
			switch t := tok.(type) {
			case *etree.CharData:
				if s := strings.TrimSpace(t.Data); s != "" {
					lines = append(lines, s)
				}
			case *etree.Element:
				walk(t)
			}
		}
	}
	walk(root)
	return strings.Join(lines, "\n")
}
