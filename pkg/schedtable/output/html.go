package output

import (
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
)

// TableToHTML serializes a rendered table as an HTML <table> element.
func TableToHTML(t *models.Table) (string, error) {
	return tableDocument(t).WriteToString()
}

// WriteHTML writes the HTML of a rendered table to w.
func WriteHTML(w io.Writer, t *models.Table) error {
	_, err := tableDocument(t).WriteTo(w)
	return err
}

func tableDocument(t *models.Table) *etree.Document {
	doc := newFragmentDocument()

	table := doc.CreateElement("table")
	table.CreateAttr("class", joinClasses("schedule-table", t.Class))

	if t.Caption != "" {
		table.CreateElement("caption").SetText(t.Caption)
	}

	if t.Header != nil {
		tr := table.CreateElement("thead").CreateElement("tr")
		if t.Header.Corner {
			tr.CreateElement("th")
		}
		for _, label := range t.Header.Labels {
			tr.CreateElement("th").SetText(label)
		}
	}

	tbody := table.CreateElement("tbody")
	for _, row := range t.Rows {
		tr := tbody.CreateElement("tr")
		if t.RowHeaders {
			th := tr.CreateElement("th")
			th.CreateAttr("class", "time")
			th.SetText(row.Header)
		}
		for _, cell := range row.Cells {
			td := tr.CreateElement("td")
			col := "col-" + strconv.Itoa(cell.Col)
			if cell.IsEmpty() {
				td.CreateAttr("class", joinClasses("cell", col, "empty"))
				continue
			}
			classes := append([]string{"cell"}, cell.Classes...)
			classes = append(classes, col, "non-empty")
			td.CreateAttr("class", joinClasses(classes...))
			td.CreateAttr("rowspan", strconv.Itoa(cell.RowSpan))
			td.CreateAttr("colspan", strconv.Itoa(cell.ColSpan))
			appendContent(td, cell.Content)
		}
	}

	doc.Indent(2)
	return doc
}

// appendContent moves formatted markup into parent, falling back to plain
// text for content that is not well-formed.
func appendContent(parent *etree.Element, content string) {
	if content == "" {
		return
	}
	root, ok := parseFragment(content)
	if !ok {
		parent.SetText(content)
		return
	}
	children := append([]etree.Token(nil), root.Child...)
	for _, tok := range children {
		parent.AddChild(tok)
	}
}

func joinClasses(classes ...string) string {
	var parts []string
	for _, c := range classes {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
