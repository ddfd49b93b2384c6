package output

import (
	"fmt"
	"io"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
)

// DefaultPageTemplate wraps every day table into one HTML page.
const DefaultPageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Source | trimSuffix (ext .Source) }}</title>
{{- with .Stylesheet }}
<link rel="stylesheet" type="text/css" href="{{ . }}">
{{- end }}
</head>
<body>
{{- range .Days }}
<section class="day day-{{ .Name }}" id="day-{{ .Date }}">
<h2>{{ .Name | title }} {{ .Date }}</h2>
{{ .HTML }}
</section>
{{- end }}
</body>
</html>
`

// PageDay is a day as seen by page templates.
type PageDay struct {
	Date string
	Name string
	// HTML is the serialized day table.
	HTML string
}

// PageValues holds the variables available for page template expansion.
type PageValues struct {
	Source     string
	Stylesheet string
	Days       []PageDay
}

// RenderPage expands a page template (DefaultPageTemplate when tmpl is
// empty) with all days of a timetable and writes the result to w.
func RenderPage(w io.Writer, tt *models.Timetable, tmpl, stylesheet string) error {
	if tmpl == "" {
		tmpl = DefaultPageTemplate
	}
	t, err := template.New("page").Funcs(sprig.FuncMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("unable to parse page template: %w", err)
	}

	values := PageValues{
		Source:     tt.Source,
		Stylesheet: stylesheet,
		Days:       make([]PageDay, 0, len(tt.Days)),
	}
	for _, d := range tt.Days {
		html, err := TableToHTML(d.Table)
		if err != nil {
			return fmt.Errorf("day %s: %w", d.Date, err)
		}
		values.Days = append(values.Days, PageDay{Date: d.Date, Name: d.Name, HTML: html})
	}

	return t.Execute(w, values)
}
