package cli

import (
	"text/template"

	"github.com/iudanet/gophcal/internal/models"
)

const statusTemplate = `=== Session Status ===

Signed in: {{if .LoggedIn}}yes ({{.Active}}){{else}}no{{end}}
Password:  {{mark .Password}}
Apple:     {{mark .Apple}}
Kakao:     {{mark .Kakao}}
`

const userTemplate = `=== Current User ===

Name:     {{.DisplayName}}
Provider: {{.Provider}}
ID:       {{.ID}}
{{- if .UID}}
UID:      {{.UID}}
{{- end}}
{{- if .Email}}
Email:    {{.Email}}
{{- end}}
`

const eventsTemplate = `=== {{.Heading}} ===
{{range .Days}}
{{.Date}}
{{- range .Events}}
  {{.Time}}  {{.Title}}{{if .Pending}}  (saving...){{end}}  [{{.ID}}]
{{- end}}
{{else}}
No events.
{{end}}`

var templates = template.Must(template.New("cli").Funcs(template.FuncMap{
	"mark": func(v bool) string {
		if v {
			return "✓"
		}
		return "-"
	},
}).Parse(`{{define "status"}}` + statusTemplate + `{{end}}` +
	`{{define "user"}}` + userTemplate + `{{end}}` +
	`{{define "events"}}` + eventsTemplate + `{{end}}`))

func lookup(name string) *template.Template {
	return templates.Lookup(name)
}

func toEventViews(events []models.Event) []eventView {
	views := make([]eventView, 0, len(events))
	for _, e := range events {
		views = append(views, eventView{
			ID:      e.ID,
			Date:    e.Date,
			Time:    e.Time,
			Title:   e.Title,
			Pending: e.IsTemporary(),
		})
	}
	return views
}

// groupByDate ожидает события, отсортированные по дате
func groupByDate(heading string, events []eventView) listView {
	view := listView{Heading: heading}
	for _, e := range events {
		n := len(view.Days)
		if n == 0 || view.Days[n-1].Date != e.Date {
			view.Days = append(view.Days, dayView{Date: e.Date})
			n++
		}
		view.Days[n-1].Events = append(view.Days[n-1].Events, e)
	}
	return view
}
