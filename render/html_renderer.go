// Package render turns grouped weeks into an HTML timetable page.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"timetable-server/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const INDEX_TEMPLATE = "index.html"

var weekdayLabels = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Renderer writes a timetable document for a group.
type Renderer interface {
	Render(w io.Writer, groupName string, weeks []models.Week) error
}

// HTMLRenderer renders the embedded index.html template.
type HTMLRenderer struct {
	tmpl *template.Template
}

type pageContext struct {
	GroupName string
	Weeks     []models.Week
}

// NewHTMLRenderer parses the embedded templates.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New(INDEX_TEMPLATE).Funcs(template.FuncMap{
		"weekday": WeekdayLabel,
		"date":    func(t time.Time) string { return t.Format(models.DateLayout) },
		"inc":     func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// Render writes the timetable page. Both the group name and the weeks reach the template.
func (r *HTMLRenderer) Render(w io.Writer, groupName string, weeks []models.Week) error {
	if err := r.tmpl.ExecuteTemplate(w, INDEX_TEMPLATE, pageContext{GroupName: groupName, Weeks: weeks}); err != nil {
		return fmt.Errorf("failed to render timetable for %s: %w", groupName, err)
	}
	return nil
}

// WeekdayLabel returns the English name for a 1 (Monday) to 7 (Sunday) index.
func WeekdayLabel(index int) string {
	if index < 1 || index >= len(weekdayLabels) {
		return ""
	}
	return weekdayLabels[index]
}
