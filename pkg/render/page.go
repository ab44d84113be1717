package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/aojeda/surfcast/pkg/forecast"
	"github.com/aojeda/surfcast/pkg/sunset"
)

//go:embed static/page.template.html
var content embed.FS

var pageTemplate = template.Must(template.ParseFS(content, "static/page.template.html"))

// PageInput carries everything the page template needs. Webcam and
// Table are trusted markup.
type PageInput struct {
	Name   string
	Webcam template.HTML
	Sun    string
	Table  template.HTML
}

// Page writes the complete report document for one spot: banner,
// webcam, sun events line, and the styled forecast table. Output is
// deterministic for a given input.
func Page(w io.Writer, t forecast.Table, sun sunset.SunEvents) error {
	var table bytes.Buffer
	if _, err := WriteTable(&table, t); err != nil {
		return err
	}

	return pageTemplate.Execute(w, PageInput{
		Name:   t.Spot.Name,
		Webcam: template.HTML(t.Spot.Webcam),
		Sun:    sunLine(sun),
		Table:  template.HTML(table.String()),
	})
}

// sunLine formats the window's sun events as a single line, e.g.
// "Sunrise 7:42 AM · Sunset 8:31 PM".
func sunLine(events sunset.SunEvents) string {
	if len(events) == 0 {
		return ""
	}
	parts := make([]string, len(events))
	for i, e := range events {
		parts[i] = fmt.Sprintf("%s %s", e.Event, e.Time.Format(clockFormat))
	}
	return strings.Join(parts, " · ")
}
