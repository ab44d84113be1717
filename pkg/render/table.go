package render

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aojeda/surfcast/pkg/forecast"
	"github.com/aojeda/surfcast/pkg/timetricks"
)

const clockFormat = "3:04 PM"

// columns holds the report headers, in display order.
var columns = []string{
	"time",
	"Wind Speed (m/s)",
	"Wind Arrow",
	"Air Temp (°C)",
	"Wave Height (m)",
	"Wave Arrow",
	"Wave Period (s)",
	"Wave Power Index",
	"Wave Energy (kJ/m²)",
}

// WriteTable emits the forecast as an HTML <table> fragment; the
// caller provides the surrounding document. A table with no rows
// still gets its header.
func WriteTable(w io.Writer, t forecast.Table) (int, error) {
	var n int
	var err error
	out := func(nextn int, nexterr error) {
		n += nextn
		if nexterr != nil {
			err = nexterr
		}
	}

	out(fmt.Fprintf(w, "<table>\n<thead>\n<tr>"))
	for _, col := range columns {
		out(fmt.Fprintf(w, "<th>%s</th>", template.HTMLEscapeString(col)))
	}
	out(fmt.Fprintf(w, "</tr>\n</thead>\n<tbody>\n"))

	for _, row := range t.Rows {
		out(fmt.Fprintf(w, "<tr>"))
		out(cell(w, clock(row.Time), CellStyle{}))
		out(cell(w, num1(row.WindSpeed), CellStyle{}))
		out(cell(w, row.WindArrow, ArrowStyle(row.WindArrow)))
		out(cell(w, num1(row.AirTemp), CellStyle{}))
		out(cell(w, num1(row.WaveHeight), WaveHeightStyle(row.WaveHeight)))
		out(cell(w, row.WaveArrow, ArrowStyle(row.WaveArrow)))
		out(cell(w, num1(row.WavePeriod), CellStyle{}))
		out(cell(w, numShort(row.WavePowerIndex), CellStyle{}))
		out(cell(w, num0(row.WaveEnergy), WaveEnergyStyle(row.WaveEnergy)))
		out(fmt.Fprintf(w, "</tr>\n"))
	}

	out(fmt.Fprintf(w, "</tbody>\n</table>"))
	return n, err
}

func cell(w io.Writer, text string, style CellStyle) (int, error) {
	return fmt.Fprintf(w, "<td%s>%s</td>", style.attr(), template.HTMLEscapeString(text))
}

// clock names the row's hour relative to the present, e.g.
// "Today 3:00 PM".
func clock(t time.Time) string {
	return fmt.Sprintf("%s %s", timetricks.Day(t), t.Format(clockFormat))
}

// num1 formats to one decimal; a missing value is an empty cell.
func num1(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

// num0 formats to a whole number.
func num0(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 0, 64)
}

// numShort formats with the fewest digits that survive a round trip,
// but always at least one decimal: 8.4, 12.0, 8.17.
func numShort(v *float64) string {
	if v == nil {
		return ""
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
