package render

import (
	"fmt"
	"math"
	"strings"
)

// CellStyle is the presentational treatment of one table cell. The
// zero value means unstyled.
type CellStyle struct {
	Color      string
	Bold       bool
	Background string
}

// attr renders the style as an inline attribute (with a leading
// space), or "" when unstyled.
func (s CellStyle) attr() string {
	if s == (CellStyle{}) {
		return ""
	}
	var rules []string
	if s.Color != "" {
		rules = append(rules, fmt.Sprintf("color: %s", s.Color))
	}
	if s.Bold {
		rules = append(rules, "font-weight: bold")
	}
	if s.Background != "" {
		rules = append(rules, fmt.Sprintf("background-color: %s", s.Background))
	}
	return fmt.Sprintf(" style=%q", strings.Join(rules, "; "))
}

// ArrowStyle highlights any non-empty arrow glyph.
func ArrowStyle(arrow string) CellStyle {
	if arrow == "" {
		return CellStyle{}
	}
	return CellStyle{Color: "#33cccc", Bold: true}
}

// WaveHeightStyle shades the height cell blue, darker as the sea gets
// bigger. The channel floors out at 20 so the deepest tint is fixed.
func WaveHeightStyle(height *float64) CellStyle {
	if height == nil {
		return CellStyle{}
	}
	c := int(220 - math.Min(200, *height*50))
	return CellStyle{Background: fmt.Sprintf("rgb(%d,%d,255)", c, c)}
}

// WaveEnergyStyle shades the energy cell warm, deeper as the energy
// rises, with the same floor as WaveHeightStyle.
func WaveEnergyStyle(energy *float64) CellStyle {
	if energy == nil {
		return CellStyle{}
	}
	c := int(220 - math.Min(200, *energy/4))
	return CellStyle{Background: fmt.Sprintf("rgb(255,%d,150)", c)}
}
