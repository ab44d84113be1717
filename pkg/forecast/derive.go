package forecast

import (
	"math"
)

// compassPoints in order; point i covers the 45° sector centered on
// i*45 degrees, so sector boundaries fall on 22.5°, 67.5°, and so on.
var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// arrows point where the flow goes, opposite the compass point it
// comes from.
var arrows = map[string]string{
	"N": "↓", "NE": "↙", "E": "←", "SE": "↖",
	"S": "↑", "SW": "↗", "W": "→", "NW": "↘",
}

// Compass maps a direction in degrees to one of the 8 compass points.
// The mapping is periodic in 360°.
func Compass(deg float64) string {
	ix := int(math.Floor((deg+22.5)/45)) % 8
	if ix < 0 {
		ix += 8
	}
	return compassPoints[ix]
}

// Arrow returns the glyph for a compass point, or "" for anything
// else.
func Arrow(compass string) string {
	return arrows[compass]
}

// WaveEnergy is the sea state energy proxy 125·H²·T in kJ/m², rounded
// to a whole number. Nil when either input is missing.
func WaveEnergy(height, period *float64) *float64 {
	if height == nil || period == nil {
		return nil
	}
	e := math.RoundToEven(125 * *height * *height * *period)
	return &e
}

// WavePowerIndex is the surf quality proxy H·T rounded to two
// decimals. Nil when either input is missing.
func WavePowerIndex(height, period *float64) *float64 {
	if height == nil || period == nil {
		return nil
	}
	p := roundTo(*height**period, 2)
	return &p
}

// derive fills the computed columns of a joined row. Energy and power
// come from the unrounded height and period; the one-decimal rounding
// of the raw columns happens after, so recomputing energy from the
// displayed height and period will not exactly reproduce the energy
// column.
func derive(r *Row) {
	if r.WindDirection != nil {
		r.WindCompass = Compass(*r.WindDirection)
	}
	if r.WaveDirection != nil {
		r.WaveCompass = Compass(*r.WaveDirection)
	}
	r.WindArrow = Arrow(r.WindCompass)
	r.WaveArrow = Arrow(r.WaveCompass)

	r.WaveEnergy = WaveEnergy(r.WaveHeight, r.WavePeriod)
	r.WavePowerIndex = WavePowerIndex(r.WaveHeight, r.WavePeriod)

	r.WindSpeed = round1(r.WindSpeed)
	r.AirTemp = round1(r.AirTemp)
	r.WaveHeight = round1(r.WaveHeight)
	r.WavePeriod = round1(r.WavePeriod)
}

// round1 returns a fresh pointer so the caller's samples stay
// untouched.
func round1(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := roundTo(*v, 1)
	return &r
}

// roundTo rounds halves to the even neighbor: an exactly representable
// tie like a 1.25 m wave height displays as 1.2, not 1.3.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.RoundToEven(v*scale) / scale
}
