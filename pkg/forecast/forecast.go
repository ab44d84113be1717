// Package forecast joins hourly weather and marine samples into the
// derived per-spot forecast table.
package forecast

import (
	"sort"
	"time"

	"github.com/aojeda/surfcast/pkg/openmeteo"
	"github.com/aojeda/surfcast/pkg/spots"
)

// Window is how far past now a report looks.
const Window = 24 * time.Hour

// Row is one joined hour of forecast. Pointer fields are nil when the
// upstream source had no value for that hour; derived fields that
// depend on a nil input are nil or empty.
type Row struct {
	Time time.Time `json:"time"`

	WindSpeed     *float64 `json:"wind_speed,omitempty"`
	WindDirection *float64 `json:"wind_direction,omitempty"`
	AirTemp       *float64 `json:"air_temp,omitempty"`

	WaveHeight    *float64 `json:"wave_height,omitempty"`
	WaveDirection *float64 `json:"wave_direction,omitempty"`
	WavePeriod    *float64 `json:"wave_period,omitempty"`

	WindCompass string `json:"wind_compass,omitempty"`
	WaveCompass string `json:"wave_compass,omitempty"`
	WindArrow   string `json:"wind_arrow,omitempty"`
	WaveArrow   string `json:"wave_arrow,omitempty"`

	WaveEnergy     *float64 `json:"wave_energy,omitempty"`      // kJ/m²
	WavePowerIndex *float64 `json:"wave_power_index,omitempty"` // m·s
}

// Table is the ordered forecast for one spot: rows ascending and
// unique by time, all within [now, now+Window) of the instant it was
// built for.
type Table struct {
	Spot spots.Spot
	Rows []Row
}

// Build restricts both sample sets to [now, now+Window), outer joins
// them on exact timestamp equality, and derives the report metrics.
// A sample at exactly now is in; one at exactly now+Window is out.
// Hours present on only one side carry nil fields from the other; if
// nothing lands in the window the table is empty. Never an error.
func Build(spot spots.Spot, weather []openmeteo.WeatherSample, marine []openmeteo.MarineSample, now time.Time) Table {
	cutoff := now.Add(Window)
	inWindow := func(t time.Time) bool {
		return !t.Before(now) && t.Before(cutoff)
	}

	rows := make(map[int64]*Row)
	rowAt := func(t time.Time) *Row {
		if r, ok := rows[t.Unix()]; ok {
			return r
		}
		r := &Row{Time: t}
		rows[t.Unix()] = r
		return r
	}

	for _, w := range weather {
		if !inWindow(w.Time) {
			continue
		}
		r := rowAt(w.Time)
		r.WindSpeed = w.WindSpeed
		r.WindDirection = w.WindDirection
		r.AirTemp = w.AirTemp
	}
	for _, m := range marine {
		if !inWindow(m.Time) {
			continue
		}
		r := rowAt(m.Time)
		r.WaveHeight = m.WaveHeight
		r.WaveDirection = m.WaveDirection
		r.WavePeriod = m.WavePeriod
	}

	joined := make([]Row, 0, len(rows))
	for _, r := range rows {
		derive(r)
		joined = append(joined, *r)
	}
	sort.Slice(joined, func(i, j int) bool {
		return joined[i].Time.Before(joined[j].Time)
	})

	return Table{Spot: spot, Rows: joined}
}
