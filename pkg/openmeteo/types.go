package openmeteo

import (
	"encoding/json"
	"fmt"
	"time"
)

// hourlyTimeFormat is how Open-Meteo stamps hourly values when asked
// for timezone=auto: wall clock local to the queried coordinates, no
// zone suffix.
const hourlyTimeFormat = "2006-01-02T15:04"

// Time wraps time.Time to parse Open-Meteo's zoneless hourly stamps.
type Time time.Time

// Verify the custom type can be unmarshaled.
var _ json.Unmarshaler = &Time{}

func (t *Time) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("hourly time %q not string: %w", buf, err)
	}
	parsed, err := time.ParseInLocation(hourlyTimeFormat, s, time.Local)
	if err != nil {
		return fmt.Errorf("hourly time %q not in fmt %q: %w", s, hourlyTimeFormat, err)
	}
	*t = Time(parsed)
	return nil
}

func (t Time) T() time.Time {
	return time.Time(t)
}

// WeatherSample is one hour of atmospheric forecast.
type WeatherSample struct {
	Time          time.Time
	WindSpeed     *float64 // m/s
	WindDirection *float64 // degrees the wind comes from
	AirTemp       *float64 // °C
}

// MarineSample is one hour of sea state forecast.
type MarineSample struct {
	Time          time.Time
	WaveHeight    *float64 // m
	WaveDirection *float64 // degrees the swell comes from
	WavePeriod    *float64 // s
}

// forecastResponse mirrors the forecast endpoint's JSON. The hourly
// block holds parallel arrays indexed by hour; value arrays carry
// null where the model has no data.
type forecastResponse struct {
	Hourly struct {
		Time          []Time     `json:"time"`
		WindSpeed10M  []*float64 `json:"windspeed_10m"`
		WindDir10M    []*float64 `json:"winddirection_10m"`
		Temperature2M []*float64 `json:"temperature_2m"`
	} `json:"hourly"`
}

// marineResponse mirrors the marine endpoint's JSON.
type marineResponse struct {
	Hourly struct {
		Time          []Time     `json:"time"`
		WaveHeight    []*float64 `json:"wave_height"`
		WaveDirection []*float64 `json:"wave_direction"`
		WavePeriod    []*float64 `json:"wave_period"`
	} `json:"hourly"`
}

func (s WeatherSample) String() string {
	return fmt.Sprintf("{t: %s, wind: %s m/s from %s°, air: %s °C}",
		s.Time.Format(time.RFC822),
		fstr(s.WindSpeed), fstr(s.WindDirection), fstr(s.AirTemp))
}

func (s MarineSample) String() string {
	return fmt.Sprintf("{t: %s, wave: %s m from %s°, period: %s s}",
		s.Time.Format(time.RFC822),
		fstr(s.WaveHeight), fstr(s.WaveDirection), fstr(s.WavePeriod))
}

func fstr(v *float64) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%g", *v)
}
