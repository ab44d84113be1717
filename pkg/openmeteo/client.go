package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aojeda/surfcast/pkg/spots"
)

const (
	weatherHourly = "windspeed_10m,winddirection_10m,temperature_2m"
	marineHourly  = "wave_height,wave_direction,wave_period"
)

// FetchError reports a failed forecast fetch: which spot, which
// endpoint, and the underlying cause. Any network failure, non-2xx
// status, or undecodable body is a FetchError; there are no retries.
type FetchError struct {
	Spot     string
	Endpoint string // "forecast" or "marine"
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s for %s: %v", e.Endpoint, e.Spot, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client queries the two Open-Meteo endpoints. The URL fields may be
// pointed at a test server.
type Client struct {
	ForecastURL string
	MarineURL   string

	httpClient *http.Client
}

// NewClient returns a Client against the production endpoints.
func NewClient() *Client {
	return &Client{
		ForecastURL: "https://api.open-meteo.com/v1/forecast",
		MarineURL:   "https://marine-api.open-meteo.com/v1/marine",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Weather requests the hourly wind and air temperature forecast for a
// spot, localized to the spot's timezone.
func (c *Client) Weather(ctx context.Context, spot spots.Spot) ([]WeatherSample, error) {
	var result forecastResponse
	if err := c.get(ctx, c.ForecastURL, spot, weatherHourly, &result); err != nil {
		return nil, &FetchError{Spot: spot.Name, Endpoint: "forecast", Err: err}
	}

	h := result.Hourly
	samples := make([]WeatherSample, len(h.Time))
	for i, t := range h.Time {
		samples[i] = WeatherSample{
			Time:          t.T(),
			WindSpeed:     at(h.WindSpeed10M, i),
			WindDirection: at(h.WindDir10M, i),
			AirTemp:       at(h.Temperature2M, i),
		}
	}
	return samples, nil
}

// Marine requests the hourly wave forecast for a spot, localized to
// the spot's timezone.
func (c *Client) Marine(ctx context.Context, spot spots.Spot) ([]MarineSample, error) {
	var result marineResponse
	if err := c.get(ctx, c.MarineURL, spot, marineHourly, &result); err != nil {
		return nil, &FetchError{Spot: spot.Name, Endpoint: "marine", Err: err}
	}

	h := result.Hourly
	samples := make([]MarineSample, len(h.Time))
	for i, t := range h.Time {
		samples[i] = MarineSample{
			Time:          t.T(),
			WaveHeight:    at(h.WaveHeight, i),
			WaveDirection: at(h.WaveDirection, i),
			WavePeriod:    at(h.WavePeriod, i),
		}
	}
	return samples, nil
}

func (c *Client) get(ctx context.Context, base string, spot spots.Spot, hourly string, out interface{}) error {
	addr, err := url.Parse(base)
	if err != nil {
		return err
	}
	addr.RawQuery = query(spot, hourly).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.String(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return err
	}
	return nil
}

func query(spot spots.Spot, hourly string) url.Values {
	vals := make(url.Values)
	vals.Add("latitude", strconv.FormatFloat(spot.Lat, 'f', -1, 64))
	vals.Add("longitude", strconv.FormatFloat(spot.Long, 'f', -1, 64))
	vals.Add("hourly", hourly)
	vals.Add("timezone", "auto")
	return vals
}

// at guards against a value array shorter than the time array.
func at(vals []*float64, i int) *float64 {
	if i >= len(vals) {
		return nil
	}
	return vals[i]
}
