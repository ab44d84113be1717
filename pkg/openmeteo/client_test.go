package openmeteo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/aojeda/surfcast/pkg/spots"
)

var testSpot = spots.Spot{Name: "Telde", Lat: 27.9924, Long: -15.4192}

func ptr[T any](t T) *T {
	return &t
}

func TestWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if got := query.Get("latitude"); got != "27.9924" {
			t.Errorf("latitude param = %s, want 27.9924", got)
		}
		if got := query.Get("longitude"); got != "-15.4192" {
			t.Errorf("longitude param = %s, want -15.4192", got)
		}
		if got := query.Get("hourly"); got != "windspeed_10m,winddirection_10m,temperature_2m" {
			t.Errorf("hourly param = %s, unexpected value", got)
		}
		if got := query.Get("timezone"); got != "auto" {
			t.Errorf("timezone param = %s, want auto", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hourly":{
			"time":["2023-08-21T15:00","2023-08-21T16:00","2023-08-21T17:00"],
			"windspeed_10m":[5.0,null,6.2],
			"winddirection_10m":[10,350,null],
			"temperature_2m":[22.3,22.0]
		}}`))
	}))
	defer server.Close()

	c := NewClient()
	c.ForecastURL = server.URL

	got, err := c.Weather(context.Background(), testSpot)
	if err != nil {
		t.Fatalf("Weather() error = %v", err)
	}

	want := []WeatherSample{{
		Time:          time.Date(2023, time.August, 21, 15, 0, 0, 0, time.Local),
		WindSpeed:     ptr(5.0),
		WindDirection: ptr(10.0),
		AirTemp:       ptr(22.3),
	}, {
		Time:          time.Date(2023, time.August, 21, 16, 0, 0, 0, time.Local),
		WindSpeed:     nil,
		WindDirection: ptr(350.0),
		AirTemp:       ptr(22.0),
	}, {
		// The temperature array ran short of the time array.
		Time:          time.Date(2023, time.August, 21, 17, 0, 0, 0, time.Local),
		WindSpeed:     ptr(6.2),
		WindDirection: nil,
		AirTemp:       nil,
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("incorrect samples (-want,+got):\n%s", diff)
	}
}

func TestMarine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("hourly"); got != "wave_height,wave_direction,wave_period" {
			t.Errorf("hourly param = %s, unexpected value", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hourly":{
			"time":["2023-08-21T15:00"],
			"wave_height":[1.2],
			"wave_direction":[190],
			"wave_period":[7.0]
		}}`))
	}))
	defer server.Close()

	c := NewClient()
	c.MarineURL = server.URL

	got, err := c.Marine(context.Background(), testSpot)
	if err != nil {
		t.Fatalf("Marine() error = %v", err)
	}

	want := []MarineSample{{
		Time:          time.Date(2023, time.August, 21, 15, 0, 0, 0, time.Local),
		WaveHeight:    ptr(1.2),
		WaveDirection: ptr(190.0),
		WavePeriod:    ptr(7.0),
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("incorrect samples (-want,+got):\n%s", diff)
	}
}

func TestFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient()
	c.ForecastURL = server.URL
	c.MarineURL = server.URL

	_, err := c.Weather(context.Background(), testSpot)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Weather() error = %v, want a FetchError", err)
	}
	if fetchErr.Spot != "Telde" || fetchErr.Endpoint != "forecast" {
		t.Errorf("FetchError names %s/%s, want Telde/forecast", fetchErr.Spot, fetchErr.Endpoint)
	}

	_, err = c.Marine(context.Background(), testSpot)
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Marine() error = %v, want a FetchError", err)
	}
	if fetchErr.Endpoint != "marine" {
		t.Errorf("FetchError endpoint = %s, want marine", fetchErr.Endpoint)
	}
}

func TestFetchErrorBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hourly":`))
	}))
	defer server.Close()

	c := NewClient()
	c.ForecastURL = server.URL

	_, err := c.Weather(context.Background(), testSpot)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Weather() error = %v, want a FetchError", err)
	}
}
