package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/aojeda/surfcast/pkg/forecast"
	"github.com/aojeda/surfcast/pkg/openmeteo"
)

// testServer stands up the full route set against canned forecast
// data, serving pages out of outputDir.
func testServer(t *testing.T, outputDir string) *httptest.Server {
	t.Helper()
	hour := time.Now().Add(time.Hour).Format("2006-01-02T15:04")

	forecastSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"hourly": {"time": [%q], "windspeed_10m": [4.0], "winddirection_10m": [0], "temperature_2m": [21.5]}}`, hour)
	}))
	t.Cleanup(forecastSrv.Close)

	marineSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"hourly": {"time": [%q], "wave_height": [1.2], "wave_direction": [180], "wave_period": [7.0]}}`, hour)
	}))
	t.Cleanup(marineSrv.Close)

	client := openmeteo.NewClient()
	client.ForecastURL = forecastSrv.URL
	client.MarineURL = marineSrv.URL

	r := mux.NewRouter().StrictSlash(true)
	Register(r, "/", client, outputDir, zap.NewNop())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestServeForecast(t *testing.T) {
	srv := testServer(t, t.TempDir())

	resp, err := http.Get(srv.URL + "/api/v1/forecast/telde")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, wanted 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("got content type %q, wanted application/json", got)
	}

	var rows []forecast.Row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, wanted 1", len(rows))
	}
	if rows[0].WaveEnergy == nil || *rows[0].WaveEnergy != 1260 {
		t.Errorf("got energy %v, wanted 1260", rows[0].WaveEnergy)
	}
	if rows[0].WindArrow != "↓" {
		t.Errorf("got wind arrow %q, wanted %q", rows[0].WindArrow, "↓")
	}
}

func TestServeForecastUnknownSpot(t *testing.T) {
	srv := testServer(t, t.TempDir())

	resp, err := http.Get(srv.URL + "/api/v1/forecast/nowhere")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("got status %d, wanted 404", resp.StatusCode)
	}
}

func TestIndex(t *testing.T) {
	srv := testServer(t, t.TempDir())

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, wanted 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}

	page := string(body)
	for _, want := range []string{
		`<a href="reports/las_palmas.html">Las Palmas</a>`,
		`<a href="reports/telde.html">Telde</a>`,
		`<a href="reports/arguineguin.html">Arguineguín</a>`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("index is missing %q:\n%s", want, page)
		}
	}
}

func TestReports(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "telde.html"), []byte("<html>telde page</html>"), 0644); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	srv := testServer(t, dir)

	resp, err := http.Get(srv.URL + "/reports/telde.html")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, wanted 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if !strings.Contains(string(body), "telde page") {
		t.Errorf("got %q, wanted the stored page", body)
	}
}
