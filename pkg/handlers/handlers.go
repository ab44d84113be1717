// Package handlers wires the preview server's routes: an index of
// spots, a JSON forecast API, and the generated report pages.
package handlers

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/aojeda/surfcast/pkg/cache"
	"github.com/aojeda/surfcast/pkg/forecast"
	"github.com/aojeda/surfcast/pkg/openmeteo"
	"github.com/aojeda/surfcast/pkg/spots"
)

// cacheTTL stays well under the hourly forecast cadence so clients
// never sit on a stale hour for long.
const cacheTTL = 20 * time.Minute

//go:embed static/index.template.html
var content embed.FS

var indexTemplate = template.Must(template.ParseFS(content, "static/index.template.html"))

// Register attaches every route to r. The reports directory is served
// as-is; prefix is the mount point needed to strip it correctly.
func Register(r *mux.Router, prefix string, client *openmeteo.Client, outputDir string, logger *zap.Logger) {
	r.Handle("/", makeIndexHandler(logger))
	r.Handle("/api/v1/forecast/{spot}", makeServeForecast(client, logger))
	r.PathPrefix("/reports/").Handler(http.StripPrefix(
		path.Join(prefix, "reports"),
		http.FileServer(http.Dir(outputDir))))
}

type indexSpot struct {
	Name string
	Href string
}

// makeIndexHandler lists every spot with a relative link to its page,
// so the index works no matter where it is mounted.
func makeIndexHandler(logger *zap.Logger) http.Handler {
	entries := make([]indexSpot, 0, len(spots.All))
	for _, sp := range spots.All {
		entries = append(entries, indexSpot{
			Name: sp.Name,
			Href: path.Join("reports", spots.Slug(sp.Name)+".html"),
		})
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "text/html")
		if err := indexTemplate.Execute(w, entries); err != nil {
			logger.Error("failed to execute index template", zap.Error(err))
		}
	})
}

// makeServeForecast serves a spot's joined forecast as JSON, cached
// per URL.
func makeServeForecast(client *openmeteo.Client, logger *zap.Logger) http.Handler {
	timeCache := cache.NewTimed(cacheTTL)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sp, ok := spots.BySlug(mux.Vars(r)["spot"])
		if !ok {
			http.NotFound(w, r)
			return
		}

		// cache based on method and URL, which should encapsulate the query
		key := fmt.Sprintf("%s %s", r.Method, r.URL)

		// serve cached version from memory if possible
		if cached, ok := timeCache.Get(key); ok {
			w.Header().Add("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}

		table, err := fetchForecast(r.Context(), client, sp)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintf(w, "Failed to get data: %+v", err)
			logger.Error("failed to fetch forecast",
				zap.String("spot", sp.Name),
				zap.Error(err))
			return
		}

		// duplicate the http response onto a buffer for the cache
		var toCache bytes.Buffer
		mw := io.MultiWriter(w, &toCache)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(mw).Encode(table.Rows); err != nil {
			logger.Error("failed to encode forecast", zap.Error(err))
			return
		}

		// save the result asynchronously as the cache may block
		go func() {
			timeCache.Set(key, toCache.Bytes())
		}()
	})
}

func fetchForecast(ctx context.Context, client *openmeteo.Client, sp spots.Spot) (forecast.Table, error) {
	weather, err := client.Weather(ctx, sp)
	if err != nil {
		return forecast.Table{}, err
	}
	marine, err := client.Marine(ctx, sp)
	if err != nil {
		return forecast.Table{}, err
	}
	return forecast.Build(sp, weather, marine, time.Now()), nil
}
