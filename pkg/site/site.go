// Package site builds the static report site, one HTML page per spot.
package site

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/aojeda/surfcast/pkg/forecast"
	"github.com/aojeda/surfcast/pkg/metrics"
	"github.com/aojeda/surfcast/pkg/openmeteo"
	"github.com/aojeda/surfcast/pkg/render"
	"github.com/aojeda/surfcast/pkg/spots"
	"github.com/aojeda/surfcast/pkg/sunset"
)

// WriteError reports a rendered page that could not land on disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Result is the outcome for one spot. Path is set once the page is on
// disk; Err is nil on success.
type Result struct {
	Spot spots.Spot
	Path string
	Err  error
}

// Builder fetches forecasts and writes report pages under OutputDir.
type Builder struct {
	Client    *openmeteo.Client
	OutputDir string
	Logger    *zap.Logger
}

// Build writes one page per spot, creating OutputDir first. A spot
// that fails does not stop the others; the returned error aggregates
// every failure. Results come back in input order, one per spot.
func (b *Builder) Build(ctx context.Context, all []spots.Spot) ([]Result, error) {
	if err := os.MkdirAll(b.OutputDir, 0755); err != nil {
		return nil, err
	}

	var errs error
	results := make([]Result, 0, len(all))
	for _, sp := range all {
		res := b.buildOne(ctx, sp)
		if res.Err != nil {
			errs = multierror.Append(errs, res.Err)
			b.Logger.Error("failed to build page",
				zap.String("spot", sp.Name),
				zap.Error(res.Err))
		} else {
			b.Logger.Info("wrote page",
				zap.String("spot", sp.Name),
				zap.String("path", res.Path))
		}
		results = append(results, res)
	}
	return results, errs
}

// buildOne runs the full pipeline for a single spot: both fetches,
// the join, sun events, render, write.
func (b *Builder) buildOne(ctx context.Context, sp spots.Spot) Result {
	res := Result{Spot: sp}

	weather, err := b.Client.Weather(ctx, sp)
	if err != nil {
		res.Err = err
		return res
	}
	marine, err := b.Client.Marine(ctx, sp)
	if err != nil {
		res.Err = err
		return res
	}

	now := time.Now()
	table := forecast.Build(sp, weather, marine, now)
	sun := sunset.GetSunEvents(now.In(sp.TZ), forecast.Window, sunset.Place{
		Lat:      sp.Lat,
		Long:     sp.Long,
		Location: sp.TZ,
	})

	var page bytes.Buffer
	if err := render.Page(&page, table, sun); err != nil {
		res.Err = err
		return res
	}

	res.Path = filepath.Join(b.OutputDir, spots.Slug(sp.Name)+".html")
	if err := writePage(res.Path, page.Bytes()); err != nil {
		res.Err = &WriteError{Path: res.Path, Err: err}
		return res
	}

	metrics.ObservePageWritten(sp.Name)
	return res
}

// writePage lands data at path through a rename. The preview server
// keeps serving pages while a rebuild replaces them, so the swap has
// to be atomic or a reader can catch a half-written file.
func writePage(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
