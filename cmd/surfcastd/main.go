// Command surfcastd serves the report site and rebuilds it on a
// schedule.
package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aojeda/surfcast/pkg/handlers"
	"github.com/aojeda/surfcast/pkg/metrics"
	"github.com/aojeda/surfcast/pkg/openmeteo"
	"github.com/aojeda/surfcast/pkg/site"
	"github.com/aojeda/surfcast/pkg/spots"
)

type Config struct {
	Port      string `default:"8080"`
	Prefix    string `default:"/"`
	OutputDir string `envconfig:"OUTPUT_DIR" default:"docs"`
	Rebuild   string `default:"@hourly"`
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	godotenv.Load()

	var env Config
	if err := envconfig.Process("", &env); err != nil {
		logger.Fatal("failed to read config", zap.Error(err))
	}

	builder := &site.Builder{
		Client:    openmeteo.NewClient(),
		OutputDir: env.OutputDir,
		Logger:    logger,
	}
	rebuild := func() {
		if _, err := builder.Build(context.Background(), spots.All); err != nil {
			logger.Error("rebuild left gaps", zap.Error(err))
		}
	}

	// Serve a complete site from the first request.
	rebuild()

	c := cron.New()
	if _, err := c.AddFunc(env.Rebuild, rebuild); err != nil {
		logger.Fatal("bad rebuild schedule",
			zap.String("schedule", env.Rebuild),
			zap.Error(err))
	}
	c.Start()
	defer c.Stop()

	r := mux.NewRouter().StrictSlash(true)
	r.Use(metrics.LatencyHandler)
	r.Handle("/metrics", promhttp.Handler())
	s := r.PathPrefix(env.Prefix).Subrouter()
	handlers.Register(s, env.Prefix, builder.Client, env.OutputDir, logger)

	srv := &http.Server{
		Handler:      r,
		Addr:         "0.0.0.0:" + env.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	logger.Info("listening and serving",
		zap.String("addr", srv.Addr),
		zap.String("prefix", env.Prefix))
	logger.Fatal("server exited", zap.Error(srv.ListenAndServe()))
}
