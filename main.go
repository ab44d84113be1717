// Command surfcast writes the static surf report site: one HTML page
// per spot, under OUTPUT_DIR.
package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/aojeda/surfcast/pkg/openmeteo"
	"github.com/aojeda/surfcast/pkg/site"
	"github.com/aojeda/surfcast/pkg/spots"
)

type Config struct {
	OutputDir string `envconfig:"OUTPUT_DIR" default:"docs"`
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// A .env file is optional and never overrides the environment.
	godotenv.Load()

	var env Config
	if err := envconfig.Process("", &env); err != nil {
		logger.Fatal("failed to read config", zap.Error(err))
	}

	b := &site.Builder{
		Client:    openmeteo.NewClient(),
		OutputDir: env.OutputDir,
		Logger:    logger,
	}

	results, err := b.Build(context.Background(), spots.All)
	if err != nil {
		logger.Fatal("site incomplete", zap.Error(err))
	}
	logger.Info("site complete",
		zap.Int("pages", len(results)),
		zap.String("dir", env.OutputDir))
}
