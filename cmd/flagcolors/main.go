// cmd/flagcolors/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/codr1/flagcolors/internal/batch"
	"github.com/codr1/flagcolors/internal/config"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	configPath := flag.String("config", getEnv("FLAGCOLORS_CONFIG", "config/config.yaml"), "path to config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.Logger.WithContext(ctx)

	runner := batch.New(cfg)
	log.Info().Str("run_id", runner.RunID()).Str("dir", cfg.Input.Dir).Msg("Starting flag color classification")

	records, summary, err := runner.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Batch terminated with error")
		os.Exit(1)
	}

	batch.Report(os.Stdout, runner.RunID(), records, summary, cfg.Output.Samples)
}
