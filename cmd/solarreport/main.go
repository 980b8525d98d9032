package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ibrahimmudassar/SolarCalculate/internal/adapters/discord"
	"github.com/ibrahimmudassar/SolarCalculate/internal/adapters/sunapi"
	"github.com/ibrahimmudassar/SolarCalculate/internal/chart"
	"github.com/ibrahimmudassar/SolarCalculate/internal/config"
	"github.com/ibrahimmudassar/SolarCalculate/internal/exitcode"
	"github.com/ibrahimmudassar/SolarCalculate/internal/model"
	"github.com/ibrahimmudassar/SolarCalculate/internal/report"
	"github.com/ibrahimmudassar/SolarCalculate/internal/storage"
)

func main() {
	// Configure the global logger
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))

	// Parse CLI flags
	dateStr := flag.String("date", time.Now().Format("2006-01-02"), "Date for the report (YYYY-MM-DD)")
	runIDStr := flag.String("run-id", "", "Run identifier (UUID from the scheduler, generated when empty)")
	flag.Parse()

	date, err := time.Parse("2006-01-02", *dateStr)
	if err != nil {
		slog.Error("invalid date format", "date", *dateStr, "error", err)
		fmt.Fprintf(os.Stderr, "Usage: date must be in YYYY-MM-DD format\n")
		os.Exit(exitcode.ConfigError)
	}

	runID := model.RunID(*runIDStr)
	if runID == "" {
		runID = model.NewRunID()
	} else if err := runID.Validate(); err != nil {
		slog.Error("invalid run-id", "error", err)
		fmt.Fprintf(os.Stderr, "Usage: run-id must be a UUID\n")
		os.Exit(exitcode.ConfigError)
	}

	// Ensure environment variables are loaded
	if err := godotenv.Load(); err != nil {
		slog.Warn("failed to load env vars", "error", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(exitcode.ConfigError)
	}

	// Create a cancellable context so the scheduler can kill an overrunning job
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize the optional artifact archive
	var archive report.ObjectStorage
	if cfg.Archive != nil {
		minioClient, err := storage.NewMinIOClient(ctx, *cfg.Archive)
		if err != nil {
			slog.Error("failed to initialize archive client", "error", err)
			os.Exit(exitcode.ConfigError)
		}
		archive = minioClient
	}

	svc := report.NewService(
		sunapi.NewClient(""),
		chart.NewRenderer(),
		discord.NewClient(),
		archive,
		cfg.Timezone,
	)

	req := report.Request{
		Latitude:  cfg.Latitude,
		Longitude: cfg.Longitude,
		Date:      date,
		Webhooks:  cfg.Webhooks,
	}

	if err := svc.Run(ctx, req, runID); err != nil {
		slog.Error("report failed", "error", err, "run_id", runID)
		os.Exit(exitCodeFor(err))
	}

	slog.Info("run complete", "run_id", runID)
}

// exitCodeFor maps a pipeline failure to the scheduler-facing exit code.
func exitCodeFor(err error) int {
	var stageErr *report.StageError
	if !errors.As(err, &stageErr) {
		return exitcode.DataError
	}
	switch stageErr.Stage {
	case report.StageConfig:
		return exitcode.ConfigError
	case report.StageFetch:
		var apiErr *sunapi.APIError
		var dataErr *sunapi.DataError
		switch {
		case errors.As(err, &apiErr):
			return exitcode.APIError
		case errors.As(err, &dataErr):
			return exitcode.DataError
		default:
			return exitcode.NetworkError
		}
	case report.StageDerive, report.StageRender:
		return exitcode.DataError
	case report.StageNotify:
		return exitcode.NotifyError
	case report.StageArchive:
		return exitcode.StorageError
	}
	return exitcode.DataError
}
