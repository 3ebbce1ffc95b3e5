// Command drought-history generates the rolling drought-risk history: one
// day series per province and per station over the configured window,
// plus the overall summary document.
//
// Usage:
//
//	go run ./cmd/drought-history \
//	  -provinces data/provinces.json \
//	  -elevation data/station-elevations.json \
//	  -out out/
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	kafkaadapter "github.com/NonGT/ddpm-tools/internal/adapter/kafka"
	"github.com/NonGT/ddpm-tools/internal/config"
	"github.com/NonGT/ddpm-tools/internal/domain"
	"github.com/NonGT/ddpm-tools/internal/history"
	"github.com/NonGT/ddpm-tools/internal/observability"
	"github.com/NonGT/ddpm-tools/internal/refdata"
)

func main() {
	if err := run(); err != nil {
		slog.Error("drought-history failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	provincesPath := flag.String("provinces", "", "path to the province reference file")
	elevationPath := flag.String("elevation", "", "path to the station-elevations file")
	outDir := flag.String("out", "", "output directory")
	days := flag.Int("days", 0, "history window in days (default from HISTORY_DAYS)")
	flag.Parse()

	if *provincesPath == "" || *elevationPath == "" || *outDir == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -provinces, -elevation, -out")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	mode, err := domain.ParseScoringMode(cfg.Mode)
	if err != nil {
		return err
	}

	provinces, err := refdata.LoadProvinces(*provincesPath)
	if err != nil {
		return err
	}
	elevations, err := refdata.LoadElevations(*elevationPath)
	if err != nil {
		return err
	}

	windowDays := cfg.HistoryDays
	if *days > 0 {
		windowDays = *days
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = domain.Now().UnixNano()
	}
	src := domain.NewSource(seed)

	logger.Info("history generation starting",
		"provinces", len(provinces),
		"days", windowDays,
		"mode", mode,
		"seed", seed,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.JobRunning.Set(1)
	defer metrics.JobRunning.Set(0)
	start := time.Now()

	scorer := &domain.StationScorer{
		Rand:       src,
		Elevations: domain.ElevationLookup(elevations),
		Mode:       mode,
	}
	aggregator := &domain.ProvinceAggregator{Rand: src, Mode: mode}

	driver := history.New(scorer, aggregator, windowDays, logger, metrics)
	result := driver.Run(provinces)

	writer := refdata.NewWriter(*outDir, logger, metrics)
	for _, h := range result.Provinces {
		if err := writer.WriteProvinceHistory(h); err != nil {
			return err
		}
	}
	for _, h := range result.Stations {
		if err := writer.WriteStationHistory(h); err != nil {
			return err
		}
	}
	if err := writer.WriteSummary(result.Summary); err != nil {
		return err
	}

	if cfg.KafkaEnabled {
		publisher := kafkaadapter.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger, metrics)
		defer publisher.Close()
		if err := publisher.PublishSummary(ctx, "summary", result.Summary); err != nil {
			return err
		}
	}

	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	logger.Info("history generation complete",
		"provinces", len(result.Provinces),
		"stations", len(result.Stations),
		"duration", time.Since(start),
	)
	return nil
}
