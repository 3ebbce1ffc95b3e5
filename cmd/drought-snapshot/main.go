// Command drought-snapshot generates the current-conditions drought-risk
// document from the live station feeds: one synthetic day per province,
// no history.
//
// Usage:
//
//	go run ./cmd/drought-snapshot \
//	  -provinces data/provinces.json \
//	  -haii data/haii-stations.json \
//	  -tmd data/tmd-stations.json \
//	  -out out/snapshot.json
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
	"github.com/NonGT/ddpm-tools/internal/feeds"
	"github.com/NonGT/ddpm-tools/internal/observability"
	"github.com/NonGT/ddpm-tools/internal/refdata"
	"github.com/NonGT/ddpm-tools/internal/snapshot"
)

func main() {
	if err := run(); err != nil {
		slog.Error("drought-snapshot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	provincesPath := flag.String("provinces", "", "path to the province reference file")
	haiiPath := flag.String("haii", "", "path to an HAII station feed dump (optional)")
	tmdPath := flag.String("tmd", "", "path to a TMD station feed dump (optional)")
	outPath := flag.String("out", "", "output file path")
	flag.Parse()

	if *provincesPath == "" || *outPath == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -provinces, -out")
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

	provinces, err := refdata.LoadProvinceInfos(*provincesPath)
	if err != nil {
		return err
	}

	var stationLists [][]*domain.Station
	if *haiiPath != "" {
		haii, err := refdata.LoadHAIIStations(*haiiPath)
		if err != nil {
			return err
		}
		stationLists = append(stationLists, haii)
		logger.Info("haii stations loaded", "count", len(haii))
	}
	if *tmdPath != "" {
		tmd, err := refdata.LoadTMDStations(*tmdPath)
		if err != nil {
			return err
		}
		stationLists = append(stationLists, tmd)
		logger.Info("tmd stations loaded", "count", len(tmd))
	}
	stationsByProvince := feeds.MergeByProvince(stationLists...)

	seed := cfg.Seed
	if seed == 0 {
		seed = domain.Now().UnixNano()
	}
	src := domain.NewSource(seed)

	logger.Info("snapshot generation starting",
		"provinces", len(provinces),
		"mode", mode,
		"seed", seed,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.JobRunning.Set(1)
	defer metrics.JobRunning.Set(0)
	start := time.Now()

	generator := snapshot.New(src, mode, logger, metrics)
	doc := generator.Generate(provinces, stationsByProvince)

	writer := refdata.NewWriter("", logger, metrics)
	if err := writer.WriteSnapshot(*outPath, doc); err != nil {
		return err
	}

	if cfg.KafkaEnabled {
		publisher := kafkaadapter.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger, metrics)
		defer publisher.Close()
		if err := publisher.PublishSummary(ctx, "snapshot", doc); err != nil {
			return err
		}
	}

	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	logger.Info("snapshot generation complete",
		"provinces", len(doc.Provinces),
		"duration", time.Since(start),
	)
	return nil
}
