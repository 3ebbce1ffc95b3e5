// Command elevation-resolve resolves ground elevations for the HAII
// telemetry stations through the Google Elevation API, reusing results
// from a previous run where available. The job can run for a while on a
// large station list, so it exposes health and metrics endpoints.
//
// Usage:
//
//	GOOGLE_API_KEY=... go run ./cmd/elevation-resolve \
//	  -stations data/haii-stations.json \
//	  -existing data/station-elevations.json \
//	  -out data/station-elevations.json
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/NonGT/ddpm-tools/internal/adapter/googlemaps"
	httpadapter "github.com/NonGT/ddpm-tools/internal/adapter/http"
	"github.com/NonGT/ddpm-tools/internal/config"
	"github.com/NonGT/ddpm-tools/internal/domain"
	"github.com/NonGT/ddpm-tools/internal/observability"
	"github.com/NonGT/ddpm-tools/internal/refdata"
)

func main() {
	if err := run(); err != nil {
		slog.Error("elevation-resolve failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	stationsPath := flag.String("stations", "", "path to an HAII station feed dump")
	existingPath := flag.String("existing", "", "path to a previous run's output (optional)")
	outPath := flag.String("out", "", "output file path")
	flag.Parse()

	if *stationsPath == "" || *outPath == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -stations, -out")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.GoogleAPIKey == "" {
		return errors.New("GOOGLE_API_KEY is required")
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	stations, err := refdata.LoadHAIIStations(*stationsPath)
	if err != nil {
		return err
	}

	var prior []domain.StationElevation
	if *existingPath != "" {
		prior, err = refdata.LoadElevations(*existingPath)
		if err != nil {
			return err
		}
		logger.Info("prior elevations loaded", "count", len(prior))
	}

	var loaded atomic.Bool
	loaded.Store(true)
	ready := httpadapter.ReadyFunc(func(_ context.Context) error {
		if !loaded.Load() {
			return errors.New("reference data still loading")
		}
		return nil
	})
	srv := httpadapter.NewServer(cfg.HTTPAddr, "elevation-resolve", ready, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	metrics.JobRunning.Set(1)
	start := time.Now()
	logger.Info("elevation resolution starting", "stations", len(stations))

	client := googlemaps.NewClient(cfg.GoogleAPIKey, cfg.GoogleTimeout, logger, metrics)
	resolver := googlemaps.NewResolver(client, prior, logger, metrics)

	resolved, resolveErr := resolver.Resolve(ctx, stations)
	metrics.JobRunning.Set(0)

	// Write what was resolved even on a partial run, so the next run can
	// pick up where this one stopped.
	if len(resolved) > 0 {
		if err := refdata.WriteElevations(*outPath, resolved); err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	if resolveErr != nil {
		return fmt.Errorf("resolution interrupted after %d stations: %w", len(resolved), resolveErr)
	}

	logger.Info("elevation resolution complete",
		"stations", len(resolved),
		"duration", time.Since(start),
	)
	return nil
}
