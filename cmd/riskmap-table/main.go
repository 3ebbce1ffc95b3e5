// Command riskmap-table converts the landslide risk-value grid and its
// loss companion into a georeferenced CSV table for the map viewer.
//
// Usage:
//
//	go run ./cmd/riskmap-table \
//	  -in data/landslide-risk.json \
//	  -lin data/landslide-loss.json \
//	  -out out/
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/NonGT/ddpm-tools/internal/config"
	"github.com/NonGT/ddpm-tools/internal/observability"
	"github.com/NonGT/ddpm-tools/internal/refdata"
	"github.com/NonGT/ddpm-tools/internal/riskmap"
)

func main() {
	if err := run(); err != nil {
		slog.Error("riskmap-table failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	inPath := flag.String("in", "", "path to the risk-value grid")
	lossPath := flag.String("lin", "", "path to the loss grid")
	outDir := flag.String("out", "", "output directory")
	flag.Parse()

	if *inPath == "" || *lossPath == "" || *outDir == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -in, -lin, -out")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)

	values, err := refdata.LoadGrid(*inPath)
	if err != nil {
		return err
	}
	loss, err := refdata.LoadGrid(*lossPath)
	if err != nil {
		return err
	}

	cells, err := riskmap.BuildTable(values, loss)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	outPath := filepath.Join(*outDir, "riskmap-table.csv")
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	if err := riskmap.WriteCSV(f, cells); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outPath, err)
	}

	logger.Info("risk map table written", "path", outPath, "cells", len(cells))
	return nil
}
