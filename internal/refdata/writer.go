package refdata

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/NonGT/ddpm-tools/internal/domain"
	"github.com/NonGT/ddpm-tools/internal/observability"
)

// Writer persists generated documents under a single output directory,
// mirroring the layout the downstream map viewer expects:
//
//	<out>/provinces/<provinceCode>.json
//	<out>/stations/<stationID>.json
//	<out>/summary.json
type Writer struct {
	outDir  string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewWriter creates a Writer rooted at outDir.
func NewWriter(outDir string, logger *slog.Logger, metrics *observability.Metrics) *Writer {
	return &Writer{outDir: outDir, logger: logger, metrics: metrics}
}

func (w *Writer) writeJSON(path, kind string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	w.metrics.DocumentsWritten.WithLabelValues(kind).Inc()
	w.logger.Debug("document written", "path", path, "kind", kind)
	return nil
}

// WriteProvinceHistory writes one province's day series.
func (w *Writer) WriteProvinceHistory(h domain.ProvinceHistory) error {
	path := filepath.Join(w.outDir, "provinces", h.ProvinceCode+".json")
	return w.writeJSON(path, "province", h)
}

// WriteStationHistory writes one station's day series.
func (w *Writer) WriteStationHistory(h domain.StationHistory) error {
	path := filepath.Join(w.outDir, "stations", h.ID+".json")
	return w.writeJSON(path, "station", h)
}

// WriteSummary writes the overall summary document.
func (w *Writer) WriteSummary(doc *domain.SummaryDocument) error {
	return w.writeJSON(filepath.Join(w.outDir, "summary.json"), "summary", doc)
}

// WriteSnapshot writes the current-conditions document to an explicit path,
// which may live outside the writer's output directory.
func (w *Writer) WriteSnapshot(path string, doc *domain.SummaryDocument) error {
	return w.writeJSON(path, "snapshot", doc)
}

// WriteElevations writes a resolved station-elevations file to an explicit
// path, including unresolved (null) entries so later runs can retry them.
func WriteElevations(path string, list []domain.StationElevation) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
