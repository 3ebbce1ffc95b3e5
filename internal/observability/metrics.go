package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges shared by
// the generation commands.
type Metrics struct {
	ProvincesProcessed prometheus.Counter
	StationDaysScored  prometheus.Counter
	WarningNewsDays    prometheus.Counter
	DocumentsWritten   *prometheus.CounterVec // label: kind={province,station,summary,snapshot}
	DocumentsPublished prometheus.Counter
	GenerationDuration prometheus.Histogram

	// Elevation resolution metrics.
	ElevationRequests    *prometheus.CounterVec // label: outcome={resolved,unavailable,error}
	ElevationReused      prometheus.Counter
	ElevationAPIDuration prometheus.Histogram

	JobRunning prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus
// registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.ProvincesProcessed,
		m.StationDaysScored,
		m.WarningNewsDays,
		m.DocumentsWritten,
		m.DocumentsPublished,
		m.GenerationDuration,
		m.ElevationRequests,
		m.ElevationReused,
		m.ElevationAPIDuration,
		m.JobRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ProvincesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ddpm",
			Name:      "provinces_processed_total",
			Help:      "Provinces fully scored and written.",
		}),
		StationDaysScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ddpm",
			Name:      "station_days_scored_total",
			Help:      "Individual station-day scoring passes.",
		}),
		WarningNewsDays: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ddpm",
			Name:      "warning_news_days_total",
			Help:      "Province days on which warning news was generated.",
		}),
		DocumentsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ddpm",
			Name:      "documents_written_total",
			Help:      "Output documents written, by kind.",
		}, []string{"kind"}),
		DocumentsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ddpm",
			Name:      "documents_published_total",
			Help:      "Output documents published to the Kafka sink.",
		}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ddpm",
			Name:      "generation_duration_seconds",
			Help:      "Duration of a complete generation run.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		ElevationRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ddpm",
			Name:      "elevation_requests_total",
			Help:      "Elevation API requests by outcome.",
		}, []string{"outcome"}),
		ElevationReused: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ddpm",
			Name:      "elevation_reused_total",
			Help:      "Stations resolved from prior results without an API call.",
		}),
		ElevationAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ddpm",
			Name:      "elevation_api_duration_seconds",
			Help:      "Elevation API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		JobRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ddpm",
			Name:      "job_running",
			Help:      "1 while a generation or resolution job is active.",
		}),
	}
}
