// Package history generates the rolling per-province risk history: a fixed
// day window ending today, scored day by day with running station state
// carried forward.
package history

import (
	"log/slog"
	"time"

	"github.com/NonGT/ddpm-tools/internal/domain"
	"github.com/NonGT/ddpm-tools/internal/observability"
)

// DefaultWindowDays is the length of the backfill window.
const DefaultWindowDays = 90

// Result bundles the three output series of one history run. Summary
// references the same province objects the run mutated, so it reflects
// their final-day scoring.
type Result struct {
	Provinces []domain.ProvinceHistory
	Stations  []domain.StationHistory
	Summary   *domain.SummaryDocument
}

// Driver iterates the day window for every province, advancing running
// station state strictly in chronological order.
type Driver struct {
	scorer     *domain.StationScorer
	aggregator *domain.ProvinceAggregator
	days       int
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// New creates a Driver. Pass days <= 0 for the default 90-day window.
func New(scorer *domain.StationScorer, aggregator *domain.ProvinceAggregator, days int, logger *slog.Logger, metrics *observability.Metrics) *Driver {
	if days <= 0 {
		days = DefaultWindowDays
	}
	return &Driver{
		scorer:     scorer,
		aggregator: aggregator,
		days:       days,
		logger:     logger,
		metrics:    metrics,
	}
}

// Run scores every province over the day window and assembles the output
// series. Running state is shared across provinces and keyed by station id;
// station ids are unique per province in the reference data, so provinces
// do not interfere.
func (d *Driver) Run(provinces []*domain.Province) *Result {
	state := domain.NewRunningState()
	result := &Result{}

	for _, province := range provinces {
		d.runProvince(province, state, result)
		d.metrics.ProvincesProcessed.Inc()
	}

	result.Summary = &domain.SummaryDocument{
		Type:             domain.ScoringIntegration,
		Date:             domain.Now(),
		Provinces:        provinces,
		RiskScoreLegends: domain.RiskScoreLegends(),
	}
	return result
}

func (d *Driver) runProvince(province *domain.Province, state *domain.RunningState, result *Result) {
	endDate := domain.Now()
	startDate := endDate.AddDate(0, 0, -d.days)

	provinceHistory := domain.ProvinceHistory{
		ProvinceInfo: province.Info,
		StartDate:    startDate,
		EndDate:      endDate,
	}

	// Station histories in first-encounter order, without transient scoring.
	stationHistories := make(map[string]*domain.StationHistory, len(province.Stations))
	var stationOrder []string

	for date := startDate; date.Before(endDate); date = date.AddDate(0, 0, 1) {
		rainAny := false
		var dayRecords []domain.ScoringRecord

		for _, station := range province.Stations {
			records, rainFell := d.scorer.ScoreDay(station, state)
			station.Scoring = records
			if rainFell {
				rainAny = true
			}
			d.metrics.StationDaysScored.Inc()

			hist, ok := stationHistories[station.ID]
			if !ok {
				stripped := *station
				stripped.Scoring = nil
				hist = &domain.StationHistory{Station: stripped}
				stationHistories[station.ID] = hist
				stationOrder = append(stationOrder, station.ID)
			}
			hist.Scorings = append(hist.Scorings, domain.NewStationDailyScore(date, records, d.scorer.Mode))

			dayRecords = append(dayRecords, records...)
		}

		// Warning news only happens on province days without any rainfall.
		province.WarningNews = nil
		var news *domain.WarningNews
		if !rainAny {
			news = d.aggregator.DrawWarningNews()
			province.WarningNews = news
			if news != nil {
				d.metrics.WarningNewsDays.Inc()
			}
		}

		province.Scoring = d.aggregator.AggregateDay(dayRecords, news)
		provinceHistory.Scorings = append(provinceHistory.Scorings, domain.NewProvinceDailyScore(date, province.Scoring))
	}

	result.Provinces = append(result.Provinces, provinceHistory)
	for _, id := range stationOrder {
		result.Stations = append(result.Stations, *stationHistories[id])
	}

	d.logger.Info("province history generated",
		"province_code", province.Info.ProvinceCode,
		"stations", len(province.Stations),
		"days", d.days,
		"start_date", startDate.Format(time.RFC3339),
		"end_date", endDate.Format(time.RFC3339),
	)
}
