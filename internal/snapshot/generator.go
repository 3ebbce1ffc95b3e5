// Package snapshot produces the state-less "current conditions" document:
// one synthetic day for every province, scored directly from the imported
// station feeds with no history and no running state.
package snapshot

import (
	"log/slog"

	"github.com/NonGT/ddpm-tools/internal/domain"
	"github.com/NonGT/ddpm-tools/internal/observability"
)

// Generator scores a single current day for every province.
type Generator struct {
	rand       domain.Source
	aggregator *domain.ProvinceAggregator
	mode       domain.ScoringMode
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// New creates a snapshot Generator.
func New(rand domain.Source, mode domain.ScoringMode, logger *slog.Logger, metrics *observability.Metrics) *Generator {
	return &Generator{
		rand:       rand,
		aggregator: &domain.ProvinceAggregator{Rand: rand, Mode: mode},
		mode:       mode,
		logger:     logger,
		metrics:    metrics,
	}
}

// Generate attaches the imported stations to their provinces, scores each
// station once, and aggregates each province. The provinces are mutated in
// place and referenced by the returned document.
//
// Unlike the history path, warning news is drawn unconditionally: the
// snapshot has no rain state to suppress it.
func (g *Generator) Generate(provinces []*domain.Province, stationsByProvince map[string][]*domain.Station) *domain.SummaryDocument {
	for _, province := range provinces {
		province.Stations = nil
		for _, station := range stationsByProvince[province.Info.ProvinceCode] {
			station.Scoring = g.scoreStation(station)
			province.Stations = append(province.Stations, station)
			g.metrics.StationDaysScored.Inc()
		}

		news := g.aggregator.DrawWarningNews()
		province.WarningNews = news
		if news != nil {
			g.metrics.WarningNewsDays.Inc()
		}

		province.Scoring = g.aggregateProvince(province.Stations, news)
		g.metrics.ProvincesProcessed.Inc()

		g.logger.Debug("province snapshot scored",
			"province_code", province.Info.ProvinceCode,
			"stations", len(province.Stations),
		)
	}

	return &domain.SummaryDocument{
		Type:             domain.ScoringIntegration,
		Date:             domain.Now(),
		Provinces:        provinces,
		RiskScoreLegends: domain.RiskScoreLegends(),
	}
}

// scoreStation draws one synthetic scoring per capability, hydrology
// first. The integration record takes the maximum and is emitted only
// when some category scored above zero.
func (g *Generator) scoreStation(station *domain.Station) []domain.ScoringRecord {
	var records []domain.ScoringRecord
	maxRiskScore := 0

	if station.HasRunOff {
		rec := g.sampleHydrology()
		records = append(records, rec)
		if rec.RiskScore > maxRiskScore {
			maxRiskScore = rec.RiskScore
		}
	}

	if station.HasRainFall {
		rec := g.sampleMeteorology()
		records = append(records, rec)
		if rec.RiskScore > maxRiskScore {
			maxRiskScore = rec.RiskScore
		}
	}

	if maxRiskScore > 0 {
		records = append(records, domain.ScoringRecord{
			Type:      domain.ScoringIntegration,
			RiskScore: maxRiskScore,
		})
	}
	return records
}

// sampleHydrology draws a plausible runoff percentage. The snapshot path
// has no elevation data, so no absolute depth is computed.
func (g *Generator) sampleHydrology() domain.ScoringRecord {
	percent := g.rand.IntBetween(11, 100)
	return domain.ScoringRecord{
		Type:          domain.ScoringHydrology,
		RiskScore:     domain.HydrologyRiskScore(percent),
		PercentRunOff: &percent,
	}
}

// sampleMeteorology draws a risk band rebiased toward the lowest one
// (redraw while above band one, at most twenty retries), then a dry-day
// streak inside that band. The score is the band times twenty.
func (g *Generator) sampleMeteorology() domain.ScoringRecord {
	level := g.rand.IntBetween(1, 5)
	for retry := 0; level > 1 && retry < 20; retry++ {
		level = g.rand.IntBetween(1, 5)
	}

	var leaveDays int
	switch level {
	case 1:
		leaveDays = g.rand.IntBetween(0, 15)
	case 2:
		leaveDays = g.rand.IntBetween(16, 30)
	case 3:
		leaveDays = g.rand.IntBetween(31, 90)
	case 4:
		leaveDays = g.rand.IntBetween(91, 150)
	case 5:
		leaveDays = g.rand.IntBetween(151, 200)
	}

	return domain.ScoringRecord{
		Type:      domain.ScoringMeteorology,
		RiskScore: level * 2 * 10,
		LeaveDays: &leaveDays,
	}
}

// aggregateProvince rolls the station records up field-wise: the maximum
// score and the maximum raw value are taken independently, unlike the
// history path which retains the whole maximizing record.
func (g *Generator) aggregateProvince(stations []*domain.Station, news *domain.WarningNews) []domain.ScoringRecord {
	hydroScore, hydroPercent := 0, 0
	meteoScore, meteoLeaveDays := 0, 0
	hasHydro, hasMeteo := false, false

	for _, station := range stations {
		for _, rec := range station.Scoring {
			switch rec.Type {
			case domain.ScoringHydrology:
				hasHydro = true
				if rec.RiskScore > hydroScore {
					hydroScore = rec.RiskScore
				}
				if rec.PercentRunOff != nil && *rec.PercentRunOff > hydroPercent {
					hydroPercent = *rec.PercentRunOff
				}
			case domain.ScoringMeteorology:
				hasMeteo = true
				if rec.RiskScore > meteoScore {
					meteoScore = rec.RiskScore
				}
				if rec.LeaveDays != nil && *rec.LeaveDays > meteoLeaveDays {
					meteoLeaveDays = *rec.LeaveDays
				}
			}
		}
	}

	socioScore, socioDistricts := 0, 0
	if news != nil {
		socioScore = news.RiskScore
		socioDistricts = news.TotalDistricts
	}

	integration := hydroScore
	if meteoScore > integration {
		integration = meteoScore
	}
	if socioScore > integration {
		integration = socioScore
	}

	scoring := []domain.ScoringRecord{{Type: domain.ScoringIntegration, RiskScore: integration}}

	emitHydro, emitMeteo := true, true
	if g.mode == domain.ModeCorrected {
		emitHydro, emitMeteo = hasHydro, hasMeteo
	}

	if emitHydro {
		percent := hydroPercent
		scoring = append(scoring, domain.ScoringRecord{
			Type:          domain.ScoringHydrology,
			RiskScore:     hydroScore,
			PercentRunOff: &percent,
		})
	}
	if emitMeteo {
		leaveDays := meteoLeaveDays
		scoring = append(scoring, domain.ScoringRecord{
			Type:      domain.ScoringMeteorology,
			RiskScore: meteoScore,
			LeaveDays: &leaveDays,
		})
	}

	districts := socioDistricts
	scoring = append(scoring, domain.ScoringRecord{
		Type:           domain.ScoringSocioeconomics,
		RiskScore:      socioScore,
		TotalDistricts: &districts,
	})

	return scoring
}
