package domain

import "time"

// recordByType indexes scoring records by category; the last record of a
// category wins, matching how the original lookup was built.
func recordByType(records []ScoringRecord) map[ScoringType]*ScoringRecord {
	lookup := make(map[ScoringType]*ScoringRecord, len(records))
	for i := range records {
		lookup[records[i].Type] = &records[i]
	}
	return lookup
}

// NewStationDailyScore flattens one station day into a DailyScore entry.
// Under ModeLegacy a zero integration score collapses to null, as the
// original serialization did; ModeCorrected keeps the real value.
func NewStationDailyScore(date time.Time, records []ScoringRecord, mode ScoringMode) DailyScore {
	byType := recordByType(records)

	day := DailyScore{Date: date}
	if rec, ok := byType[ScoringIntegration]; ok {
		if mode == ModeCorrected || rec.RiskScore != 0 {
			day.RiskScoreIntegration = intPtr(rec.RiskScore)
		}
	}
	if rec, ok := byType[ScoringMeteorology]; ok {
		day.RiskScoreMeteorology = intPtr(rec.RiskScore)
		day.LeaveDays = rec.LeaveDays
		day.Rain = rec.Rain
	}
	if rec, ok := byType[ScoringHydrology]; ok {
		day.RiskScoreHydrology = intPtr(rec.RiskScore)
		day.PercentRunOff = rec.PercentRunOff
		day.RunOff = rec.RunOff
	}
	return day
}

// NewProvinceDailyScore flattens one province day into a DailyScore entry.
// The integration score is always present, including zero.
func NewProvinceDailyScore(date time.Time, scoring []ScoringRecord) DailyScore {
	byType := recordByType(scoring)

	day := DailyScore{Date: date}
	if rec, ok := byType[ScoringIntegration]; ok {
		day.RiskScoreIntegration = intPtr(rec.RiskScore)
	}
	if rec, ok := byType[ScoringMeteorology]; ok {
		day.RiskScoreMeteorology = intPtr(rec.RiskScore)
		day.LeaveDays = rec.LeaveDays
		day.Rain = rec.Rain
	}
	if rec, ok := byType[ScoringHydrology]; ok {
		day.RiskScoreHydrology = intPtr(rec.RiskScore)
		day.PercentRunOff = rec.PercentRunOff
		day.RunOff = rec.RunOff
	}
	if rec, ok := byType[ScoringSocioeconomics]; ok {
		day.RiskScoreSocioeconomics = intPtr(rec.RiskScore)
		day.TotalDistricts = rec.TotalDistricts
		day.TotalNews = rec.TotalNews
	}
	return day
}
