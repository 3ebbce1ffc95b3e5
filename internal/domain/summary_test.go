package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

func TestNewStationDailyScore_LegacyNullsZeroIntegration(t *testing.T) {
	records := []ScoringRecord{
		meteoRecord(20, 4, 0),
		{Type: ScoringIntegration, RiskScore: 0},
	}

	day := NewStationDailyScore(testDay, records, ModeLegacy)

	assert.Nil(t, day.RiskScoreIntegration)
	require.NotNil(t, day.RiskScoreMeteorology)
	assert.Equal(t, 20, *day.RiskScoreMeteorology)
	assert.Equal(t, 4, *day.LeaveDays)
	assert.Equal(t, 0, *day.Rain)

	// The zero score serializes as an explicit null, not a missing key.
	data, err := json.Marshal(day)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"riskScoreIntegration":null`)
}

func TestNewStationDailyScore_CorrectedKeepsZero(t *testing.T) {
	records := []ScoringRecord{
		{Type: ScoringIntegration, RiskScore: 0},
	}

	day := NewStationDailyScore(testDay, records, ModeCorrected)

	require.NotNil(t, day.RiskScoreIntegration)
	assert.Equal(t, 0, *day.RiskScoreIntegration)
}

func TestNewStationDailyScore_HydrologyFields(t *testing.T) {
	records := []ScoringRecord{
		hydroRecord(60, 25, 104.5),
		{Type: ScoringIntegration, RiskScore: 60},
	}

	day := NewStationDailyScore(testDay, records, ModeLegacy)

	require.NotNil(t, day.RiskScoreIntegration)
	assert.Equal(t, 60, *day.RiskScoreIntegration)
	assert.Equal(t, 60, *day.RiskScoreHydrology)
	assert.Equal(t, 25, *day.PercentRunOff)
	assert.InDelta(t, 104.5, *day.RunOff, 1e-9)
	assert.Nil(t, day.RiskScoreMeteorology)
	assert.Nil(t, day.Rain)
}

func TestNewProvinceDailyScore(t *testing.T) {
	scoring := []ScoringRecord{
		{Type: ScoringIntegration, RiskScore: 0},
		hydroRecord(0, 0, 0),
		meteoRecord(0, 0, 0),
		{Type: ScoringSocioeconomics, RiskScore: 0, TotalDistricts: intPtr(0), TotalNews: intPtr(0)},
	}

	day := NewProvinceDailyScore(testDay, scoring)

	require.NotNil(t, day.RiskScoreIntegration, "province integration is present even at zero")
	assert.Equal(t, 0, *day.RiskScoreIntegration)
	assert.Equal(t, 0, *day.RiskScoreSocioeconomics)
	assert.Equal(t, 0, *day.TotalNews)
}

func TestNewProvinceDailyScore_OmitsAbsentCategories(t *testing.T) {
	scoring := []ScoringRecord{
		{Type: ScoringIntegration, RiskScore: 40},
		meteoRecord(40, 25, 0),
	}

	day := NewProvinceDailyScore(testDay, scoring)

	data, err := json.Marshal(day)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "riskScoreHydrology")
	assert.NotContains(t, string(data), "riskScoreSocioeconomics")
	assert.Contains(t, string(data), `"riskScoreMeteorology":40`)
}

func TestRiskScoreLegends(t *testing.T) {
	legends := RiskScoreLegends()

	require.Len(t, legends, 5)
	assert.Equal(t, RiskLegend{Color: "#64dd17", Min: 0, Max: 30, Level: 0, Label: "แจ้งข่าว"}, legends[0])
	assert.Equal(t, RiskLegend{Color: "#0065a3", Min: 31, Max: 50, Level: 1, Label: "เผ้าระวัง"}, legends[1])
	assert.Equal(t, RiskLegend{Color: "#ffeb3b", Min: 51, Max: 80, Level: 2, Label: "แจ้งเตือน"}, legends[2])
	assert.Equal(t, RiskLegend{Color: "#ff9800", Min: 81, Max: 90, Level: 3, Label: "ให้อพยพ"}, legends[3])
	assert.Equal(t, RiskLegend{Color: "#dd2c00", Min: 91, Max: 100, Level: 4, Label: "ต้องอพยพ"}, legends[4])

	for i, l := range legends {
		assert.Equal(t, i, l.Level)
	}
}

func TestElevationLookup(t *testing.T) {
	elev := 312.5
	list := []StationElevation{
		{ID: "S1", Name: "สถานีหนึ่ง", Elevation: &elev},
		{ID: "S2", Name: "สถานีสอง", Elevation: nil},
	}

	lookup := ElevationLookup(list)

	assert.Equal(t, map[string]float64{"S1": 312.5}, lookup)
	_, ok := lookup["S2"]
	assert.False(t, ok, "unresolved elevations fall back to the zero baseline")
}
