package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeteorologyRiskScore_Legacy(t *testing.T) {
	tests := []struct {
		name      string
		leaveDays int
		expected  int
	}{
		{"zero days", 0, 20},
		{"band one upper", 15, 20},
		{"boundary gap 16", 16, 0},
		{"band two lower", 17, 40},
		{"band two upper", 30, 40},
		{"boundary gap 31", 31, 0},
		{"band three lower", 32, 60},
		{"band three upper", 90, 60},
		{"boundary gap 91", 91, 0},
		{"band four lower", 92, 80},
		{"band four upper", 150, 80},
		{"boundary gap 151", 151, 0},
		{"band five lower", 152, 100},
		{"very long streak", 400, 100},
		{"negative streak", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MeteorologyRiskScore(ModeLegacy, tt.leaveDays))
		})
	}
}

func TestMeteorologyRiskScore_EveryValueInBandOne(t *testing.T) {
	for d := 0; d <= 15; d++ {
		require.Equal(t, 20, MeteorologyRiskScore(ModeLegacy, d), "leaveDays=%d", d)
	}
}

func TestMeteorologyRiskScore_Corrected(t *testing.T) {
	tests := []struct {
		name      string
		leaveDays int
		expected  int
	}{
		{"zero days", 0, 20},
		{"gap 16 closed", 16, 40},
		{"gap 31 closed", 31, 60},
		{"gap 91 closed", 91, 80},
		{"gap 151 closed", 151, 100},
		{"band boundaries hold", 150, 80},
		{"negative streak", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MeteorologyRiskScore(ModeCorrected, tt.leaveDays))
		})
	}
}

func TestHydrologyRiskScore(t *testing.T) {
	tests := []struct {
		name     string
		percent  int
		expected int
	}{
		{"high runoff low risk", 51, 20},
		{"full channel", 100, 20},
		{"upper mid band", 50, 40},
		{"mid band", 31, 40},
		{"lower mid band", 30, 60},
		{"low runoff high band", 11, 60},
		{"near dry", 10, 0},
		{"dry channel", 0, 0},
		{"negative after drift", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HydrologyRiskScore(tt.percent))
		})
	}
}

func TestSocioeconomicsRiskScore(t *testing.T) {
	tests := []struct {
		name      string
		districts int
		expected  int
	}{
		{"no districts", 0, 20},
		{"one district", 1, 40},
		{"two districts", 2, 60},
		{"three districts", 3, 80},
		{"four districts", 4, 100},
		{"many districts", 12, 100},
		{"negative count", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SocioeconomicsRiskScore(tt.districts))
		})
	}
}

func TestParseScoringMode(t *testing.T) {
	t.Run("legacy", func(t *testing.T) {
		mode, err := ParseScoringMode("legacy")
		require.NoError(t, err)
		assert.Equal(t, ModeLegacy, mode)
	})

	t.Run("corrected", func(t *testing.T) {
		mode, err := ParseScoringMode("corrected")
		require.NoError(t, err)
		assert.Equal(t, ModeCorrected, mode)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseScoringMode("strict")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "strict")
	})
}
