package domain

import "fmt"

// ScoringMode selects between the original generator's literal scoring
// behavior and the corrected semantics. ModeLegacy is the default so
// regenerated data stays comparable with previously published documents.
type ScoringMode int

const (
	// ModeLegacy reproduces the original behavior exactly, including the
	// meteorology boundary gaps and the station integration score that
	// never rises above zero.
	ModeLegacy ScoringMode = iota

	// ModeCorrected closes the meteorology boundary gaps, takes the true
	// maximum for station integration, and emits province category records
	// only for categories that were actually measured.
	ModeCorrected
)

// ParseScoringMode parses "legacy" or "corrected".
func ParseScoringMode(s string) (ScoringMode, error) {
	switch s {
	case "legacy":
		return ModeLegacy, nil
	case "corrected":
		return ModeCorrected, nil
	default:
		return ModeLegacy, fmt.Errorf("unknown scoring mode %q (want legacy or corrected)", s)
	}
}

func (m ScoringMode) String() string {
	if m == ModeCorrected {
		return "corrected"
	}
	return "legacy"
}

// MeteorologyRiskScore maps a dry-day streak to a banded risk score.
// Under ModeLegacy the streak values 16, 31, 91 and 151 sit between bands
// and score 0; the bands use exclusive lower bounds while the previous
// band's inclusive upper bound stops one integer earlier.
func MeteorologyRiskScore(mode ScoringMode, leaveDays int) int {
	if mode == ModeCorrected {
		switch {
		case leaveDays < 0:
			return 0
		case leaveDays <= 15:
			return 20
		case leaveDays <= 30:
			return 40
		case leaveDays <= 90:
			return 60
		case leaveDays <= 150:
			return 80
		default:
			return 100
		}
	}

	switch {
	case leaveDays >= 0 && leaveDays <= 15:
		return 20
	case leaveDays > 16 && leaveDays <= 30:
		return 40
	case leaveDays > 31 && leaveDays <= 90:
		return 60
	case leaveDays > 91 && leaveDays <= 150:
		return 80
	case leaveDays > 151:
		return 100
	}
	return 0
}

// HydrologyRiskScore maps a runoff percentage to a banded risk score.
// The mapping is inverted on purpose: a higher runoff percentage means
// more water in the channel and therefore lower drought risk.
func HydrologyRiskScore(percentRunOff int) int {
	switch {
	case percentRunOff > 50:
		return 20
	case percentRunOff > 30:
		return 40
	case percentRunOff > 10:
		return 60
	}
	return 0
}

// SocioeconomicsRiskScore maps the number of districts mentioned in
// drought warning news to a banded risk score.
func SocioeconomicsRiskScore(totalDistricts int) int {
	switch {
	case totalDistricts == 0:
		return 20
	case totalDistricts == 1:
		return 40
	case totalDistricts == 2:
		return 60
	case totalDistricts == 3:
		return 80
	case totalDistricts > 3:
		return 100
	}
	return 0
}
