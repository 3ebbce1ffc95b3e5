package domain

import "time"

// Station is the canonical monitoring-station shape shared by every feed
// and every output document. Capability flags decide which score categories
// the station contributes.
type Station struct {
	ID           string  `json:"id"`
	WMOCode      string  `json:"wmoCode,omitempty"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	ProvinceCode string  `json:"provinceCode"`
	Owner        string  `json:"owner,omitempty"`
	HasRainFall  bool    `json:"hasRainFall"`
	HasRunOff    bool    `json:"hasRunOff"`

	// Scoring holds the most recent day's records. It is transient working
	// state surfaced in summary documents and stripped from station history
	// files.
	Scoring []ScoringRecord `json:"scoring,omitempty"`
}

// ProvinceInfo is the reference identity of a province.
type ProvinceInfo struct {
	ID           string `json:"id,omitempty"`
	ProvinceCode string `json:"provinceCode"`
	Name         string `json:"name,omitempty"`
}

// Province is a reference record plus the per-day working state attached
// while a generation run is in flight. Scoring and WarningNews always
// reflect the most recently processed day.
type Province struct {
	Info        ProvinceInfo    `json:"info"`
	Stations    []*Station      `json:"stations"`
	Scoring     []ScoringRecord `json:"scoring,omitempty"`
	WarningNews *WarningNews    `json:"warningNews,omitempty"`
}

// ScoringType tags a ScoringRecord with its risk category.
type ScoringType string

const (
	ScoringMeteorology    ScoringType = "meteorology"
	ScoringHydrology      ScoringType = "hydrology"
	ScoringIntegration    ScoringType = "integration"
	ScoringSocioeconomics ScoringType = "socioeconomics"
)

// ScoringRecord is one category's score for a station or province on one
// day. Only the fields of the tagged category are set; RiskScore is always
// one of 0, 20, 40, 60, 80, 100.
type ScoringRecord struct {
	Type      ScoringType `json:"type"`
	RiskScore int         `json:"riskScore"`

	// Meteorology.
	LeaveDays *int `json:"leaveDays,omitempty"`
	Rain      *int `json:"rain,omitempty"`

	// Hydrology. RunOff is the interpolated absolute depth; the snapshot
	// path carries only the percentage.
	RunOff        *float64 `json:"runOff,omitempty"`
	PercentRunOff *int     `json:"percentRunOff,omitempty"`

	// Socioeconomics.
	TotalDistricts *int `json:"totalDistricts,omitempty"`
	TotalNews      *int `json:"totalNews,omitempty"`
}

// WarningNews is the synthetic socioeconomic signal for a province day.
// It exists only on days where totalNews > 0; a day without news has no
// warning-news record at all rather than a zero-valued one.
type WarningNews struct {
	TotalDistricts int `json:"totalDistricts"`
	TotalNews      int `json:"totalNews"`
	RiskScore      int `json:"riskScore"`
}

// DailyScore is the flattened one-entry-per-day summary shape shared by
// province and station time series. Category fields are present only when
// that category applied on the day; pointers keep legitimate zero values
// (rain 0 on a dry day) distinct from absence.
type DailyScore struct {
	Date                 time.Time `json:"date"`
	RiskScoreIntegration *int      `json:"riskScoreIntegration"`

	RiskScoreMeteorology *int `json:"riskScoreMeteorology,omitempty"`
	LeaveDays            *int `json:"leaveDays,omitempty"`
	Rain                 *int `json:"rain,omitempty"`

	RiskScoreHydrology *int     `json:"riskScoreHydrology,omitempty"`
	PercentRunOff      *int     `json:"percentRunOff,omitempty"`
	RunOff             *float64 `json:"runOff,omitempty"`

	RiskScoreSocioeconomics *int `json:"riskScoreSocioeconomics,omitempty"`
	TotalDistricts          *int `json:"totalDistricts,omitempty"`
	TotalNews               *int `json:"totalNews,omitempty"`
}

// ProvinceHistory is the per-province output document of a history run:
// the reference identity, the day window, and one DailyScore per day,
// oldest first.
type ProvinceHistory struct {
	ProvinceInfo
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
	Scorings  []DailyScore `json:"scorings"`
}

// StationHistory is the per-station output document of a history run.
// The embedded station carries no transient scoring.
type StationHistory struct {
	Station
	Scorings []DailyScore `json:"scorings"`
}

// SummaryDocument is the overall output listing every province with its
// final-day scoring plus the fixed risk legend. The snapshot generator
// produces the same shape from a single synthetic day.
type SummaryDocument struct {
	Type             ScoringType  `json:"type"`
	Date             time.Time    `json:"date"`
	Provinces        []*Province  `json:"provinces"`
	RiskScoreLegends []RiskLegend `json:"riskScoreLegends"`
}

func intPtr(v int) *int             { return &v }
func float64Ptr(v float64) *float64 { return &v }
