// Package domain models drought and landslide risk scoring for Thai
// provinces and their monitoring stations.
//
// # Data Source
//
// Station reference data comes from two upstream feeds: HAII telemetry
// stations (rainfall and/or runoff capable) and TMD synoptic stations
// (rainfall only). Province reference records carry the station lists used
// by the history generator; the snapshot generator imports the feeds
// directly. Real sensor readings are not available to this system, so the
// raw signals (rain occurrence, runoff drift, warning-news counts) are
// synthesized from an injectable random source. The scoring and aggregation
// rules on top of those signals are the stable, tested contract.
//
// # Scoring Conventions
//
// Risk scores are banded in {0, 20, 40, 60, 80, 100}:
//
//	Meteorology: consecutive dry days ("leave days") at a station.
//	  0–15 → 20 | 17–30 → 40 | 32–90 → 60 | 92–150 → 80 | 152+ → 100
//	  The values 16, 31, 91 and 151 fall outside every band and score 0.
//	  This boundary gap is inherited from the original generator and is
//	  preserved under ModeLegacy; ModeCorrected closes the gaps.
//	Hydrology: runoff percentage. Higher percentage means more water, so
//	  the mapping is inverted: >50 → 20 | >30 → 40 | >10 → 60 | else 0.
//	Socioeconomics: count of districts mentioned in drought warning news.
//	  0 → 20 | 1 → 40 | 2 → 60 | 3 → 80 | 4+ → 100.
//
// # Integration Score
//
// A station's daily integration score combines its category scores. The
// original generator compared with the wrong operator and could never raise
// the score above zero; ModeLegacy reproduces that behavior bit for bit so
// regenerated histories stay comparable with published data, ModeCorrected
// takes the intended maximum. A province's daily integration score is the
// maximum across category maxima and is correct in both modes.
//
// # Running State
//
// Dry-day streaks and runoff baselines persist across the day window of a
// single run, keyed by station id in a RunningState owned by the caller.
// Nothing is persisted between runs; every run starts fresh baselines.
package domain
