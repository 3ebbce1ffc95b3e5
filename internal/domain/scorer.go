package domain

// RunningState carries the per-station mutable counters that persist across
// the day window of one generation run. Keys are station ids, shared across
// provinces; the reference data guarantees a station belongs to exactly one
// province. Entries are created lazily on first encounter.
type RunningState struct {
	// LeaveDays tracks consecutive days without rainfall per station.
	LeaveDays map[string]int

	// RunOffBaseline is the fixed runoff percentage per station. It is
	// drawn once and never recomputed; daily values drift from it without
	// accumulating.
	RunOffBaseline map[string]int
}

// NewRunningState creates empty running state for one generation run.
func NewRunningState() *RunningState {
	return &RunningState{
		LeaveDays:      make(map[string]int),
		RunOffBaseline: make(map[string]int),
	}
}

// StationScorer produces one day of scoring records for a station,
// advancing its running state in place.
type StationScorer struct {
	// Rand supplies the synthetic raw signals.
	Rand Source

	// Elevations maps station id to ground elevation in meters. A station
	// with no entry (elevation unresolved upstream) computes runoff depth
	// against a zero baseline.
	Elevations map[string]float64

	Mode ScoringMode
}

// ScoreDay scores one station for one day. It returns the station's
// scoring records in meteorology, hydrology, integration order, plus
// whether rain fell at the station (used by the caller to suppress
// warning-news generation for the province).
//
// Draw order per call: streak seed on first encounter, rain occurrence,
// rain amount (rainy days only), baseline draws on first runoff encounter,
// drift sign, drift amount, bank offset. Callers that need reproducible
// output must keep station iteration order stable.
func (s *StationScorer) ScoreDay(st *Station, state *RunningState) ([]ScoringRecord, bool) {
	// Every station gets a streak entry, even runoff-only ones. The seed
	// draw biases initial streaks toward zero: max(rnd(0,50)-20, 0).
	if _, ok := state.LeaveDays[st.ID]; !ok {
		seed := s.Rand.IntBetween(0, 50) - 20
		if seed < 0 {
			seed = 0
		}
		state.LeaveDays[st.ID] = seed
	}

	var records []ScoringRecord
	maxRiskScore := 0
	rainFell := false

	if st.HasRainFall {
		hasRain := s.Rand.IntBetween(0, 5) > 3
		rain := 0
		if hasRain {
			rain = s.Rand.IntBetween(1, 200)
		}

		if hasRain {
			state.LeaveDays[st.ID] = 0
			rainFell = true
		} else {
			state.LeaveDays[st.ID]++
		}

		leaveDays := state.LeaveDays[st.ID]
		riskScore := MeteorologyRiskScore(s.Mode, leaveDays)
		records = append(records, ScoringRecord{
			Type:      ScoringMeteorology,
			RiskScore: riskScore,
			LeaveDays: intPtr(leaveDays),
			Rain:      intPtr(rain),
		})
		maxRiskScore = s.foldIntegration(maxRiskScore, riskScore)
	}

	if st.HasRunOff {
		if _, ok := state.RunOffBaseline[st.ID]; !ok {
			// Bias the baseline upward: redraw while below 50, at most
			// five retries, then accept whatever was last drawn.
			percent := s.Rand.IntBetween(10, 100)
			for retry := 0; percent < 50 && retry < 5; retry++ {
				percent = s.Rand.IntBetween(10, 100)
			}
			state.RunOffBaseline[st.ID] = percent
		}

		// Daily drift of -5..0 applied to the fixed baseline.
		factor := s.Rand.IntBetween(0, 1) - 1
		percentRunOff := state.RunOffBaseline[st.ID] + s.Rand.IntBetween(0, 5)*factor

		// Interpolate absolute depth between ground level and a bank
		// level a few meters above it.
		gl := s.Elevations[st.ID]
		bl := gl + float64(s.Rand.IntBetween(0, 5))
		runOff := (float64(percentRunOff)/100)*(bl-gl) + gl

		riskScore := HydrologyRiskScore(percentRunOff)
		records = append(records, ScoringRecord{
			Type:          ScoringHydrology,
			RiskScore:     riskScore,
			RunOff:        float64Ptr(runOff),
			PercentRunOff: intPtr(percentRunOff),
		})
		maxRiskScore = s.foldIntegration(maxRiskScore, riskScore)
	}

	if st.HasRainFall || st.HasRunOff {
		records = append(records, ScoringRecord{
			Type:      ScoringIntegration,
			RiskScore: maxRiskScore,
		})
	}

	return records, rainFell
}

// foldIntegration combines a category score into the running integration
// score. The legacy comparison points the wrong way, so the legacy value
// can only move down from zero and in practice stays there.
func (s *StationScorer) foldIntegration(current, riskScore int) int {
	if s.Mode == ModeCorrected {
		if riskScore > current {
			return riskScore
		}
		return current
	}
	if current > riskScore {
		return riskScore
	}
	return current
}
