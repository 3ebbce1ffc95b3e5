package domain

// ProvinceAggregator rolls all station scoring records of a province day
// into the province's own scoring records.
type ProvinceAggregator struct {
	Rand Source
	Mode ScoringMode
}

// DrawWarningNews synthesizes the day's socioeconomic signal. The news
// count draw lands on zero more often than not (max(rnd(0,10)-5, 0));
// a positive count is decomposed into affected districts by repeatedly
// subtracting 1–3 news items per district. Returns nil when no news
// happened, never a zero-valued record.
//
// The history path calls this only on days where no station in the
// province recorded rain; the snapshot path calls it unconditionally.
func (a *ProvinceAggregator) DrawWarningNews() *WarningNews {
	totalNews := a.Rand.IntBetween(0, 10) - 5
	if totalNews < 0 {
		totalNews = 0
	}

	totalDistricts := 0
	for newsLeft := totalNews; newsLeft > 0; {
		newsLeft -= a.Rand.IntBetween(1, 3)
		totalDistricts++
	}

	if totalNews == 0 {
		return nil
	}
	return &WarningNews{
		TotalDistricts: totalDistricts,
		TotalNews:      totalNews,
		RiskScore:      SocioeconomicsRiskScore(totalDistricts),
	}
}

// AggregateDay computes the province scoring records for one day from all
// station records plus the day's warning news (nil when none). The result
// is ordered integration, hydrology, meteorology, socioeconomics.
//
// Category maxima retain the whole maximizing record so its percentage,
// depth, streak and rain surface on the province. Ties go to the later
// record. Under ModeLegacy both the hydrology and the meteorology record
// are emitted whenever the hydrology guard passes, which it always does;
// ModeCorrected gates each category on its own presence.
func (a *ProvinceAggregator) AggregateDay(stationRecords []ScoringRecord, news *WarningNews) []ScoringRecord {
	hydroBest := maxRecordByScore(stationRecords, ScoringHydrology)
	meteoBest := maxRecordByScore(stationRecords, ScoringMeteorology)

	hydroScore := 0
	if hydroBest != nil {
		hydroScore = hydroBest.RiskScore
	}
	meteoScore := 0
	if meteoBest != nil {
		meteoScore = meteoBest.RiskScore
	}
	socioScore, socioDistricts, socioNews := 0, 0, 0
	if news != nil {
		socioScore = news.RiskScore
		socioDistricts = news.TotalDistricts
		socioNews = news.TotalNews
	}

	integration := hydroScore
	if meteoScore > integration {
		integration = meteoScore
	}
	if socioScore > integration {
		integration = socioScore
	}

	scoring := []ScoringRecord{{Type: ScoringIntegration, RiskScore: integration}}

	emitHydro, emitMeteo := true, true
	if a.Mode == ModeCorrected {
		emitHydro = hydroBest != nil
		emitMeteo = meteoBest != nil
	}

	if emitHydro {
		rec := ScoringRecord{
			Type:          ScoringHydrology,
			RiskScore:     hydroScore,
			PercentRunOff: intPtr(0),
			RunOff:        float64Ptr(0),
		}
		if hydroBest != nil {
			rec.PercentRunOff = hydroBest.PercentRunOff
			rec.RunOff = hydroBest.RunOff
		}
		scoring = append(scoring, rec)
	}

	if emitMeteo {
		rec := ScoringRecord{
			Type:      ScoringMeteorology,
			RiskScore: meteoScore,
			LeaveDays: intPtr(0),
			Rain:      intPtr(0),
		}
		if meteoBest != nil {
			rec.LeaveDays = meteoBest.LeaveDays
			rec.Rain = meteoBest.Rain
		}
		scoring = append(scoring, rec)
	}

	// The socioeconomics record is emitted every day, zero-valued when no
	// news happened. Only the province warningNews field is conditional.
	scoring = append(scoring, ScoringRecord{
		Type:           ScoringSocioeconomics,
		RiskScore:      socioScore,
		TotalDistricts: intPtr(socioDistricts),
		TotalNews:      intPtr(socioNews),
	})

	return scoring
}

// maxRecordByScore returns the record of the given type with the highest
// risk score, or nil if no record of that type exists. Ties pick the later
// record.
func maxRecordByScore(records []ScoringRecord, typ ScoringType) *ScoringRecord {
	var best *ScoringRecord
	for i := range records {
		if records[i].Type != typ {
			continue
		}
		if best == nil || records[i].RiskScore >= best.RiskScore {
			best = &records[i]
		}
	}
	return best
}
