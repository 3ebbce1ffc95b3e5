// Package feeds converts the two heterogeneous station-metadata feeds into
// the canonical Station shape before anything enters the scoring pipeline.
// Field mapping quirks stay here; scoring code never sees feed names.
package feeds

import "github.com/NonGT/ddpm-tools/internal/domain"

// HAIIStation mirrors one record of the HAII telemetry-station feed.
// Capability flags arrive as "Y"/"N" strings.
type HAIIStation struct {
	StationID          string  `json:"station_id"`
	NameTH             string  `json:"name_th"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	ProvinceCode       string  `json:"province_code"`
	Owner              string  `json:"owner"`
	CanMeasureRainFall string  `json:"can_measure_rain_fall"`
	CanMeasureRunOff   string  `json:"can_measure_run_off"`
}

// TMDStation mirrors one record of the TMD synoptic-station feed. TMD
// stations always measure rainfall and never runoff.
type TMDStation struct {
	StationID    string  `json:"station_id"`
	WMOCode      string  `json:"wmo_code"`
	NameTH       string  `json:"name_th"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	ProvinceCode string  `json:"province_code"`
	Owner        string  `json:"owner"`
}

// FromHAII maps HAII feed records to canonical stations.
func FromHAII(stations []HAIIStation) []*domain.Station {
	out := make([]*domain.Station, 0, len(stations))
	for _, s := range stations {
		out = append(out, &domain.Station{
			ID:           s.StationID,
			Name:         s.NameTH,
			Latitude:     s.Latitude,
			Longitude:    s.Longitude,
			ProvinceCode: s.ProvinceCode,
			Owner:        s.Owner,
			HasRainFall:  s.CanMeasureRainFall == "Y",
			HasRunOff:    s.CanMeasureRunOff == "Y",
		})
	}
	return out
}

// FromTMD maps TMD feed records to canonical stations.
func FromTMD(stations []TMDStation) []*domain.Station {
	out := make([]*domain.Station, 0, len(stations))
	for _, s := range stations {
		out = append(out, &domain.Station{
			ID:           s.StationID,
			WMOCode:      s.WMOCode,
			Name:         s.NameTH,
			Latitude:     s.Latitude,
			Longitude:    s.Longitude,
			ProvinceCode: s.ProvinceCode,
			Owner:        s.Owner,
			HasRainFall:  true,
			HasRunOff:    false,
		})
	}
	return out
}

// MergeByProvince groups canonical stations by province code, preserving
// the order of the given lists. Pass the HAII list first so HAII stations
// lead each province, matching the original merge order.
func MergeByProvince(lists ...[]*domain.Station) map[string][]*domain.Station {
	byProvince := make(map[string][]*domain.Station)
	for _, list := range lists {
		for _, st := range list {
			byProvince[st.ProvinceCode] = append(byProvince[st.ProvinceCode], st)
		}
	}
	return byProvince
}
