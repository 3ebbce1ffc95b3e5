package domain

import "context"

// ElevationResolver yields the ground elevation at a coordinate. A nil
// result with a nil error means the upstream service answered but could
// not resolve the point; callers degrade that station to a zero baseline
// instead of aborting.
type ElevationResolver interface {
	Elevation(ctx context.Context, lat, lon float64) (*float64, error)
}

// StationElevation is one resolved station elevation, as stored in the
// station-elevations reference file. Elevation is nil when unresolved.
type StationElevation struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Elevation *float64 `json:"elevation"`
}

// ElevationLookup builds the station id → elevation map consumed by the
// station scorer. Unresolved entries are dropped so their stations fall
// back to the zero baseline.
func ElevationLookup(list []StationElevation) map[string]float64 {
	lookup := make(map[string]float64, len(list))
	for _, e := range list {
		if e.Elevation == nil {
			continue
		}
		lookup[e.ID] = *e.Elevation
	}
	return lookup
}
