package googlemaps

import (
	"context"
	"log/slog"

	"github.com/NonGT/ddpm-tools/internal/domain"
	"github.com/NonGT/ddpm-tools/internal/observability"
)

// Resolver walks a station list and produces one StationElevation per
// station, reusing prior resolved results and degrading unresolvable
// stations to a nil elevation instead of failing the run.
type Resolver struct {
	client  domain.ElevationResolver
	prior   map[string]domain.StationElevation
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewResolver creates a Resolver. Prior entries with a nil elevation are
// ignored so their stations are retried.
func NewResolver(client domain.ElevationResolver, prior []domain.StationElevation, logger *slog.Logger, metrics *observability.Metrics) *Resolver {
	lookup := make(map[string]domain.StationElevation, len(prior))
	for _, p := range prior {
		if p.Elevation != nil {
			lookup[p.ID] = p
		}
	}
	return &Resolver{client: client, prior: lookup, logger: logger, metrics: metrics}
}

// Resolve returns one entry per station, in station order. A station whose
// lookup fails is recorded with a nil elevation; only context cancellation
// aborts the walk.
func (r *Resolver) Resolve(ctx context.Context, stations []*domain.Station) ([]domain.StationElevation, error) {
	out := make([]domain.StationElevation, 0, len(stations))

	for _, station := range stations {
		if prior, ok := r.prior[station.ID]; ok {
			r.metrics.ElevationReused.Inc()
			out = append(out, prior)
			continue
		}

		elevation, err := r.client.Elevation(ctx, station.Latitude, station.Longitude)
		if err != nil {
			if ctx.Err() != nil {
				return out, ctx.Err()
			}
			r.logger.Warn("elevation lookup failed, continuing without it",
				"station_id", station.ID,
				"error", err,
			)
		}
		out = append(out, domain.StationElevation{
			ID:        station.ID,
			Name:      station.Name,
			Elevation: elevation,
		})
	}
	return out, nil
}
