package googlemaps

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NonGT/ddpm-tools/internal/domain"
	"github.com/NonGT/ddpm-tools/internal/observability"
)

type resolverFunc func(ctx context.Context, lat, lon float64) (*float64, error)

func (f resolverFunc) Elevation(ctx context.Context, lat, lon float64) (*float64, error) {
	return f(ctx, lat, lon)
}

func elevationOf(v float64) *float64 { return &v }

func TestResolver_ReusesPriorResults(t *testing.T) {
	calls := 0
	client := resolverFunc(func(_ context.Context, _, _ float64) (*float64, error) {
		calls++
		return elevationOf(500), nil
	})

	prior := []domain.StationElevation{
		{ID: "H1", Name: "ฝายแม่แตง", Elevation: elevationOf(310)},
		{ID: "H2", Name: "สะพานนวรัฐ", Elevation: nil}, // unresolved, retried
	}
	r := NewResolver(client, prior, testLogger(), observability.NewMetricsForTesting())

	stations := []*domain.Station{
		{ID: "H1", Name: "ฝายแม่แตง"},
		{ID: "H2", Name: "สะพานนวรัฐ"},
		{ID: "H3", Name: "บ้านแม่สา"},
	}
	out, err := r.Resolve(context.Background(), stations)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, 2, calls, "prior resolved entry skips the API")
	assert.InDelta(t, 310, *out[0].Elevation, 1e-9)
	assert.InDelta(t, 500, *out[1].Elevation, 1e-9)
	assert.InDelta(t, 500, *out[2].Elevation, 1e-9)
}

func TestResolver_DegradesFailedLookups(t *testing.T) {
	client := resolverFunc(func(_ context.Context, lat, _ float64) (*float64, error) {
		if lat == 0 {
			return nil, errors.New("boom")
		}
		return elevationOf(42), nil
	})
	r := NewResolver(client, nil, testLogger(), observability.NewMetricsForTesting())

	stations := []*domain.Station{
		{ID: "A", Latitude: 0},
		{ID: "B", Latitude: 18.9},
	}
	out, err := r.Resolve(context.Background(), stations)
	require.NoError(t, err, "one failed station does not fail the run")
	require.Len(t, out, 2)

	assert.Nil(t, out[0].Elevation)
	require.NotNil(t, out[1].Elevation)
	assert.InDelta(t, 42, *out[1].Elevation, 1e-9)
}

func TestResolver_UnavailableRecordedAsNil(t *testing.T) {
	client := resolverFunc(func(_ context.Context, _, _ float64) (*float64, error) {
		return nil, nil
	})
	r := NewResolver(client, nil, testLogger(), observability.NewMetricsForTesting())

	out, err := r.Resolve(context.Background(), []*domain.Station{{ID: "A", Name: "บ้านแม่สา"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "A", out[0].ID)
	assert.Equal(t, "บ้านแม่สา", out[0].Name)
	assert.Nil(t, out[0].Elevation)
}

func TestResolver_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	client := resolverFunc(func(ctx context.Context, _, _ float64) (*float64, error) {
		calls++
		cancel()
		return nil, ctx.Err()
	})
	r := NewResolver(client, nil, testLogger(), observability.NewMetricsForTesting())

	stations := []*domain.Station{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	out, err := r.Resolve(ctx, stations)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
	assert.Empty(t, out)
}
