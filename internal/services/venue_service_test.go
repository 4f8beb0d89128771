package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"planmyday/internal/repositories"
	"planmyday/pkg/utils"
)

func newVenueService(store *repositories.MemoryStore) VenueServiceInterface {
	return NewVenueService(store.Venues(), time.Second, zap.NewNop())
}

func TestEnsureSampleVenuesOnlyFillsEmptyCatalog(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newVenueService(store)

	assert.False(t, store.HasGeoIndex())
	require.NoError(t, svc.EnsureSampleVenues(context.Background()))
	assert.True(t, store.HasGeoIndex(), "nearby lookups need the index right after startup")
	require.NoError(t, svc.EnsureSampleVenues(context.Background()))

	venues := store.Snapshot()
	require.Len(t, venues, 2)
	assert.Equal(t, "The Coffee Corner", venues[0].Name)
	assert.Equal(t, "Central Park", venues[1].Name)

	nearby, err := svc.ListNearby(context.Background(), 40.7589, -73.9851, 500, 10)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, "The Coffee Corner", nearby[0].Name)
}

func TestEnsureSampleVenuesIndexesExistingCatalog(t *testing.T) {
	store := repositories.NewMemoryStore()
	require.NoError(t, store.Venues().InsertMany(context.Background(), SeedVenues()))
	svc := newVenueService(store)

	require.NoError(t, svc.EnsureSampleVenues(context.Background()))

	assert.True(t, store.HasGeoIndex())
	assert.Len(t, store.Snapshot(), len(SeedVenues()), "a populated catalog gets no samples")
}

func TestSeedCatalogLogsGeoIndexField(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	store := repositories.NewMemoryStore()
	svc := NewVenueService(store.Venues(), time.Second, zap.New(core))

	_, err := svc.SeedCatalog(context.Background(), SeedVenues())
	require.NoError(t, err)

	entries := logs.FilterMessage("Venue catalog seeded").All()
	require.Len(t, entries, 1)
	assert.Equal(t, repositories.GeoField, entries[0].ContextMap()["geo_index_field"])
}

func TestSeedCatalogIsIdempotent(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newVenueService(store)
	require.NoError(t, svc.EnsureSampleVenues(context.Background()))

	count, err := svc.SeedCatalog(context.Background(), SeedVenues())
	require.NoError(t, err)
	assert.EqualValues(t, len(SeedVenues()), count)
	first := store.Snapshot()

	count, err = svc.SeedCatalog(context.Background(), SeedVenues())
	require.NoError(t, err)
	assert.EqualValues(t, len(SeedVenues()), count)

	assert.Equal(t, first, store.Snapshot())
	assert.True(t, store.HasGeoIndex())
	for _, v := range first {
		require.NotNil(t, v.Geo)
		assert.Equal(t, []float64{v.Location.Lng, v.Location.Lat}, v.Geo.Coordinates)
	}
}

func TestSeedVenuesHaveStableUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range SeedVenues() {
		assert.Equal(t, VenueID(v.Name), v.ID)
		assert.False(t, seen[v.ID], "duplicate id for %s", v.Name)
		seen[v.ID] = true
	}
	assert.Len(t, seen, 7)
}

func TestListVenuesValidatesPaging(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newVenueService(store)
	_, err := svc.SeedCatalog(context.Background(), SeedVenues())
	require.NoError(t, err)

	_, err = svc.ListVenues(context.Background(), 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
	_, err = svc.ListVenues(context.Background(), 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	page, err := svc.ListVenues(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}

func TestGetVenue(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newVenueService(store)
	require.NoError(t, svc.EnsureSampleVenues(context.Background()))

	got, err := svc.GetVenue(context.Background(), VenueID("Central Park"))
	require.NoError(t, err)
	assert.Equal(t, "Central Park", got.Name)

	_, err = svc.GetVenue(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrVenueNotFound)
}

func TestListNearbyOrdersByDistance(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newVenueService(store)
	_, err := svc.SeedCatalog(context.Background(), SeedVenues())
	require.NoError(t, err)

	nearby, err := svc.ListNearby(context.Background(), 12.9716, 77.5946, 1000, 0)
	require.NoError(t, err)

	require.NotEmpty(t, nearby)
	assert.Equal(t, "Tech Cafe 2049", nearby[0].Name)
	assert.InDelta(t, 0, nearby[0].DistanceMeters, 1)
	for i, v := range nearby {
		assert.LessOrEqual(t, v.DistanceMeters, 1000.0)
		if i > 0 {
			assert.GreaterOrEqual(t, v.DistanceMeters, nearby[i-1].DistanceMeters)
		}
	}

	none, err := svc.ListNearby(context.Background(), 40.7589, -73.9851, 1000, 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}
