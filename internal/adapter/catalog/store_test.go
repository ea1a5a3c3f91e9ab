package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/neo-impact-service/internal/config"
	"github.com/couchcryptid/neo-impact-service/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	// A named shared-cache database keeps tests isolated from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	s, err := Open(ctx, config.DriverSQLite, dsn, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Migrate(ctx))
	return s
}

func TestStore_SeedIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n, err := s.Seed(ctx, SeedObjects())
	require.NoError(t, err)
	assert.Equal(t, 34, n)

	n, err = s.Seed(ctx, SeedObjects())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	objects, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, objects, len(seedObjects))
}

func TestStore_Get(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, err := s.Seed(ctx, SeedObjects())
	require.NoError(t, err)

	obj, err := s.Get(ctx, "99942")
	require.NoError(t, err)

	assert.Equal(t, "Apophis", obj.Name)
	assert.Equal(t, "Asteroid", obj.Kind)
	assert.True(t, obj.IsHazardous)
	assert.Equal(t, 0.325, obj.DiameterMinKm)
	assert.Equal(t, 0.375, obj.DiameterMaxKm)
	assert.Equal(t, 19.7, obj.AbsoluteMagnitude)
	require.Len(t, obj.Approaches, 1)

	a := obj.Approaches[0]
	assert.Equal(t, time.Date(2029, time.April, 13, 0, 0, 0, 0, time.UTC), a.ApproachDate)
	assert.Equal(t, 7.42, a.VelocityKms)
	assert.InDelta(t, 7.42*3600, a.VelocityKmh, 1e-9)
	assert.Equal(t, 31000.0, a.MissDistanceKm)
	assert.Equal(t, "Earth", a.OrbitingBody)

	in := obj.ImpactInput()
	assert.Equal(t, domain.ImpactInput{DiameterMinKm: 0.325, DiameterMaxKm: 0.375, VelocityKms: 7.42, MissDistanceKm: 31000}, in)
}

func TestStore_GetMeteorShower(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, err := s.Seed(ctx, SeedObjects())
	require.NoError(t, err)

	obj, err := s.Get(ctx, "LEONIDS")
	require.NoError(t, err)
	assert.Equal(t, "Meteor Shower", obj.Kind)
	assert.False(t, obj.IsHazardous)

	in := obj.ImpactInput()
	assert.Equal(t, domain.ImpactInput{DiameterMinKm: 0.001, DiameterMaxKm: 0.01, VelocityKms: 71, MissDistanceKm: 0}, in)

	severity, scenario := domain.ClassifySeverity(in.DiameterKm())
	assert.Equal(t, domain.SeverityMinimal, severity)
	assert.Equal(t, domain.ScenarioAtmosphericBreakup, scenario)
}

func TestStore_GetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "does-not-exist")
	require.ErrorIs(t, err, domain.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestStore_ListOrderedByName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	_, err := s.Seed(ctx, SeedObjects())
	require.NoError(t, err)

	objects, err := s.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, objects)

	for i := 1; i < len(objects); i++ {
		assert.LessOrEqual(t, objects[i-1].Name, objects[i].Name)
	}
	for _, obj := range objects {
		assert.Len(t, obj.Approaches, 1, obj.ID)
	}
}

func TestStore_Approaches(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	obj := domain.Object{ID: "2024YR4", Name: "2024 YR4", Kind: "Asteroid", DiameterMinKm: 0.04, DiameterMaxKm: 0.09}
	obj.Approaches = []domain.CloseApproach{
		domain.NewCloseApproach(obj.ID, time.Date(2032, time.December, 22, 0, 0, 0, 0, time.UTC), 17.3, 240000),
		domain.NewCloseApproach(obj.ID, time.Date(2028, time.December, 17, 0, 0, 0, 0, time.UTC), 12.1, 8000000),
	}
	_, err := s.Seed(ctx, []domain.Object{obj})
	require.NoError(t, err)

	approaches, err := s.Approaches(ctx, obj.ID)
	require.NoError(t, err)
	require.Len(t, approaches, 2)
	assert.Equal(t, 2028, approaches[0].ApproachDate.Year())
	assert.Equal(t, 2032, approaches[1].ApproachDate.Year())

	closest, ok := domain.Object{Approaches: approaches}.ClosestApproach()
	require.True(t, ok)
	assert.Equal(t, 240000.0, closest.MissDistanceKm)

	none, err := s.Approaches(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_Readiness(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.CheckReadiness(context.Background()))

	require.NoError(t, s.Close())
	assert.Error(t, s.CheckReadiness(context.Background()))
}

func TestSeedObjects(t *testing.T) {
	objects := SeedObjects()
	require.Len(t, objects, 34)

	kinds := make(map[string]int)
	ids := make(map[string]bool, len(objects))
	for _, obj := range objects {
		assert.False(t, ids[obj.ID], "duplicate id %s", obj.ID)
		ids[obj.ID] = true
		kinds[obj.Kind]++
		assert.NoError(t, obj.ImpactInput().Validate(), obj.ID)
	}

	assert.Equal(t, 5, kinds["Meteor Shower"])
	assert.Equal(t, 8, kinds["Comet"])

	objects[0].Name = "mutated"
	assert.Equal(t, "Apophis", SeedObjects()[0].Name)
}
