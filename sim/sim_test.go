package sim

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeSimHaloTable(t *testing.T) {
	fake := &FakeSim{NumHalos: 50, BoxSize: 100, Seed: 43}
	halos, err := fake.HaloTable()
	require.NoError(t, err)

	assert.Equal(t, 50, halos.Len())
	assert.Equal(t,
		[]string{"halo_id", "halo_mvir", "halo_zhalf", "halo_x", "halo_y", "halo_z"},
		halos.ColumnNames())

	mvir, err := halos.Float64s("halo_mvir")
	require.NoError(t, err)
	for _, m := range mvir {
		assert.GreaterOrEqual(t, m, 1e10)
		assert.LessOrEqual(t, m, 1e15)
	}

	x, err := halos.Float64s("halo_x")
	require.NoError(t, err)
	for _, v := range x {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestFakeSimIsDeterministic(t *testing.T) {
	a, err := (&FakeSim{NumHalos: 20, Seed: 7}).HaloTable()
	require.NoError(t, err)
	b, err := (&FakeSim{NumHalos: 20, Seed: 7}).HaloTable()
	require.NoError(t, err)

	ma, err := a.Float64s("halo_mvir")
	require.NoError(t, err)
	mb, err := b.Float64s("halo_mvir")
	require.NoError(t, err)
	assert.Equal(t, ma, mb)
}

func TestFakeSimName(t *testing.T) {
	a := &FakeSim{NumHalos: 20, Seed: 7}
	b := &FakeSim{NumHalos: 20, Seed: 8}
	assert.NotEqual(t, a.Name(), b.Name())
}

func TestCatalogCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "halotools_cache.db")
	cache, err := OpenCatalogCache(path)
	require.NoError(t, err)
	defer cache.Close()

	fake := &FakeSim{NumHalos: 10, Seed: 3}
	halos, err := fake.HaloTable()
	require.NoError(t, err)

	require.NoError(t, cache.Put(fake.Name(), 0.5, halos))

	loaded, err := cache.Get(fake.Name(), 0.5)
	require.NoError(t, err)
	assert.Equal(t, halos.Len(), loaded.Len())
	assert.Equal(t, halos.ColumnNames(), loaded.ColumnNames())

	want, err := halos.Float64s("halo_mvir")
	require.NoError(t, err)
	got, err := loaded.Float64s("halo_mvir")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	ids, err := loaded.Int64s("halo_id")
	require.NoError(t, err)
	assert.Equal(t, int64(1), ids[0])
}

func TestCatalogCacheMissAndReplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "halotools_cache.db")
	cache, err := OpenCatalogCache(path)
	require.NoError(t, err)
	defer cache.Close()

	_, err = cache.Get("nope", 0.0)
	assert.ErrorIs(t, err, ErrCacheMiss)

	fake := &FakeSim{NumHalos: 5, Seed: 1}
	halos, err := fake.HaloTable()
	require.NoError(t, err)
	require.NoError(t, cache.Put("fake", 0.0, halos))

	// Replacing an entry keeps a single row per (simname, redshift).
	smaller, err := (&FakeSim{NumHalos: 3, Seed: 2}).HaloTable()
	require.NoError(t, err)
	require.NoError(t, cache.Put("fake", 0.0, smaller))

	loaded, err := cache.Get("fake", 0.0)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Len())

	entries, err := cache.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fake", entries[0].Simname)
}
