package smhm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eteq/halotools/catalog"
)

func newGalaxyTable(t *testing.T, mvir []float64) *catalog.Table {
	t.Helper()
	tbl := catalog.New(len(mvir))
	require.NoError(t, tbl.AddFloat64("halo_mvir", mvir))
	require.NoError(t, tbl.AddFloat64("stellar_mass", make([]float64, len(mvir))))
	return tbl
}

func TestMeanStellarMassTracksParams(t *testing.T) {
	b := NewBehroozi10()
	tbl := newGalaxyTable(t, []float64{1e12})

	m, ok := b.Method("mean_stellar_mass")
	require.True(t, ok)
	require.NoError(t, m(tbl))

	sm, err := tbl.Float64s("stellar_mass")
	require.NoError(t, err)
	// log10(Msm) = m0 + beta*(12 - m1) at Mvir = 1e12
	want := math.Pow(10, 10.72+0.43*(12-12.35))
	assert.InDelta(t, want, sm[0], want*1e-9)

	// The relation reads the parameter dictionary at call time.
	b.ParamDict()["smhm_m0_0"] = 11.0
	require.NoError(t, m(tbl))
	sm, err = tbl.Float64s("stellar_mass")
	require.NoError(t, err)
	want = math.Pow(10, 11.0+0.43*(12-12.35))
	assert.InDelta(t, want, sm[0], want*1e-9)
}

func TestAssignStellarMassScatters(t *testing.T) {
	b := NewBehroozi10(WithSeed(17))
	mvir := make([]float64, 500)
	for i := range mvir {
		mvir[i] = 1e12
	}
	tbl := newGalaxyTable(t, mvir)

	m, ok := b.Method("assign_stellar_mass")
	require.True(t, ok)
	require.NoError(t, m(tbl))

	sm, err := tbl.Float64s("stellar_mass")
	require.NoError(t, err)

	meanLog := 10.72 + 0.43*(12-12.35)
	var sumSq float64
	for _, v := range sm {
		d := math.Log10(v) - meanLog
		sumSq += d * d
	}
	sigma := math.Sqrt(sumSq / float64(len(sm)))
	assert.InDelta(t, 0.2, sigma, 0.05)
}

func TestAssignStellarMassZeroScatterIsDeterministic(t *testing.T) {
	b := NewBehroozi10()
	b.ParamDict()["scatter_model_param1"] = 0

	tbl := newGalaxyTable(t, []float64{1e11, 1e13})
	m, _ := b.Method("assign_stellar_mass")
	require.NoError(t, m(tbl))

	sm, err := tbl.Float64s("stellar_mass")
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(10, 10.72+0.43*(11-12.35)), sm[0], sm[0]*1e-9)
	assert.InDelta(t, math.Pow(10, 10.72+0.43*(13-12.35)), sm[1], sm[1]*1e-9)
}

func TestBehroozi10Contract(t *testing.T) {
	b := NewBehroozi10(WithRedshift(1.5))

	assert.Equal(t, 1.5, b.Redshift())
	assert.Equal(t, "halo_mvir", b.PrimHalopropKey())
	assert.Empty(t, b.SecHalopropKey())
	assert.Equal(t, []string{"assign_stellar_mass"}, b.MockGenerationCallingSequence())
	assert.ElementsMatch(t,
		[]string{"assign_stellar_mass", "mean_stellar_mass"}, b.MethodsToInherit())
	assert.True(t, b.GalpropDtypes().Contains("stellar_mass"))
	assert.Equal(t, []string{"arXiv:1001.0015"}, b.Publications())

	funcs := b.NewHalopropFuncs()
	require.Contains(t, funcs, "halo_log10_mvir")

	halos := catalog.New(2)
	require.NoError(t, halos.AddFloat64("halo_mvir", []float64{1e10, 1e12}))
	logs, err := funcs["halo_log10_mvir"](halos)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, logs[0], 1e-12)
	assert.InDelta(t, 12.0, logs[1], 1e-12)
}
