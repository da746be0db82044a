package sim

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/eteq/halotools/catalog"
)

// FakeSim generates a random halo catalog with the column conventions of a
// real simulation snapshot. It exists so that models can be exercised
// without downloading an actual simulation.
type FakeSim struct {
	// NumHalos is the number of rows to generate. Default 1000.
	NumHalos int

	// BoxSize is the comoving box side length in Mpc/h. Default 250.
	BoxSize float64

	// Redshift of the snapshot. Default DefaultRedshift.
	Redshift float64

	// Seed fixes the random stream. Two FakeSims with equal fields produce
	// identical catalogs.
	Seed uint64
}

// Name identifies the fake snapshot, including its defining fields so that
// distinct configurations cache separately.
func (f *FakeSim) Name() string {
	return fmt.Sprintf("fake_nhalos%d_box%g_seed%d", f.numHalos(), f.boxSize(), f.Seed)
}

func (f *FakeSim) numHalos() int {
	if f.NumHalos <= 0 {
		return 1000
	}
	return f.NumHalos
}

func (f *FakeSim) boxSize() float64 {
	if f.BoxSize <= 0 {
		return 250.0
	}
	return f.BoxSize
}

// HaloTable generates the halo catalog. Columns:
//
//	halo_id     int64    unique identifier
//	halo_mvir   float64  virial mass in Msun/h, log-uniform in [1e10, 1e15]
//	halo_zhalf  float64  half-mass assembly redshift
//	halo_x/y/z  float64  comoving position in the box
func (f *FakeSim) HaloTable() (*catalog.Table, error) {
	n := f.numHalos()
	src := rand.NewSource(f.Seed)

	logMass := distuv.Uniform{Min: 10, Max: 15, Src: src}
	zhalf := distuv.Uniform{Min: f.Redshift, Max: f.Redshift + 5, Src: src}
	position := distuv.Uniform{Min: 0, Max: f.boxSize(), Src: src}

	ids := make([]int64, n)
	mvir := make([]float64, n)
	zh := make([]float64, n)
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		ids[i] = int64(i + 1)
		mvir[i] = math.Pow(10, logMass.Rand())
		zh[i] = zhalf.Rand()
		x[i] = position.Rand()
		y[i] = position.Rand()
		z[i] = position.Rand()
	}

	tbl := catalog.New(n)
	if err := tbl.AddInt64("halo_id", ids); err != nil {
		return nil, err
	}
	if err := tbl.AddFloat64("halo_mvir", mvir); err != nil {
		return nil, err
	}
	if err := tbl.AddFloat64("halo_zhalf", zh); err != nil {
		return nil, err
	}
	if err := tbl.AddFloat64("halo_x", x); err != nil {
		return nil, err
	}
	if err := tbl.AddFloat64("halo_y", y); err != nil {
		return nil, err
	}
	if err := tbl.AddFloat64("halo_z", z); err != nil {
		return nil, err
	}
	return tbl, nil
}
