// Package smhm provides stellar-to-halo-mass component models.
package smhm

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/eteq/halotools/catalog"
	"github.com/eteq/halotools/empirical/component"
	"github.com/eteq/halotools/galprops"
	"github.com/eteq/halotools/sim"
)

// Behroozi10 models the stellar mass of a galaxy as a power law in the
// virial mass of its halo, with log-normal scatter, parameterized after
// Behroozi, Conroy & Wechsler (2010). All coefficients live in the
// parameter dictionary, so a composite-level parameter edit changes the
// relation on the next call.
type Behroozi10 struct {
	component.Base

	redshift float64
	rng      rand.Source
}

// Option configures a Behroozi10 instance.
type Option func(*Behroozi10)

// WithRedshift sets the redshift the relation is calibrated at.
func WithRedshift(z float64) Option {
	return func(b *Behroozi10) { b.redshift = z }
}

// WithSeed fixes the random stream used for scatter draws.
func WithSeed(seed uint64) Option {
	return func(b *Behroozi10) { b.rng = rand.NewSource(seed) }
}

// NewBehroozi10 creates the component with the published best-fit values.
func NewBehroozi10(opts ...Option) *Behroozi10 {
	b := &Behroozi10{
		redshift: sim.DefaultRedshift,
		rng:      rand.NewSource(43),
	}
	b.Params = component.ParamDict{
		"smhm_m0_0":            10.72,
		"smhm_m1_0":            12.35,
		"smhm_beta_0":          0.43,
		"scatter_model_param1": 0.2,
	}
	b.Dtypes = galprops.Schema{galprops.Float64("stellar_mass")}
	b.Inherit = []string{"assign_stellar_mass", "mean_stellar_mass"}
	b.Sequence = []string{"assign_stellar_mass"}
	b.RegisterMethod("assign_stellar_mass", b.assignStellarMass)
	b.RegisterMethod("mean_stellar_mass", b.meanStellarMass)

	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Redshift returns the calibration redshift.
func (b *Behroozi10) Redshift() float64 { return b.redshift }

// PrimHalopropKey declares the halo mass column the relation reads.
func (b *Behroozi10) PrimHalopropKey() string { return sim.DefaultHalopropKey }

// SecHalopropKey declares no secondary halo property.
func (b *Behroozi10) SecHalopropKey() string { return "" }

// Publications cites the calibration paper.
func (b *Behroozi10) Publications() any { return []string{"arXiv:1001.0015"} }

// NewHalopropFuncs derives the log halo mass column used by downstream
// diagnostics.
func (b *Behroozi10) NewHalopropFuncs() map[string]component.HalopropFunc {
	return map[string]component.HalopropFunc{
		"halo_log10_mvir": logMvir,
	}
}

// AttrsToInherit exposes the name of the primary galaxy property this
// component governs.
func (b *Behroozi10) AttrsToInherit() map[string]any {
	return map[string]any{"prim_galprop_name": "stellar_mass"}
}

func (b *Behroozi10) meanLogStellarMass(logMvir float64) float64 {
	return b.Params["smhm_m0_0"] + b.Params["smhm_beta_0"]*(logMvir-b.Params["smhm_m1_0"])
}

func (b *Behroozi10) assignStellarMass(galaxies *catalog.Table) error {
	mvir, err := galaxies.Float64s(sim.DefaultHalopropKey)
	if err != nil {
		return fmt.Errorf("assign_stellar_mass: %w", err)
	}
	stellarMass, err := galaxies.Float64s("stellar_mass")
	if err != nil {
		return fmt.Errorf("assign_stellar_mass: %w", err)
	}

	scatter := distuv.Normal{Mu: 0, Sigma: b.Params["scatter_model_param1"], Src: b.rng}
	for i := range mvir {
		logSm := b.meanLogStellarMass(math.Log10(mvir[i]))
		if scatter.Sigma > 0 {
			logSm += scatter.Rand()
		}
		stellarMass[i] = math.Pow(10, logSm)
	}
	return nil
}

// meanStellarMass writes the scatter-free relation. It is inherited by the
// composite but never appears in the mock-generation calling sequence.
func (b *Behroozi10) meanStellarMass(galaxies *catalog.Table) error {
	mvir, err := galaxies.Float64s(sim.DefaultHalopropKey)
	if err != nil {
		return fmt.Errorf("mean_stellar_mass: %w", err)
	}
	stellarMass, err := galaxies.Float64s("stellar_mass")
	if err != nil {
		return fmt.Errorf("mean_stellar_mass: %w", err)
	}
	for i := range mvir {
		stellarMass[i] = math.Pow(10, b.meanLogStellarMass(math.Log10(mvir[i])))
	}
	return nil
}

func logMvir(halos *catalog.Table) ([]float64, error) {
	mvir, err := halos.Float64s(sim.DefaultHalopropKey)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(mvir))
	for i, m := range mvir {
		out[i] = math.Log10(m)
	}
	return out, nil
}
