// Package sfr provides star-formation-rate designation component models.
package sfr

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/eteq/halotools/catalog"
	"github.com/eteq/halotools/empirical/component"
	"github.com/eteq/halotools/galprops"
)

// BinaryGalprop models a two-state galaxy property: each galaxy is
// quiescent with probability quiescent_fraction, else star-forming. The
// fraction is a tunable parameter, so fitting loops can explore it through
// the composite store.
type BinaryGalprop struct {
	component.Base

	rng      rand.Source
	suppress bool
}

// Option configures a BinaryGalprop instance.
type Option func(*BinaryGalprop)

// WithSeed fixes the random stream used for the designation draws.
func WithSeed(seed uint64) Option {
	return func(b *BinaryGalprop) { b.rng = rand.NewSource(seed) }
}

// WithQuiescentFraction sets the initial quiescent fraction.
func WithQuiescentFraction(f float64) Option {
	return func(b *BinaryGalprop) { b.Params["quiescent_fraction"] = f }
}

// SuppressParamWarnings sets the global repeated-parameter warning
// suppression flag on this component.
func SuppressParamWarnings() Option {
	return func(b *BinaryGalprop) { b.suppress = true }
}

// NewBinaryGalprop creates the component with a 50/50 split.
func NewBinaryGalprop(opts ...Option) *BinaryGalprop {
	b := &BinaryGalprop{rng: rand.NewSource(43)}
	b.Params = component.ParamDict{"quiescent_fraction": 0.5}
	b.Dtypes = galprops.Schema{galprops.Bool("quiescent")}
	b.Inherit = []string{"assign_quiescent_designation"}
	b.Sequence = []string{"assign_quiescent_designation"}
	b.RegisterMethod("assign_quiescent_designation", b.assignQuiescent)

	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SuppressesParamWarnings reports the warning-suppression flag.
func (b *BinaryGalprop) SuppressesParamWarnings() bool { return b.suppress }

// Publications cites the interpolated binary galprop methodology.
func (b *BinaryGalprop) Publications() any { return "arXiv:1304.5557" }

// AttrsToInherit exposes the name of the binary galaxy property.
func (b *BinaryGalprop) AttrsToInherit() map[string]any {
	return map[string]any{"binary_galprop_name": "quiescent"}
}

func (b *BinaryGalprop) assignQuiescent(galaxies *catalog.Table) error {
	quiescent, err := galaxies.Bools("quiescent")
	if err != nil {
		return fmt.Errorf("assign_quiescent_designation: %w", err)
	}

	fq := b.Params["quiescent_fraction"]
	u := distuv.Uniform{Min: 0, Max: 1, Src: b.rng}
	for i := range quiescent {
		quiescent[i] = u.Rand() < fq
	}
	return nil
}
