package factory

import (
	"go.uber.org/zap"

	"github.com/eteq/halotools/empirical/component"
)

// Supplementary carries the construction directives that are not feature
// bindings: the explicit feature calling sequence and the two selection
// predicates. Prebuilt recipes may return one alongside their feature
// dictionary.
type Supplementary struct {
	// ModelFeatureCallingSequence orders the features during mock
	// population. Nil means unset, triggering the default heuristic.
	ModelFeatureCallingSequence []string

	// GalaxySelection masks the galaxy table after population.
	GalaxySelection component.SelectionFunc

	// HaloSelection masks the halo table before population.
	HaloSelection component.SelectionFunc
}

// Keywords carries recipe-specific arguments through to a prebuilt recipe,
// e.g. a threshold or a redshift.
type Keywords map[string]any

// Float64 reads a float64-valued keyword, falling back to def when absent.
func (k Keywords) Float64(name string, def float64) float64 {
	if v, ok := k[name]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return def
}

type config struct {
	features           *component.Dictionary
	callingSequence    []string
	callingSequenceSet bool
	galaxySelection    component.SelectionFunc
	haloSelection      component.SelectionFunc
	logger             *zap.Logger
}

// Option configures composite model construction.
type Option func(*config)

// Feature binds a component model to a named feature of the composite,
// e.g. Feature("stellar_mass", smhm.NewBehroozi10()).
func Feature(name string, m component.Model) Option {
	return func(c *config) { c.features.Set(name, m) }
}

// ModelFeatureCallingSequence fixes the order in which features execute
// during mock population. The sequence must be a complete permutation of
// the supplied feature names.
func ModelFeatureCallingSequence(features ...string) Option {
	return func(c *config) {
		c.callingSequence = features
		c.callingSequenceSet = true
	}
}

// GalaxySelection installs a predicate applied to the galaxy table after
// population.
func GalaxySelection(fn component.SelectionFunc) Option {
	return func(c *config) { c.galaxySelection = fn }
}

// HaloSelection installs a predicate applied to the halo table before
// population.
func HaloSelection(fn component.SelectionFunc) Option {
	return func(c *config) { c.haloSelection = fn }
}

// WithLogger routes composition warnings to the given logger. The default
// is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{
		features: component.NewDictionary(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
