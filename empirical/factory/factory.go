// Package factory assembles independently-authored component models into a
// single composite galaxy-halo model. Given an unordered bag of components,
// each exposing the structural contract of the component package, the
// factory deterministically merges them into one object with a single
// validated parameter store, a single output schema, and a single,
// dependency-respecting calling sequence. Conflicts surface as descriptive
// errors, never silent corruption.
//
// Construction runs synchronously and to completion: either a fully-built
// composite is returned, or a fatal error and no composite at all.
package factory

import (
	"go.uber.org/zap"

	"github.com/eteq/halotools/empirical/component"
	"github.com/eteq/halotools/galprops"
)

// CompositeModel is the product of composition. It exposes to the
// mock-population driver everything needed to generate galaxies: the method
// calling sequence, the merged output schema, the halo-property dependency
// list, the derived-haloprop constructors, the composite redshift and the
// selection predicates.
//
// The composite's parameter store is its one piece of mutable state.
// Writes through SetParam propagate to the owning component the next time
// any inherited method executes. The engine assumes single-threaded,
// single-writer usage, the typical pattern of an iterative fitting loop.
type CompositeModel struct {
	logger *zap.Logger

	features        *component.Dictionary // re-keyed in resolved order
	featureSequence []string
	callingSequence []string

	methods map[string]component.Method
	attrs   map[string]any

	params     component.ParamDict
	initParams component.ParamDict

	schema       galprops.Schema
	redshift     float64
	halopropList []string
	newHaloprops map[string]component.HalopropFunc
	publications []string

	galaxySelection component.SelectionFunc
	haloSelection   component.SelectionFunc

	suppressParamWarnings bool
}

// New composes the supplied component features into a composite model.
// Every feature binding is validated against the structural contract
// before any aggregation consumes it.
func New(opts ...Option) (*CompositeModel, error) {
	cfg := newConfig(opts)
	if cfg.features.Len() == 0 {
		return nil, ErrNoFeatures
	}
	return compose(cfg)
}

func compose(cfg *config) (*CompositeModel, error) {
	for _, feature := range cfg.features.Keys() {
		m, _ := cfg.features.Get(feature)
		if err := validateComponent(feature, m); err != nil {
			return nil, err
		}
	}

	featureSequence, err := resolveFeatureSequence(
		cfg.features, cfg.callingSequence, cfg.callingSequenceSet)
	if err != nil {
		return nil, err
	}

	m := &CompositeModel{
		logger:          cfg.logger,
		features:        cfg.features.Reorder(featureSequence),
		featureSequence: featureSequence,
		galaxySelection: cfg.galaxySelection,
		haloSelection:   cfg.haloSelection,
	}

	m.halopropList = collectHaloprops(m.features)

	m.publications, err = collectPublications(m.features)
	if err != nil {
		return nil, err
	}

	m.newHaloprops = mergeNewHaloprops(m.features, m.logger)

	m.schema, err = mergeDtypes(m.features)
	if err != nil {
		return nil, err
	}

	m.suppressParamWarnings = suppressesParamWarnings(m.features)

	m.redshift, err = resolveRedshift(m.features)
	if err != nil {
		return nil, err
	}

	inherited, err := effectiveInheritance(m.features)
	if err != nil {
		return nil, err
	}

	m.attrs = collectAttrs(m.features, m.logger)

	// The merged store must exist before binding: every wrapper closes over
	// the composite so that later edits propagate.
	m.params = mergeParams(m.features, m.suppressParamWarnings, m.logger)
	m.initParams = m.params.Copy()

	if err := m.bindMethods(inherited); err != nil {
		return nil, err
	}

	m.callingSequence, err = buildCallingSequence(m.features, m.logger)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// FeatureSequence returns the resolved feature order.
func (m *CompositeModel) FeatureSequence() []string {
	out := make([]string, len(m.featureSequence))
	copy(out, m.featureSequence)
	return out
}

// Feature returns the component model bound to a feature name.
func (m *CompositeModel) Feature(name string) (component.Model, bool) {
	return m.features.Get(name)
}

// CallingSequence returns the ordered method names the mock driver must
// invoke on the composite.
func (m *CompositeModel) CallingSequence() []string {
	out := make([]string, len(m.callingSequence))
	copy(out, m.callingSequence)
	return out
}

// Method resolves an inherited method by name. The returned wrapper
// propagates the composite parameter store to the owning component before
// delegating.
func (m *CompositeModel) Method(name string) (component.Method, bool) {
	fn, ok := m.methods[name]
	return fn, ok
}

// Attr returns the snapshot value of an inherited attribute.
func (m *CompositeModel) Attr(name string) (any, bool) {
	v, ok := m.attrs[name]
	return v, ok
}

// Param reads a parameter from the composite store.
func (m *CompositeModel) Param(name string) (float64, bool) {
	v, ok := m.params[name]
	return v, ok
}

// SetParam writes a parameter into the composite store. The owning
// component observes the new value on the next inherited method call.
func (m *CompositeModel) SetParam(name string, value float64) {
	m.params[name] = value
}

// Params returns a copy of the composite parameter store.
func (m *CompositeModel) Params() component.ParamDict {
	return m.params.Copy()
}

// GalpropDtypes returns the merged output schema: every galaxy-property
// column the mock driver must allocate before invoking the calling
// sequence.
func (m *CompositeModel) GalpropDtypes() galprops.Schema {
	out := make(galprops.Schema, len(m.schema))
	copy(out, m.schema)
	return out
}

// Redshift returns the composite redshift.
func (m *CompositeModel) Redshift() float64 { return m.redshift }

// HalopropList returns the halo-catalog columns the composite requires on
// its input.
func (m *CompositeModel) HalopropList() []string {
	out := make([]string, len(m.halopropList))
	copy(out, m.halopropList)
	return out
}

// NewHalopropFuncs returns the derived halo-property constructors to apply
// before invoking the calling sequence.
func (m *CompositeModel) NewHalopropFuncs() map[string]component.HalopropFunc {
	out := make(map[string]component.HalopropFunc, len(m.newHaloprops))
	for k, v := range m.newHaloprops {
		out[k] = v
	}
	return out
}

// Publications returns the deduplicated citations of all components.
func (m *CompositeModel) Publications() []string {
	out := make([]string, len(m.publications))
	copy(out, m.publications)
	return out
}

// GalaxySelection returns the predicate applied to the galaxy table after
// population, or nil.
func (m *CompositeModel) GalaxySelection() component.SelectionFunc {
	return m.galaxySelection
}

// HaloSelection returns the predicate applied to the halo table before
// population, or nil.
func (m *CompositeModel) HaloSelection() component.SelectionFunc {
	return m.haloSelection
}
