// Package component defines the structural contract that every component
// model must satisfy before the factory will accept it into a composite.
//
// A component model is a single physically-scoped unit of behavior (an
// occupation model, a stellar-to-halo-mass relation, a profile model).
// The factory never inspects a component's physics; it only probes the
// capability interfaces below. Model is the one required capability.
// Everything else is optional and independently probed, with documented
// defaults when absent.
package component

import (
	"github.com/eteq/halotools/catalog"
	"github.com/eteq/halotools/galprops"
)

// Method is a mock-generation behavior exposed by a component model. It is
// invoked with the galaxy table under construction and writes one or more
// of the component's declared galaxy-property columns.
type Method func(galaxies *catalog.Table) error

// HalopropFunc derives a new halo-catalog column from the raw columns of
// the input halo table, during the pre-processing phase of mock population.
type HalopropFunc func(halos *catalog.Table) ([]float64, error)

// SelectionFunc imposes a cut on a table, returning a boolean mask over
// its rows.
type SelectionFunc func(table *catalog.Table) ([]bool, error)

// ParamDict maps tunable parameter names to their numeric values. A
// component's ParamDict is live: the composite writes through it before
// every inherited method call.
type ParamDict map[string]float64

// Copy returns an independent copy of the dictionary.
func (p ParamDict) Copy() ParamDict {
	out := make(ParamDict, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Model is the minimum contract for a component model: it must declare the
// galaxy-property columns it will write. An empty schema is acceptable; a
// nil receiver or a component without this capability is not.
type Model interface {
	// GalpropDtypes declares the (column name, dtype) pairs this component
	// allocates in the mock galaxy table.
	GalpropDtypes() galprops.Schema
}

// ParamHolder exposes a component's tunable parameters. Components without
// this capability are treated as having an empty parameter dictionary.
type ParamHolder interface {
	// ParamDict returns the component's live parameter mapping.
	ParamDict() ParamDict
}

// MethodProvider exposes the methods a component wants promoted onto the
// composite model, and resolves them by name.
type MethodProvider interface {
	// MethodsToInherit lists the method names the composite should bind.
	MethodsToInherit() []string

	// Method resolves a named method. Every name in MethodsToInherit and in
	// the mock-generation calling sequence must resolve.
	Method(name string) (Method, bool)
}

// CallingSequencer exposes a component's internal mock-generation call
// sequence: the ordered method names the mock driver must invoke.
type CallingSequencer interface {
	MockGenerationCallingSequence() []string
}

// AttrProvider exposes attributes to copy onto the composite. Values are
// snapshotted at composition time, not aliased.
type AttrProvider interface {
	AttrsToInherit() map[string]any
}

// RedshiftAware marks a component as carrying a redshift. All redshift-aware
// components in one composite must agree exactly.
type RedshiftAware interface {
	Redshift() float64
}

// HalopropUser declares which halo-catalog columns the component reads.
// Empty strings mean no declaration.
type HalopropUser interface {
	PrimHalopropKey() string
	SecHalopropKey() string
}

// NewHalopropProvider exposes derived halo-property constructors applied
// before the calling sequence runs.
type NewHalopropProvider interface {
	NewHalopropFuncs() map[string]HalopropFunc
}

// Publisher exposes the component's bibliographic references. The value
// must be a string or a []string; any other type is a fatal composition
// error.
type Publisher interface {
	Publications() any
}

// WarningSuppressor globally silences repeated-parameter warnings when any
// one component in the composite returns true.
type WarningSuppressor interface {
	SuppressesParamWarnings() bool
}
