package component

import (
	"github.com/eteq/halotools/galprops"
)

// Base carries the bookkeeping shared by most component models: the
// parameter dictionary, the galaxy-property schema, the inherited-method
// whitelist and the mock-generation calling sequence. Concrete models embed
// Base and register their methods with RegisterMethod.
//
// Base implements only Model, ParamHolder, MethodProvider and
// CallingSequencer. Capabilities whose mere presence changes composition
// semantics (RedshiftAware, Publisher, HalopropUser, ...) are left to the
// concrete type so that embedding Base never accidentally declares them.
type Base struct {
	Params   ParamDict
	Dtypes   galprops.Schema
	Inherit  []string
	Sequence []string

	methods map[string]Method
}

// ParamDict returns the live parameter mapping, creating it on first use.
func (b *Base) ParamDict() ParamDict {
	if b.Params == nil {
		b.Params = make(ParamDict)
	}
	return b.Params
}

// GalpropDtypes returns the declared galaxy-property schema.
func (b *Base) GalpropDtypes() galprops.Schema { return b.Dtypes }

// MethodsToInherit returns the inherited-method whitelist.
func (b *Base) MethodsToInherit() []string { return b.Inherit }

// MockGenerationCallingSequence returns the internal call sequence.
func (b *Base) MockGenerationCallingSequence() []string { return b.Sequence }

// RegisterMethod makes a named method resolvable through Method.
func (b *Base) RegisterMethod(name string, m Method) {
	if b.methods == nil {
		b.methods = make(map[string]Method)
	}
	b.methods[name] = m
}

// Method resolves a registered method by name.
func (b *Base) Method(name string) (Method, bool) {
	m, ok := b.methods[name]
	return m, ok
}
