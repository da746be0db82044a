package factory

import (
	"go.uber.org/zap"

	"github.com/eteq/halotools/catalog"
	"github.com/eteq/halotools/empirical/component"
)

// effectiveInheritance reconciles each component's inherited-method
// whitelist with its mock-generation calling sequence: sequence methods
// missing from the whitelist are added implicitly, a corrective default
// rather than an error. The reconciled lists are computed on the side;
// the components themselves are never mutated.
//
// A method name claimed by more than one component is fatal. This check is
// independent of the calling-sequence collision check, because it also
// covers inherited methods that never appear in any calling sequence.
func effectiveInheritance(features *component.Dictionary) (map[string][]string, error) {
	inherited := make(map[string][]string, features.Len())
	claimedBy := make(map[string]bool)

	for _, feature := range features.Keys() {
		m, _ := features.Get(feature)

		var methods []string
		if mp, ok := m.(component.MethodProvider); ok {
			methods = append(methods, mp.MethodsToInherit()...)
		}

		if cs, ok := m.(component.CallingSequencer); ok {
			listed := make(map[string]bool, len(methods))
			for _, name := range methods {
				listed[name] = true
			}
			for _, name := range cs.MockGenerationCallingSequence() {
				if !listed[name] {
					methods = append(methods, name)
					listed[name] = true
				}
			}
		}

		for _, name := range methods {
			if claimedBy[name] {
				return nil, &RepeatedMethodError{Method: name}
			}
			claimedBy[name] = true
		}
		inherited[feature] = methods
	}
	return inherited, nil
}

// collectAttrs snapshots every component's inherited attributes onto one
// mapping. Unlike methods, a duplicate attribute name across components is
// only a warning: attribute shadowing is common and usually benign. The
// later component's value wins.
func collectAttrs(features *component.Dictionary, logger *zap.Logger) map[string]any {
	attrs := make(map[string]any)

	for _, feature := range features.Keys() {
		m, _ := features.Get(feature)

		ap, ok := m.(component.AttrProvider)
		if !ok {
			continue
		}
		for name, value := range ap.AttrsToInherit() {
			if _, seen := attrs[name]; seen {
				logger.Warn("inherited attribute appears in more than one component model",
					zap.String("attr", name),
					zap.String("feature", feature),
					zap.String("component", componentName(m)))
			}
			attrs[name] = value
		}
	}
	return attrs
}

// bindMethods promotes every inherited method onto the composite as a
// wrapper. Each wrapper, when invoked, first copies every parameter present
// in both the composite store and the owning component's own store from
// composite to component, then delegates to the component method. This
// write-through is what makes a composite-level parameter edit the single
// supported way to change downstream behavior.
func (m *CompositeModel) bindMethods(inherited map[string][]string) error {
	m.methods = make(map[string]component.Method)

	for _, feature := range m.features.Keys() {
		comp, _ := m.features.Get(feature)

		for _, name := range inherited[feature] {
			mp, ok := comp.(component.MethodProvider)
			if !ok {
				return &UnresolvedMethodError{
					Feature:   feature,
					Component: componentName(comp),
					Method:    name,
				}
			}
			target, ok := mp.Method(name)
			if !ok {
				return &UnresolvedMethodError{
					Feature:   feature,
					Component: componentName(comp),
					Method:    name,
				}
			}
			m.methods[name] = m.propagatingWrapper(comp, target)
		}
	}
	return nil
}

// propagatingWrapper closes over the composite and one component method.
// Parameter propagation happens on every call, so edits made to the
// composite store between calls are observed by the component.
func (m *CompositeModel) propagatingWrapper(comp component.Model, target component.Method) component.Method {
	return func(galaxies *catalog.Table) error {
		if ph, ok := comp.(component.ParamHolder); ok {
			own := ph.ParamDict()
			for key, value := range m.params {
				if _, shared := own[key]; shared {
					own[key] = value
				}
			}
		}
		return target(galaxies)
	}
}
