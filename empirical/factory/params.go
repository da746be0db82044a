package factory

import (
	"go.uber.org/zap"

	"github.com/eteq/halotools/empirical/component"
)

// suppressesParamWarnings reports whether any component in the composite
// carries the warning-suppression flag. Suppression is global: one flagged
// component silences repeated-parameter warnings for the whole composite.
func suppressesParamWarnings(features *component.Dictionary) bool {
	for _, feature := range features.Keys() {
		m, _ := features.Get(feature)
		if ws, ok := m.(component.WarningSuppressor); ok && ws.SuppressesParamWarnings() {
			return true
		}
	}
	return false
}

// mergeParams unions every component's parameter dictionary in resolved
// feature order. Components without parameters contribute an empty
// dictionary. A parameter name appearing in more than one component is
// permitted: the later component's value wins, and a warning is emitted
// unless suppression is active. In fitting applications this merged store
// is the parameter set the likelihood engine explores.
func mergeParams(features *component.Dictionary, suppress bool, logger *zap.Logger) component.ParamDict {
	merged := make(component.ParamDict)

	for _, feature := range features.Keys() {
		m, _ := features.Get(feature)

		ph, ok := m.(component.ParamHolder)
		if !ok {
			continue
		}
		own := ph.ParamDict()

		if !suppress {
			for key := range own {
				if _, collides := merged[key]; collides {
					logger.Warn("parameter appears in more than one component model",
						zap.String("param", key),
						zap.String("feature", feature),
						zap.String("component", componentName(m)))
				}
			}
		}
		for key, value := range own {
			merged[key] = value
		}
	}
	return merged
}
