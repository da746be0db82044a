package factory

import (
	"go.uber.org/zap"

	"github.com/eteq/halotools/empirical/component"
)

// resolveFeatureSequence produces the order in which features execute. An
// explicit sequence must be a complete permutation of the feature set.
// Without one, the default heuristic applies: a feature named
// "stellar_mass" goes first if present, else "luminosity", and all
// remaining features keep their natural insertion order.
//
// This is a priority rule, not a dependency solver. Models whose features
// depend on one another in more complex ways must pass an explicit
// ModelFeatureCallingSequence.
func resolveFeatureSequence(features *component.Dictionary, explicit []string, explicitSet bool) ([]string, error) {
	if explicitSet {
		mentioned := make(map[string]bool, len(explicit))
		for _, feature := range explicit {
			if !features.Has(feature) {
				return nil, &UnknownFeatureError{Feature: feature}
			}
			if mentioned[feature] {
				return nil, &DuplicateFeatureError{Feature: feature}
			}
			mentioned[feature] = true
		}
		for _, feature := range features.Keys() {
			if !mentioned[feature] {
				return nil, &MissingFeatureError{Feature: feature}
			}
		}
		out := make([]string, len(explicit))
		copy(out, explicit)
		return out, nil
	}

	keys := features.Keys()
	for _, first := range []string{"stellar_mass", "luminosity"} {
		if !features.Has(first) {
			continue
		}
		sequence := []string{first}
		for _, feature := range keys {
			if feature != first {
				sequence = append(sequence, feature)
			}
		}
		return sequence, nil
	}
	return keys, nil
}

// buildCallingSequence concatenates each component's mock-generation
// calling sequence in resolved feature order. A method name appearing in
// two components' sequences is fatal; a component with no sequence only
// warns.
func buildCallingSequence(features *component.Dictionary, logger *zap.Logger) ([]string, error) {
	var sequence []string
	seen := make(map[string]bool)

	for _, feature := range features.Keys() {
		m, _ := features.Get(feature)

		var methods []string
		if cs, ok := m.(component.CallingSequencer); ok {
			methods = cs.MockGenerationCallingSequence()
		}
		if len(methods) == 0 {
			logger.Warn("component model has no mock-generation calling sequence",
				zap.String("feature", feature),
				zap.String("component", componentName(m)))
			continue
		}

		for _, method := range methods {
			if seen[method] {
				return nil, &CallingSequenceCollisionError{
					Method:    method,
					Component: componentName(m),
				}
			}
			seen[method] = true
			sequence = append(sequence, method)
		}
	}
	return sequence, nil
}
