package factory

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/eteq/halotools/empirical/component"
	"github.com/eteq/halotools/galprops"
	"github.com/eteq/halotools/sim"
)

// mergeDtypes unions every component's galaxy-property schema. A column
// declared by two components must agree in dtype.
func mergeDtypes(features *component.Dictionary) (galprops.Schema, error) {
	merged := galprops.Schema{}
	for _, feature := range features.Keys() {
		m, _ := features.Get(feature)

		var err error
		merged, err = galprops.Merge(merged, m.GalpropDtypes())
		if err != nil {
			return nil, fmt.Errorf("feature %q (component %s): %w",
				feature, componentName(m), err)
		}
	}
	return merged, nil
}

// resolveRedshift scans the components in resolved order and enforces that
// every redshift-aware component agrees exactly. Composites with no
// redshift-aware component fall back to sim.DefaultRedshift.
func resolveRedshift(features *component.Dictionary) (float64, error) {
	var (
		redshift  float64
		firstName string
		found     bool
	)
	for _, feature := range features.Keys() {
		m, _ := features.Get(feature)

		ra, ok := m.(component.RedshiftAware)
		if !ok {
			continue
		}
		z := ra.Redshift()
		if !found {
			redshift = z
			firstName = componentName(m)
			found = true
			continue
		}
		if z != redshift {
			return 0, &RedshiftMismatchError{
				ComponentA: componentName(m),
				RedshiftA:  z,
				ComponentB: firstName,
				RedshiftB:  redshift,
			}
		}
		firstName = componentName(m)
	}
	if !found {
		return sim.DefaultRedshift, nil
	}
	return redshift, nil
}

// collectHaloprops unions the primary and secondary halo-property keys
// declared across all components. These are the halo-catalog columns the
// mock-population step must guarantee exist. The result is deduplicated
// and sorted; ordering carries no meaning.
func collectHaloprops(features *component.Dictionary) []string {
	seen := make(map[string]bool)
	for _, feature := range features.Keys() {
		m, _ := features.Get(feature)

		hu, ok := m.(component.HalopropUser)
		if !ok {
			continue
		}
		if key := hu.PrimHalopropKey(); key != "" {
			seen[key] = true
		}
		if key := hu.SecHalopropKey(); key != "" {
			seen[key] = true
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// mergeNewHaloprops unions the derived halo-property constructors. On a
// name collision the first-encountered function wins and the later one is
// dropped with a warning. Note the inversion of the later-wins parameter
// rule.
func mergeNewHaloprops(features *component.Dictionary, logger *zap.Logger) map[string]component.HalopropFunc {
	merged := make(map[string]component.HalopropFunc)

	for _, feature := range features.Keys() {
		m, _ := features.Get(feature)

		np, ok := m.(component.NewHalopropProvider)
		if !ok {
			continue
		}
		for name, fn := range np.NewHalopropFuncs() {
			if _, taken := merged[name]; taken {
				logger.Warn("multiple components construct the same new halo property; keeping the first",
					zap.String("haloprop", name),
					zap.String("feature", feature),
					zap.String("component", componentName(m)))
				continue
			}
			merged[name] = fn
		}
	}
	return merged
}

// collectPublications unions the citation strings exposed by the
// components. A publications value of any type other than string or
// []string is fatal. The result is deduplicated and sorted.
func collectPublications(features *component.Dictionary) ([]string, error) {
	seen := make(map[string]bool)

	for _, feature := range features.Keys() {
		m, _ := features.Get(feature)

		pub, ok := m.(component.Publisher)
		if !ok {
			continue
		}
		switch pubs := pub.Publications().(type) {
		case string:
			seen[pubs] = true
		case []string:
			for _, p := range pubs {
				seen[p] = true
			}
		default:
			return nil, &PublicationTypeError{Component: componentName(m)}
		}
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}
