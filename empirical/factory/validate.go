package factory

import (
	"fmt"
	"reflect"

	"github.com/eteq/halotools/empirical/component"
)

// componentName reports a component's concrete type name, the way error
// messages identify components.
func componentName(m component.Model) string {
	return fmt.Sprintf("%T", m)
}

// validateComponent enforces the minimum structural contract on one
// feature binding. It must run for every feature before any aggregation
// consumes the component.
func validateComponent(feature string, m component.Model) error {
	if m == nil || isNilPointer(m) {
		return &ContractError{
			Feature: feature,
			Reason:  "a constructed component model instance is required, got nil",
			Hint:    "bind an instance of the component model, not a nil value of its type",
		}
	}

	if m.GalpropDtypes() == nil {
		return &ContractError{
			Feature:   feature,
			Component: componentName(m),
			Reason:    "GalpropDtypes returned a nil schema",
			Hint:      "every component must declare its galaxy-property schema; return an empty galprops.Schema{} if the component allocates no columns",
		}
	}

	// Components without the MethodProvider capability default to an empty
	// inherited-method list; that is not an error. When the capability is
	// present, every whitelisted name must resolve.
	if mp, ok := m.(component.MethodProvider); ok {
		for _, name := range mp.MethodsToInherit() {
			if _, ok := mp.Method(name); !ok {
				return &UnresolvedMethodError{
					Feature:   feature,
					Component: componentName(m),
					Method:    name,
				}
			}
		}
	}

	return nil
}

func isNilPointer(m component.Model) bool {
	v := reflect.ValueOf(m)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
