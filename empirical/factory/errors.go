package factory

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFeatures is returned when construction receives no feature
	// bindings and no prebuilt nickname.
	ErrNoFeatures = errors.New("no model features supplied")

	// ErrPrebuiltCallingSequence is returned when an explicit calling
	// sequence accompanies a prebuilt nickname. The prebuilt recipe is the
	// sole authority over feature ordering.
	ErrPrebuiltCallingSequence = errors.New(
		"a model feature calling sequence cannot be combined with a prebuilt model nickname")

	// ErrPrebuiltFeature is returned when a feature binding accompanies a
	// prebuilt nickname. Features of a prebuilt model come from its recipe.
	ErrPrebuiltFeature = errors.New(
		"a feature binding cannot be combined with a prebuilt model nickname")

	// ErrUnknownPrebuilt is returned when a prebuilt nickname has no
	// registered recipe.
	ErrUnknownPrebuilt = errors.New("unrecognized prebuilt model nickname")

	// ErrRecipeShape is returned when a registered recipe is neither of the
	// two supported function shapes.
	ErrRecipeShape = errors.New("prebuilt recipe has an unsupported signature")
)

// ContractError reports a component model that fails the structural
// contract required for composition.
type ContractError struct {
	Feature   string // feature name the component was bound to
	Component string // component type name, empty if the binding was nil
	Reason    string
	Hint      string
}

func (e *ContractError) Error() string {
	msg := fmt.Sprintf("feature %q", e.Feature)
	if e.Component != "" {
		msg += fmt.Sprintf(" (component %s)", e.Component)
	}
	msg += ": " + e.Reason
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// UnknownFeatureError reports an explicit calling-sequence element that
// does not correspond to any supplied feature.
type UnknownFeatureError struct {
	Feature string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf(
		"calling sequence names feature %q, but no component model was bound to that feature",
		e.Feature)
}

// MissingFeatureError reports a supplied feature that an explicit calling
// sequence fails to mention. The explicit sequence must be a complete
// permutation of the feature set.
type MissingFeatureError struct {
	Feature string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf(
		"feature %q was supplied but does not appear in the model feature calling sequence",
		e.Feature)
}

// DuplicateFeatureError reports a feature named more than once in an
// explicit model feature calling sequence. The sequence must be a complete
// permutation of the feature set, so each feature appears exactly once.
type DuplicateFeatureError struct {
	Feature string
}

func (e *DuplicateFeatureError) Error() string {
	return fmt.Sprintf(
		"feature %q appears more than once in the model feature calling sequence",
		e.Feature)
}

// RepeatedMethodError reports a method name claimed for inheritance by more
// than one component model.
type RepeatedMethodError struct {
	Method string
}

func (e *RepeatedMethodError) Error() string {
	return fmt.Sprintf(
		"the method name %q appears in more than one component model; "+
			"rename the method in one of the components to disambiguate", e.Method)
}

// CallingSequenceCollisionError reports a mock-generation method name
// claimed by two components' calling sequences.
type CallingSequenceCollisionError struct {
	Method    string
	Component string // type name of the later component
}

func (e *CallingSequenceCollisionError) Error() string {
	return fmt.Sprintf(
		"the method name %q in the calling sequence of component %s also appears "+
			"in the calling sequence of another component", e.Method, e.Component)
}

// UnresolvedMethodError reports an inherited method name the owning
// component cannot resolve to a callable.
type UnresolvedMethodError struct {
	Feature   string
	Component string
	Method    string
}

func (e *UnresolvedMethodError) Error() string {
	return fmt.Sprintf(
		"feature %q (component %s): method %q is listed for inheritance but the component cannot resolve it",
		e.Feature, e.Component, e.Method)
}

// RedshiftMismatchError reports two components carrying disagreeing
// redshifts.
type RedshiftMismatchError struct {
	ComponentA string
	RedshiftA  float64
	ComponentB string
	RedshiftB  float64
}

func (e *RedshiftMismatchError) Error() string {
	return fmt.Sprintf(
		"inconsistent component model redshifts: component %s has redshift %g, component %s has redshift %g",
		e.ComponentA, e.RedshiftA, e.ComponentB, e.RedshiftB)
}

// PublicationTypeError reports a component whose Publications capability
// returned something other than a string or a []string.
type PublicationTypeError struct {
	Component string
}

func (e *PublicationTypeError) Error() string {
	return fmt.Sprintf(
		"the publications of component %s must be a string or a []string", e.Component)
}
