package factory

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/eteq/halotools/empirical/component"
)

// Recipe builds the feature dictionary of a prebuilt composite model.
type Recipe func(kw Keywords) (*component.Dictionary, error)

// RecipeWithDirectives additionally returns supplementary construction
// directives, e.g. an explicit feature calling sequence.
type RecipeWithDirectives func(kw Keywords) (*component.Dictionary, *Supplementary, error)

var prebuiltRegistry = struct {
	mu sync.RWMutex
	m  map[string]any
}{
	m: make(map[string]any),
}

// RegisterPrebuilt registers a recipe under a nickname. The recipe must be
// a Recipe or a RecipeWithDirectives; any other shape is rejected when the
// nickname is built. Registering an already-taken nickname replaces the
// recipe, so callers can override the stock models.
func RegisterPrebuilt(nickname string, recipe any) error {
	if nickname == "" {
		return fmt.Errorf("%w: empty nickname", ErrUnknownPrebuilt)
	}
	prebuiltRegistry.mu.Lock()
	defer prebuiltRegistry.mu.Unlock()
	prebuiltRegistry.m[strings.ToLower(nickname)] = recipe
	return nil
}

// PrebuiltNames returns the registered nicknames, sorted.
func PrebuiltNames() []string {
	prebuiltRegistry.mu.RLock()
	defer prebuiltRegistry.mu.RUnlock()

	names := make([]string, 0, len(prebuiltRegistry.m))
	for name := range prebuiltRegistry.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewPrebuilt builds a registered prebuilt composite model. Nicknames are
// case-insensitive. Feature bindings and explicit calling sequences cannot
// accompany a prebuilt nickname: the recipe is the sole authority over both.
// Remaining options (logger, selection predicates) apply normally, with
// recipe-supplied directives taking precedence over option-supplied ones.
func NewPrebuilt(nickname string, kw Keywords, opts ...Option) (*CompositeModel, error) {
	cfg := newConfig(opts)
	if cfg.callingSequenceSet {
		return nil, ErrPrebuiltCallingSequence
	}
	if cfg.features.Len() > 0 {
		return nil, ErrPrebuiltFeature
	}

	prebuiltRegistry.mu.RLock()
	recipe, ok := prebuiltRegistry.m[strings.ToLower(nickname)]
	prebuiltRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrebuilt, nickname)
	}

	var (
		features *component.Dictionary
		supp     *Supplementary
		err      error
	)
	switch fn := recipe.(type) {
	case Recipe:
		features, err = fn(kw)
	case func(Keywords) (*component.Dictionary, error):
		features, err = fn(kw)
	case RecipeWithDirectives:
		features, supp, err = fn(kw)
	case func(Keywords) (*component.Dictionary, *Supplementary, error):
		features, supp, err = fn(kw)
	default:
		return nil, fmt.Errorf("%w: %q is registered as %T", ErrRecipeShape, nickname, recipe)
	}
	if err != nil {
		return nil, fmt.Errorf("prebuilt model %q: %w", nickname, err)
	}
	if features == nil || features.Len() == 0 {
		return nil, fmt.Errorf("prebuilt model %q: %w", nickname, ErrNoFeatures)
	}

	cfg.features = features
	if supp != nil {
		if supp.ModelFeatureCallingSequence != nil {
			cfg.callingSequence = supp.ModelFeatureCallingSequence
			cfg.callingSequenceSet = true
		}
		if supp.GalaxySelection != nil {
			cfg.galaxySelection = supp.GalaxySelection
		}
		if supp.HaloSelection != nil {
			cfg.haloSelection = supp.HaloSelection
		}
	}
	return compose(cfg)
}
