// Package mock drives mock galaxy population. It consumes only the
// composite model's exported surface: the calling sequence, the output
// schema, the halo-property dependency list, the derived-haloprop
// constructors and the selection predicates.
package mock

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eteq/halotools/catalog"
	"github.com/eteq/halotools/empirical/factory"
)

// Option configures a population run.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

// WithLogger routes population logs to the given logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// MissingHalopropError reports a halo-catalog column the composite model
// requires but the input table lacks.
type MissingHalopropError struct {
	Column string
}

func (e *MissingHalopropError) Error() string {
	return fmt.Sprintf(
		"the halo table lacks the %q column required by the composite model", e.Column)
}

// Populate generates a galaxy table from a halo table.
//
// The sequence is fixed: derived halo properties are constructed first,
// then the halo-property dependencies are checked, the halo selection
// predicate is applied, the galaxy table is allocated (halo columns plus
// the composite's merged output schema), the calling sequence runs in
// order, and finally the galaxy selection predicate is applied.
//
// The input halo table is never mutated; each galaxy carries the columns
// of its parent halo.
func Populate(model *factory.CompositeModel, halos *catalog.Table, opts ...Option) (*catalog.Table, error) {
	cfg := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}
	logger := cfg.logger.With(zap.String("run_id", uuid.NewString()))

	// Work on a copy so derived columns never leak into the caller's table.
	working, err := halos.Filter(allTrue(halos.Len()))
	if err != nil {
		return nil, err
	}

	for name, fn := range model.NewHalopropFuncs() {
		if working.Has(name) {
			continue
		}
		vals, err := fn(working)
		if err != nil {
			return nil, fmt.Errorf("failed to construct halo property %q: %w", name, err)
		}
		if err := working.AddFloat64(name, vals); err != nil {
			return nil, fmt.Errorf("failed to construct halo property %q: %w", name, err)
		}
	}

	for _, column := range model.HalopropList() {
		if !working.Has(column) {
			return nil, &MissingHalopropError{Column: column}
		}
	}

	if cut := model.HaloSelection(); cut != nil {
		mask, err := cut(working)
		if err != nil {
			return nil, fmt.Errorf("halo selection failed: %w", err)
		}
		working, err = working.Filter(mask)
		if err != nil {
			return nil, fmt.Errorf("halo selection failed: %w", err)
		}
	}

	galaxies := working
	if err := galaxies.AllocateSchema(model.GalpropDtypes()); err != nil {
		return nil, fmt.Errorf("failed to allocate galaxy table: %w", err)
	}

	logger.Info("populating mock",
		zap.Int("n_halos", galaxies.Len()),
		zap.Float64("redshift", model.Redshift()),
		zap.Strings("calling_sequence", model.CallingSequence()))

	for _, name := range model.CallingSequence() {
		method, ok := model.Method(name)
		if !ok {
			return nil, fmt.Errorf("composite model cannot resolve calling-sequence method %q", name)
		}
		if err := method(galaxies); err != nil {
			return nil, fmt.Errorf("method %q failed: %w", name, err)
		}
	}

	if cut := model.GalaxySelection(); cut != nil {
		mask, err := cut(galaxies)
		if err != nil {
			return nil, fmt.Errorf("galaxy selection failed: %w", err)
		}
		galaxies, err = galaxies.Filter(mask)
		if err != nil {
			return nil, fmt.Errorf("galaxy selection failed: %w", err)
		}
	}

	logger.Info("mock populated", zap.Int("n_galaxies", galaxies.Len()))
	return galaxies, nil
}

func allTrue(n int) []bool {
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = true
	}
	return mask
}
