package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/eteq/halotools/catalog"
	"github.com/eteq/halotools/empirical/component"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.WarnLevel)
	return zap.New(core), logs
}

func TestParamCollisionWarns(t *testing.T) {
	a := newStub()
	a.Params = component.ParamDict{"x": 1}
	b := newStub()
	b.Params = component.ParamDict{"x": 2}

	logger, logs := observedLogger()
	_, err := New(Feature("a", a), Feature("b", b), WithLogger(logger))
	require.NoError(t, err)

	warnings := logs.FilterMessage("parameter appears in more than one component model")
	require.Equal(t, 1, warnings.Len())
	fields := warnings.All()[0].ContextMap()
	assert.Equal(t, "x", fields["param"])
}

func TestParamCollisionWarningSuppression(t *testing.T) {
	// One suppressing component silences the warning for the whole
	// composite, including collisions it is not itself part of.
	a := newStub()
	a.Params = component.ParamDict{"x": 1}
	b := newStub()
	b.Params = component.ParamDict{"x": 2}
	quiet := &suppressStub{stub: newStub()}

	logger, logs := observedLogger()
	model, err := New(
		Feature("a", a), Feature("b", b), Feature("quiet", quiet),
		ModelFeatureCallingSequence("a", "b", "quiet"),
		WithLogger(logger))
	require.NoError(t, err)

	assert.Zero(t, logs.FilterMessage("parameter appears in more than one component model").Len())

	// Suppression mutes the warning, not the merge itself.
	x, ok := model.Param("x")
	require.True(t, ok)
	assert.Equal(t, 2.0, x)
}

func TestAttrCollisionWarnsAndLaterWins(t *testing.T) {
	a := &attrStub{stub: newStub(), attrs: map[string]any{"prim_galprop_name": "stellar_mass"}}
	b := &attrStub{stub: newStub(), attrs: map[string]any{"prim_galprop_name": "luminosity"}}

	logger, logs := observedLogger()
	model, err := New(
		Feature("a", a), Feature("b", b),
		ModelFeatureCallingSequence("a", "b"),
		WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, 1,
		logs.FilterMessage("inherited attribute appears in more than one component model").Len())

	v, ok := model.Attr("prim_galprop_name")
	require.True(t, ok)
	assert.Equal(t, "luminosity", v)
}

func TestMissingCallingSequenceWarnsButComposes(t *testing.T) {
	comp := newStub().withMethod("helper") // inherited method, no sequence

	logger, logs := observedLogger()
	model, err := New(Feature("a", comp), WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, 1,
		logs.FilterMessage("component model has no mock-generation calling sequence").Len())
	assert.Empty(t, model.CallingSequence())

	_, ok := model.Method("helper")
	assert.True(t, ok)
}

func TestRestoreDoesNotRepeatSequenceWarnings(t *testing.T) {
	comp := newStub().withMethod("helper") // inherited method, no sequence

	logger, logs := observedLogger()
	model, err := New(Feature("a", comp), WithLogger(logger))
	require.NoError(t, err)

	require.NoError(t, model.Restore())
	require.NoError(t, model.Restore())

	// The warning fires once, at construction; restores re-derive quietly.
	assert.Equal(t, 1,
		logs.FilterMessage("component model has no mock-generation calling sequence").Len())
}

// countingSequencer tracks how often the composite queries its calling
// sequence.
type countingSequencer struct {
	*stub
	calls int
}

func (c *countingSequencer) MockGenerationCallingSequence() []string {
	c.calls++
	return []string{"assign_stellar_mass"}
}

func TestBuildCallingSequenceQueriesEachComponentOnce(t *testing.T) {
	comp := &countingSequencer{stub: newStub()}
	features := component.NewDictionary()
	features.Set("stellar_mass", comp)

	seq, err := buildCallingSequence(features, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"assign_stellar_mass"}, seq)
	assert.Equal(t, 1, comp.calls)
}

func TestNewHalopropCollisionWarns(t *testing.T) {
	fn := func(*catalog.Table) ([]float64, error) { return nil, nil }
	a := &newHalopropStub{stub: newStub(),
		funcs: map[string]component.HalopropFunc{"halo_custom": fn}}
	b := &newHalopropStub{stub: newStub(),
		funcs: map[string]component.HalopropFunc{"halo_custom": fn}}

	logger, logs := observedLogger()
	_, err := New(
		Feature("a", a), Feature("b", b),
		ModelFeatureCallingSequence("a", "b"),
		WithLogger(logger))
	require.NoError(t, err)

	warnings := logs.FilterMessage(
		"multiple components construct the same new halo property; keeping the first")
	require.Equal(t, 1, warnings.Len())
	assert.Equal(t, "halo_custom", warnings.All()[0].ContextMap()["haloprop"])
}

func TestHalopropListIsSortedUnion(t *testing.T) {
	a := &halopropStub{stub: newStub(), prim: "halo_mvir", sec: "halo_zhalf"}
	b := &halopropStub{stub: newStub(), prim: "halo_mvir"}

	model, err := New(Feature("a", a), Feature("b", b))
	require.NoError(t, err)

	assert.Equal(t, []string{"halo_mvir", "halo_zhalf"}, model.HalopropList())
}

func TestPublicationsUnion(t *testing.T) {
	t.Run("string and slice values merge and dedup", func(t *testing.T) {
		a := &pubStub{stub: newStub(), pubs: "arXiv:1001.0015"}
		b := &pubStub{stub: newStub(),
			pubs: []string{"arXiv:1304.5557", "arXiv:1001.0015"}}

		model, err := New(Feature("a", a), Feature("b", b))
		require.NoError(t, err)

		assert.Equal(t,
			[]string{"arXiv:1001.0015", "arXiv:1304.5557"}, model.Publications())
	})

	t.Run("any other type is fatal", func(t *testing.T) {
		a := &pubStub{stub: newStub(), pubs: 42}

		_, err := New(Feature("a", a))
		var bad *PublicationTypeError
		require.ErrorAs(t, err, &bad)
		assert.Contains(t, bad.Component, "pubStub")
	})
}

func TestCallingSequenceCollision(t *testing.T) {
	features := component.NewDictionary()
	features.Set("a", newStub().withSequenceMethod("assign_stellar_mass"))
	features.Set("b", newStub().withSequenceMethod("assign_stellar_mass"))

	_, err := buildCallingSequence(features, zap.NewNop())
	var collision *CallingSequenceCollisionError
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "assign_stellar_mass", collision.Method)
}

func TestKeywordsFloat64(t *testing.T) {
	kw := Keywords{"redshift": 1.5, "threshold": "not a number"}

	assert.Equal(t, 1.5, kw.Float64("redshift", 0))
	assert.Equal(t, 0.5, kw.Float64("threshold", 0.5))
	assert.Equal(t, 0.5, kw.Float64("absent", 0.5))
}
