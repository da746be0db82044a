package catalog

import (
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eteq/halotools/galprops"
)

func TestTableAddAndAccess(t *testing.T) {
	tbl := New(3)
	require.NoError(t, tbl.AddFloat64("halo_mvir", []float64{1e12, 1e13, 1e14}))
	require.NoError(t, tbl.AddInt64("halo_id", []int64{1, 2, 3}))

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"halo_mvir", "halo_id"}, tbl.ColumnNames())

	mvir, err := tbl.Float64s("halo_mvir")
	require.NoError(t, err)
	assert.Equal(t, 1e13, mvir[1])

	// Accessor returns the live slice; writes land in the table.
	mvir[1] = 5e13
	again, err := tbl.Float64s("halo_mvir")
	require.NoError(t, err)
	assert.Equal(t, 5e13, again[1])
}

func TestTableAddErrors(t *testing.T) {
	tbl := New(2)
	require.NoError(t, tbl.AddFloat64("halo_mvir", []float64{1, 2}))

	err := tbl.AddFloat64("halo_mvir", []float64{3, 4})
	assert.ErrorIs(t, err, ErrColumnExists)

	err = tbl.AddInt64("halo_id", []int64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = tbl.Float64s("halo_zhalf")
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = tbl.Int64s("halo_mvir")
	assert.ErrorIs(t, err, ErrDtypeMismatch)
}

func TestAllocateSchema(t *testing.T) {
	tbl := New(4)
	require.NoError(t, tbl.AddFloat64("stellar_mass", []float64{1, 2, 3, 4}))

	schema := galprops.Schema{
		galprops.Float64("stellar_mass"), // already present, left untouched
		galprops.Bool("quiescent"),
		galprops.Int64("halo_id"),
		galprops.String("sfr_designation"),
	}
	require.NoError(t, tbl.AllocateSchema(schema))

	sm, err := tbl.Float64s("stellar_mass")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, sm)

	q, err := tbl.Bools("quiescent")
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, false}, q)

	s, err := tbl.Strings("sfr_designation")
	require.NoError(t, err)
	assert.Len(t, s, 4)
}

func TestAllocateUnsupportedDtype(t *testing.T) {
	tbl := New(1)
	err := tbl.Allocate("bad", arrow.PrimitiveTypes.Float32)
	assert.ErrorIs(t, err, ErrUnsupportedDtype)
}

func TestFilter(t *testing.T) {
	tbl := New(4)
	require.NoError(t, tbl.AddFloat64("halo_mvir", []float64{1, 2, 3, 4}))
	require.NoError(t, tbl.AddBool("quiescent", []bool{true, false, true, false}))

	out, err := tbl.Filter([]bool{true, false, false, true})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Len())

	mvir, err := out.Float64s("halo_mvir")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4}, mvir)

	q, err := out.Bools("quiescent")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, q)

	_, err = tbl.Filter([]bool{true})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
