package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vireodb/vireo/pkg/common"
	"github.com/vireodb/vireo/pkg/vector"
)

func Test_compareTwoNullsEqual(t *testing.T) {
	col := i64Col([]int64{1, 2, 3, 4}, []bool{false, true, false, true})
	cmp := NewRowComparator(
		[]*vector.Vector{col},
		[]OrderType{OT_ASC},
		[]OrderByNullType{OBNT_NULLS_FIRST})

	assert.Equal(t, 0, cmp.Compare(0, 2))
	assert.True(t, cmp.Equal(0, 2))
	// null before value, regardless of direction
	assert.Equal(t, -1, cmp.Compare(0, 1))
	assert.Equal(t, 1, cmp.Compare(1, 0))

	desc := NewRowComparator(
		[]*vector.Vector{col},
		[]OrderType{OT_DESC},
		[]OrderByNullType{OBNT_NULLS_FIRST})
	assert.Equal(t, -1, desc.Compare(0, 1))
	// direction still inverts the value comparison
	assert.Equal(t, 1, desc.Compare(1, 3))
}

func Test_compareFloatNaN(t *testing.T) {
	nan := func() float64 {
		var zero float64
		return zero / zero
	}()
	col := vector.NewFlat(common.DoubleType(),
		[]float64{nan, 1.5, nan, -2}, nil)
	tbl := vector.NewTable(col)

	// NaN sorts after every number; two NaNs tie
	got, err := StableSortedOrder(tbl, []OrderType{OT_ASC}, nil)
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 0, 2}, asPerm(got))

	cmp := NewRowComparator(
		[]*vector.Vector{col},
		[]OrderType{OT_ASC},
		[]OrderByNullType{OBNT_NULLS_FIRST})
	assert.True(t, cmp.Equal(0, 2))
}

func Test_compareBoolean(t *testing.T) {
	col := vector.NewFlat(common.BooleanType(),
		[]bool{true, false, true}, nil)
	cmp := NewRowComparator(
		[]*vector.Vector{col},
		[]OrderType{OT_ASC},
		[]OrderByNullType{OBNT_NULLS_FIRST})

	assert.Equal(t, 1, cmp.Compare(0, 1))
	assert.Equal(t, -1, cmp.Compare(1, 0))
	assert.Equal(t, 0, cmp.Compare(0, 2))
}

func Test_compareDate(t *testing.T) {
	col := vector.NewFlat(common.DateType(), []common.Date{
		{Year: 2024, Month: 5, Day: 1},
		{Year: 2024, Month: 4, Day: 30},
		{Year: 2023, Month: 12, Day: 31},
		{Year: 2024, Month: 5, Day: 1},
	}, nil)
	tbl := vector.NewTable(col)

	got, err := StableSortedOrder(tbl, []OrderType{OT_ASC}, nil)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0, 3}, asPerm(got))
}

func Test_compareVarcharBytes(t *testing.T) {
	col := strCol([]string{"b", "", "ba", "a"}, nil)
	cmp := NewRowComparator(
		[]*vector.Vector{col},
		[]OrderType{OT_ASC},
		[]OrderByNullType{OBNT_NULLS_FIRST})

	assert.Equal(t, -1, cmp.Compare(1, 3))
	assert.Equal(t, -1, cmp.Compare(0, 2))
	assert.Equal(t, 1, cmp.Compare(0, 3))
}

func Test_checkOrderable(t *testing.T) {
	require.NoError(t, CheckOrderable(common.BigintType()))
	require.NoError(t, CheckOrderable(common.VarcharType()))
	require.NoError(t, CheckOrderable(common.DecimalType(18, 2)))
	require.ErrorIs(t, CheckOrderable(common.IntervalType()),
		common.ErrUnsupportedType)

	nested := common.StructType(
		[]string{"a", "iv"},
		[]common.LType{common.BigintType(), common.IntervalType()})
	require.ErrorIs(t, CheckOrderable(nested), common.ErrUnsupportedType)
}
