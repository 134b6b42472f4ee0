package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vireodb/vireo/pkg/common"
)

func Test_flatVector(t *testing.T) {
	vec := NewFlat(common.BigintType(),
		[]int64{10, 20, 30, 40}, []bool{true, false, true, true})

	require.Equal(t, 4, vec.Card())
	assert.True(t, vec.RowIsValid(0))
	assert.False(t, vec.RowIsValid(1))
	assert.Equal(t, int64(30), vec.GetValue(2).I64)
	assert.True(t, vec.GetValue(1).IsNull)
	assert.Equal(t, "NULL", vec.GetValue(1).String())
}

func Test_sliceVector(t *testing.T) {
	vec := NewFlat(common.BigintType(),
		[]int64{10, 20, 30, 40, 50}, []bool{true, false, true, true, true})

	win := vec.Slice(1, 3)
	require.Equal(t, 3, win.Card())
	require.Equal(t, 1, win.Offset())
	assert.False(t, win.RowIsValid(0))
	assert.Equal(t, int64(30), win.GetValue(1).I64)
	assert.Equal(t, int64(40), win.GetValue(2).I64)

	// slicing a slice accumulates the offset
	win2 := win.Slice(2, 1)
	require.Equal(t, 3, win2.Offset())
	assert.Equal(t, int64(40), win2.GetValue(0).I64)
}

func Test_varcharVector(t *testing.T) {
	vec := NewVarcharFlat(
		[]string{"hello", "", "world"}, []bool{true, true, false})

	assert.Equal(t, "hello", vec.GetValue(0).Str)
	assert.Equal(t, "", vec.GetValue(1).Str)
	assert.True(t, vec.GetValue(2).IsNull)

	vec.SetString(1, "updated")
	assert.Equal(t, "updated", vec.GetValue(1).Str)
}

func Test_dictVector(t *testing.T) {
	child := NewVarcharFlat([]string{"b", "a", "c"}, nil)
	dict := NewDictVector(child, []int{2, 0, 1, 0},
		[]bool{true, true, true, false})

	require.Equal(t, 4, dict.Card())
	require.True(t, dict.PhyFormat().IsDict())
	assert.Equal(t, "c", dict.GetValue(0).Str)
	assert.Equal(t, "b", dict.GetValue(1).Str)
	assert.Equal(t, "a", dict.GetValue(2).Str)
	assert.True(t, dict.GetValue(3).IsNull)

	// a dict window resolves indices inside the window
	win := dict.Slice(1, 2)
	assert.Equal(t, "b", win.GetValue(0).Str)
	assert.Equal(t, "a", win.GetValue(1).Str)
}

func Test_structVector(t *testing.T) {
	names := NewVarcharFlat([]string{"x", "y", "z"}, nil)
	ages := NewFlat(common.BigintType(), []int64{1, 2, 3},
		[]bool{true, false, true})
	structType := common.StructType(
		[]string{"name", "age"},
		[]common.LType{common.VarcharType(), common.BigintType()})
	sv := NewStructVector(structType, 3, []bool{true, true, false},
		names, ages)

	require.Equal(t, 2, sv.KidCount())
	assert.Equal(t, "{x, 1}", sv.GetValue(0).String())
	assert.Equal(t, "{y, NULL}", sv.GetValue(1).String())
	assert.True(t, sv.GetValue(2).IsNull)

	// children are addressed through the parent window
	win := sv.Slice(1, 2)
	assert.Equal(t, "{y, NULL}", win.GetValue(0).String())
	assert.True(t, win.GetValue(1).IsNull)
}

func Test_setNull(t *testing.T) {
	vec := NewFlat(common.BigintType(), []int64{1, 2, 3}, nil)
	require.True(t, vec.RowIsValid(1))

	vec.SetNull(1)
	assert.False(t, vec.RowIsValid(1))
	assert.True(t, vec.RowIsValid(0))
	assert.True(t, vec.RowIsValid(2))
}

func Test_selectVector(t *testing.T) {
	sel := NewSelectVector3([]int{2, 0, 1})
	assert.True(t, sel.IsBijection())
	assert.Equal(t, 3, sel.Count())
	assert.Equal(t, 2, sel.GetIndex(0))

	notBij := NewSelectVector3([]int{0, 0, 1})
	assert.False(t, notBij.IsBijection())

	ident := NewSelectVector2(1, 3)
	assert.Equal(t, []int{1, 2, 3},
		[]int{ident.GetIndex(0), ident.GetIndex(1), ident.GetIndex(2)})

	var invalid SelectVector
	assert.True(t, invalid.Invalid())
	assert.Equal(t, 7, invalid.GetIndex(7))
}
