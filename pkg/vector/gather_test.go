package vector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vireodb/vireo/pkg/common"
)

func Test_gatherFlat(t *testing.T) {
	tbl := NewTable(
		NewFlat(common.BigintType(), []int64{10, 20, 30, 40},
			[]bool{true, false, true, true}),
		NewVarcharFlat([]string{"a", "b", "c", "d"}, nil),
	)

	out, err := Gather(tbl, NewSelectVector3([]int{3, 1, 1, 0}))
	require.NoError(t, err)
	require.Equal(t, 4, out.Card())

	assert.Equal(t, int64(40), out.Column(0).GetValue(0).I64)
	assert.True(t, out.Column(0).GetValue(1).IsNull)
	assert.True(t, out.Column(0).GetValue(2).IsNull)
	assert.Equal(t, int64(10), out.Column(0).GetValue(3).I64)
	assert.Equal(t, "d", out.Column(1).GetValue(0).Str)
	assert.Equal(t, "b", out.Column(1).GetValue(1).Str)
}

func Test_gatherIdentity(t *testing.T) {
	vec := NewFlat(common.BigintType(), []int64{1, 2, 3}, nil)

	out, err := GatherColumn(vec, nil)
	require.NoError(t, err)
	require.Equal(t, 3, out.Card())
	for row := 0; row < 3; row++ {
		assert.Equal(t, vec.GetValue(row).I64, out.GetValue(row).I64)
	}
}

// Gathering a dictionary window materializes the referenced values.
func Test_gatherDict(t *testing.T) {
	child := NewVarcharFlat([]string{"b", "a", "c"}, nil)
	dict := NewDictVector(child, []int{2, 0, 1, 0},
		[]bool{true, true, true, false})

	out, err := GatherColumn(dict, NewSelectVector3([]int{3, 2, 0}))
	require.NoError(t, err)
	require.True(t, out.PhyFormat().IsFlat())
	assert.True(t, out.GetValue(0).IsNull)
	assert.Equal(t, "a", out.GetValue(1).Str)
	assert.Equal(t, "c", out.GetValue(2).Str)
}

func Test_gatherStruct(t *testing.T) {
	names := NewVarcharFlat([]string{"x", "y", "z"}, nil)
	ages := NewFlat(common.BigintType(), []int64{1, 2, 3},
		[]bool{true, false, true})
	structType := common.StructType(
		[]string{"name", "age"},
		[]common.LType{common.VarcharType(), common.BigintType()})
	sv := NewStructVector(structType, 3, []bool{true, true, false},
		names, ages)

	out, err := GatherColumn(sv, NewSelectVector3([]int{2, 0, 1}))
	require.NoError(t, err)
	require.True(t, out.PhyFormat().IsStruct())
	assert.True(t, out.GetValue(0).IsNull)
	assert.Equal(t, "{x, 1}", out.GetValue(1).String())
	assert.Equal(t, "{y, NULL}", out.GetValue(2).String())
}

// Gathering a window uses window rows, not storage rows.
func Test_gatherSliced(t *testing.T) {
	vec := NewFlat(common.BigintType(), []int64{10, 20, 30, 40, 50}, nil)
	win := vec.Slice(2, 3)

	out, err := GatherColumn(win, NewSelectVector3([]int{2, 0}))
	require.NoError(t, err)
	assert.Equal(t, int64(50), out.GetValue(0).I64)
	assert.Equal(t, int64(30), out.GetValue(1).I64)
}

func Test_tableSliceAndRow(t *testing.T) {
	tbl := NewTable(
		NewFlat(common.BigintType(), []int64{1, 2, 3}, nil),
		NewVarcharFlat([]string{"a", "b", "c"}, nil),
	)

	sliced := tbl.Slice(1, 2)
	require.Equal(t, 2, sliced.Card())
	vals := sliced.Row(0)
	assert.Equal(t, "2", vals[0].String())
	assert.Equal(t, "b", vals[1].String())
}

func Test_tableExplain(t *testing.T) {
	ages := NewFlat(common.BigintType(), []int64{1, 2},
		[]bool{true, false})
	structType := common.StructType(
		[]string{"age"}, []common.LType{common.BigintType()})
	sv := NewStructVector(structType, 2, nil, ages)
	tbl := NewTable(sv)

	out := tbl.Explain()
	assert.True(t, strings.Contains(out, "table rows=2"))
	assert.True(t, strings.Contains(out, "age"))
	assert.True(t, strings.Contains(out, "nullable"))
}
