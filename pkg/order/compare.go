package order

import (
	"github.com/vireodb/vireo/pkg/common"
	"github.com/vireodb/vireo/pkg/util"
	"github.com/vireodb/vireo/pkg/vector"
)

// RowComparator compares two rows of a key column set under per-column
// directions and null precedences. It forms a strict weak ordering: two
// nulls tie, null vs value resolves by the column's precedence alone
// (never inverted by direction), and direction inverts only the order of
// two non-null values.
type RowComparator struct {
	_cols       []*vector.Vector
	_orders     []OrderType
	_nullOrders []OrderByNullType
}

func NewRowComparator(
	cols []*vector.Vector,
	orders []OrderType,
	nullOrders []OrderByNullType) *RowComparator {
	util.AssertFunc(len(cols) == len(orders))
	util.AssertFunc(len(cols) == len(nullOrders))
	return &RowComparator{
		_cols:       cols,
		_orders:     orders,
		_nullOrders: nullOrders,
	}
}

// Compare returns -1/0/+1 for window rows lRow, rRow. The first key column
// that does not tie decides.
func (cmp *RowComparator) Compare(lRow, rRow int) int {
	for i, col := range cmp._cols {
		c := compareColumn(col, lRow, rRow, cmp._orders[i], cmp._nullOrders[i])
		if c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether the rows tie on the full key column set.
func (cmp *RowComparator) Equal(lRow, rRow int) bool {
	return cmp.Compare(lRow, rRow) == 0
}

func compareNull(lValid, rValid bool, nullOrder OrderByNullType) int {
	if !lValid {
		if nullOrder == OBNT_NULLS_FIRST {
			return -1
		}
		return 1
	}
	if nullOrder == OBNT_NULLS_FIRST {
		return 1
	}
	return -1
}

// compareColumn compares one column at window rows lRow, rRow. Struct
// children are compared in declared field order under NestedNullOrder;
// the struct row's own validity uses the caller's precedence.
func compareColumn(
	vec *vector.Vector,
	lRow, rRow int,
	ot OrderType,
	nt OrderByNullType) int {
	lValid := vec.RowIsValid(lRow)
	rValid := vec.RowIsValid(rRow)
	if !lValid || !rValid {
		if !lValid && !rValid {
			return 0
		}
		return compareNull(lValid, rValid, nt)
	}

	switch vec.PhyFormat() {
	case vector.PF_DICT:
		return compareColumn(
			vec.DictChild(),
			vec.DictIndex(lRow),
			vec.DictIndex(rRow),
			ot, nt)
	case vector.PF_STRUCT:
		lAbs := vec.Offset() + lRow
		rAbs := vec.Offset() + rRow
		for k := 0; k < vec.KidCount(); k++ {
			c := compareColumn(vec.Kid(k), lAbs, rAbs, ot, NestedNullOrder)
			if c != 0 {
				return c
			}
		}
		return 0
	case vector.PF_FLAT:
		fn, has := leafCompare[vec.Typ().GetInternalType()]
		util.AssertFunc(has)
		c := fn(vec, vec.Offset()+lRow, vec.Offset()+rRow)
		if ot == OT_DESC {
			c = -c
		}
		return c
	default:
		panic("usp")
	}
}

// leafCompareFn compares two non-null values at absolute storage
// positions, ascending.
type leafCompareFn func(vec *vector.Vector, lAbs, rAbs int) int

// Closed per-kind dispatch table. The struct/dictionary cases live in
// compareColumn; everything here is a scalar kind.
var leafCompare = map[common.PhyType]leafCompareFn{
	common.BOOL:    compareBool,
	common.INT8:    compareFixed[int8],
	common.INT16:   compareFixed[int16],
	common.INT32:   compareFixed[int32],
	common.INT64:   compareFixed[int64],
	common.UINT8:   compareFixed[uint8],
	common.UINT16:  compareFixed[uint16],
	common.UINT32:  compareFixed[uint32],
	common.UINT64:  compareFixed[uint64],
	common.FLOAT:   compareFloat[float32],
	common.DOUBLE:  compareFloat[float64],
	common.DECIMAL: compareDecimal,
	common.VARCHAR: compareVarchar,
	common.DATE:    compareDate,
}

func compareFixed[T int8 | int16 | int32 | int64 |
	uint8 | uint16 | uint32 | uint64](vec *vector.Vector, lAbs, rAbs int) int {
	data := vector.GetSliceInPhyFormatFlat[T](vec)
	lVal, rVal := data[lAbs], data[rAbs]
	switch {
	case lVal < rVal:
		return -1
	case lVal > rVal:
		return 1
	default:
		return 0
	}
}

// compareFloat orders NaN after every number; two NaNs tie.
func compareFloat[T float32 | float64](vec *vector.Vector, lAbs, rAbs int) int {
	data := vector.GetSliceInPhyFormatFlat[T](vec)
	lVal, rVal := data[lAbs], data[rAbs]
	if util.EqualFloat(lVal, rVal) {
		return 0
	}
	if util.GreaterFloat(lVal, rVal) {
		return 1
	}
	return -1
}

func compareBool(vec *vector.Vector, lAbs, rAbs int) int {
	data := vector.GetSliceInPhyFormatFlat[bool](vec)
	lVal, rVal := data[lAbs], data[rAbs]
	switch {
	case lVal == rVal:
		return 0
	case rVal:
		return -1
	default:
		return 1
	}
}

// compareDecimal aligns scale, so mixed-scale decimal windows order by
// numeric value.
func compareDecimal(vec *vector.Vector, lAbs, rAbs int) int {
	data := vector.GetSliceInPhyFormatFlat[common.Decimal](vec)
	lVal, rVal := data[lAbs], data[rAbs]
	if lVal.Equal(&rVal) {
		return 0
	}
	if lVal.Less(&rVal) {
		return -1
	}
	return 1
}

func compareVarchar(vec *vector.Vector, lAbs, rAbs int) int {
	data := vector.GetSliceInPhyFormatFlat[common.String](vec)
	return data[lAbs].Compare(&data[rAbs])
}

func compareDate(vec *vector.Vector, lAbs, rAbs int) int {
	data := vector.GetSliceInPhyFormatFlat[common.Date](vec)
	lVal, rVal := data[lAbs], data[rAbs]
	if lVal.Equal(&rVal) {
		return 0
	}
	if lVal.Less(&rVal) {
		return -1
	}
	return 1
}

// CheckOrderable rejects element kinds without a total order, recursing
// through struct children.
func CheckOrderable(lt common.LType) error {
	if lt.IsStruct() {
		for _, kid := range lt.Kids {
			if err := CheckOrderable(kid); err != nil {
				return err
			}
		}
		return nil
	}
	if _, has := leafCompare[lt.GetInternalType()]; !has {
		return common.UnsupportedType("cannot order %s", lt.String())
	}
	return nil
}
