package vector

import (
	"fmt"
	"strings"

	"github.com/vireodb/vireo/pkg/common"
)

// Value is a boxed scalar (or struct of scalars) for row inspection,
// printing and tests.
type Value struct {
	Typ    common.LType
	IsNull bool
	I64    int64
	U64    uint64
	F64    float64
	Bool   bool
	Str    string
	Dec    common.Decimal
	Date   common.Date
	Kids   []*Value
}

func (val *Value) String() string {
	if val.IsNull {
		return "NULL"
	}
	switch val.Typ.Id {
	case common.LTID_BOOLEAN:
		return fmt.Sprintf("%t", val.Bool)
	case common.LTID_TINYINT, common.LTID_SMALLINT,
		common.LTID_INTEGER, common.LTID_BIGINT, common.LTID_TIMESTAMP:
		return fmt.Sprintf("%d", val.I64)
	case common.LTID_UTINYINT, common.LTID_USMALLINT,
		common.LTID_UINTEGER, common.LTID_UBIGINT:
		return fmt.Sprintf("%d", val.U64)
	case common.LTID_FLOAT, common.LTID_DOUBLE:
		return fmt.Sprintf("%g", val.F64)
	case common.LTID_DECIMAL:
		return val.Dec.String()
	case common.LTID_VARCHAR:
		return val.Str
	case common.LTID_DATE:
		return fmt.Sprintf("%04d-%02d-%02d", val.Date.Year, val.Date.Month, val.Date.Day)
	case common.LTID_STRUCT:
		kids := make([]string, len(val.Kids))
		for i, kid := range val.Kids {
			kids[i] = kid.String()
		}
		return "{" + strings.Join(kids, ", ") + "}"
	default:
		panic("usp")
	}
}

// GetValue boxes the value at a window row.
func (vec *Vector) GetValue(row int) *Value {
	switch vec.PhyFormat() {
	case PF_DICT:
		if !vec.RowIsValid(row) {
			return &Value{Typ: vec.Typ(), IsNull: true}
		}
		return vec.DictChild().GetValue(vec.DictIndex(row))
	case PF_STRUCT:
		if !vec.RowIsValid(row) {
			return &Value{Typ: vec.Typ(), IsNull: true}
		}
		kids := make([]*Value, len(vec._kids))
		for i, kid := range vec._kids {
			kids[i] = kid.GetValue(vec._offset + row)
		}
		return &Value{Typ: vec.Typ(), Kids: kids}
	case PF_FLAT:
	default:
		panic("usp")
	}

	if !vec.RowIsValid(row) {
		return &Value{Typ: vec.Typ(), IsNull: true}
	}
	abs := vec._offset + row
	ret := &Value{Typ: vec.Typ()}
	switch vec.Typ().GetInternalType() {
	case common.BOOL:
		ret.Bool = GetSliceInPhyFormatFlat[bool](vec)[abs]
	case common.INT8:
		ret.I64 = int64(GetSliceInPhyFormatFlat[int8](vec)[abs])
	case common.INT16:
		ret.I64 = int64(GetSliceInPhyFormatFlat[int16](vec)[abs])
	case common.INT32:
		ret.I64 = int64(GetSliceInPhyFormatFlat[int32](vec)[abs])
	case common.INT64:
		ret.I64 = GetSliceInPhyFormatFlat[int64](vec)[abs]
	case common.UINT8:
		ret.U64 = uint64(GetSliceInPhyFormatFlat[uint8](vec)[abs])
	case common.UINT16:
		ret.U64 = uint64(GetSliceInPhyFormatFlat[uint16](vec)[abs])
	case common.UINT32:
		ret.U64 = uint64(GetSliceInPhyFormatFlat[uint32](vec)[abs])
	case common.UINT64:
		ret.U64 = GetSliceInPhyFormatFlat[uint64](vec)[abs]
	case common.FLOAT:
		ret.F64 = float64(GetSliceInPhyFormatFlat[float32](vec)[abs])
	case common.DOUBLE:
		ret.F64 = GetSliceInPhyFormatFlat[float64](vec)[abs]
	case common.DECIMAL:
		ret.Dec = GetSliceInPhyFormatFlat[common.Decimal](vec)[abs]
	case common.VARCHAR:
		s := GetSliceInPhyFormatFlat[common.String](vec)[abs]
		ret.Str = s.String()
	case common.DATE:
		ret.Date = GetSliceInPhyFormatFlat[common.Date](vec)[abs]
	default:
		panic("usp")
	}
	return ret
}
