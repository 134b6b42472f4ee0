package common

import (
	"fmt"
	"strings"

	"github.com/huandu/go-clone"
)

// LType is the logical element kind of a column. STRUCT types carry their
// child types and field names in declared order.
type LType struct {
	Id    LTypeId
	PTyp  PhyType
	Width int
	Scale int

	Kids     []LType
	KidNames []string
}

func MakeLType(id LTypeId) LType {
	ret := LType{Id: id}
	ret.PTyp = ret.GetInternalType()
	return ret
}

func (lt LType) GetInternalType() PhyType {
	switch lt.Id {
	case LTID_BOOLEAN:
		return BOOL
	case LTID_TINYINT:
		return INT8
	case LTID_UTINYINT:
		return UINT8
	case LTID_SMALLINT:
		return INT16
	case LTID_USMALLINT:
		return UINT16
	case LTID_INTEGER:
		return INT32
	case LTID_UINTEGER:
		return UINT32
	case LTID_BIGINT, LTID_TIMESTAMP:
		return INT64
	case LTID_UBIGINT:
		return UINT64
	case LTID_FLOAT:
		return FLOAT
	case LTID_DOUBLE:
		return DOUBLE
	case LTID_DECIMAL:
		return DECIMAL
	case LTID_VARCHAR:
		return VARCHAR
	case LTID_DATE:
		return DATE
	case LTID_INTERVAL:
		return INTERVAL
	case LTID_STRUCT:
		return STRUCT
	case LTID_INVALID:
		return INVALID
	default:
		panic(fmt.Sprintf("usp logical type %d", int(lt.Id)))
	}
}

func (lt LType) Equal(o LType) bool {
	if lt.Id != o.Id {
		return false
	}
	if lt.Id == LTID_DECIMAL {
		return lt.Width == o.Width && lt.Scale == o.Scale
	}
	if lt.Id == LTID_STRUCT {
		if len(lt.Kids) != len(o.Kids) {
			return false
		}
		for i := range lt.Kids {
			if !lt.Kids[i].Equal(o.Kids[i]) {
				return false
			}
		}
	}
	return true
}

func (lt LType) IsStruct() bool {
	return lt.Id == LTID_STRUCT
}

// Copy deep-copies the type. STRUCT types own nested child slices, so a
// plain struct assignment would alias them.
func (lt LType) Copy() LType {
	return clone.Clone(lt).(LType)
}

func (lt LType) String() string {
	switch lt.Id {
	case LTID_DECIMAL:
		return fmt.Sprintf("DECIMAL(%d,%d)", lt.Width, lt.Scale)
	case LTID_STRUCT:
		kids := make([]string, len(lt.Kids))
		for i, kid := range lt.Kids {
			kids[i] = fmt.Sprintf("%s %s", lt.KidNames[i], kid.String())
		}
		return fmt.Sprintf("STRUCT(%s)", strings.Join(kids, ", "))
	default:
		return strings.TrimPrefix(lt.Id.String(), "LTID_")
	}
}

func BooleanType() LType {
	return MakeLType(LTID_BOOLEAN)
}

func TinyintType() LType {
	return MakeLType(LTID_TINYINT)
}

func SmallintType() LType {
	return MakeLType(LTID_SMALLINT)
}

func IntegerType() LType {
	return MakeLType(LTID_INTEGER)
}

func BigintType() LType {
	return MakeLType(LTID_BIGINT)
}

func UtinyintType() LType {
	return MakeLType(LTID_UTINYINT)
}

func UsmallintType() LType {
	return MakeLType(LTID_USMALLINT)
}

func UintegerType() LType {
	return MakeLType(LTID_UINTEGER)
}

func UbigintType() LType {
	return MakeLType(LTID_UBIGINT)
}

func FloatType() LType {
	return MakeLType(LTID_FLOAT)
}

func DoubleType() LType {
	return MakeLType(LTID_DOUBLE)
}

func DecimalType(width, scale int) LType {
	ret := MakeLType(LTID_DECIMAL)
	ret.Width = width
	ret.Scale = scale
	return ret
}

func VarcharType() LType {
	return MakeLType(LTID_VARCHAR)
}

func DateType() LType {
	return MakeLType(LTID_DATE)
}

func TimestampType() LType {
	return MakeLType(LTID_TIMESTAMP)
}

func IntervalType() LType {
	return MakeLType(LTID_INTERVAL)
}

func StructType(names []string, kids []LType) LType {
	if len(names) != len(kids) {
		panic("struct field name count mismatch")
	}
	ret := MakeLType(LTID_STRUCT)
	ret.Kids = make([]LType, len(kids))
	for i, kid := range kids {
		ret.Kids[i] = kid.Copy()
	}
	ret.KidNames = append([]string{}, names...)
	return ret
}

func CopyLTypes(typs ...LType) []LType {
	ret := make([]LType, 0, len(typs))
	for _, typ := range typs {
		ret = append(ret, typ.Copy())
	}
	return ret
}
