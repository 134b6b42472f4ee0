package common

import (
	"fmt"
	"unsafe"
)

type PhyType int

const (
	NA       PhyType = 0
	BOOL     PhyType = 1
	UINT8    PhyType = 2
	INT8     PhyType = 3
	UINT16   PhyType = 4
	INT16    PhyType = 5
	UINT32   PhyType = 6
	INT32    PhyType = 7
	UINT64   PhyType = 8
	INT64    PhyType = 9
	FLOAT    PhyType = 11
	DOUBLE   PhyType = 12
	INTERVAL PhyType = 21
	STRUCT   PhyType = 24
	VARCHAR  PhyType = 200
	DATE     PhyType = 207
	DECIMAL  PhyType = 209

	INVALID PhyType = 255
)

var pTypeToStr = map[PhyType]string{
	NA:       "NA",
	BOOL:     "BOOL",
	UINT8:    "UINT8",
	INT8:     "INT8",
	UINT16:   "UINT16",
	INT16:    "INT16",
	UINT32:   "UINT32",
	INT32:    "INT32",
	UINT64:   "UINT64",
	INT64:    "INT64",
	FLOAT:    "FLOAT",
	DOUBLE:   "DOUBLE",
	INTERVAL: "INTERVAL",
	STRUCT:   "STRUCT",
	VARCHAR:  "VARCHAR",
	DATE:     "DATE",
	DECIMAL:  "DECIMAL",
	INVALID:  "INVALID",
}

func (pt PhyType) String() string {
	if s, has := pTypeToStr[pt]; has {
		return s
	}
	panic(fmt.Sprintf("usp %d", pt))
}

var (
	boolVal bool
	f32Val  float32

	BoolSize     = int(unsafe.Sizeof(boolVal))
	Int8Size     = 1
	Int16Size    = Int8Size * 2
	Int32Size    = Int8Size * 4
	Int64Size    = Int8Size * 8
	Float32Size  = int(unsafe.Sizeof(f32Val))
	IntervalSize = int(unsafe.Sizeof(Interval{}))
	DateSize     = int(unsafe.Sizeof(Date{}))
	VarcharSize  = int(unsafe.Sizeof(String{}))
	DecimalSize  = int(unsafe.Sizeof(Decimal{}))
)

func (pt PhyType) Size() int {
	switch pt {
	case BOOL:
		return BoolSize
	case INT8, UINT8:
		return Int8Size
	case INT16, UINT16:
		return Int16Size
	case INT32, UINT32:
		return Int32Size
	case INT64, UINT64:
		return Int64Size
	case FLOAT:
		return Float32Size
	case DOUBLE:
		return Int64Size
	case VARCHAR:
		return VarcharSize
	case INTERVAL:
		return IntervalSize
	case DATE:
		return DateSize
	case DECIMAL:
		return DecimalSize
	case STRUCT:
		// no own payload, children carry the data
		return 0
	default:
		panic("usp")
	}
}

func (pt PhyType) IsStruct() bool {
	return pt == STRUCT
}

func (pt PhyType) IsVarchar() bool {
	return pt == VARCHAR
}
