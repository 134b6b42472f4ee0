package vector

import (
	"go.uber.org/zap"

	"github.com/vireodb/vireo/pkg/common"
	"github.com/vireodb/vireo/pkg/util"
)

// Vector is an immutable logical window over column values. _offset is the
// start of the window inside backing storage; Mask holds validity at
// absolute storage positions. Struct children are referenced, not owned:
// a child is addressed through the parent's window at read time, so
// slicing a parent never touches child storage.
type Vector struct {
	_phyFormat PhyFormat
	_typ       common.LType
	_count     int
	_offset    int
	Data       []byte
	Mask       *util.Bitmap
	Buf        *VecBuffer
	_kids      []*Vector
}

func NewFlatVector(lt common.LType, count int) *Vector {
	vec := &Vector{
		_phyFormat: PF_FLAT,
		_typ:       lt,
		_count:     count,
		Mask:       &util.Bitmap{},
	}
	vec.Buf = NewStandardBuffer(lt, count)
	vec.Data = vec.Buf.Data
	return vec
}

// NewStructVector builds a struct window over child vectors. Children must
// have the parent's length. valids is the struct rows' own validity.
func NewStructVector(lt common.LType, count int, valids []bool, kids ...*Vector) *Vector {
	util.AssertFunc(lt.IsStruct())
	util.AssertFunc(len(kids) == len(lt.Kids))
	for _, kid := range kids {
		util.AssertFunc(kid.Card() == count)
	}
	vec := &Vector{
		_phyFormat: PF_STRUCT,
		_typ:       lt,
		_count:     count,
		Mask:       &util.Bitmap{},
		_kids:      kids,
	}
	setMask(vec.Mask, valids, count)
	return vec
}

// NewDictVector builds a dictionary-indirected window: indices per row,
// values in child. valids is the indirected rows' validity.
func NewDictVector(child *Vector, indices []int, valids []bool) *Vector {
	count := len(indices)
	vec := &Vector{
		_phyFormat: PF_DICT,
		_typ:       child.Typ(),
		_count:     count,
		Mask:       &util.Bitmap{},
	}
	vec.Buf = NewDictBuffer(NewSelectVector3(indices), child)
	setMask(vec.Mask, valids, count)
	return vec
}

func setMask(mask *util.Bitmap, valids []bool, count int) {
	if valids == nil {
		return
	}
	util.AssertFunc(len(valids) == count)
	mask.Init(count)
	for i, valid := range valids {
		mask.Set(uint64(i), valid)
	}
}

func (vec *Vector) Typ() common.LType {
	return vec._typ
}

func (vec *Vector) PhyFormat() PhyFormat {
	return vec._phyFormat
}

func (vec *Vector) Card() int {
	return vec._count
}

func (vec *Vector) Offset() int {
	return vec._offset
}

// RowIsValid reports the window row's own validity.
func (vec *Vector) RowIsValid(row int) bool {
	return vec.Mask.RowIsValid(uint64(vec._offset + row))
}

func (vec *Vector) SetNull(row int) {
	if vec.Mask.Invalid() {
		vec.Mask.Init(vec._offset + vec._count)
	}
	vec.Mask.SetInvalid(uint64(vec._offset + row))
}

// Slice narrows the window. Storage, masks and children are shared.
func (vec *Vector) Slice(offset, count int) *Vector {
	util.AssertFunc(offset >= 0 && count >= 0)
	util.AssertFunc(offset+count <= vec._count)
	ret := &Vector{
		_phyFormat: vec._phyFormat,
		_typ:       vec._typ,
		_count:     count,
		_offset:    vec._offset + offset,
		Data:       vec.Data,
		Mask:       vec.Mask,
		Buf:        vec.Buf,
		_kids:      vec._kids,
	}
	return ret
}

func (vec *Vector) KidCount() int {
	return len(vec._kids)
}

func (vec *Vector) Kid(i int) *Vector {
	util.AssertFunc(vec._phyFormat.IsStruct())
	return vec._kids[i]
}

func (vec *Vector) DictChild() *Vector {
	util.AssertFunc(vec._phyFormat.IsDict())
	return vec.Buf.Child
}

// DictIndex resolves the window row to the child row holding its value.
func (vec *Vector) DictIndex(row int) int {
	util.AssertFunc(vec._phyFormat.IsDict())
	return vec.Buf.GetSelVector().GetIndex(vec._offset + row)
}

// GetSliceInPhyFormatFlat reinterprets the full backing storage; indexing
// is by absolute position (window offset + row).
func GetSliceInPhyFormatFlat[T any](vec *Vector) []T {
	util.AssertFunc(vec.PhyFormat().IsFlat())
	pSize := vec.Typ().GetInternalType().Size()
	return util.ToSlice[T](vec.Data, pSize)
}

// NewFlat copies typed values into a fresh flat vector. valids may be nil
// for an all-valid column.
func NewFlat[T any](lt common.LType, vals []T, valids []bool) *Vector {
	vec := NewFlatVector(lt, len(vals))
	data := GetSliceInPhyFormatFlat[T](vec)
	copy(data, vals)
	setMask(vec.Mask, valids, len(vals))
	return vec
}

func NewVarcharFlat(vals []string, valids []bool) *Vector {
	vec := NewFlatVector(common.VarcharType(), len(vals))
	data := GetSliceInPhyFormatFlat[common.String](vec)
	for i := range vals {
		vec.setStringUnsafe(data, i, []byte(vals[i]))
	}
	setMask(vec.Mask, valids, len(vals))
	return vec
}

func (vec *Vector) setStringUnsafe(data []common.String, abs int, payload []byte) {
	data[abs] = common.String{
		Data: vec.Buf.AppendBytes(payload),
		Len:  len(payload),
	}
}

// SetString writes a varchar payload at a window row.
func (vec *Vector) SetString(row int, s string) {
	util.AssertFunc(vec.Typ().GetInternalType().IsVarchar())
	data := GetSliceInPhyFormatFlat[common.String](vec)
	vec.setStringUnsafe(data, vec._offset+row, []byte(s))
}

func (vec *Vector) Print(prefix string, rowCount int) {
	fields := make([]zap.Field, 0, rowCount)
	for j := 0; j < rowCount; j++ {
		val := vec.GetValue(j)
		fields = append(fields, zap.String("", val.String()))
	}
	util.Info(prefix, fields...)
}
