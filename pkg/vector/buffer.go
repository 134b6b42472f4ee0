package vector

import (
	"unsafe"

	"github.com/vireodb/vireo/pkg/common"
	"github.com/vireodb/vireo/pkg/util"
)

type VecBufferType int

const (
	//array of data
	VBT_STANDARD VecBufferType = iota
	VBT_DICT
	VBT_CHILD
)

type VecBuffer struct {
	BufTyp VecBufferType
	Data   []byte
	Sel    *SelectVector
	Child  *Vector
	// arena keeps varchar payload bytes reachable while String headers
	// live inside Data
	_arena [][]byte
}

func NewBuffer(sz int) *VecBuffer {
	return &VecBuffer{
		BufTyp: VBT_STANDARD,
		Data:   util.GAlloc.Alloc(sz),
	}
}

func NewStandardBuffer(lt common.LType, cap int) *VecBuffer {
	return NewBuffer(lt.GetInternalType().Size() * cap)
}

func NewDictBuffer(sel *SelectVector, child *Vector) *VecBuffer {
	return &VecBuffer{
		BufTyp: VBT_DICT,
		Sel:    sel,
		Child:  child,
	}
}

func (buf *VecBuffer) GetSelVector() *SelectVector {
	util.AssertFunc(buf.BufTyp == VBT_DICT)
	return buf.Sel
}

// AppendBytes copies b into the arena and returns a stable pointer to the
// copy.
func (buf *VecBuffer) AppendBytes(b []byte) unsafe.Pointer {
	blk := make([]byte, len(b))
	copy(blk, b)
	buf._arena = append(buf._arena, blk)
	if len(blk) == 0 {
		return nil
	}
	return util.BytesSliceToPointer(blk)
}
