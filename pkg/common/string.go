package common

import (
	"bytes"
	"unsafe"

	"github.com/vireodb/vireo/pkg/util"
)

// String is the in-vector text header. The pointed-to bytes live in the
// owning vector's arena, which keeps them reachable.
type String struct {
	Len  int
	Data unsafe.Pointer
}

func (s *String) DataSlice() []byte {
	return util.PointerToSlice[byte](s.Data, s.Len)
}

func (s *String) String() string {
	return string(s.DataSlice())
}

func (s *String) Equal(o *String) bool {
	if s.Len != o.Len {
		return false
	}
	return bytes.Equal(s.DataSlice(), o.DataSlice())
}

func (s *String) Less(o *String) bool {
	return bytes.Compare(s.DataSlice(), o.DataSlice()) < 0
}

func (s *String) Compare(o *String) int {
	return bytes.Compare(s.DataSlice(), o.DataSlice())
}

func (s *String) Length() int {
	return s.Len
}
