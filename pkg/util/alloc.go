package util

import "fmt"

type BytesAllocator interface {
	Alloc(sz int) []byte
	Free([]byte)
}

type DefaultAllocator struct {
}

func (alloc *DefaultAllocator) Alloc(sz int) []byte {
	return make([]byte, sz)
}

func (alloc *DefaultAllocator) Free(bytes []byte) {
}

var GAlloc BytesAllocator = &DefaultAllocator{}

// MaxAllocSize caps a single backing allocation.
const MaxAllocSize = 1 << 40

// CheckedAlloc reports size overflow instead of panicking so callers can
// surface resource exhaustion to their own callers.
func CheckedAlloc(sz int) ([]byte, error) {
	if sz < 0 || sz > MaxAllocSize {
		return nil, fmt.Errorf("allocation of %d bytes", sz)
	}
	return GAlloc.Alloc(sz), nil
}
