package vector

// SelectVector is a row-index indirection. A sorted-order result is a
// SelectVector that is a bijection on [0, Count()).
type SelectVector struct {
	SelVec []int
}

func NewSelectVector(count int) *SelectVector {
	vec := &SelectVector{}
	vec.Init(count)
	return vec
}

func NewSelectVector2(start, count int) *SelectVector {
	vec := &SelectVector{}
	vec.Init(count)
	for i := 0; i < count; i++ {
		vec.SetIndex(i, start+i)
	}
	return vec
}

func NewSelectVector3(tuples []int) *SelectVector {
	return &SelectVector{SelVec: tuples}
}

func (svec *SelectVector) Invalid() bool {
	return len(svec.SelVec) == 0
}

func (svec *SelectVector) Init(cnt int) {
	svec.SelVec = make([]int, cnt)
}

func (svec *SelectVector) Count() int {
	return len(svec.SelVec)
}

func (svec *SelectVector) GetIndex(idx int) int {
	if svec.Invalid() {
		return idx
	}
	return svec.SelVec[idx]
}

func (svec *SelectVector) SetIndex(idx int, index int) {
	svec.SelVec[idx] = index
}

// IsBijection reports whether the selection holds every index in
// [0, Count()) exactly once. Violations are implementation bugs.
func (svec *SelectVector) IsBijection() bool {
	seen := make([]bool, len(svec.SelVec))
	for _, idx := range svec.SelVec {
		if idx < 0 || idx >= len(svec.SelVec) || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}
