package vector

import "fmt"

type PhyFormat int

const (
	PF_FLAT PhyFormat = iota
	PF_DICT
	PF_STRUCT
)

func (f PhyFormat) String() string {
	switch f {
	case PF_FLAT:
		return "flat"
	case PF_DICT:
		return "dictionary"
	case PF_STRUCT:
		return "struct"
	}
	panic(fmt.Sprintf("usp %d", f))
}

func (f PhyFormat) IsFlat() bool {
	return f == PF_FLAT
}

func (f PhyFormat) IsDict() bool {
	return f == PF_DICT
}

func (f PhyFormat) IsStruct() bool {
	return f == PF_STRUCT
}
