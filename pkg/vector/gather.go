package vector

import (
	"golang.org/x/sync/errgroup"

	"github.com/vireodb/vireo/pkg/common"
	"github.com/vireodb/vireo/pkg/util"
)

// Gather materializes a new owned table with rows selected/reordered by
// sel. Columns are independent units of work and fan out; the call joins
// before returning.
func Gather(tbl *Table, sel *SelectVector) (*Table, error) {
	cols := make([]*Vector, tbl.ColumnCount())
	g := new(errgroup.Group)
	for i, col := range tbl.Columns() {
		i, col := i, col
		g.Go(func() error {
			out, err := GatherColumn(col, sel)
			if err != nil {
				return err
			}
			cols[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewTable(cols...), nil
}

// GatherColumn materializes one column. A nil selection means identity;
// an empty selection gathers zero rows. Dictionary windows flatten to
// their referenced kind; struct windows gather children recursively;
// validity is preserved.
func GatherColumn(vec *Vector, sel *SelectVector) (*Vector, error) {
	if sel == nil {
		sel = NewSelectVector2(0, vec.Card())
	}
	n := sel.Count()

	switch vec.PhyFormat() {
	case PF_DICT:
		idxs := make([]int, n)
		for i := 0; i < n; i++ {
			idxs[i] = vec.DictIndex(sel.GetIndex(i))
		}
		out, err := GatherColumn(vec.DictChild(), NewSelectVector3(idxs))
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			if !vec.RowIsValid(sel.GetIndex(i)) {
				out.SetNull(i)
			}
		}
		return out, nil

	case PF_STRUCT:
		kidSel := NewSelectVector(n)
		for i := 0; i < n; i++ {
			kidSel.SetIndex(i, vec.Offset()+sel.GetIndex(i))
		}
		kids := make([]*Vector, vec.KidCount())
		for k := 0; k < vec.KidCount(); k++ {
			kid, err := GatherColumn(vec.Kid(k), kidSel)
			if err != nil {
				return nil, err
			}
			kids[k] = kid
		}
		out := NewStructVector(vec.Typ(), n, nil, kids...)
		for i := 0; i < n; i++ {
			if !vec.RowIsValid(sel.GetIndex(i)) {
				out.SetNull(i)
			}
		}
		return out, nil

	case PF_FLAT:
		out, err := newFlatVectorChecked(vec.Typ(), n)
		if err != nil {
			return nil, err
		}
		if vec.Typ().GetInternalType().IsVarchar() {
			src := GetSliceInPhyFormatFlat[common.String](vec)
			dst := GetSliceInPhyFormatFlat[common.String](out)
			for i := 0; i < n; i++ {
				abs := vec.Offset() + sel.GetIndex(i)
				out.setStringUnsafe(dst, i, src[abs].DataSlice())
			}
		} else {
			sz := vec.Typ().GetInternalType().Size()
			for i := 0; i < n; i++ {
				abs := vec.Offset() + sel.GetIndex(i)
				copy(out.Data[i*sz:(i+1)*sz], vec.Data[abs*sz:(abs+1)*sz])
			}
		}
		for i := 0; i < n; i++ {
			if !vec.RowIsValid(sel.GetIndex(i)) {
				out.SetNull(i)
			}
		}
		return out, nil

	default:
		panic("usp")
	}
}

func newFlatVectorChecked(lt common.LType, count int) (*Vector, error) {
	sz := lt.GetInternalType().Size()
	data, err := util.CheckedAlloc(sz * count)
	if err != nil {
		return nil, common.ResourceExhausted("gather: %v", err)
	}
	vec := &Vector{
		_phyFormat: PF_FLAT,
		_typ:       lt,
		_count:     count,
		Mask:       &util.Bitmap{},
		Buf:        &VecBuffer{BufTyp: VBT_STANDARD, Data: data},
	}
	vec.Data = vec.Buf.Data
	return vec, nil
}
