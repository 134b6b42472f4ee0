package vector

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/vireodb/vireo/pkg/util"
)

// Table is an ordered set of equal-length column windows.
type Table struct {
	_cols []*Vector
}

func NewTable(cols ...*Vector) *Table {
	for i := 1; i < len(cols); i++ {
		util.AssertFunc(cols[i].Card() == cols[0].Card())
	}
	return &Table{_cols: cols}
}

func (tbl *Table) ColumnCount() int {
	if tbl == nil {
		return 0
	}
	return len(tbl._cols)
}

// Card is the row count.
func (tbl *Table) Card() int {
	if tbl.ColumnCount() == 0 {
		return 0
	}
	return tbl._cols[0].Card()
}

func (tbl *Table) Column(i int) *Vector {
	return tbl._cols[i]
}

func (tbl *Table) Columns() []*Vector {
	return tbl._cols
}

func (tbl *Table) Slice(offset, count int) *Table {
	cols := make([]*Vector, len(tbl._cols))
	for i, col := range tbl._cols {
		cols[i] = col.Slice(offset, count)
	}
	return NewTable(cols...)
}

// Row boxes one row across all columns.
func (tbl *Table) Row(row int) []*Value {
	vals := make([]*Value, len(tbl._cols))
	for i, col := range tbl._cols {
		vals[i] = col.GetValue(row)
	}
	return vals
}

// Explain renders the column layout as a tree.
func (tbl *Table) Explain() string {
	tree := treeprint.New()
	tree.SetValue(fmt.Sprintf("table rows=%d", tbl.Card()))
	for i, col := range tbl._cols {
		explainVector(tree, fmt.Sprintf("col %d", i), col)
	}
	return tree.String()
}

func explainVector(tree treeprint.Tree, name string, vec *Vector) {
	desc := fmt.Sprintf("%s: %s %s len=%d off=%d",
		name, vec.Typ().String(), vec.PhyFormat().String(), vec.Card(), vec.Offset())
	if vec.Mask.IsMaskSet() {
		desc += " nullable"
	}
	switch vec.PhyFormat() {
	case PF_STRUCT:
		branch := tree.AddBranch(desc)
		for i := 0; i < vec.KidCount(); i++ {
			explainVector(branch, vec.Typ().KidNames[i], vec.Kid(i))
		}
	case PF_DICT:
		branch := tree.AddBranch(desc)
		explainVector(branch, "values", vec.DictChild())
	default:
		tree.AddNode(desc)
	}
}
