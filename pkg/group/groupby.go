package group

import (
	"go.uber.org/zap"

	"github.com/vireodb/vireo/pkg/common"
	"github.com/vireodb/vireo/pkg/order"
	"github.com/vireodb/vireo/pkg/util"
	"github.com/vireodb/vireo/pkg/vector"
)

// GroupSorter binds to one key table, performs exactly one stable sort at
// construction and answers all group-shape queries from cached results.
// After construction it is safe for unlimited concurrent readers.
type GroupSorter struct {
	_keys         *vector.Table
	_includeNulls bool

	// key sorted order; gathering _keys by it yields the sorted key table
	_sorted *vector.SelectVector
	// rows participating in groups; with includeNulls=false the
	// composite-null rows sit past this point in sorted order
	_numKeys int
	// group start positions in sorted order, plus _numKeys as the final
	// entry
	_groupOffsets []int
	// group label per sorted position, non-decreasing from 0
	_labels []int
	// group label per original row; -1 for excluded rows
	_unsortedLabels []int

	_eq *order.RowComparator
}

// NewGroupSorter sorts the key table once: every column ascending, nulls
// last, stable. includeNulls=false drops any row with a null in any key
// column from the group set entirely.
func NewGroupSorter(keys *vector.Table, includeNulls bool) (*GroupSorter, error) {
	n := keys.Card()
	gs := &GroupSorter{
		_keys:         keys,
		_includeNulls: includeNulls,
	}

	sortTbl := keys
	var auxValids []bool
	if !includeNulls && keys.ColumnCount() > 0 {
		// prepend a column that is null exactly where the composite key
		// is null; nulls-last sorting then parks excluded rows at the
		// sorted tail
		auxValids = compositeValidity(keys)
		aux := vector.NewFlat[int8](common.TinyintType(), make([]int8, n), auxValids)
		cols := append([]*vector.Vector{aux}, keys.Columns()...)
		sortTbl = vector.NewTable(cols...)
	}

	orders := make([]order.OrderType, sortTbl.ColumnCount())
	nullOrders := make([]order.OrderByNullType, sortTbl.ColumnCount())
	for i := range orders {
		orders[i] = order.OT_ASC
		nullOrders[i] = order.OBNT_NULLS_LAST
	}
	sorted, err := order.StableSortedOrder(sortTbl, orders, nullOrders)
	if err != nil {
		return nil, err
	}
	gs._sorted = sorted

	gs._numKeys = n
	if auxValids != nil {
		gs._numKeys = 0
		for _, valid := range auxValids {
			if valid {
				gs._numKeys++
			}
		}
	}

	keyOrders := make([]order.OrderType, keys.ColumnCount())
	keyNullOrders := make([]order.OrderByNullType, keys.ColumnCount())
	for i := range keyOrders {
		keyOrders[i] = order.OT_ASC
		keyNullOrders[i] = order.OBNT_NULLS_LAST
	}
	gs._eq = order.NewRowComparator(keys.Columns(), keyOrders, keyNullOrders)

	gs.setGroupBoundaries()
	gs.setUnsortedLabels(n)

	util.Info("group sorter ready",
		zap.Int("rows", n),
		zap.Int("included", gs._numKeys),
		zap.Int("groups", gs.NumGroups()))
	return gs, nil
}

// compositeValidity is per-row AND of all key column validities.
func compositeValidity(keys *vector.Table) []bool {
	n := keys.Card()
	valids := make([]bool, n)
	for row := 0; row < n; row++ {
		valid := true
		for _, col := range keys.Columns() {
			if !col.RowIsValid(row) {
				valid = false
				break
			}
		}
		valids[row] = valid
	}
	return valids
}

func (gs *GroupSorter) setGroupBoundaries() {
	gs._labels = make([]int, gs._numKeys)
	gs._groupOffsets = []int{}
	if gs._numKeys > 0 {
		gs._groupOffsets = append(gs._groupOffsets, 0)
	}
	for pos := 1; pos < gs._numKeys; pos++ {
		prev := gs._sorted.GetIndex(pos - 1)
		cur := gs._sorted.GetIndex(pos)
		if !gs._eq.Equal(prev, cur) {
			gs._groupOffsets = append(gs._groupOffsets, pos)
		}
		gs._labels[pos] = len(gs._groupOffsets) - 1
	}
	gs._groupOffsets = append(gs._groupOffsets, gs._numKeys)
}

func (gs *GroupSorter) setUnsortedLabels(n int) {
	gs._unsortedLabels = make([]int, n)
	for i := range gs._unsortedLabels {
		gs._unsortedLabels[i] = -1
	}
	for pos := 0; pos < gs._numKeys; pos++ {
		gs._unsortedLabels[gs._sorted.GetIndex(pos)] = gs._labels[pos]
	}
}

// NumGroups is the count of included, distinct groups.
func (gs *GroupSorter) NumGroups() int {
	return len(gs._groupOffsets) - 1
}

// GroupOffsets returns group start positions in sorted order; length is
// NumGroups()+1 and the last entry equals the included row count, so each
// group's contiguous sorted range slices in O(1).
func (gs *GroupSorter) GroupOffsets() []int {
	return append([]int{}, gs._groupOffsets...)
}

// GroupLabels returns the label per sorted position over included rows.
func (gs *GroupSorter) GroupLabels() []int {
	return append([]int{}, gs._labels...)
}

// UnsortedLabels returns the label per original row; excluded rows are -1.
func (gs *GroupSorter) UnsortedLabels() []int {
	return append([]int{}, gs._unsortedLabels...)
}

// SortedOrder exposes the key sorted order computed at construction.
func (gs *GroupSorter) SortedOrder() *vector.SelectVector {
	return gs._sorted
}

// UniqueKeys gathers each group's first sorted row into a new key table,
// one row per group in group order.
func (gs *GroupSorter) UniqueKeys() (*vector.Table, error) {
	firsts := make([]int, gs.NumGroups())
	for g := range firsts {
		firsts[g] = gs._sorted.GetIndex(gs._groupOffsets[g])
	}
	return vector.Gather(gs._keys, vector.NewSelectVector3(firsts))
}

// SortValues gathers the value column into group-contiguous order
// restricted to included rows, values ascending within each group with
// nulls last, and returns the per-group count of non-null entries.
func (gs *GroupSorter) SortValues(valCol *vector.Vector) (*vector.Vector, []int, error) {
	if valCol.Card() != gs._keys.Card() {
		return nil, nil, common.InvalidArgument(
			"value row count %d != key row count %d",
			valCol.Card(), gs._keys.Card())
	}

	included := make([]int, gs._numKeys)
	for pos := 0; pos < gs._numKeys; pos++ {
		included[pos] = gs._sorted.GetIndex(pos)
	}
	grouped, err := vector.GatherColumn(valCol, vector.NewSelectVector3(included))
	if err != nil {
		return nil, nil, err
	}

	labels := make([]int64, gs._numKeys)
	for pos := range labels {
		labels[pos] = int64(gs._labels[pos])
	}
	labelVec := vector.NewFlat[int64](common.BigintType(), labels, nil)
	perm, err := order.StableSortedOrder(
		vector.NewTable(labelVec, grouped),
		[]order.OrderType{order.OT_ASC, order.OT_ASC},
		[]order.OrderByNullType{order.OBNT_NULLS_LAST, order.OBNT_NULLS_LAST})
	if err != nil {
		return nil, nil, err
	}
	sortedVals, err := vector.GatherColumn(grouped, perm)
	if err != nil {
		return nil, nil, err
	}

	// sortedVals is a fresh gather, so sorted positions are absolute
	validCounts := make([]int, gs.NumGroups())
	for g := 0; g < gs.NumGroups(); g++ {
		validCounts[g] = sortedVals.Mask.CountValidInRange(
			uint64(gs._groupOffsets[g]), uint64(gs._groupOffsets[g+1]))
	}
	return sortedVals, validCounts, nil
}
