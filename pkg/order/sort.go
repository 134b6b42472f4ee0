package order

import (
	"sort"

	"github.com/vireodb/vireo/pkg/common"
	"github.com/vireodb/vireo/pkg/vector"
)

// SortedOrder computes a permutation realizing the requested order. Ties
// break arbitrarily; use StableSortedOrder to keep input order among
// equal rows. Validation happens before any comparison work.
func SortedOrder(
	tbl *vector.Table,
	orders []OrderType,
	nullOrders []OrderByNullType) (*vector.SelectVector, error) {
	return sortedOrder(tbl, orders, nullOrders, false)
}

// StableSortedOrder is SortedOrder with the guarantee that rows comparing
// fully equal retain their original relative order.
func StableSortedOrder(
	tbl *vector.Table,
	orders []OrderType,
	nullOrders []OrderByNullType) (*vector.SelectVector, error) {
	return sortedOrder(tbl, orders, nullOrders, true)
}

// Sort materializes the table in sorted order. Equivalent to gathering by
// SortedOrder.
func Sort(
	tbl *vector.Table,
	orders []OrderType,
	nullOrders []OrderByNullType) (*vector.Table, error) {
	perm, err := SortedOrder(tbl, orders, nullOrders)
	if err != nil {
		return nil, err
	}
	return vector.Gather(tbl, perm)
}

// SortByKey materializes values in the order given by sorting keys.
func SortByKey(
	values *vector.Table,
	keys *vector.Table,
	orders []OrderType,
	nullOrders []OrderByNullType) (*vector.Table, error) {
	if values.Card() != keys.Card() {
		return nil, common.InvalidArgument(
			"values row count %d != keys row count %d",
			values.Card(), keys.Card())
	}
	perm, err := SortedOrder(keys, orders, nullOrders)
	if err != nil {
		return nil, err
	}
	return vector.Gather(values, perm)
}

func sortedOrder(
	tbl *vector.Table,
	orders []OrderType,
	nullOrders []OrderByNullType,
	stable bool) (*vector.SelectVector, error) {
	orders, nullOrders, err := normalizeSpec(tbl, orders, nullOrders)
	if err != nil {
		return nil, err
	}

	n := tbl.Card()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if n == 0 {
		return vector.NewSelectVector3(perm), nil
	}

	cmp := NewRowComparator(tbl.Columns(), orders, nullOrders)
	less := func(i, j int) bool {
		return cmp.Compare(perm[i], perm[j]) < 0
	}
	if stable {
		sort.SliceStable(perm, less)
	} else {
		sort.Slice(perm, less)
	}
	return vector.NewSelectVector3(perm), nil
}

// normalizeSpec validates shapes, resolves defaults (ascending, nulls
// first) and rejects unorderable key kinds, all before any sort work.
func normalizeSpec(
	tbl *vector.Table,
	orders []OrderType,
	nullOrders []OrderByNullType) ([]OrderType, []OrderByNullType, error) {
	if len(orders) != tbl.ColumnCount() {
		return nil, nil, common.InvalidArgument(
			"column order size %d != column count %d",
			len(orders), tbl.ColumnCount())
	}
	if len(nullOrders) != 0 && len(nullOrders) != len(orders) {
		return nil, nil, common.InvalidArgument(
			"null precedence size %d != column order size %d",
			len(nullOrders), len(orders))
	}

	retOrders := make([]OrderType, len(orders))
	for i, ot := range orders {
		if ot == OT_DEFAULT || ot == OT_INVALID {
			ot = OT_ASC
		}
		retOrders[i] = ot
	}
	retNullOrders := make([]OrderByNullType, len(orders))
	for i := range retNullOrders {
		nt := OBNT_DEFAULT
		if len(nullOrders) != 0 {
			nt = nullOrders[i]
		}
		if nt == OBNT_DEFAULT || nt == OBNT_INVALID {
			nt = OBNT_NULLS_FIRST
		}
		retNullOrders[i] = nt
	}

	for i := 0; i < tbl.ColumnCount(); i++ {
		if err := CheckOrderable(tbl.Column(i).Typ()); err != nil {
			return nil, nil, err
		}
	}
	return retOrders, retNullOrders, nil
}
