package order

type OrderType int

const (
	OT_INVALID OrderType = iota
	OT_DEFAULT
	OT_ASC
	OT_DESC
)

type OrderByNullType int

const (
	OBNT_INVALID OrderByNullType = iota
	OBNT_DEFAULT
	OBNT_NULLS_FIRST
	OBNT_NULLS_LAST
)

// NestedNullOrder is the null precedence applied to struct children at
// every nesting depth, independent of the caller's precedence list and of
// direction: internal nulls always sort first. Keeping it a named value
// makes the policy visible at the comparator boundary.
const NestedNullOrder = OBNT_NULLS_FIRST

func (ot OrderType) String() string {
	switch ot {
	case OT_ASC:
		return "asc"
	case OT_DESC:
		return "desc"
	case OT_DEFAULT:
		return "default"
	}
	return "invalid"
}

func (nt OrderByNullType) String() string {
	switch nt {
	case OBNT_NULLS_FIRST:
		return "nulls first"
	case OBNT_NULLS_LAST:
		return "nulls last"
	case OBNT_DEFAULT:
		return "default"
	}
	return "invalid"
}
