package common

import (
	decimal2 "github.com/govalues/decimal"
)

type Decimal struct {
	decimal2.Decimal
}

func (dec *Decimal) Equal(o *Decimal) bool {
	return dec.Decimal.Cmp(o.Decimal) == 0
}

// Less aligns scale before comparing, so DECIMAL(9,2) and DECIMAL(9,4)
// values order by numeric value.
func (dec *Decimal) Less(o *Decimal) bool {
	return dec.Decimal.Cmp(o.Decimal) < 0
}

func (dec *Decimal) String() string {
	return dec.Decimal.String()
}

func NewDecimal(whole, frac int64, scale int) (Decimal, error) {
	d, err := decimal2.NewFromInt64(whole, frac, scale)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d}, nil
}

func ParseDecimal(s string, scale int) (Decimal, error) {
	d, err := decimal2.ParseExact(s, scale)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d}, nil
}
