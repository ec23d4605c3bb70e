package repository

import (
	"github.com/shopspring/decimal"
)

// NUMERIC columns are selected as ::text and parsed here so money never
// round-trips through binary floats.
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func parseDecimalPtr(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func decimalText(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}
