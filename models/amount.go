package models

import (
	"github.com/shopspring/decimal"
)

// Amount is a cleaned transaction amount. The zero value is 0.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// String renders the amount as a plain decimal number with no currency
// symbol or grouping. Whole amounts keep one fractional digit ("50.0").
func (a Amount) String() string {
	if a.IsInteger() {
		return a.StringFixed(1)
	}
	return a.Decimal.String()
}

func (a Amount) MarshalCSV() (string, error) {
	return a.String(), nil
}

func (a *Amount) UnmarshalCSV(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	a.Decimal = d
	return nil
}
