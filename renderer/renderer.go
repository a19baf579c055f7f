// Package renderer turns books and reports into markdown strings for the
// terminal.
package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount formats a decimal amount in the given ISO 4217 currency, like
// "₱1,250.50".
func Amount(v decimal.Decimal, currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	dec := v.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedAmount returns Amount with an explicit sign.
// 0 is represented as a "-"
func SignedAmount(v decimal.Decimal, currency string) string {
	if v.IsZero() {
		return "-"
	}
	if v.IsPositive() {
		return "+" + Amount(v, currency)
	}
	return Amount(v, currency)
}
