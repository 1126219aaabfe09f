package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatMoney formats an amount in major units of currency.
func formatMoney(v int64, currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	minor := decimal.NewFromInt(v).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// signedMoney is formatMoney with a sign, "-" for zero.
func signedMoney(v int64, currency string) string {
	switch {
	case v == 0:
		return "-"
	case v > 0:
		return "+" + formatMoney(v, currency)
	default:
		return formatMoney(v, currency)
	}
}
