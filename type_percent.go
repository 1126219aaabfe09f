package statement

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a ratio expressed in percent: 12.5 means 12.5%.
type Percent float64

// percentOf returns part/whole in percent, or 0 for a zero whole.
func percentOf(part, whole int64) Percent {
	if whole == 0 {
		return 0
	}
	ratio := decimal.NewFromInt(part).Div(decimal.NewFromInt(whole))
	return Percent(ratio.Mul(decimal.NewFromInt(100)).InexactFloat64())
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
