package statement

import "github.com/shopspring/decimal"

// Position is a security held at the statement date.
type Position struct {
	Code        string
	Name        string
	SharesHeld  int64
	AverageCost decimal.Decimal
	TotalCost   int64
	MarketPrice decimal.Decimal
	MarketValue int64
}

// PositionColumns lists the exported fields of a Position, in order.
var PositionColumns = []string{
	"code", "name", "shares_held", "average_cost", "total_cost",
	"market_price", "market_value", "unrealized_pl", "return_pct",
}

// positionSchema maps position row tokens to fields. Token 0 is the position label.
var positionSchema = schema[Position]{
	textField(1, "code", func(p *Position) *string { return &p.Code }),
	textField(2, "name", func(p *Position) *string { return &p.Name }),
	integerField(3, "shares_held", func(p *Position) *int64 { return &p.SharesHeld }),
	decimalField(4, "average_cost", func(p *Position) *decimal.Decimal { return &p.AverageCost }),
	integerField(5, "total_cost", func(p *Position) *int64 { return &p.TotalCost }),
	decimalField(6, "market_price", func(p *Position) *decimal.Decimal { return &p.MarketPrice }),
	integerField(7, "market_value", func(p *Position) *int64 { return &p.MarketValue }),
}

// ParsePosition parses the tokens of a position row.
func ParsePosition(tokens []string) (Position, error) {
	return positionSchema.parse(tokens)
}

// UnrealizedPL returns the market value minus the total cost.
func (p Position) UnrealizedPL() int64 { return p.MarketValue - p.TotalCost }

// ReturnPct returns the unrealized P/L relative to the total cost, 0 when the cost is 0.
func (p Position) ReturnPct() Percent { return percentOf(p.UnrealizedPL(), p.TotalCost) }

// Values returns the position fields in PositionColumns order.
func (p Position) Values() []any {
	return []any{
		p.Code, p.Name, p.SharesHeld, p.AverageCost, p.TotalCost,
		p.MarketPrice, p.MarketValue, p.UnrealizedPL(), p.ReturnPct(),
	}
}

func (p Position) MarshalJSON() ([]byte, error) {
	return marshalColumns(PositionColumns, p.Values())
}
