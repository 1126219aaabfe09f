package statement

import "github.com/shopspring/decimal"

// TradeKind is the direction of a trade.
type TradeKind int

const (
	Other TradeKind = iota
	Buy
	Sell
)

func (k TradeKind) String() string {
	switch k {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "other"
	}
}

func (k TradeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Transaction is a trade executed during the statement period.
//
// Type is kept for display only; it is not one of the TransactionColumns.
type Transaction struct {
	Date   string // YYYY/MM/DD, as printed
	Kind   TradeKind
	Type   string // type marker, as printed, like 普通賣出
	Name   string
	Shares int64
	Price  decimal.Decimal
	Amount int64 // gross trade value
	Fee    int64
	Tax    int64 // only ever set on sells
}

// TransactionColumns lists the exported fields of a Transaction, in order.
var TransactionColumns = []string{
	"date", "kind", "name", "shares", "price", "amount", "fee", "tax", "net_settlement",
}

// transactionSchema maps transaction row tokens to the required fields.
// Token 1 is the type marker and token 7 the optional tax.
var transactionSchema = schema[Transaction]{
	textField(0, "date", func(t *Transaction) *string { return &t.Date }),
	textField(2, "name", func(t *Transaction) *string { return &t.Name }),
	integerField(3, "shares", func(t *Transaction) *int64 { return &t.Shares }),
	decimalField(4, "price", func(t *Transaction) *decimal.Decimal { return &t.Price }),
	integerField(5, "amount", func(t *Transaction) *int64 { return &t.Amount }),
	integerField(6, "fee", func(t *Transaction) *int64 { return &t.Fee }),
}

const (
	markerToken = 1
	taxToken    = 7
)

// ParseTransaction parses the tokens of a transaction row.
//
// The tax is read for sells only, and unlike other fields a missing or
// malformed tax does not fail the row: it is 0.
func (v Vocabulary) ParseTransaction(tokens []string) (Transaction, error) {
	t, err := transactionSchema.parse(tokens)
	if err != nil {
		return Transaction{}, err
	}
	t.Type = tokens[markerToken]
	t.Kind = v.TradeKind(t.Type)
	if t.Kind == Sell && len(tokens) > taxToken {
		if tax, err := parseInteger(tokens[taxToken]); err == nil {
			t.Tax = tax
		}
	}
	return t, nil
}

// NetSettlement returns the signed cash impact of the trade: negative when
// cash is paid out.
func (t Transaction) NetSettlement() int64 {
	if t.Kind == Buy {
		return -(t.Amount + t.Fee)
	}
	return t.Amount - t.Fee - t.Tax
}

// Values returns the transaction fields in TransactionColumns order.
func (t Transaction) Values() []any {
	return []any{
		t.Date, t.Kind, t.Name, t.Shares, t.Price, t.Amount, t.Fee, t.Tax, t.NetSettlement(),
	}
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	return marshalColumns(TransactionColumns, t.Values())
}
