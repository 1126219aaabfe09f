package statement

import "testing"

func TestSummarizePositions(t *testing.T) {
	tests := []struct {
		name      string
		positions []Position
		want      PositionSummary
	}{
		{"none", nil, PositionSummary{}},
		{
			"gains offset losses",
			[]Position{{TotalCost: 1000, MarketValue: 1200}, {TotalCost: 3000, MarketValue: 2800}},
			PositionSummary{TotalMarketValue: 4000, TotalCost: 4000, Profit: 0, ROI: 0},
		},
		{
			"loss",
			[]Position{{TotalCost: 1000, MarketValue: 900}, {TotalCost: 1000, MarketValue: 850}},
			PositionSummary{TotalMarketValue: 1750, TotalCost: 2000, Profit: -250, ROI: -12.5},
		},
		{
			"zero cost",
			[]Position{{TotalCost: 0, MarketValue: 500}},
			PositionSummary{TotalMarketValue: 500, TotalCost: 0, Profit: 500, ROI: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizePositions(tt.positions)
			if got.TotalMarketValue != tt.want.TotalMarketValue || got.TotalCost != tt.want.TotalCost || got.Profit != tt.want.Profit {
				t.Errorf("SummarizePositions() = %+v, want %+v", got, tt.want)
			}
			if !got.ROI.Equal(tt.want.ROI) {
				t.Errorf("SummarizePositions().ROI = %v, want %v", got.ROI, tt.want.ROI)
			}
		})
	}
}

func TestSummarizeTransactions(t *testing.T) {
	txs := []Transaction{
		{Kind: Buy, Amount: 50500, Fee: 80},
		{Kind: Sell, Amount: 50500, Fee: 80, Tax: 15},
		{Kind: Other, Amount: 100, Fee: 0},
	}
	got := SummarizeTransactions(txs)
	want := TransactionSummary{NetCashFlow: -50580 + 50405 + 100, Count: 3}
	if got != want {
		t.Errorf("SummarizeTransactions() = %+v, want %+v", got, want)
	}
	if got := SummarizeTransactions(nil); got != (TransactionSummary{}) {
		t.Errorf("SummarizeTransactions(nil) = %+v, want zero", got)
	}
}
