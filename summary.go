package statement

// PositionSummary is the roll-up of a set of positions.
type PositionSummary struct {
	TotalMarketValue int64
	TotalCost        int64
	Profit           int64   // TotalMarketValue - TotalCost
	ROI              Percent // Profit relative to TotalCost, 0 when there is no cost
}

// SummarizePositions computes the PositionSummary of positions.
func SummarizePositions(positions []Position) PositionSummary {
	var s PositionSummary
	for _, p := range positions {
		s.TotalMarketValue += p.MarketValue
		s.TotalCost += p.TotalCost
	}
	s.Profit = s.TotalMarketValue - s.TotalCost
	s.ROI = percentOf(s.Profit, s.TotalCost)
	return s
}

// TransactionSummary is the roll-up of a set of transactions.
type TransactionSummary struct {
	NetCashFlow int64 // sum of net settlements
	Count       int
}

// SummarizeTransactions computes the TransactionSummary of transactions.
func SummarizeTransactions(transactions []Transaction) TransactionSummary {
	s := TransactionSummary{Count: len(transactions)}
	for _, t := range transactions {
		s.NetCashFlow += t.NetSettlement()
	}
	return s
}
