package sheet

import (
	"bytes"
	"slices"
	"testing"

	"github.com/etnz/statement"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func readSheet(t *testing.T, data []byte, name string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("excelize.OpenReader() error = %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(name)
	if err != nil {
		t.Fatalf("GetRows(%q) error = %v", name, err)
	}
	return rows
}

func TestEncodePositions(t *testing.T) {
	positions := []statement.Position{{
		Code: "2330", Name: "台積電", SharesHeld: 1000,
		AverageCost: decimal.RequireFromString("500.5"), TotalCost: 500000,
		MarketPrice: decimal.RequireFromString("600"), MarketValue: 600000,
	}}
	var buf bytes.Buffer
	if err := EncodePositions(&buf, positions); err != nil {
		t.Fatalf("EncodePositions() error = %v", err)
	}

	rows := readSheet(t, buf.Bytes(), PositionsSheet)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if !slices.Equal(rows[0], statement.PositionColumns) {
		t.Errorf("header = %q, want %q", rows[0], statement.PositionColumns)
	}
	want := []string{"2330", "台積電", "1000", "500.5", "500000", "600", "600000", "100000", "20"}
	if !slices.Equal(rows[1], want) {
		t.Errorf("row = %q, want %q", rows[1], want)
	}
}

func TestEncode(t *testing.T) {
	s := statement.Extract(statement.Document{{{
		statement.Row("2024/03/05", "賣出", "ABC", "1000", "50.5", "50500", "80", "15"),
	}}}, statement.DefaultVocabulary())

	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if rows := readSheet(t, buf.Bytes(), PositionsSheet); len(rows) != 1 {
		t.Errorf("positions rows = %d, want the header only", len(rows))
	}
	rows := readSheet(t, buf.Bytes(), TransactionsSheet)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	want := []string{"2024/03/05", "sell", "ABC", "1000", "50.5", "50500", "80", "15", "50405"}
	if !slices.Equal(rows[1], want) {
		t.Errorf("row = %q, want %q", rows[1], want)
	}
}

func TestEncodeTransactions_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, nil); err != nil {
		t.Fatalf("EncodeTransactions() error = %v", err)
	}
	rows := readSheet(t, buf.Bytes(), TransactionsSheet)
	if len(rows) != 1 || !slices.Equal(rows[0], statement.TransactionColumns) {
		t.Errorf("rows = %q, want the header only", rows)
	}
}
