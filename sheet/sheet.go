// Package sheet exports statement records as xlsx workbooks.
//
// Each record set is written on its own sheet: a header row with the record
// columns, then one row per record in the statement order.
package sheet

import (
	"fmt"
	"io"

	"github.com/etnz/statement"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by the encoders.
const (
	PositionsSheet    = "Positions"
	TransactionsSheet = "Transactions"
)

// table is the content of a single sheet.
type table struct {
	name    string
	columns []string
	rows    [][]any
}

func positionsTable(positions []statement.Position) table {
	t := table{name: PositionsSheet, columns: statement.PositionColumns}
	for _, p := range positions {
		t.rows = append(t.rows, p.Values())
	}
	return t
}

func transactionsTable(transactions []statement.Transaction) table {
	t := table{name: TransactionsSheet, columns: statement.TransactionColumns}
	for _, tx := range transactions {
		t.rows = append(t.rows, tx.Values())
	}
	return t
}

// EncodePositions writes a workbook with the positions sheet to w.
func EncodePositions(w io.Writer, positions []statement.Position) error {
	return encode(w, positionsTable(positions))
}

// EncodeTransactions writes a workbook with the transactions sheet to w.
func EncodeTransactions(w io.Writer, transactions []statement.Transaction) error {
	return encode(w, transactionsTable(transactions))
}

// Encode writes a workbook with both the positions and the transactions sheets to w.
func Encode(w io.Writer, s *statement.Statement) error {
	return encode(w, positionsTable(s.Positions), transactionsTable(s.Transactions))
}

func encode(w io.Writer, tables ...table) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		if i == 0 {
			// a new file comes with a default sheet.
			if err := f.SetSheetName(f.GetSheetName(0), t.name); err != nil {
				return fmt.Errorf("cannot name sheet %q: %w", t.name, err)
			}
		} else if _, err := f.NewSheet(t.name); err != nil {
			return fmt.Errorf("cannot create sheet %q: %w", t.name, err)
		}

		header := make([]any, len(t.columns))
		for j, c := range t.columns {
			header[j] = c
		}
		if err := f.SetSheetRow(t.name, "A1", &header); err != nil {
			return fmt.Errorf("cannot write %q header: %w", t.name, err)
		}
		for r, row := range t.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			values := make([]any, len(row))
			for j, v := range row {
				values[j] = cellValue(v)
			}
			if err := f.SetSheetRow(t.name, cell, &values); err != nil {
				return fmt.Errorf("cannot write %q row %d: %w", t.name, r+1, err)
			}
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

// cellValue converts record values to types excelize stores as numbers or text.
func cellValue(v any) any {
	switch v := v.(type) {
	case decimal.Decimal:
		return v.InexactFloat64()
	case statement.Percent:
		return float64(v)
	case fmt.Stringer:
		return v.String()
	default:
		return v
	}
}
