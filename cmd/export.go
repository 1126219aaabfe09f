package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/statement"
	"github.com/etnz/statement/sheet"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	positionsFile    string
	transactionsFile string
	workbook         string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export positions and transactions as xlsx workbooks" }
func (*exportCmd) Usage() string {
	return `stmt -input <dump> export [-positions <file>] [-transactions <file>] [-o <file>]

  Writes the positions and the transactions in two xlsx workbooks. Empty
  record sets are not written.

  With -o, both are written as two sheets of a single workbook instead.

Usage Examples:
$ stmt -input statement.json export
$ stmt -input statement.json export -o 2024-03.xlsx
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.positionsFile, "positions", "stock_inventory.xlsx", "workbook for the positions")
	f.StringVar(&c.transactionsFile, "transactions", "stock_transactions.xlsx", "workbook for the transactions")
	f.StringVar(&c.workbook, "o", "", "single workbook for both positions and transactions")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStatement()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.workbook != "" {
		if err := writeFile(c.workbook, func(w io.Writer) error { return sheet.Encode(w, s) }); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Successfully exported %d positions and %d transactions to %s\n", len(s.Positions), len(s.Transactions), c.workbook)
		return subcommands.ExitSuccess
	}

	if err := c.exportSeparately(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *exportCmd) exportSeparately(s *statement.Statement) error {
	if len(s.Positions) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no positions found, skipping positions export.")
	} else {
		err := writeFile(c.positionsFile, func(w io.Writer) error { return sheet.EncodePositions(w, s.Positions) })
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Successfully exported %d positions to %s\n", len(s.Positions), c.positionsFile)
	}

	if len(s.Transactions) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no transactions this period, skipping transactions export.")
	} else {
		err := writeFile(c.transactionsFile, func(w io.Writer) error { return sheet.EncodeTransactions(w, s.Transactions) })
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Successfully exported %d transactions to %s\n", len(s.Transactions), c.transactionsFile)
	}
	return nil
}

// writeFile creates name and writes it with encode.
func writeFile(name string, encode func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", name, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %q: %w", name, err)
	}
	return f.Close()
}
