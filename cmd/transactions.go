package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/statement"
	"github.com/etnz/statement/renderer"
	"github.com/google/subcommands"
)

// transactionsCmd holds the flags for the 'transactions' subcommand.
type transactionsCmd struct {
	json bool
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "display the trades executed during the period" }
func (*transactionsCmd) Usage() string {
	return `stmt -input <dump> transactions [-json]

  Displays the trades found in the statement, with their net settlement,
  and the net cash flow of the period.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print transactions in JSONL format")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStatement()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := statement.EncodeTransactions(os.Stdout, s.Transactions); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.TransactionsMarkdown(s, Currency()))
	return subcommands.ExitSuccess
}
