package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/statement/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the statement KPIs" }
func (*summaryCmd) Usage() string {
	return `stmt -input <dump> summary

  Displays the total market value, cost and unrealized profit of the
  positions, and the net cash flow and number of trades of the period.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStatement()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(s, Currency()))
	return subcommands.ExitSuccess
}
