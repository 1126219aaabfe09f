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

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct {
	json bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display the positions held at the statement date" }
func (*positionsCmd) Usage() string {
	return `stmt -input <dump> positions [-json]

  Displays the positions found in the statement, with their unrealized
  profit and loss, and the total market value and cost.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print positions in JSONL format")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStatement()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := statement.EncodePositions(os.Stdout, s.Positions); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.PositionsMarkdown(s, Currency()))
	return subcommands.ExitSuccess
}
