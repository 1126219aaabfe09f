package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/statement"
	"github.com/etnz/statement/renderer"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	json   bool
	render string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "display the market value allocation of the positions" }
func (*chartCmd) Usage() string {
	return `stmt -input <dump> chart [-json] [-render <renderer>]

  Displays the share of each position in the total market value. Positions
  under 2% of the total are grouped into a single bucket.

  With -render, the allocation is piped in JSONL format to the
  'stmt-render-<renderer>' executable found in the PATH, that draws the chart.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the allocation in JSONL format")
	f.StringVar(&c.render, "render", "", "name of the chart renderer extension")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStatement()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	buckets := s.Distribution()

	switch {
	case c.render != "":
		var b bytes.Buffer
		if err := statement.EncodeDistribution(&b, buckets); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		found, code := RunExtension("render-"+c.render, f.Args(), &b)
		if !found {
			fmt.Fprintf(os.Stderr, "Error: no chart renderer %q, expected 'stmt-render-%s' in the PATH\n", c.render, c.render)
			return subcommands.ExitFailure
		}
		return subcommands.ExitStatus(code)

	case c.json:
		if err := statement.EncodeDistribution(os.Stdout, buckets); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}

	default:
		printMarkdown(renderer.DistributionMarkdown(buckets, Currency()))
	}
	return subcommands.ExitSuccess
}
