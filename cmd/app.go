// Package cmd implements the CLI application to analyse brokerage statements.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/statement"
	"github.com/etnz/statement/renderer"
	"github.com/etnz/statement/source"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Environment variables backing the global flags. They are also passed to extensions.
const (
	EnvInput      = "STMT_INPUT"
	EnvSelect     = "STMT_SELECT"
	EnvVocabulary = "STMT_VOCABULARY"
	EnvCurrency   = "STMT_CURRENCY"
	EnvVerbose    = "STMT_VERBOSE"
)

const defaultCurrency = "TWD"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	inputFile      = flag.String("input", "", "Path to the statement table dump (.json or .csv), '-' for stdin. Defaults to $"+EnvInput)
	selector       = flag.String("select", "", "JSONPath expression selecting the pages in the table dump. Defaults to $"+EnvSelect)
	vocabularyFile = flag.String("vocabulary", "", "Path to a YAML vocabulary file. Defaults to $"+EnvVocabulary)
	currency       = flag.String("currency", "", "Currency of the statement amounts. Defaults to $"+EnvCurrency+" or "+defaultCurrency)
	asHTML         = flag.Bool("html", false, "Print reports as HTML instead of terminal markdown")
	Verbose        = flag.Bool("v", false, "Log dropped rows on stderr. Defaults to $"+EnvVerbose)
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range commands() {
		c.Register(cmd, group(cmd))
	}
}

func commands() []subcommands.Command {
	return []subcommands.Command{
		&positionsCmd{},
		&transactionsCmd{},
		&summaryCmd{},
		&chartCmd{},
		&exportCmd{},
		&topicCmd{},
	}
}

func group(c subcommands.Command) string {
	switch c.(type) {
	case *exportCmd:
		return "export"
	case *topicCmd:
		return "help"
	default:
		return "reports"
	}
}

// IsCommand reports whether name is a registered subcommand.
func IsCommand(name string) bool {
	for _, c := range commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// LoadEnv loads a .env file from the working directory, if any.
// Variables already set in the environment take precedence.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, cannot load .env file: %v", err)
	}
}

// setting returns the flag value, or the environment variable env, or def.
func setting(value, env, def string) string {
	if value != "" {
		return value
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func verbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// Currency returns the app currency used to format amounts.
func Currency() string { return setting(*currency, EnvCurrency, defaultCurrency) }

// DecodeVocabulary reads the app vocabulary file, or returns the default vocabulary.
func DecodeVocabulary() (statement.Vocabulary, error) {
	name := setting(*vocabularyFile, EnvVocabulary, "")
	if name == "" {
		return statement.DefaultVocabulary(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return statement.Vocabulary{}, err
	}
	defer f.Close()
	voc, err := statement.DecodeVocabulary(f)
	if err != nil {
		return statement.Vocabulary{}, fmt.Errorf("%s: %w", name, err)
	}
	return voc, nil
}

// DecodeStatement reads the app input document and extracts its records.
func DecodeStatement() (*statement.Statement, error) {
	name := setting(*inputFile, EnvInput, "")
	if name == "" {
		return nil, fmt.Errorf("no statement to read, use -input or $%s", EnvInput)
	}
	voc, err := DecodeVocabulary()
	if err != nil {
		return nil, fmt.Errorf("cannot load vocabulary: %w", err)
	}
	doc, err := source.DecodeFile(name, setting(*selector, EnvSelect, ""))
	if err != nil {
		return nil, fmt.Errorf("cannot read statement %q: %w", name, err)
	}

	s := statement.Extract(doc, voc)
	if verbose() {
		logDropped(s)
	}
	return s, nil
}

func logDropped(s *statement.Statement) {
	counts := make(map[statement.Shape]int)
	for _, o := range s.Dropped() {
		counts[o.Shape]++
		log.Printf("page %d table %d row %d: dropped %s row: %v", o.Page+1, o.Table+1, o.Row+1, o.Shape, o.Err)
	}
	log.Printf("extracted %d positions (%d dropped) and %d transactions (%d dropped)",
		len(s.Positions), counts[statement.PositionCandidate],
		len(s.Transactions), counts[statement.TransactionCandidate])
}

// printMarkdown prints a markdown report, rendered for the terminal or as HTML.
func printMarkdown(md string) {
	if *asHTML {
		html, err := renderer.HTML(md)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Print(md)
			return
		}
		fmt.Print(html)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// raw markdown is still readable.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
