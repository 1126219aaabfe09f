package cmd

import (
	"flag"

	"github.com/etnz/statement/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the application, for the global
// flags and every subcommand.
func Completion() *complete.Command {
	c := &complete.Command{
		Sub: make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{
			"input":      predict.Files("*"),
			"select":     predict.Something,
			"vocabulary": predict.Files("*.y*ml"),
			"currency":   predict.Set{"TWD", "USD", "EUR", "JPY", "HKD"},
			"html":       predict.Nothing,
			"v":          predict.Nothing,
		},
	}
	for _, sub := range commands() {
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(fs)
		flags := make(map[string]complete.Predictor)
		fs.VisitAll(func(f *flag.Flag) { flags[f.Name] = predictFlag(f) })
		c.Sub[sub.Name()] = &complete.Command{Flags: flags}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		c.Sub["topic"].Args = predict.Set(topics)
	}
	return c
}

func predictFlag(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "positions", "transactions", "o":
		return predict.Files("*.xlsx")
	}
	return predict.Something
}
