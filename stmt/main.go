package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/statement/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Completion().Complete(name)
	cmd.LoadEnv()

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	// unknown subcommands are looked up as stmt-<subcommand> extensions.
	if sub := flag.Arg(0); sub != "" && !cmd.IsCommand(sub) && !isBuiltin(sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:], nil); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func isBuiltin(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	return false
}
