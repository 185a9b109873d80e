// Command coffee keeps the ledger of coffee runs and tells who should pay the
// next one.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coffee/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Complete("coffee")

	commander := subcommands.NewCommander(flag.CommandLine, "coffee")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if err := cmd.Configure(flag.CommandLine); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	if sub := flag.Arg(0); sub != "" && !cmd.IsCommand(sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
