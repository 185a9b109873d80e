package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/coffee"
	"github.com/etnz/coffee/renderer"
	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new coffee run" }
func (*addCmd) Usage() string {
	return `coffee add <payer> <name> <price> [<name> <price>...]

  Records a coffee run paid by <payer>, with one drink per <name> <price>
  pair. Without arguments, the run is asked for interactively.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) == 0 {
		var err error
		if args, err = newPrompter().askRun(); err != nil {
			return fail(err)
		}
	}

	drinks, err := coffee.ParseDrinks(args[1:])
	if err != nil {
		return fail(err)
	}

	var id coffee.RunID
	l, err := UpdateLedger(func(l *coffee.Ledger) (err error) {
		id, err = l.AddRun(args[0], drinks...)
		return err
	})
	if err != nil {
		return fail(err)
	}

	r, _ := l.Run(id)
	printMarkdown(renderer.Run(r, *currency))
	fmt.Fprintf(stdout, "Successfully added coffee run %s to %s\n", id, *ledgerFile)
	return subcommands.ExitSuccess
}
