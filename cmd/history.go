package cmd

import (
	"context"
	"flag"

	"github.com/etnz/coffee"
	"github.com/etnz/coffee/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display all coffee runs" }
func (*historyCmd) Usage() string {
	return `coffee history

  Displays every recorded run with its id, payer, total and drinks.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.History(l, *currency))
	return subcommands.ExitSuccess
}

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display what everybody spent, paid and owes" }
func (*balanceCmd) Usage() string {
	return `coffee balance

  Displays, for every participant and payer, the total of their drinks, the
  total of the runs they paid, and what they owe, largest debt first.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Balances(coffee.Balances(l), *currency))
	return subcommands.ExitSuccess
}
