package cmd

import (
	"context"
	"flag"

	"github.com/etnz/coffee"
	"github.com/etnz/coffee/renderer"
	"github.com/google/subcommands"
)

type nextCmd struct{}

func (*nextCmd) Name() string     { return "next" }
func (*nextCmd) Synopsis() string { return "tell who should pay the next coffee run" }
func (*nextCmd) Usage() string {
	return `coffee next [<absent>...]

  Tells who owes the most among the participants, leaving out the <absent>
  ones. See 'coffee topic payer'.
`
}

func (c *nextCmd) SetFlags(f *flag.FlagSet) {}

func (c *nextCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		return fail(err)
	}

	absentees := f.Args()
	name, err := coffee.CalcNextPayer(l, absentees...)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.NextPayer(name, absentees))
	return subcommands.ExitSuccess
}
