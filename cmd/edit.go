package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/coffee"
	"github.com/etnz/coffee/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	run string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change the payer or a drink of a coffee run" }
func (*editCmd) Usage() string {
	return `coffee edit -run <id> payer <name>
coffee edit -run <id> drink <name> <price>
coffee edit <date> <time> payer|drink ...

  Changes the payer of a run, or adds or replaces the drink of <name> in it.
  The run <id> is the one displayed by 'coffee history'; it can also be typed
  unquoted before the kind of edit. Without arguments, the change is asked
  for interactively.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.run, "run", "", "id of the run to edit, as displayed by history")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, args := c.run, f.Args()
	if id == "" && len(args) == 0 {
		var err error
		if id, args, err = newPrompter().askEdit(); err != nil {
			return fail(err)
		}
	}
	if id == "" {
		id, args = positionalRun(args)
	}
	if id == "" {
		fmt.Fprintln(stderr, "Error: -run is required")
		return subcommands.ExitUsageError
	}

	mutate, err := editRun(coffee.RunID(id), args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	l, err := UpdateLedger(mutate)
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.History(l, *currency))
	fmt.Fprintf(stdout, "Successfully edited coffee run %s\n", id)
	return subcommands.ExitSuccess
}

// positionalRun reads the historical "<date> <time> payer|drink ..." form,
// where the run id is not quoted. It returns an empty id for any other form.
func positionalRun(args []string) (string, []string) {
	if len(args) < 3 {
		return "", args
	}
	switch strings.ToLower(args[2]) {
	case "payer", "drink":
		return args[0] + " " + args[1], args[2:]
	}
	return "", args
}

// editRun parses the edit arguments into the ledger mutation they describe.
func editRun(id coffee.RunID, args []string) (func(*coffee.Ledger) error, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing edit kind, want 'payer' or 'drink'")
	}
	switch strings.ToLower(args[0]) {
	case "payer":
		if len(args) != 2 {
			return nil, fmt.Errorf("usage: edit -run <id> payer <name>")
		}
		return func(l *coffee.Ledger) error { return l.EditRunPayer(id, args[1]) }, nil

	case "drink":
		drinks, err := coffee.ParseDrinks(args[1:])
		if err != nil {
			return nil, err
		}
		if len(drinks) != 1 {
			return nil, fmt.Errorf("usage: edit -run <id> drink <name> <price>")
		}
		d := drinks[0]
		return func(l *coffee.Ledger) error { return l.EditRunDrink(id, d.Name, d.Price) }, nil
	}
	return nil, fmt.Errorf("unknown edit kind %q, want 'payer' or 'drink'", args[0])
}
