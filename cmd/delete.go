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

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a coffee run" }
func (*deleteCmd) Usage() string {
	return `coffee delete <id>

  Deletes the run <id>, as displayed by 'coffee history'. The id may be typed
  unquoted: all arguments are joined by a space. Without arguments, the id is
  asked for interactively.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id := strings.Join(f.Args(), " ")
	if id == "" {
		var err error
		if id, err = newPrompter().ask("Input <run id> of the run to delete: "); err != nil {
			return fail(err)
		}
	}

	l, err := UpdateLedger(func(l *coffee.Ledger) error {
		return l.DeleteRun(coffee.RunID(id))
	})
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.History(l, *currency))
	fmt.Fprintf(stdout, "Successfully deleted coffee run %s\n", id)
	return subcommands.ExitSuccess
}
