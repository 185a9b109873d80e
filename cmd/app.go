// Package cmd implements the CLI application to decide who pays the next coffee run.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/coffee"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "coffee_run_data.csv", "Path to the ledger file containing coffee runs (CSV or JSONL format)")
var currency = flag.String("currency", "USD", "Currency used to display prices")

// Verbose enables diagnostic logs.
var Verbose = flag.Bool("v", false, "verbose logging")

// Standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// commands lists the subcommands by name, including their aliases.
var commands = map[string]bool{}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	register(c, "runs", &addCmd{}, "add_run")
	register(c, "runs", &editCmd{}, "edit_run")
	register(c, "runs", &deleteCmd{}, "delete_run")

	register(c, "reports", &nextCmd{}, "calc_payer")
	register(c, "reports", &historyCmd{}, "")
	register(c, "reports", &balanceCmd{}, "")

	register(c, "help", &topicCmd{}, "")
}

func register(c *subcommands.Commander, group string, cmd subcommands.Command, alias string) {
	c.Register(cmd, group)
	commands[cmd.Name()] = true
	if alias != "" {
		c.Register(subcommands.Alias(alias, cmd), "aliases")
		commands[alias] = true
	}
}

// IsCommand reports whether name is a registered subcommand, or one of
// subcommands's builtin ones.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	return commands[name]
}

// DecodeLedger loads the ledger file, for read only commands.
func DecodeLedger() (*coffee.Ledger, error) {
	return coffee.OpenLedger(*ledgerFile)
}

// UpdateLedger runs one load-mutate-store cycle on the ledger file, under its
// lock. Nothing is written if mutate fails.
func UpdateLedger(mutate func(*coffee.Ledger) error) (*coffee.Ledger, error) {
	unlock, err := coffee.LockLedger(*ledgerFile)
	if err != nil {
		return nil, err
	}
	defer unlock()

	l, err := coffee.OpenLedger(*ledgerFile)
	if err != nil {
		return nil, err
	}
	if err := mutate(l); err != nil {
		return nil, err
	}
	if err := coffee.SaveLedger(*ledgerFile, l); err != nil {
		return nil, err
	}
	return l, nil
}

// fail reports err and returns the matching exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	if errors.Is(err, coffee.ErrInvalid) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
