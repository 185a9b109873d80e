package cmd

import (
	"flag"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
)

func TestCompletion(t *testing.T) {
	Register(subcommands.NewCommander(flag.NewFlagSet("coffee", flag.ContinueOnError), "coffee"))

	c := Completion()
	for name := range commands {
		assert.Contains(t, c.Sub, name)
	}
	assert.Contains(t, c.Flags, "ledger-file")
	assert.Contains(t, c.Sub["edit"].Flags, "run")
}

func TestPredict(t *testing.T) {
	path := scenarioLedger(t, "coffee_run_data.csv")
	t.Setenv(EnvLedgerFile, path)

	assert.Equal(t, []string{run1, "08/01/2025 09:30:00"}, predictRuns(""))
	assert.Equal(t, []string{"Bob", "Carol"}, predictParticipants(""))
	assert.Contains(t, predictTopics(""), "payer")
}
