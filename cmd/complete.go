package cmd

import (
	"log"
	"os"

	"github.com/etnz/coffee"
	"github.com/etnz/coffee/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers a shell completion request for the program name, and
// exits. It returns immediately when the process is not a completion request.
//
// Install it with "COMP_INSTALL=1 coffee".
func Complete(name string) {
	Completion().Complete(name)
}

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	runs := complete.PredictFunc(predictRuns)
	people := complete.PredictFunc(predictParticipants)
	topics := complete.PredictFunc(predictTopics)

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*"),
			"currency":    predict.Set{"USD", "EUR", "GBP", "CHF", "JPY", "CAD"},
			"v":           predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add":        {Args: people},
			"add_run":    {Args: people},
			"edit":       {Flags: map[string]complete.Predictor{"run": runs}, Args: predict.Set{"payer", "drink"}},
			"edit_run":   {Flags: map[string]complete.Predictor{"run": runs}, Args: predict.Set{"payer", "drink"}},
			"delete":     {Args: runs},
			"delete_run": {Args: runs},
			"next":       {Args: people},
			"calc_payer": {Args: people},
			"history":    {},
			"balance":    {},
			"topic":      {Args: topics},
		},
	}
}

// completionLedger loads the ledger for predictions. Flags are not parsed
// yet, so the file comes from the environment.
func completionLedger() *coffee.Ledger {
	path := os.Getenv(EnvLedgerFile)
	if path == "" {
		path = *ledgerFile
	}
	l, err := coffee.OpenLedger(path)
	if err != nil {
		log.Printf("could not load ledger for completion: %v", err)
		return coffee.NewLedger()
	}
	return l
}

func predictRuns(prefix string) []string {
	var ids []string
	for r := range completionLedger().AllRuns() {
		ids = append(ids, string(r.ID()))
	}
	return ids
}

func predictParticipants(prefix string) []string {
	return completionLedger().Participants()
}

func predictTopics(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "*")
}
