package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
)

const (
	EnvLedgerFile = "COFFEE_LEDGER_FILE"
	EnvCurrency   = "COFFEE_CURRENCY"
	EnvVerbose    = "COFFEE_VERBOSE"
)

// envFlags maps global flag names to the environment variable providing their
// default value.
var envFlags = map[string]string{
	"ledger-file": EnvLedgerFile,
	"currency":    EnvCurrency,
	"v":           EnvVerbose,
}

// Configure completes the global flags once they have been parsed.
//
// Variables from a ".env" file in the working directory are added to the
// environment, without overriding it. Then every global flag not set on the
// command line takes its value from the environment, if present.
func Configure(f *flag.FlagSet) error {
	_ = godotenv.Load() // ignore if .env doesn't exist

	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	for name, env := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || set[name] || f.Lookup(name) == nil {
			continue
		}
		if err := f.Set(name, value); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, value, err)
		}
	}

	if money.GetCurrency(*currency) == nil {
		return fmt.Errorf("unknown currency %q", *currency)
	}

	log.SetFlags(0)
	if *Verbose {
		log.SetOutput(stderr)
	} else {
		log.SetOutput(io.Discard)
	}
	return nil
}
