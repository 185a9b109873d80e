// Package coffee keeps the ledger of shared coffee runs and decides whose turn
// it is to pay.
//
// A run is recorded when one participant pays for the drinks of several
// consumers. The ledger is sparse: a run only lists the consumers that were
// actually charged, and the set of known participants (the schema) is derived
// from the runs themselves, growing when a new name appears and shrinking when
// the last run mentioning a name is deleted.
//
// The package is organized around:
//   - Ledger: the ordered list of runs, with all-or-nothing mutations
//     (AddRun, EditRunPayer, EditRunDrink, DeleteRun).
//   - Debt calculation: a pure query that computes, for each participant, what
//     they consumed minus what they paid, and selects the most indebted one
//     as the next payer (CalcNextPayer, Balances).
//   - Persistence: a format-neutral Table with explicit absent cells, and its
//     CSV and JSONL encodings.
//
// The ledger is never long-lived: a driver loads it, applies one operation and
// saves it back. This package serves as the foundation of the `coffee`
// command-line tool.
package coffee
