package coffee

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"
)

// Ledger represents the list of recorded coffee runs.
//
// Runs are kept in the order they were recorded. The set of participants is
// not stored: it is derived from the runs, so that a name exists exactly as
// long as one run refers to it.
//
// Every mutation is all-or-nothing: inputs are fully validated before the
// ledger is touched, so a failed call leaves it unchanged.
type Ledger struct {
	runs []*Run
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{runs: make([]*Run, 0)}
}

// Len returns the number of runs.
func (l *Ledger) Len() int { return len(l.runs) }

// AllRuns returns an iterator that yields each run in its original order.
func (l *Ledger) AllRuns() iter.Seq[Run] {
	return func(yield func(Run) bool) {
		for _, r := range l.runs {
			if !yield(*r) {
				return
			}
		}
	}
}

// Run returns the run with this id.
func (l *Ledger) Run(id RunID) (Run, bool) {
	i := l.index(id)
	if i < 0 {
		return Run{}, false
	}
	return *l.runs[i], true
}

// Participants returns the names of every consumer referenced by at least one
// run.
//
// The order is stable: names appear in the order of the run that introduced
// them, and alphabetically within a run.
func (l *Ledger) Participants() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, r := range l.runs {
		for _, name := range r.Consumers() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// Clone returns a deep copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	c := &Ledger{runs: make([]*Run, len(l.runs))}
	for i, r := range l.runs {
		c.runs[i] = r.clone()
	}
	return c
}

func (l *Ledger) index(id RunID) int {
	return slices.IndexFunc(l.runs, func(r *Run) bool { return r.id == id })
}

func (l *Ledger) find(id RunID) (*Run, error) {
	i := l.index(id)
	if i < 0 {
		return nil, &NotFoundError{ID: id}
	}
	return l.runs[i], nil
}

// AddRun records a new run paid by payer, timestamped now.
func (l *Ledger) AddRun(payer string, drinks ...Drink) (RunID, error) {
	return l.AddRunAt(time.Now(), payer, drinks...)
}

// AddRunAt records a new run paid by payer at the given moment and returns its id.
//
// There must be at least one drink, and consumer names must be unique within
// the run.
func (l *Ledger) AddRunAt(moment time.Time, payer string, drinks ...Drink) (RunID, error) {
	var errs []error
	if err := validatePayer(payer); err != nil {
		errs = append(errs, err)
	}
	if len(drinks) == 0 {
		errs = append(errs, errors.New("a run needs at least one drink"))
	}
	prices := make(map[string]Price, len(drinks))
	for _, d := range drinks {
		if err := validateConsumer(d.Name); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := prices[d.Name]; dup {
			errs = append(errs, fmt.Errorf("consumer %q appears more than once", d.Name))
			continue
		}
		if err := validatePrice(d.Name, d.Price); err != nil {
			errs = append(errs, err)
		}
		prices[d.Name] = d.Price
	}
	if err := invalid(errs...); err != nil {
		return "", err
	}

	id := newRunID(moment, func(id RunID) bool { return l.index(id) >= 0 })
	l.runs = append(l.runs, &Run{
		id:     id,
		time:   moment.Truncate(time.Second),
		payer:  payer,
		drinks: prices,
	})
	return id, nil
}

// EditRunPayer replaces the payer of a run.
func (l *Ledger) EditRunPayer(id RunID, payer string) error {
	r, err := l.find(id)
	if err != nil {
		return err
	}
	if err := validatePayer(payer); err != nil {
		return invalid(err)
	}
	r.payer = payer
	return nil
}

// EditRunDrink sets the price of a consumer's drink in a run, adding the
// consumer to the run if needed.
//
// Other runs are not affected: a new consumer stays absent from them.
func (l *Ledger) EditRunDrink(id RunID, name string, price Price) error {
	r, err := l.find(id)
	if err != nil {
		return err
	}
	if err := invalid(validateConsumer(name), validatePrice(name, price)); err != nil {
		return err
	}
	if r.drinks == nil {
		r.drinks = make(map[string]Price)
	}
	r.drinks[name] = price
	return nil
}

// DeleteRun removes a run. Participants only referenced by this run disappear
// from the ledger.
func (l *Ledger) DeleteRun(id RunID) error {
	i := l.index(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	l.runs = slices.Delete(l.runs, i, i+1)
	return nil
}

// append adds a run as is. Callers are responsible for its validity.
func (l *Ledger) append(r *Run) {
	l.runs = append(l.runs, r)
}
