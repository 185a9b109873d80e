package coffee

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"time"
)

// RunID identifies a run in a ledger.
//
// It is derived from the moment the run was recorded, formatted with
// RunIDLayout, and suffixed with "-2", "-3", ... when several runs are
// recorded within the same second. It must be treated as opaque.
type RunID string

// RunIDLayout is the time layout of the moment part of a RunID.
const RunIDLayout = "01/02/2006 15:04:05"

// newRunID returns the id for a run recorded at moment, that is not taken yet.
func newRunID(moment time.Time, taken func(RunID) bool) RunID {
	base := moment.Format(RunIDLayout)
	id := RunID(base)
	for n := 2; taken(id); n++ {
		id = RunID(fmt.Sprintf("%s-%d", base, n))
	}
	return id
}

// Time returns the moment encoded in the id, if any.
func (id RunID) Time() (time.Time, bool) {
	s := string(id)
	if len(s) < len(RunIDLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(RunIDLayout, s[:len(RunIDLayout)], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Drink is the price of one consumer's drink.
type Drink struct {
	Name  string
	Price Price
}

// ParseDrinks parses a list of "name price" pairs, as typed on a command line.
func ParseDrinks(args []string) ([]Drink, error) {
	if len(args)%2 != 0 {
		return nil, invalid(fmt.Errorf("drinks must be given as <name> <price> pairs, got %d arguments", len(args)))
	}
	drinks := make([]Drink, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		price, err := ParsePrice(args[i+1])
		if err != nil {
			return nil, err
		}
		drinks = append(drinks, Drink{Name: args[i], Price: price})
	}
	return drinks, nil
}

// Run is one recorded coffee run.
//
// A Run value is a read-only view; runs are modified through the Ledger.
type Run struct {
	id     RunID
	time   time.Time
	payer  string
	drinks map[string]Price // absent name: not charged in this run.
}

func (r Run) ID() RunID       { return r.id }
func (r Run) Time() time.Time { return r.time }
func (r Run) Payer() string   { return r.payer }

// Price returns the price recorded for a consumer, and false if the consumer
// was not part of this run.
func (r Run) Price(name string) (Price, bool) {
	p, ok := r.drinks[name]
	return p, ok
}

// Consumers returns the names of the consumers of this run, sorted.
func (r Run) Consumers() []string {
	return slices.Sorted(maps.Keys(r.drinks))
}

// Drinks iterates over the consumers of this run and their price, sorted by name.
func (r Run) Drinks() iter.Seq2[string, Price] {
	return func(yield func(string, Price) bool) {
		for _, name := range r.Consumers() {
			if !yield(name, r.drinks[name]) {
				return
			}
		}
	}
}

// Total is the sum of all the drinks of this run.
func (r Run) Total() Price {
	var total Price
	for _, p := range r.drinks {
		total = total.Add(p)
	}
	return total
}

func (r *Run) clone() *Run {
	c := *r
	c.drinks = maps.Clone(r.drinks)
	return &c
}
