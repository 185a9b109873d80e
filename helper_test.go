package coffee

import (
	"testing"
	"time"
)

// t0 is the moment used by tests to record runs.
var t0 = time.Date(2025, time.August, 1, 8, 30, 0, 0, time.Local)

// D is a helper for tests to create a drink from a const price.
func D(name string, price float64) Drink { return Drink{Name: name, Price: P(price)} }

// mustAdd records a run at moment or fails the test.
func mustAdd(t *testing.T, l *Ledger, moment time.Time, payer string, drinks ...Drink) RunID {
	t.Helper()
	id, err := l.AddRunAt(moment, payer, drinks...)
	if err != nil {
		t.Fatalf("AddRunAt(%q) returned an unexpected error: %v", payer, err)
	}
	return id
}

// scenarioB is the two-run ledger used by several tests:
//
//	run1: Alice paid, Bob 2.0, Carol 3.0
//	run2: Bob paid, Bob 1.0, Carol 1.0
func scenarioB(t *testing.T) (l *Ledger, run1, run2 RunID) {
	t.Helper()
	l = NewLedger()
	run1 = mustAdd(t, l, t0, "Alice", D("Bob", 2.0), D("Carol", 3.0))
	run2 = mustAdd(t, l, t0.Add(time.Hour), "Bob", D("Bob", 1.0), D("Carol", 1.0))
	return l, run1, run2
}

// ledgerEqual reports whether two ledgers hold the same runs, compared
// through their serialized table.
func ledgerEqual(a, b *Ledger) bool {
	ta, tb := Serialize(a), Serialize(b)
	if len(ta.Columns) != len(tb.Columns) || len(ta.Rows) != len(tb.Rows) {
		return false
	}
	for i := range ta.Columns {
		if ta.Columns[i] != tb.Columns[i] {
			return false
		}
	}
	for i, ra := range ta.Rows {
		rb := tb.Rows[i]
		if ra.ID != rb.ID || ra.Payer != rb.Payer || !ra.Total.Equal(rb.Total) {
			return false
		}
		for j, ca := range ra.Cells {
			cb := rb.Cells[j]
			if ca.Present != cb.Present || !ca.Price.Equal(cb.Price) {
				return false
			}
		}
	}
	return true
}

// checkInvariants fails the test if l breaks any ledger invariant.
func checkInvariants(t *testing.T, l *Ledger) {
	t.Helper()
	ids := make(map[RunID]bool)
	referenced := make(map[string]bool)
	for r := range l.AllRuns() {
		if ids[r.ID()] {
			t.Errorf("duplicate run id %q", r.ID())
		}
		ids[r.ID()] = true
		if IsReserved(r.Payer()) {
			t.Errorf("run %q has reserved payer %q", r.ID(), r.Payer())
		}
		var sum Price
		for name, p := range r.Drinks() {
			if IsReserved(name) {
				t.Errorf("run %q has reserved consumer %q", r.ID(), name)
			}
			referenced[name] = true
			sum = sum.Add(p)
		}
		if !r.Total().Equal(sum) {
			t.Errorf("run %q total = %s, want %s", r.ID(), r.Total(), sum)
		}
	}
	for _, name := range l.Participants() {
		if !referenced[name] {
			t.Errorf("participant %q is not referenced by any run", name)
		}
	}
	if len(l.Participants()) != len(referenced) {
		t.Errorf("Participants() = %v, want %d names", l.Participants(), len(referenced))
	}
}
