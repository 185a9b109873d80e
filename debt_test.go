package coffee

import (
	"errors"
	"testing"
	"time"
)

func TestCalcNextPayer(t *testing.T) {
	l, _, _ := scenarioB(t)

	testCases := []struct {
		name      string
		absentees []string
		want      string
	}{
		{name: "everybody present", want: "Carol"}, // Carol owes 4.0, Bob 1.0
		{name: "Carol absent", absentees: []string{"Carol"}, want: "Bob"},
		{name: "unknown absentee", absentees: []string{"Zoe"}, want: "Carol"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalcNextPayer(l, tc.absentees...)
			if err != nil {
				t.Fatalf("CalcNextPayer() returned an unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("CalcNextPayer(%v) = %q, want %q", tc.absentees, got, tc.want)
			}
		})
	}
}

func TestCalcNextPayer_Empty(t *testing.T) {
	l, _, _ := scenarioB(t)

	testCases := []struct {
		name      string
		ledger    *Ledger
		absentees []string
	}{
		{name: "empty ledger", ledger: NewLedger()},
		{name: "everybody absent", ledger: l, absentees: []string{"Bob", "Carol"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalcNextPayer(tc.ledger, tc.absentees...)
			if !errors.Is(err, ErrNoConsumers) {
				t.Errorf("CalcNextPayer() error = %v, want %v", err, ErrNoConsumers)
			}
			var empty *EmptyStateError
			if !errors.As(err, &empty) {
				t.Errorf("CalcNextPayer() error = %T, want *EmptyStateError", err)
			}
		})
	}
}

func TestCalcNextPayer_TieBreak(t *testing.T) {
	l := NewLedger()
	// Everybody owes 2.
	mustAdd(t, l, t0, "Nobody", D("Mia", 2), D("Leo", 2), D("Zed", 2))

	got, err := CalcNextPayer(l)
	if err != nil {
		t.Fatalf("CalcNextPayer() returned an unexpected error: %v", err)
	}
	if got != "Leo" {
		t.Errorf("CalcNextPayer() = %q, want %q", got, "Leo")
	}
}

func TestCalcNextPayer_NegativeOwed(t *testing.T) {
	l := NewLedger()
	mustAdd(t, l, t0, "Ann", D("Ann", 1), D("Ben", 1))
	mustAdd(t, l, t0.Add(time.Hour), "Ben", D("Ann", 3), D("Ben", 3))
	mustAdd(t, l, t0.Add(2*time.Hour), "Ann", D("Ann", 2), D("Ben", 2))
	// Ann: spent 6, paid 6 => 0. Ben: spent 6, paid 6 => 0. Tie.
	// Add a run where Ben over pays.
	mustAdd(t, l, t0.Add(3*time.Hour), "Ben", D("Ann", 1))
	// Ann: 7-6 = 1. Ben: 6-7 = -1.

	got, err := CalcNextPayer(l)
	if err != nil {
		t.Fatalf("CalcNextPayer() returned an unexpected error: %v", err)
	}
	if got != "Ann" {
		t.Errorf("CalcNextPayer() = %q, want %q", got, "Ann")
	}
	got, err = CalcNextPayer(l, "Ann")
	if err != nil {
		t.Fatalf("CalcNextPayer() returned an unexpected error: %v", err)
	}
	if got != "Ben" {
		t.Errorf("CalcNextPayer(Ann absent) = %q, want %q", got, "Ben")
	}
}

func TestCalcNextPayer_NeverReturnsAbsentee(t *testing.T) {
	l, _, _ := scenarioB(t)
	mustAdd(t, l, t0.Add(5*time.Hour), "Carol", D("Dan", 1), D("Eve", 7))

	participants := l.Participants()
	// every subset of participants as absentees.
	for mask := 0; mask < 1<<len(participants); mask++ {
		var absent []string
		for i, name := range participants {
			if mask&(1<<i) != 0 {
				absent = append(absent, name)
			}
		}
		got, err := CalcNextPayer(l, absent...)
		if len(absent) == len(participants) {
			if !errors.Is(err, ErrNoConsumers) {
				t.Errorf("CalcNextPayer(%v) error = %v, want %v", absent, err, ErrNoConsumers)
			}
			continue
		}
		if err != nil {
			t.Fatalf("CalcNextPayer(%v) returned an unexpected error: %v", absent, err)
		}
		for _, a := range absent {
			if got == a {
				t.Errorf("CalcNextPayer(%v) = %q, an absentee", absent, got)
			}
		}
	}
}

func TestBalances(t *testing.T) {
	l, _, _ := scenarioB(t)

	got := Balances(l)
	want := []struct {
		name              string
		spent, paid, owed float64
	}{
		{"Carol", 4, 0, 4},
		{"Bob", 3, 2, 1},
		{"Alice", 0, 5, -5},
	}
	if len(got) != len(want) {
		t.Fatalf("Balances() = %+v, want %d balances", got, len(want))
	}
	for i, w := range want {
		b := got[i]
		if b.Name != w.name || !b.Spent.Equal(P(w.spent)) || !b.Paid.Equal(P(w.paid)) || !b.Owed().Equal(P(w.owed)) {
			t.Errorf("Balances()[%d] = {%s spent %s paid %s owed %s}, want %+v", i, b.Name, b.Spent, b.Paid, b.Owed(), w)
		}
	}
}
