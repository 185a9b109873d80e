package coffee

import (
	"slices"
	"strings"
)

// Balance is the position of one participant across the whole ledger.
type Balance struct {
	Name  string
	Spent Price // sum of the participant's drinks
	Paid  Price // sum of the totals of the runs the participant paid
}

// Owed is what the participant consumed minus what they paid. It is negative
// when they paid more than they consumed.
func (b Balance) Owed() Price { return b.Spent.Sub(b.Paid) }

// tally sums, per name, the drinks consumed and the run totals paid.
func (l *Ledger) tally() (spent, paid map[string]Price) {
	spent = make(map[string]Price)
	paid = make(map[string]Price)
	for _, r := range l.runs {
		for name, p := range r.drinks {
			spent[name] = spent[name].Add(p)
		}
		paid[r.payer] = paid[r.payer].Add(r.Total())
	}
	return spent, paid
}

// CalcNextPayer returns the participant that should pay the next run.
//
// Candidates are the ledger's participants that are not absent. The next
// payer is the candidate who owes the most; ties go to the alphabetically
// first name. It returns an EmptyStateError when there is no candidate.
func CalcNextPayer(l *Ledger, absentees ...string) (string, error) {
	absent := make(map[string]struct{}, len(absentees))
	for _, a := range absentees {
		absent[a] = struct{}{}
	}
	var candidates []string
	for _, name := range l.Participants() {
		if _, ok := absent[name]; !ok {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 || l.Len() == 0 {
		return "", &EmptyStateError{}
	}
	slices.Sort(candidates)

	spent, paid := l.tally()
	next := candidates[0]
	most := spent[next].Sub(paid[next])
	for _, c := range candidates[1:] {
		if owed := spent[c].Sub(paid[c]); owed.Cmp(most) > 0 {
			next, most = c, owed
		}
	}
	return next, nil
}

// Balances returns the balance of every participant and every payer, most
// indebted first.
func Balances(l *Ledger) []Balance {
	spent, paid := l.tally()
	names := l.Participants()
	for name := range paid {
		if _, ok := spent[name]; !ok {
			names = append(names, name)
		}
	}

	balances := make([]Balance, 0, len(names))
	for _, name := range names {
		balances = append(balances, Balance{Name: name, Spent: spent[name], Paid: paid[name]})
	}
	slices.SortFunc(balances, func(a, b Balance) int {
		if c := b.Owed().Cmp(a.Owed()); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return balances
}
