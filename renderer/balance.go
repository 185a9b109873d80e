package renderer

import (
	"github.com/etnz/coffee"
)

type balanceRow struct {
	Name, Spent, Paid, Owed string
}

// Balances renders what each participant consumed, paid and owes.
func Balances(balances []coffee.Balance, currency string) string {
	var v struct{ Rows []balanceRow }
	for _, b := range balances {
		v.Rows = append(v.Rows, balanceRow{
			Name:  cell(b.Name),
			Spent: b.Spent.Format(currency),
			Paid:  b.Paid.Format(currency),
			Owed:  b.Owed().Format(currency),
		})
	}
	return renderTemplate("balances.md", v)
}

// NextPayer renders the selected payer, and who was left out.
func NextPayer(name string, absentees []string) string {
	return renderTemplate("next_payer.md", struct {
		Name      string
		Absentees []string
	}{name, absentees})
}
