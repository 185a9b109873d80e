// Package renderer turns ledgers and their reports into markdown.
//
// Renderers never print: they return markdown that the command line displays.
// Prices are formatted in a display currency.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/coffee"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
}

// renderTemplate renders one of the embedded templates.
func renderTemplate(file string, data any) string {
	content, err := fs.ReadFile(templates, "templates/"+file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(file).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", file, err)
	}
	return b.String()
}

// cell escapes a value for a markdown table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// absent is the placeholder of a consumer that was not part of a run.
const absent = "-"

type historyView struct {
	Since   string
	Columns []string
	Rows    []historyRow
}

type historyRow struct {
	ID, Payer, Total string
	Cells            []string
}

// History renders every run of the ledger as a table, one column per
// participant.
func History(l *coffee.Ledger, currency string) string {
	v := historyView{}
	participants := l.Participants()
	for _, name := range participants {
		v.Columns = append(v.Columns, cell(name))
	}
	for r := range l.AllRuns() {
		if v.Since == "" && !r.Time().IsZero() {
			v.Since = r.Time().Format("Jan 2, 2006")
		}
		row := historyRow{
			ID:    cell(string(r.ID())),
			Payer: cell(r.Payer()),
			Total: r.Total().Format(currency),
		}
		for _, name := range participants {
			if p, ok := r.Price(name); ok {
				row.Cells = append(row.Cells, p.Format(currency))
			} else {
				row.Cells = append(row.Cells, absent)
			}
		}
		v.Rows = append(v.Rows, row)
	}
	return renderTemplate("history.md", v)
}

type drinkView struct {
	Name, Price string
}

type runView struct {
	ID, Payer, Total string
	Drinks           []drinkView
}

// Run renders a single run and its drinks.
func Run(r coffee.Run, currency string) string {
	v := runView{
		ID:    string(r.ID()),
		Payer: r.Payer(),
		Total: r.Total().Format(currency),
	}
	for name, p := range r.Drinks() {
		v.Drinks = append(v.Drinks, drinkView{Name: cell(name), Price: p.Format(currency)})
	}
	return renderTemplate("run.md", v)
}
