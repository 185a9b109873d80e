package coffee

import (
	"errors"
	"fmt"
	"log"
)

// Cell is one participant's cell in a row: a price, or nothing at all.
//
// An absent cell means the participant was not part of the run, which is not
// the same as a drink recorded at zero.
type Cell struct {
	Price   Price
	Present bool
}

// Row is the persisted form of a run.
type Row struct {
	ID    RunID
	Payer string
	Total Price
	Cells []Cell // one per Table column
}

// Table is the format-neutral persisted form of a ledger: one row per run, a
// Payer and a Total column, then one column per participant.
type Table struct {
	Columns []string // participants
	Rows    []Row
}

// Serialize returns the table of a ledger, rows in run order and columns in
// the order of Participants.
func Serialize(l *Ledger) Table {
	t := Table{Columns: l.Participants()}
	for _, r := range l.runs {
		row := Row{
			ID:    r.id,
			Payer: r.payer,
			Total: r.Total(),
			Cells: make([]Cell, len(t.Columns)),
		}
		for i, name := range t.Columns {
			p, ok := r.drinks[name]
			row.Cells[i] = Cell{Price: p, Present: ok}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// LoadLedger builds a ledger from its table.
//
// The table is checked against every rule the ledger enforces on its
// mutations; any violation means the source is corrupt and fails the load.
// Totals are derived data: a stored total that does not match the row's cells
// is replaced, and a warning is logged.
func LoadLedger(t Table) (*Ledger, error) {
	seenCol := make(map[string]struct{}, len(t.Columns))
	for _, name := range t.Columns {
		if err := validateConsumer(name); err != nil {
			return nil, fmt.Errorf("invalid column: %w", err)
		}
		if _, dup := seenCol[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seenCol[name] = struct{}{}
	}

	l := NewLedger()
	seenID := make(map[RunID]struct{}, len(t.Rows))
	for i, row := range t.Rows {
		r, err := loadRow(t.Columns, row)
		if err != nil {
			return nil, fmt.Errorf("invalid row %d: %w", i+1, err)
		}
		if _, dup := seenID[r.id]; dup {
			return nil, fmt.Errorf("invalid row %d: duplicate run %q", i+1, string(r.id))
		}
		seenID[r.id] = struct{}{}
		if total := r.Total(); !total.Equal(row.Total) {
			log.Printf("run %q: stored total %s does not match its drinks, using %s", r.id, row.Total, total)
		}
		l.append(r)
	}
	return l, nil
}

func loadRow(columns []string, row Row) (*Run, error) {
	if row.ID == "" {
		return nil, errors.New("missing run id")
	}
	if len(row.Cells) != len(columns) {
		return nil, fmt.Errorf("run %q has %d cells for %d columns", row.ID, len(row.Cells), len(columns))
	}
	if err := validatePayer(row.Payer); err != nil {
		return nil, fmt.Errorf("run %q: %w", row.ID, err)
	}
	r := &Run{
		id:     row.ID,
		payer:  row.Payer,
		drinks: make(map[string]Price),
	}
	r.time, _ = row.ID.Time()
	for i, c := range row.Cells {
		if !c.Present {
			continue
		}
		if err := validatePrice(columns[i], c.Price); err != nil {
			return nil, fmt.Errorf("run %q: %w", row.ID, err)
		}
		r.drinks[columns[i]] = c.Price
	}
	// A run may have no drinks left: files of the historical tool drop
	// columns that only hold zeros.
	return r, nil
}
