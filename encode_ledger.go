package coffee

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// runLine is the JSONL form of a run. Absent drinks are not in the map.
type runLine struct {
	ID     RunID            `json:"id"`
	Payer  string           `json:"payer"`
	Total  Price            `json:"total"`
	Drinks map[string]Price `json:"drinks"`
}

// DecodeLedger decodes runs from a stream of JSONL data, one run per line.
//
// Lines go through the same table validation as CSV files, unknown fields are
// rejected.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var t Table
	columns := make(map[string]int)
	scanner := bufio.NewScanner(r)

	for n := 1; scanner.Scan(); n++ {
		lineBytes := scanner.Bytes()
		if len(bytes.TrimSpace(lineBytes)) == 0 {
			continue // Skip empty lines
		}

		var line runLine
		dec := json.NewDecoder(bytes.NewReader(lineBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&line); err != nil {
			return nil, fmt.Errorf("could not decode run in line %d: %w", n, err)
		}

		for _, name := range slices.Sorted(maps.Keys(line.Drinks)) {
			if _, ok := columns[name]; !ok {
				columns[name] = len(t.Columns)
				t.Columns = append(t.Columns, name)
			}
		}
		row := Row{ID: line.ID, Payer: line.Payer, Total: line.Total}
		for name, p := range line.Drinks {
			row.Cells = growCells(row.Cells, columns[name]+1)
			row.Cells[columns[name]] = Cell{Price: p, Present: true}
		}
		t.Rows = append(t.Rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	// rows decoded early lack the cells of columns discovered later.
	for i := range t.Rows {
		t.Rows[i].Cells = growCells(t.Rows[i].Cells, len(t.Columns))
	}
	return LoadLedger(t)
}

func growCells(cells []Cell, n int) []Cell {
	if len(cells) >= n {
		return cells
	}
	return append(cells, make([]Cell, n-len(cells))...)
}

// EncodeRun marshals a single run to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeRun(w io.Writer, r Run) error {
	data, err := json.Marshal(runLine{
		ID:     r.id,
		Payer:  r.payer,
		Total:  r.Total(),
		Drinks: r.drinks,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal run %q: %w", string(r.id), err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write run %q: %w", string(r.id), err)
	}
	return nil
}

// EncodeLedger persists the runs to an io.Writer in JSONL format, in ledger order.
// Drinks are written with sorted keys for canonical output.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for r := range l.AllRuns() {
		if err := EncodeRun(w, r); err != nil {
			return err
		}
	}
	return nil
}
