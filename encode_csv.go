package coffee

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// DecodeCSV reads a table from CSV.
//
// The first column holds the run ids, "Payer" and "Total" columns are located
// by name and every other column is a participant. A blank cell is an absent
// drink. This is the layout of coffee_run_data.csv files, so existing files
// can be read as is. An empty input is an empty table.
func DecodeCSV(r io.Reader) (Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("could not read csv: %w", err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}

	header := records[0]
	payerCol, totalCol := -1, -1
	var t Table
	var participantCols []int
	for i, name := range header {
		switch {
		case i == 0:
			// index column, its name is irrelevant.
		case name == ColumnPayer:
			if payerCol >= 0 {
				return Table{}, errors.New("could not read csv: duplicate Payer column")
			}
			payerCol = i
		case name == ColumnTotal:
			if totalCol >= 0 {
				return Table{}, errors.New("could not read csv: duplicate Total column")
			}
			totalCol = i
		default:
			t.Columns = append(t.Columns, name)
			participantCols = append(participantCols, i)
		}
	}
	if payerCol < 0 || totalCol < 0 {
		return Table{}, errors.New("could not read csv: missing Payer or Total column")
	}

	for n, rec := range records[1:] {
		line := n + 2
		row := Row{
			ID:    RunID(rec[0]),
			Payer: rec[payerCol],
			Cells: make([]Cell, len(participantCols)),
		}
		if s := strings.TrimSpace(rec[totalCol]); s != "" {
			total, err := decimal.NewFromString(s)
			if err != nil {
				return Table{}, fmt.Errorf("line %d: invalid total %q: %w", line, s, err)
			}
			row.Total = P(total)
		}
		for i, col := range participantCols {
			s := strings.TrimSpace(rec[col])
			if s == "" {
				continue
			}
			price, err := decimal.NewFromString(s)
			if err != nil {
				return Table{}, fmt.Errorf("line %d: invalid price %q for %s: %w", line, s, header[col], err)
			}
			row.Cells[i] = Cell{Price: P(price), Present: true}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// EncodeCSV writes a table as CSV, in the layout read by DecodeCSV.
func EncodeCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	header := append([]string{"", ColumnPayer, ColumnTotal}, t.Columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range t.Rows {
		rec := append(make([]string, 0, len(header)), string(row.ID), row.Payer, row.Total.String())
		for _, c := range row.Cells {
			if c.Present {
				rec = append(rec, c.Price.String())
			} else {
				rec = append(rec, "")
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write run %q: %w", string(row.ID), err)
		}
	}
	cw.Flush()
	return cw.Error()
}
