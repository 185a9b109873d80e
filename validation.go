package coffee

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Reserved column names of the persisted table. No participant can use them.
const (
	ColumnPayer = "Payer"
	ColumnTotal = "Total"
)

// IsReserved reports whether name collides with a fixed column of the table.
func IsReserved(name string) bool {
	return name == ColumnPayer || name == ColumnTotal
}

// validatePayer checks the name of the participant that paid a run.
func validatePayer(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("payer name is empty")
	}
	if IsReserved(name) {
		return fmt.Errorf("payer name %q is reserved", name)
	}
	return nil
}

// validateConsumer checks a consumer name: a single non reserved word.
func validateConsumer(name string) error {
	if name == "" {
		return errors.New("consumer name is empty")
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("consumer name %q must be a single word", name)
	}
	if IsReserved(name) {
		return fmt.Errorf("consumer name %q is reserved", name)
	}
	return nil
}

// validatePrice checks that a recorded price is not negative.
func validatePrice(name string, p Price) error {
	if p.IsNegative() {
		return fmt.Errorf("price of %s cannot be negative: %s", name, p)
	}
	return nil
}
