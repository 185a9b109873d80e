package coffee

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Price is the price of a drink, or any sum of prices.
//
// The zero value is a valid zero price. Prices are exact decimals, they never
// go through a float once parsed.
type Price struct {
	value decimal.Decimal
}

// P creates a Price from a numeric value.
func P[T float64 | int | int64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

// ParsePrice parses a non-negative decimal price like "2.5".
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Price{}, invalid(fmt.Errorf("price %q is not a valid number", s))
	}
	if d.IsNegative() {
		return Price{}, invalid(fmt.Errorf("price %q cannot be negative", s))
	}
	return Price{value: d}, nil
}

func (p Price) Add(q Price) Price        { return Price{value: p.value.Add(q.value)} }
func (p Price) Sub(q Price) Price        { return Price{value: p.value.Sub(q.value)} }
func (p Price) Cmp(q Price) int          { return p.value.Cmp(q.value) }
func (p Price) Equal(q Price) bool       { return p.value.Equal(q.value) }
func (p Price) IsZero() bool             { return p.value.IsZero() }
func (p Price) IsNegative() bool         { return p.value.IsNegative() }
func (p Price) Decimal() decimal.Decimal { return p.value }

// String returns the shortest exact representation, e.g. "2.5".
func (p Price) String() string { return p.value.String() }

// Format returns the price formatted in the given currency, e.g. "$2.50".
//
// Currency is only a display concern: prices are never converted.
func (p Price) Format(currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return p.value.StringFixed(2) + " " + currency
	}
	minor := p.value.Shift(int32(cur.Fraction)).Round(0)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		// beyond what go-money can format.
		return p.value.StringFixed(int32(cur.Fraction)) + " " + cur.Code
	}
	return cur.Formatter().Format(minor.IntPart())
}

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(-math.MaxInt64)
)

func (p Price) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

func (p *Price) UnmarshalJSON(b []byte) error {
	return p.value.UnmarshalJSON(b)
}
