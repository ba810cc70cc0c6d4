package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount held as an integer number of cents.
// Sums and products of Money values are exact.
type Money int64

// ZeroMoney is the zero amount.
const ZeroMoney Money = 0

// MoneyFromDecimal rounds d to two decimal places, half away from zero,
// and converts it to Money.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money(d.Round(2).Shift(2).IntPart())
}

// ParseMoney parses a decimal string such as "12.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return MoneyFromDecimal(d), nil
}

// MustParseMoney is like ParseMoney but panics on malformed input.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 { return int64(m) }

// Times returns m multiplied by a unit count.
func (m Money) Times(n int) Money { return m * Money(n) }

// Decimal returns the amount as a decimal with two places.
func (m Money) Decimal() decimal.Decimal { return decimal.New(int64(m), -2) }

// Float64 returns the amount as a float64, for display only.
func (m Money) Float64() float64 {
	f, _ := m.Decimal().Float64()
	return f
}

// String formats the amount with exactly two decimals, e.g. "11.90".
func (m Money) String() string { return m.Decimal().StringFixed(2) }

// Euro formats the amount the way receipts print it, e.g. "€12,50".
func (m Money) Euro() string {
	return "€" + strings.Replace(m.String(), ".", ",", 1)
}

// MarshalJSON encodes the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
