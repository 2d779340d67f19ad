package stockbook

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used when none is configured.
const DefaultCurrency = "EUR"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a decimal amount typed by a user or read from a file.
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	return Money{value: d, cur: currency}, nil
}

// KnownCurrency reports whether code is an ISO currency code.
func KnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

// fraction returns the number of minor-unit digits of the money's currency.
func (m Money) fraction() int32 {
	c := money.GetCurrency(m.cur)
	if c == nil {
		return 2
	}
	return int32(c.Fraction)
}

// String returns the amount rounded to the currency digits, followed by the currency code.
//
//	50.00 EUR
func (m Money) String() string {
	s := m.value.StringFixed(m.fraction())
	if m.cur == "" {
		return s
	}
	return s + " " + m.cur
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.decimal()), cur: m.cur} }
func (m Money) In(currency string) Money        { return Money{value: m.value, cur: currency} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}
