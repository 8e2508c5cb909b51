// Package valueobject contains domain value objects for the Goal Planner system.
package valueobject

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	domainerror "github.com/goal-planner/backend/internal/domain/error"
)

// DefaultCurrency is the currency used when none is given.
const DefaultCurrency = "BRL"

// Money is an immutable, currency-tagged, non-negative amount.
// All operations return new instances.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// currencyLocales maps currency codes to the locale used when formatting them.
var currencyLocales = map[string]language.Tag{
	"BRL": language.BrazilianPortuguese,
	"USD": language.AmericanEnglish,
	"EUR": language.German,
	"GBP": language.BritishEnglish,
}

// NewMoney creates a Money value from a float amount and a currency code.
func NewMoney(amount float64, currencyCode string) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return Money{}, fmt.Errorf("%w: %v", domainerror.ErrInvalidAmount, amount)
	}
	return NewMoneyFromDecimal(decimal.NewFromFloat(amount), currencyCode)
}

// NewMoneyFromDecimal creates a Money value from a decimal amount.
func NewMoneyFromDecimal(amount decimal.Decimal, currencyCode string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", domainerror.ErrInvalidAmount, amount.String())
	}

	code, err := normalizeCurrency(currencyCode)
	if err != nil {
		return Money{}, err
	}

	return Money{amount: amount, currency: code}, nil
}

// NewBRL creates a Money value in the default currency.
func NewBRL(amount float64) (Money, error) {
	return NewMoney(amount, DefaultCurrency)
}

// MustMoney is like NewMoney but panics on invalid input.
// Intended for constants and tests.
func MustMoney(amount float64, currencyCode string) Money {
	m, err := NewMoney(amount, currencyCode)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a zero amount in the given currency.
func Zero(currencyCode string) (Money, error) {
	return NewMoneyFromDecimal(decimal.Zero, currencyCode)
}

// FromString parses a textual amount such as "1500", "1500.75" or "1500,75".
func FromString(text, currencyCode string) (Money, error) {
	cleaned := strings.TrimSpace(text)
	if !strings.Contains(cleaned, ".") {
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil || cleaned == "" {
		return Money{}, fmt.Errorf("%w: %q", domainerror.ErrInvalidFormat, text)
	}

	return NewMoneyFromDecimal(amount, currencyCode)
}

func normalizeCurrency(code string) (string, error) {
	if len(code) != 3 {
		return "", fmt.Errorf("%w: %q", domainerror.ErrInvalidCurrency, code)
	}
	for _, r := range code {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return "", fmt.Errorf("%w: %q", domainerror.ErrInvalidCurrency, code)
		}
	}
	return strings.ToUpper(code), nil
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as float64. Use for display and serialization only.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// Currency returns the upper-case currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two amounts in the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, m.mismatch(other)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns the difference, failing if the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, m.mismatch(other)
	}

	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s - %s", domainerror.ErrInsufficientAmount, m, other)
	}
	return Money{amount: diff, currency: m.currency}, nil
}

// SubtractOrZero returns the difference floored at zero.
func (m Money) SubtractOrZero(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, m.mismatch(other)
	}

	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		diff = decimal.Zero
	}
	return Money{amount: diff, currency: m.currency}, nil
}

// Multiply returns the amount scaled by a non-negative factor.
func (m Money) Multiply(factor float64) (Money, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return Money{}, fmt.Errorf("%w: %v", domainerror.ErrInvalidFactor, factor)
	}
	return Money{amount: m.amount.Mul(decimal.NewFromFloat(factor)), currency: m.currency}, nil
}

// MultiplyInt returns the amount scaled by a non-negative integer.
func (m Money) MultiplyInt(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, fmt.Errorf("%w: %d", domainerror.ErrInvalidFactor, factor)
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor))), currency: m.currency}, nil
}

// GreaterThan reports whether m > other. Different currencies never compare greater.
func (m Money) GreaterThan(other Money) bool {
	return m.currency == other.currency && m.amount.GreaterThan(other.amount)
}

// LessThan reports whether m < other. Different currencies never compare less.
func (m Money) LessThan(other Money) bool {
	return m.currency == other.currency && m.amount.LessThan(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equals reports structural equality: same amount and same currency.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// Format returns a locale-style currency string, e.g. "R$ 1.234,56".
func (m Money) Format() string {
	tag, ok := currencyLocales[m.currency]
	if !ok {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)

	symbol := m.currency
	if unit, err := currency.ParseISO(m.currency); err == nil {
		symbol = p.Sprint(currency.Symbol(unit))
	}

	return p.Sprintf("%s %v", symbol, number.Decimal(m.amount.Round(2).InexactFloat64(), number.Scale(2)))
}

// String returns a plain representation such as "1500.00 BRL".
func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currency
}

func (m Money) mismatch(other Money) error {
	return fmt.Errorf("%w: %s vs %s", domainerror.ErrCurrencyMismatch, m.currency, other.currency)
}
