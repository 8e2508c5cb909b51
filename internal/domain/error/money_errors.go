package error

import "errors"

// Money domain errors.
var (
	// ErrInvalidAmount is returned when an amount is not finite or is negative.
	ErrInvalidAmount = errors.New("Amount must be a finite non-negative number")

	// ErrInvalidCurrency is returned when the currency is not a 3-letter code.
	ErrInvalidCurrency = errors.New("Currency must be a 3-letter code")

	// ErrCurrencyMismatch is returned when operating on two different currencies.
	ErrCurrencyMismatch = errors.New("cannot operate on different currencies")

	// ErrInsufficientAmount is returned when a subtraction would go negative.
	ErrInsufficientAmount = errors.New("insufficient amount")

	// ErrInvalidFactor is returned when multiplying by a negative factor.
	ErrInvalidFactor = errors.New("factor cannot be negative")

	// ErrInvalidFormat is returned when an amount string cannot be parsed.
	ErrInvalidFormat = errors.New("invalid amount format")
)

// IsMoneyError reports whether err is one of the Money errors.
func IsMoneyError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidCurrency) ||
		errors.Is(err, ErrCurrencyMismatch) ||
		errors.Is(err, ErrInsufficientAmount) ||
		errors.Is(err, ErrInvalidFactor) ||
		errors.Is(err, ErrInvalidFormat)
}
