package kernel

import (
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative fixed-point monetary amount. It wraps
// decimal.Decimal to keep arithmetic exact for prices, subtotals, discounts
// and totals. The zero value is a valid amount of zero.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of zero amount.
func ZeroMoney() Money {
	return Money{}
}

// NewMoney creates a Money from a decimal amount.
// Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", "unbounded"))
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string such as "10.00".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by a non-negative integer factor.
// Used to compute line subtotals from unit price and quantity.
func (m Money) MulInt(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// SubFloorZero subtracts other, clamping the result at zero so that a
// discount can never drive a total negative.
func (m Money) SubFloorZero(other Money) Money {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}
	}
	return Money{amount: result}
}

// Decimal exposes the underlying decimal value for persistence and transport.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places, e.g. "10.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
