package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use a zero Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney")

// MoneyScale is the number of decimal places an amount may carry.
const MoneyScale = 2

// MaxMoneyAmount is the largest single amount the stores accept, the upper
// bound of a numeric(12,2) column.
var MaxMoneyAmount = decimal.RequireFromString("9999999999.99")

// Money is a non-negative amount in whole cents. Amounts are never rounded:
// a value is either representable exactly or rejected.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a single amount such as an order total or a service price.
//
// Parameters:
//   - amount: non-negative, at most two decimal places, not above MaxMoneyAmount
//
// Returns:
//   - Money: the amount exactly as given
//   - error: ValueIsInvalidError for a negative amount or sub-cent precision,
//     ValueIsOutOfRangeError above MaxMoneyAmount
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.RequireFromString("12.50"))
func NewMoney(amount decimal.Decimal) (Money, error) {
	m, err := NewMoneyTotal(amount)
	if err != nil {
		return Money{}, err
	}
	if amount.GreaterThan(MaxMoneyAmount) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", MaxMoneyAmount.String())
	}
	return m, nil
}

// NewMoneyTotal creates an aggregate such as the revenue of a shop. It applies
// the rules of NewMoney except the upper bound, since a sum of stored amounts
// may exceed what a single column holds.
func NewMoneyTotal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s has more than %d decimal places", amount.String(), MoneyScale))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromFloat is a convenience for JSON numbers.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate returns ErrMoneyIsNotConstructed for a zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Decimal returns the exact amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 is used for JSON rendering only; arithmetic stays in decimal.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// IsEqual compares amounts numerically, so 10.5 equals 10.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
