package domain

import "strconv"

// Money represents a non-negative, currency-agnostic monetary amount.
// Money is immutable - all operations return new instances.
type Money struct {
	amount int64
}

// NewMoney creates a Money from an integer amount.
// Returns ErrNegativeAmount if amount is below zero.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

// Add returns a new Money that is the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Scale returns a new Money multiplied by a non-negative quantity.
func (m Money) Scale(quantity int64) (Money, error) {
	if quantity < 0 {
		return Money{}, ErrNegativeFactor
	}
	return Money{amount: m.amount * quantity}, nil
}

// Equals returns true if m and other carry the same amount.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount
}

// LessThan returns true if m is strictly below other.
func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

// GreaterThan returns true if m is strictly above other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount > other.amount
}

// Amount returns the raw integer amount.
func (m Money) Amount() int64 {
	return m.amount
}

// String returns the amount in decimal form.
func (m Money) String() string {
	return strconv.FormatInt(m.amount, 10)
}
