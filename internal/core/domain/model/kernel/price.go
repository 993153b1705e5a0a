package kernel

import (
	"fmt"
	"math"

	"ordering/internal/pkg/errs"
)

// Price is a value object representing a non-negative monetary amount in
// minor currency units (e.g., cents or won). Integer arithmetic keeps line
// and order totals exact; negative amounts are unrepresentable through the
// constructor.
//
// The zero value is a valid zero price, which is the natural starting point
// when summing line totals.
type Price struct {
	amount int64
}

// NewPrice creates a Price from an amount in minor currency units.
// Returns an error if the amount is negative.
func NewPrice(amount int64) (Price, error) {
	if amount < 0 {
		return Price{}, errs.NewValueIsOutOfRangeError("price", amount, 0, int64(math.MaxInt64))
	}
	return Price{amount: amount}, nil
}

// Amount returns the price in minor currency units.
func (p Price) Amount() int64 {
	return p.amount
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{amount: p.amount + other.amount}
}

// MultiplyBy returns the price multiplied by a quantity.
// Returns an error if the quantity is not positive or the product would
// overflow the amount.
func (p Price) MultiplyBy(quantity int) (Price, error) {
	if quantity <= 0 {
		return Price{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32)
	}
	if p.amount > math.MaxInt64/int64(quantity) {
		return Price{}, errs.NewValueIsOutOfRangeError(
			"price", p.amount, 0, math.MaxInt64/int64(quantity))
	}
	return Price{amount: p.amount * int64(quantity)}, nil
}

// IsEqual compares two prices for equality.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// String formats the price as its raw minor-unit amount.
func (p Price) String() string {
	return fmt.Sprintf("%d", p.amount)
}
