package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Type distinguishes how an order is fulfilled.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// Delivery orders are brought to the customer's address.
	Delivery

	// Pickup orders are collected at the store.
	Pickup
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "UNKNOWN",
		Delivery:    "DELIVERY",
		Pickup:      "PICKUP",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		Delivery: "DELIVERY",
		Pickup:   "PICKUP",
	}
}

// TypeFromString parses an order type from its canonical upper-case name.
func TypeFromString(s string) (Type, error) {
	for t, name := range getValidTypeStrings() {
		if name == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("order type",
		fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the canonical name of the order type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// RequiresAddress reports whether this order type needs a delivery address.
func (t Type) RequiresAddress() bool {
	return t == Delivery
}
