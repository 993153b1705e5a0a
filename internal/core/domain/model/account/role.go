// Package account models the acting identity supplied by the upstream
// authentication layer. The core trusts the role value as already verified
// and performs explicit authorization checks against it, instead of relying
// on a framework's declarative security layer.
package account

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Role represents the acting user's role within the platform.
//
// Roles and their reach:
//   - Customer: places orders against stores and cancels their own orders
//     within the grace window
//   - Owner: runs a store; may place orders and manage store order flow
//   - Manager: store staff managing order progression
//   - Master: platform operator with store-staff reach
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// Customer is an ordering user.
	Customer

	// Owner is a store owner.
	Owner

	// Manager is store staff.
	Manager

	// Master is a platform operator.
	Master
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "UNKNOWN",
		Customer:    "CUSTOMER",
		Owner:       "OWNER",
		Manager:     "MANAGER",
		Master:      "MASTER",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		Customer: "CUSTOMER",
		Owner:    "OWNER",
		Manager:  "MANAGER",
		Master:   "MASTER",
	}
}

// RoleFromString parses a role name as supplied by the identity layer.
// Matching is exact against the canonical upper-case names.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical upper-case name of the role.
// Implements fmt.Stringer; safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsStoreStaff reports whether the role manages store order flow.
// Store staff list store orders and progress order status, and are not
// subject to the customer cancellation window.
func (r Role) IsStoreStaff() bool {
	return r == Owner || r == Manager || r == Master
}

// CanPlaceOrder reports whether the role may place orders.
func (r Role) CanPlaceOrder() bool {
	return r == Customer || r == Owner
}
