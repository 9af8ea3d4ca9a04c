package account

import (
	"fmt"

	"agrilink/internal/pkg/errs"
)

// Role classifies what an account may do on the platform. Producers report
// harvest lots, buyer operators place standing offers, drivers carry dispatch
// orders, and admins may escalate roles.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Producer accounts own harvest lots.
	Producer

	// BuyerOperator accounts own standing buyer offers.
	BuyerOperator

	// Driver accounts carry dispatch orders.
	Driver

	// Admin accounts may escalate other accounts' roles.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:   "Unknown",
		Producer:      "producer",
		BuyerOperator: "buyer_operator",
		Driver:        "driver",
		Admin:         "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Producer:      "producer",
		BuyerOperator: "buyer_operator",
		Driver:        "driver",
		Admin:         "admin",
	}
}

// RoleFromString parses the persisted/API representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
// Valid roles are: Producer, BuyerOperator, Driver, Admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the persisted name of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
