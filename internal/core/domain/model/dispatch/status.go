package dispatch

import (
	"errors"
	"fmt"

	"agrilink/internal/pkg/errs"
)

// ErrInvalidDeliveryState is returned when a delivery transition is attempted
// from a state that does not allow it. Delivered and Failed are both terminal.
var ErrInvalidDeliveryState = errors.New("delivery status does not allow the requested transition")

// DeliveryStatus represents the lifecycle state of a dispatch order.
// The machine has one live state and two terminals:
//
//	InTransit ──delivered──> Delivered
//	InTransit ──failed─────> Failed
//
// Both machines in the system (lot status and delivery status) are monotonic;
// no transition is time-based, all are caller-triggered.
type DeliveryStatus int

const (
	// UnknownDeliveryStatus represents an invalid or undefined status.
	UnknownDeliveryStatus DeliveryStatus = iota

	// InTransit is the initial status of every dispatch order.
	InTransit

	// Delivered means the goods reached the buyer. Terminal.
	Delivered

	// Failed means the delivery did not complete. Terminal. The claimed lot
	// stays matched; releasing it back to the pool is an explicit
	// administrative action, not an automatic one.
	Failed
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		UnknownDeliveryStatus: "Unknown",
		InTransit:             "in_transit",
		Delivered:             "delivered",
		Failed:                "failed",
	}
}

func getValidDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // UnknownDeliveryStatus is intentionally excluded as it's invalid
	return map[DeliveryStatus]string{
		InTransit: "in_transit",
		Delivered: "delivered",
		Failed:    "failed",
	}
}

// DeliveryStatusFromString parses the persisted representation of a delivery status.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for status, str := range getValidDeliveryStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownDeliveryStatus, errs.NewValueIsInvalidErrorWithCause(
		"delivery status is invalid",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate checks if the DeliveryStatus value is valid.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status is invalid",
			fmt.Errorf("%d is not a valid delivery status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s DeliveryStatus) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// Deliver transitions the status to Delivered.
// Only an InTransit order can be delivered.
func (s DeliveryStatus) Deliver() (DeliveryStatus, error) {
	if s != InTransit {
		return 0, fmt.Errorf("%w: %s cannot be delivered", ErrInvalidDeliveryState, s)
	}
	return Delivered, nil
}

// Fail transitions the status to Failed.
// Only an InTransit order can fail.
func (s DeliveryStatus) Fail() (DeliveryStatus, error) {
	if s != InTransit {
		return 0, fmt.Errorf("%w: %s cannot fail", ErrInvalidDeliveryState, s)
	}
	return Failed, nil
}
