package lot

import (
	"errors"
	"fmt"

	"agrilink/internal/pkg/errs"
)

// ErrInvalidLotState is returned when a status transition is attempted from a
// state that does not allow it. The machine is monotonic: there are no
// back-transitions, so a rejected transition means the caller is working from
// stale state and must re-fetch the lot.
var ErrInvalidLotState = errors.New("lot status does not allow the requested transition")

// Status represents the lifecycle state of a harvest lot.
// It implements a strictly monotonic state machine:
//
//	Pending ──match──> Matched ──collect──> Collected
//
// Collected is terminal and no transition ever moves backwards. A lot in
// Matched or Collected is immutable except for this status field.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status: the lot is available for matching.
	Pending

	// Matched means exactly one dispatch order has claimed the lot.
	Matched

	// Collected means the claiming dispatch order was delivered.
	// This is the terminal state.
	Collected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Pending:       "pending",
		Matched:       "matched",
		Collected:     "collected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Matched:   "matched",
		Collected: "collected",
	}
}

// StatusFromString parses the persisted representation of a lot status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid lot status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Matched, Collected.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid lot status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateMatch checks whether the lot may be claimed by a dispatch order
// without performing the transition. Only Pending lots are matchable.
func (s Status) ValidateMatch() error {
	if s != Pending {
		return fmt.Errorf("%w: %s cannot be matched", ErrInvalidLotState, s)
	}
	return nil
}

// Match transitions the status to Matched.
//
// Valid transitions:
//   - Pending -> Matched
//
// Returns (0, ErrInvalidLotState) from any other state; Matched and Collected
// never go back to Pending.
func (s Status) Match() (Status, error) {
	if err := s.ValidateMatch(); err != nil {
		return 0, err
	}
	return Matched, nil
}

// Collect transitions the status to Collected.
//
// Valid transitions:
//   - Matched -> Collected (the claiming order was delivered)
//
// A Pending lot cannot be collected (it was never claimed) and Collected is
// terminal.
func (s Status) Collect() (Status, error) {
	if s != Matched {
		return 0, fmt.Errorf("%w: %s cannot be collected", ErrInvalidLotState, s)
	}
	return Collected, nil
}
