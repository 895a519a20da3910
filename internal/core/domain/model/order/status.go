package order

import (
	"fmt"

	"aquaserve/internal/pkg/errs"
)

// Status represents the lifecycle state of an installation order.
// It implements a state machine with a single defined transition:
//
//	Open ──> Closed
//
// Closed is terminal; no further transitions are defined from it.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status of a newly created order. All workflow
	// operations except completion require the order to be in this status.
	Open

	// Closed indicates the installation was completed. This is a final
	// state with no further transitions allowed.
	Closed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Open:    "OPEN",
		Closed:  "CLOSED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:   "OPEN",
		Closed: "CLOSED",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Open and Closed; Unknown (0) and any other values are
// invalid. Used to check Status values coming from persistence or the API.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsOpen reports whether the status accepts workflow mutations.
func (s Status) IsOpen() bool {
	return s == Open
}

// Close transitions the status to Closed.
//
// Valid transitions:
//   - Open -> Closed (installation completed)
//
// Closed is terminal, so completing an already closed order is rejected.
// Returns (Closed, nil) on a valid transition, (0, error) otherwise.
func (s Status) Close() (Status, error) {
	if s != Open {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"order must be open",
			fmt.Errorf("%s is not a valid status to close", s.String()),
		)
	}

	return Closed, nil
}
