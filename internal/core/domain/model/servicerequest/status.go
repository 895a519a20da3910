package servicerequest

import (
	"fmt"

	"aquaserve/internal/pkg/errs"
)

// Status represents the lifecycle state of a service request.
// Unlike installation orders, the machine is single-phase and reversible:
//
//	open <──> assigned <──> closed
//	  ^______________________/
//
// Every direction is allowed; what makes transitions safe are the release
// rules the aggregate applies around the closed state (see Request.ChangeStatus).
type Status string

const (
	// StatusOpen is the initial status of a newly created request.
	StatusOpen Status = "open"

	// StatusAssigned means a technician currently holds the request.
	StatusAssigned Status = "assigned"

	// StatusClosed means the request was resolved. Closed requests may be
	// reopened, which clears any stale assignment.
	StatusClosed Status = "closed"
)

// getValidStatuses returns the set of valid Status values.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusOpen:     {},
		StatusAssigned: {},
		StatusClosed:   {},
	}
}

// ParseStatus converts an externally supplied string into a Status.
// Returns a ValueIsInvalidError for unknown enum values.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a valid service request status", string(s)),
		)
	}
	return nil
}

// IsClosed reports whether the status is closed.
func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}
