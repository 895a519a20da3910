package technician

import (
	"fmt"

	"aquaserve/internal/pkg/errs"
)

// WorkStatus represents a technician's availability for new assignments.
//
//	free ──(assignment)──> busy ──(release)──> free
//
// busy holds exactly while the technician carries one open assignment.
type WorkStatus string

const (
	// WorkFree means the technician can accept a new assignment.
	WorkFree WorkStatus = "free"

	// WorkBusy means the technician holds an open assignment.
	WorkBusy WorkStatus = "busy"
)

// getValidWorkStatuses returns the set of valid WorkStatus values.
func getValidWorkStatuses() map[WorkStatus]struct{} {
	return map[WorkStatus]struct{}{
		WorkFree: {},
		WorkBusy: {},
	}
}

// Validate checks if the WorkStatus value is valid.
func (s WorkStatus) Validate() error {
	if _, ok := getValidWorkStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"workStatus",
			fmt.Errorf("%q is not a valid work status", string(s)),
		)
	}
	return nil
}

// IsFree reports whether the technician can accept a new assignment.
func (s WorkStatus) IsFree() bool {
	return s == WorkFree
}

// String returns the wire representation of the status.
func (s WorkStatus) String() string {
	return string(s)
}
