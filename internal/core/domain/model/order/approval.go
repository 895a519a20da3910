package order

import (
	"fmt"

	"aquaserve/internal/pkg/errs"
)

// ApprovalStatus is the vocabulary of order-local approvals. It is used in
// two independent places that must never be conflated:
//
//   - the technician assignment sub-state, where ApprovalNone models the
//     unassigned state and PENDING means a decision is outstanding
//   - the order-local KYC approval, which starts at PENDING and is reviewed
//     per order, independently of the owning customer's identity KYC
type ApprovalStatus string

const (
	// ApprovalNone is the null value: no assignment decision exists.
	// It is never a valid KYC approval and never a valid review verdict.
	ApprovalNone ApprovalStatus = ""

	// ApprovalPending means a decision is outstanding.
	ApprovalPending ApprovalStatus = "PENDING"

	// ApprovalApproved means the review or technician accepted.
	ApprovalApproved ApprovalStatus = "APPROVED"

	// ApprovalRejected means the review or technician declined.
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// getValidApprovalStatuses returns the non-null ApprovalStatus values.
func getValidApprovalStatuses() map[ApprovalStatus]struct{} {
	return map[ApprovalStatus]struct{}{
		ApprovalPending:  {},
		ApprovalApproved: {},
		ApprovalRejected: {},
	}
}

// ParseApprovalStatus converts an externally supplied string into an
// ApprovalStatus. The null value is not accepted from the outside.
func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	status := ApprovalStatus(s)
	if err := status.Validate(); err != nil {
		return ApprovalNone, err
	}
	return status, nil
}

// Validate checks that the status is one of PENDING, APPROVED or REJECTED.
func (s ApprovalStatus) Validate() error {
	if _, ok := getValidApprovalStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"approvalStatus",
			fmt.Errorf("%q is not a valid approval status", string(s)),
		)
	}
	return nil
}

// ValidateNullable checks the status allowing the null value, used when
// restoring the assignment sub-state from persistence.
func (s ApprovalStatus) ValidateNullable() error {
	if s == ApprovalNone {
		return nil
	}
	return s.Validate()
}

// IsPending reports whether a decision is outstanding.
func (s ApprovalStatus) IsPending() bool {
	return s == ApprovalPending
}

// IsApproved reports whether the status is APPROVED.
func (s ApprovalStatus) IsApproved() bool {
	return s == ApprovalApproved
}

// String returns the wire representation; the null value renders empty.
func (s ApprovalStatus) String() string {
	return string(s)
}
