package kernel

import (
	"fmt"

	"aquaserve/internal/pkg/errs"
)

// KycStatus is the identity-verification vocabulary shared by customer and
// technician records. It is reviewer-controlled: the workflow engine reads it
// to gate assignments but only a review action mutates it.
//
// Valid values are KycPending, KycApproved and KycRejected. The zero value is
// invalid and fails Validate.
type KycStatus string

const (
	// KycPending is the initial status of every unreviewed record.
	KycPending KycStatus = "pending"

	// KycApproved marks a record whose identity verification passed review.
	KycApproved KycStatus = "approved"

	// KycRejected marks a record whose identity verification failed review.
	KycRejected KycStatus = "rejected"
)

// getValidKycStatuses returns the set of valid KycStatus values.
func getValidKycStatuses() map[KycStatus]struct{} {
	return map[KycStatus]struct{}{
		KycPending:  {},
		KycApproved: {},
		KycRejected: {},
	}
}

// ParseKycStatus converts an externally supplied string into a KycStatus.
// Returns a ValueIsInvalidError for unknown enum values.
func ParseKycStatus(s string) (KycStatus, error) {
	status := KycStatus(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the KycStatus value is valid.
func (s KycStatus) Validate() error {
	if _, ok := getValidKycStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kycStatus", fmt.Errorf("%q is not a valid kyc status", string(s)))
	}
	return nil
}

// IsApproved reports whether the status is KycApproved. Assignment guards and
// availability listings use this predicate rather than comparing raw values.
func (s KycStatus) IsApproved() bool {
	return s == KycApproved
}

// String returns the wire representation of the status.
func (s KycStatus) String() string {
	return string(s)
}
