package kernel

import (
	"fmt"

	"aquaserve/internal/pkg/errs"
)

// DeviceLinkStatus tracks whether a customer or technician account is linked
// to a purifier device. The workflow engine never mutates it; it is carried
// for read models and onboarding review.
type DeviceLinkStatus string

const (
	// DeviceUnlinked means no device is linked to the account yet.
	DeviceUnlinked DeviceLinkStatus = "unlinked"

	// DeviceLinked means a device is linked to the account.
	DeviceLinked DeviceLinkStatus = "linked"

	// DeviceDeclined means the account holder declined device linking.
	DeviceDeclined DeviceLinkStatus = "declined"
)

// getValidDeviceLinkStatuses returns the set of valid DeviceLinkStatus values.
func getValidDeviceLinkStatuses() map[DeviceLinkStatus]struct{} {
	return map[DeviceLinkStatus]struct{}{
		DeviceUnlinked: {},
		DeviceLinked:   {},
		DeviceDeclined: {},
	}
}

// Validate checks if the DeviceLinkStatus value is valid.
func (s DeviceLinkStatus) Validate() error {
	if _, ok := getValidDeviceLinkStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"deviceLinkStatus",
			fmt.Errorf("%q is not a valid device link status", string(s)),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s DeviceLinkStatus) String() string {
	return string(s)
}
