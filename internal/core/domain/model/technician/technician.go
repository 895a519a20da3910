package technician

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/errs"
	"aquaserve/internal/pkg/guard"
)

var (
	// ErrTechnicianIsNotConstructed is returned when using an improperly
	// initialized Technician.
	ErrTechnicianIsNotConstructed = errors.New("Technician must be created via NewTechnician constructor")

	// ErrNameIsRequired is returned when attempting to create a technician
	// without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Technician is the aggregate root for a tenant's field worker.
// Identity is (org_id, user_id) plus the store-assigned reference id that
// orders and service requests point at.
//
// Business rules:
//   - is_active is the reviewer-controlled onboarding gate; inactive
//     technicians are never assignable
//   - the KYC status gates availability listings
//   - the work status is busy exactly while one open assignment references
//     the technician, and the free->busy transition rejects when the
//     technician is already busy
type Technician struct {
	id       kernel.UUID
	orgID    kernel.OrgID
	userID   kernel.UUID
	name     string
	isActive bool

	kycStatus        kernel.KycStatus
	workStatus       WorkStatus
	deviceLinkStatus kernel.DeviceLinkStatus

	// version supports the optimistic compare-and-set in the repository.
	version int

	guard guard.ConstructorGuard
}

// NewTechnician creates a technician in the onboarding state: inactive,
// KYC pending, free, device unlinked. A reviewer activates the record through
// ReviewOnboarding before the technician becomes assignable.
func NewTechnician(id kernel.UUID, orgID kernel.OrgID, userID kernel.UUID, name string) (*Technician, error) {
	t := &Technician{
		kycStatus:        kernel.KycPending,
		workStatus:       WorkFree,
		deviceLinkStatus: kernel.DeviceUnlinked,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrgID(orgID),
		t.setUserID(userID),
		t.setName(name),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTechnician reconstructs a technician aggregate from persistence.
func RestoreTechnician(
	id kernel.UUID,
	orgID kernel.OrgID,
	userID kernel.UUID,
	name string,
	isActive bool,
	kycStatus kernel.KycStatus,
	workStatus WorkStatus,
	deviceLinkStatus kernel.DeviceLinkStatus,
	version int,
) (*Technician, error) {
	t, err := NewTechnician(id, orgID, userID, name)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		kycStatus.Validate(),
		workStatus.Validate(),
		deviceLinkStatus.Validate(),
	); err != nil {
		return nil, err
	}

	t.isActive = isActive
	t.kycStatus = kycStatus
	t.workStatus = workStatus
	t.deviceLinkStatus = deviceLinkStatus
	t.version = version
	return t, nil
}

// Validate ensures the Technician was properly constructed through a factory method.
func (t *Technician) Validate() error {
	if t == nil {
		return ErrTechnicianIsNotConstructed
	}
	return t.guard.Validate(ErrTechnicianIsNotConstructed)
}

// ID returns the store-assigned reference id.
func (t *Technician) ID() kernel.UUID {
	return t.id
}

// OrgID returns the owning tenant.
func (t *Technician) OrgID() kernel.OrgID {
	return t.orgID
}

// UserID returns the technician's user identity within the tenant.
func (t *Technician) UserID() kernel.UUID {
	return t.userID
}

// Name returns the technician's display name.
func (t *Technician) Name() string {
	return t.name
}

// IsActive reports whether the reviewer-controlled onboarding gate is open.
func (t *Technician) IsActive() bool {
	return t.isActive
}

// KycStatus returns the technician's identity-verification status.
func (t *Technician) KycStatus() kernel.KycStatus {
	return t.kycStatus
}

// WorkStatus returns the technician's availability.
func (t *Technician) WorkStatus() WorkStatus {
	return t.workStatus
}

// DeviceLinkStatus returns the technician's device-link status.
func (t *Technician) DeviceLinkStatus() kernel.DeviceLinkStatus {
	return t.deviceLinkStatus
}

// Version returns the optimistic-concurrency version of the record.
func (t *Technician) Version() int {
	return t.version
}

// IsAvailable reports whether the technician may appear in availability
// listings: free and KYC approved. Assignment paths re-validate this
// predicate at assignment time rather than trusting a stale listing.
func (t *Technician) IsAvailable() bool {
	return t.workStatus.IsFree() && t.kycStatus.IsApproved()
}

// ReviewOnboarding applies a reviewer's verdict on the onboarding gate and
// the identity KYC status.
func (t *Technician) ReviewOnboarding(isActive bool, kycStatus kernel.KycStatus) error {
	if err := kycStatus.Validate(); err != nil {
		return err
	}

	t.isActive = isActive
	t.kycStatus = kycStatus
	return nil
}

// MarkBusy claims the technician for an assignment.
//
// Guard: the technician must currently be free. A busy technician holds
// exactly one open assignment, so claiming it again is a conflict - the
// caller lost the race for this technician.
func (t *Technician) MarkBusy() error {
	if !t.workStatus.IsFree() {
		return errs.NewConflictError("technician", t.id.String())
	}

	t.workStatus = WorkBusy
	return nil
}

// MarkFree releases the technician when its assignment is removed, rejected
// or the owning request is closed. Releasing a free technician is a no-op,
// which keeps release rules safe to apply independently.
func (t *Technician) MarkFree() {
	t.workStatus = WorkFree
}

func (t *Technician) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Technician) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	t.orgID = orgID
	return nil
}

func (t *Technician) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	t.userID = userID
	return nil
}

func (t *Technician) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	t.name = name
	return nil
}
