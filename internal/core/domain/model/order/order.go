package order

import (
	"errors"
	"time"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/errs"
	"aquaserve/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDeviceIDIsRequired is returned when attempting to create an order
	// without a device identifier.
	ErrDeviceIDIsRequired = errs.NewValueIsRequiredError("deviceId")

	// ErrAmountIsInvalid is returned when a payment amount is not positive.
	ErrAmountIsInvalid = errs.NewValueIsInvalidError("amount")
)

// Stages is the read-only projection of an order's milestone flags.
// Callers never set these directly: TechnicianAssigned and
// InstallationCompleted are derived from the assignment sub-state and the
// completion timestamp, which keeps the flags and the top-level status from
// ever disagreeing.
type Stages struct {
	PaymentReceived       bool
	KycVerified           bool
	TechnicianAssigned    bool
	InstallationCompleted bool
}

// Order is the installation-order aggregate root. It owns the fulfillment
// state machine and all of its guarded transitions.
//
// Order maintains these invariants:
//   - the technician-assigned stage is true only when a technician is
//     assigned and the approval decision is APPROVED
//   - the assignment sub-state reaches PENDING only from an OPEN, paid,
//     KYC-approved order
//   - Closed is terminal
//
// All fields are private; the aggregate can only be mutated through its
// transition methods, and only be created through NewOrder or RestoreOrder.
type Order struct {
	id         kernel.UUID
	orgID      kernel.OrgID
	customerID kernel.UUID
	planID     kernel.UUID
	deviceID   string

	status             Status
	paymentReceived    bool
	amountPaid         decimal.Decimal
	kycVerified        bool
	assignedTo         *kernel.UUID
	technicianApproval ApprovalStatus
	kycApproval        ApprovalStatus
	completedAt        *time.Time

	// version supports the optimistic compare-and-set in the repository.
	version int

	guard guard.ConstructorGuard
}

// NewOrder creates a new installation order in OPEN status with all stage
// flags cleared, no assignment, and an order-local KYC approval of PENDING.
//
// Parameters:
//   - id: unique order identifier (unique per tenant and globally)
//   - orgID: the owning tenant
//   - customerID: the customer the purifier is installed for
//   - planID: the subscription plan the order was placed under
//   - deviceID: the purifier device reference
//
// Returns a validation error if any identifier is invalid or the device
// reference is empty.
func NewOrder(
	id kernel.UUID,
	orgID kernel.OrgID,
	customerID kernel.UUID,
	planID kernel.UUID,
	deviceID string,
) (*Order, error) {
	o := &Order{
		status:             Open,
		technicianApproval: ApprovalNone,
		kycApproval:        ApprovalPending,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrgID(orgID),
		o.setCustomerID(customerID),
		o.setPlanID(planID),
		o.setDeviceID(deviceID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// All enum values are validated; the derived stage flags are recomputed from
// the restored sub-state rather than trusted from storage.
func RestoreOrder(
	id kernel.UUID,
	orgID kernel.OrgID,
	customerID kernel.UUID,
	planID kernel.UUID,
	deviceID string,
	status Status,
	paymentReceived bool,
	amountPaid decimal.Decimal,
	kycVerified bool,
	assignedTo *kernel.UUID,
	technicianApproval ApprovalStatus,
	kycApproval ApprovalStatus,
	completedAt *time.Time,
	version int,
) (*Order, error) {
	o, err := NewOrder(id, orgID, customerID, planID, deviceID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = technicianApproval.ValidateNullable(); err != nil {
		return nil, err
	}
	if err = kycApproval.Validate(); err != nil {
		return nil, err
	}
	if assignedTo != nil {
		if err = assignedTo.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.paymentReceived = paymentReceived
	o.amountPaid = amountPaid
	o.kycVerified = kycVerified
	o.assignedTo = assignedTo
	o.technicianApproval = technicianApproval
	o.kycApproval = kycApproval
	o.completedAt = completedAt
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrgID returns the owning tenant.
func (o *Order) OrgID() kernel.OrgID {
	return o.orgID
}

// CustomerID returns the customer the order belongs to.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PlanID returns the subscription plan the order was placed under.
func (o *Order) PlanID() kernel.UUID {
	return o.planID
}

// DeviceID returns the purifier device reference.
func (o *Order) DeviceID() string {
	return o.deviceID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Stages returns the derived milestone projection.
// TechnicianAssigned is true exactly when a technician is assigned with an
// APPROVED decision; InstallationCompleted is true exactly when a completion
// timestamp exists.
func (o *Order) Stages() Stages {
	return Stages{
		PaymentReceived:       o.paymentReceived,
		KycVerified:           o.kycVerified,
		TechnicianAssigned:    o.assignedTo != nil && o.technicianApproval.IsApproved(),
		InstallationCompleted: o.completedAt != nil,
	}
}

// AssignedTo returns the assigned technician's reference id, or nil when the
// order is unassigned.
func (o *Order) AssignedTo() *kernel.UUID {
	return o.assignedTo
}

// TechnicianApproval returns the assignment sub-state.
// ApprovalNone means unassigned or removed.
func (o *Order) TechnicianApproval() ApprovalStatus {
	return o.technicianApproval
}

// KycApproval returns the order-local KYC approval status. This is distinct
// from the owning customer's identity KYC status.
func (o *Order) KycApproval() ApprovalStatus {
	return o.kycApproval
}

// AmountPaid returns the payment amount recorded by ReceivePayment.
// Zero until a payment is received.
func (o *Order) AmountPaid() decimal.Decimal {
	return o.amountPaid
}

// CompletedAt returns the completion timestamp, or nil for uncompleted orders.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Version returns the optimistic-concurrency version of the record.
func (o *Order) Version() int {
	return o.version
}

// ReceivePayment records a received payment and raises the payment stage.
//
// Guards:
//   - the order must be OPEN
//   - the amount must be positive
//
// Receiving a second payment on an already paid order overwrites the
// recorded amount; the stage flag stays raised.
func (o *Order) ReceivePayment(amount decimal.Decimal) error {
	if !o.status.IsOpen() {
		return errs.NewPreconditionFailedError("order must be open")
	}
	if !amount.IsPositive() {
		return ErrAmountIsInvalid
	}

	o.paymentReceived = true
	o.amountPaid = amount
	return nil
}

// ReviewKyc records an order-local KYC review verdict and synchronizes the
// KYC stage flag for this order only. The customer record is not touched.
func (o *Order) ReviewKyc(verdict ApprovalStatus) error {
	if err := verdict.Validate(); err != nil {
		return err
	}

	o.kycApproval = verdict
	o.kycVerified = verdict.IsApproved()
	return nil
}

// SetKycVerified synchronizes the KYC stage flag from a customer-level KYC
// review. This is the propagation path of the KYC synchronization contract:
// it is unconditional and status-independent, so it also touches CLOSED
// orders, and it never modifies the order-local KYC approval.
func (o *Order) SetKycVerified(verified bool) {
	o.kycVerified = verified
}

// AssignTechnician places an assignment offer to a technician, moving the
// assignment sub-state to PENDING.
//
// Guards, each rejected with a named reason:
//   - the order must be OPEN
//   - payment must be received
//   - the order-local KYC approval must be APPROVED
//   - no assignment decision may be outstanding (PENDING); violating this
//     is a conflict, since it means another assignment got there first
//
// The technician-assigned stage stays false until the technician approves.
// Technician existence and activity are checked by the workflow handler,
// which owns the cross-aggregate view.
func (o *Order) AssignTechnician(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	if !o.status.IsOpen() {
		return errs.NewPreconditionFailedError("order must be open")
	}
	if !o.paymentReceived {
		return errs.NewPreconditionFailedError("payment must be received")
	}
	if !o.kycApproval.IsApproved() {
		return errs.NewPreconditionFailedError("kyc must be approved")
	}
	if o.technicianApproval.IsPending() {
		return errs.NewConflictError("order", o.id.String())
	}

	o.assignedTo = &technicianID
	o.technicianApproval = ApprovalPending
	return nil
}

// RemoveAssignment withdraws an undecided assignment offer, returning the
// sub-state to unassigned.
//
// Guard: the approval must still be PENDING - a decided assignment cannot be
// undone this way (an APPROVED one is removed by an explicit reviewer action
// through the same guard after reassignment, per the sub-state machine).
func (o *Order) RemoveAssignment() error {
	if !o.technicianApproval.IsPending() {
		return errs.NewPreconditionFailedError("assignment decision is not pending")
	}

	o.assignedTo = nil
	o.technicianApproval = ApprovalNone
	return nil
}

// RecordTechnicianDecision applies the technician's accept/decline verdict to
// a pending assignment. This is the completion hook for the technician-facing
// approval step, which itself lives outside the workflow engine.
//
// Guard: the approval must be PENDING.
// On approval the technician-assigned stage becomes true (derived). On
// decline the sub-state records REJECTED; the order can then be reassigned.
func (o *Order) RecordTechnicianDecision(approved bool) error {
	if !o.technicianApproval.IsPending() {
		return errs.NewPreconditionFailedError("assignment decision is not pending")
	}

	if approved {
		o.technicianApproval = ApprovalApproved
	} else {
		o.technicianApproval = ApprovalRejected
	}
	return nil
}

// CompleteInstallation records the installation as done and closes the order.
//
// Deliberately, no stage precondition is enforced beyond the order existing
// and being OPEN: an order can be completed without ever having gone through
// assignment. Closed is terminal, so completing twice is rejected by the
// status machine.
func (o *Order) CompleteInstallation(completedAt time.Time) error {
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.completedAt = &completedAt
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	o.orgID = orgID
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setPlanID(planID kernel.UUID) error {
	if err := planID.Validate(); err != nil {
		return err
	}
	o.planID = planID
	return nil
}

func (o *Order) setDeviceID(deviceID string) error {
	if deviceID == "" {
		return ErrDeviceIDIsRequired
	}
	o.deviceID = deviceID
	return nil
}
