// Package customer implements the customer aggregate: an end user of one
// tenant whose identity KYC status gates installation-order assignment.
// The workflow engine mutates the KYC status only through a reviewer action
// and never deletes customer records.
package customer

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/errs"
	"aquaserve/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when using an improperly
	// initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrNameIsRequired is returned when attempting to create a customer
	// without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Customer is the aggregate root for a tenant's end user.
// Identity is (org_id, user_id). The identity-level KYC status here is
// distinct from the order-local KYC approval on each installation order;
// a customer-level review propagates only the kyc_verified stage flag onto
// the customer's orders.
type Customer struct {
	userID kernel.UUID
	orgID  kernel.OrgID
	name   string
	email  string
	phone  string

	kycStatus        kernel.KycStatus
	kycDocumentRef   string
	deviceLinkStatus kernel.DeviceLinkStatus

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer with a pending KYC status and no linked
// device. Contact details beyond the name are optional at creation.
func NewCustomer(userID kernel.UUID, orgID kernel.OrgID, name, email, phone string) (*Customer, error) {
	c := &Customer{
		email:            email,
		phone:            phone,
		kycStatus:        kernel.KycPending,
		deviceLinkStatus: kernel.DeviceUnlinked,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setUserID(userID),
		c.setOrgID(orgID),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer aggregate from persistence.
func RestoreCustomer(
	userID kernel.UUID,
	orgID kernel.OrgID,
	name, email, phone string,
	kycStatus kernel.KycStatus,
	kycDocumentRef string,
	deviceLinkStatus kernel.DeviceLinkStatus,
) (*Customer, error) {
	c, err := NewCustomer(userID, orgID, name, email, phone)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		kycStatus.Validate(),
		deviceLinkStatus.Validate(),
	); err != nil {
		return nil, err
	}

	c.kycStatus = kycStatus
	c.kycDocumentRef = kycDocumentRef
	c.deviceLinkStatus = deviceLinkStatus
	return c, nil
}

// Validate ensures the Customer was properly constructed through a factory method.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// UserID returns the customer's user identity within the tenant.
func (c *Customer) UserID() kernel.UUID {
	return c.userID
}

// OrgID returns the owning tenant.
func (c *Customer) OrgID() kernel.OrgID {
	return c.orgID
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's contact email.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// KycStatus returns the identity-level verification status.
func (c *Customer) KycStatus() kernel.KycStatus {
	return c.kycStatus
}

// KycDocumentRef returns the opaque reference to the stored KYC document,
// empty when none was submitted. The engine persists only the reference;
// the file itself lives with the file-storage collaborator.
func (c *Customer) KycDocumentRef() string {
	return c.kycDocumentRef
}

// DeviceLinkStatus returns the customer's device-link status.
func (c *Customer) DeviceLinkStatus() kernel.DeviceLinkStatus {
	return c.deviceLinkStatus
}

// ReviewKyc applies a reviewer's identity-verification verdict.
// documentRef optionally records the reviewed document; an empty value keeps
// the existing reference. Reviewing with the same verdict is idempotent.
func (c *Customer) ReviewKyc(verdict kernel.KycStatus, documentRef string) error {
	if err := verdict.Validate(); err != nil {
		return err
	}

	c.kycStatus = verdict
	if documentRef != "" {
		c.kycDocumentRef = documentRef
	}
	return nil
}

func (c *Customer) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *Customer) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
