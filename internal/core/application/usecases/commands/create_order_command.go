package commands

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/errs"
	"aquaserve/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)

	// ErrDeviceIDIsRequired is returned when the device reference is empty.
	ErrDeviceIDIsRequired = errs.NewValueIsRequiredError("deviceId")
)

// CreateOrderCommand represents a request to create a new installation order
// for a customer within the caller's tenant. The order starts OPEN with all
// stage flags cleared and an order-local KYC approval of PENDING.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orgID, orderID, customerID, planID, "DEV-401")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orgID      kernel.OrgID
	orderID    kernel.UUID
	customerID kernel.UUID
	planID     kernel.UUID
	deviceID   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new installation order.
// Validates every identifier and requires a non-empty device reference.
func NewCreateOrderCommand(
	orgID kernel.OrgID,
	orderID kernel.UUID,
	customerID kernel.UUID,
	planID kernel.UUID,
	deviceID string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setPlanID(planID),
		cmd.setDeviceID(deviceID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrgID returns the tenant the order is created in.
func (c CreateOrderCommand) OrgID() kernel.OrgID {
	return c.orgID
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer the purifier is installed for.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PlanID returns the subscription plan the order is placed under.
func (c CreateOrderCommand) PlanID() kernel.UUID {
	return c.planID
}

// DeviceID returns the purifier device reference.
func (c CreateOrderCommand) DeviceID() string {
	return c.deviceID
}

func (c *CreateOrderCommand) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setPlanID(planID kernel.UUID) error {
	if err := planID.Validate(); err != nil {
		return err
	}
	c.planID = planID
	return nil
}

func (c *CreateOrderCommand) setDeviceID(deviceID string) error {
	if deviceID == "" {
		return ErrDeviceIDIsRequired
	}
	c.deviceID = deviceID
	return nil
}
