// Package orderrepo provides data transfer objects and mapping functions for
// installation-order persistence. It implements the repository pattern for
// the order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Every row carries the owning tenant; all repository reads and writes filter
// on org_id so rows of another tenant behave as absent.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrgID              uuid.UUID       `gorm:"type:uuid;index"`
	CustomerID         uuid.UUID       `gorm:"type:uuid;index"`
	PlanID             uuid.UUID       `gorm:"type:uuid"`
	DeviceID           string
	Status             int
	PaymentReceived    bool
	AmountPaid         decimal.Decimal `gorm:"type:numeric"`
	KycVerified        bool
	AssignedTo         *uuid.UUID      `gorm:"type:uuid;index"`
	TechnicianApproval string
	KycApproval        string
	CompletedAt        *time.Time
	Version            int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var assignedTo *uuid.UUID
	if id := aggregate.AssignedTo(); id != nil {
		raw := id.Bytes()
		assignedTo = &raw
	}

	stages := aggregate.Stages()

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		OrgID:              aggregate.OrgID().Bytes(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		PlanID:             aggregate.PlanID().Bytes(),
		DeviceID:           aggregate.DeviceID(),
		Status:             int(aggregate.Status()),
		PaymentReceived:    stages.PaymentReceived,
		AmountPaid:         aggregate.AmountPaid(),
		KycVerified:        stages.KycVerified,
		AssignedTo:         assignedTo,
		TechnicianApproval: string(aggregate.TechnicianApproval()),
		KycApproval:        string(aggregate.KycApproval()),
		CompletedAt:        aggregate.CompletedAt(),
		Version:            aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orgID, err := kernel.OrgIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	planID, err := kernel.UUIDFromBytes(dto.PlanID[:])
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		aID, assignedErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if assignedErr != nil {
			return nil, assignedErr
		}
		assignedTo = &aID
	}

	return order.RestoreOrder(
		id,
		orgID,
		customerID,
		planID,
		dto.DeviceID,
		order.Status(dto.Status),
		dto.PaymentReceived,
		dto.AmountPaid,
		dto.KycVerified,
		assignedTo,
		order.ApprovalStatus(dto.TechnicianApproval),
		order.ApprovalStatus(dto.KycApproval),
		dto.CompletedAt,
		dto.Version,
	)
}
