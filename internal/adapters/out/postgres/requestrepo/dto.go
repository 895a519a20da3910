// Package requestrepo provides data transfer objects and mapping functions
// for service-request persistence.
package requestrepo

import (
	"github.com/google/uuid"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/servicerequest"
)

// RequestDTO represents the database structure for persisting service-request
// aggregates.
type RequestDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrgID      uuid.UUID  `gorm:"type:uuid;index"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	DeviceID   string
	Issue      string
	Status     string
	AssignedTo *uuid.UUID `gorm:"type:uuid;index"`
	Version    int
}

// TableName specifies the database table name for service-request entities.
func (RequestDTO) TableName() string {
	return "service_requests"
}

func fromDomain(aggregate *servicerequest.Request) RequestDTO {
	var assignedTo *uuid.UUID
	if id := aggregate.AssignedTo(); id != nil {
		raw := id.Bytes()
		assignedTo = &raw
	}

	return RequestDTO{
		ID:         aggregate.ID().Bytes(),
		OrgID:      aggregate.OrgID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		DeviceID:   aggregate.DeviceID(),
		Issue:      aggregate.Issue(),
		Status:     string(aggregate.Status()),
		AssignedTo: assignedTo,
		Version:    aggregate.Version(),
	}
}

func toDomain(dto RequestDTO) (*servicerequest.Request, error) {
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

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		aID, assignedErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if assignedErr != nil {
			return nil, assignedErr
		}
		assignedTo = &aID
	}

	return servicerequest.RestoreRequest(
		id,
		orgID,
		customerID,
		dto.DeviceID,
		dto.Issue,
		servicerequest.Status(dto.Status),
		assignedTo,
		dto.Version,
	)
}
