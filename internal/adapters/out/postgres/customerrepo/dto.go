// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"github.com/google/uuid"

	"aquaserve/internal/core/domain/model/customer"
	"aquaserve/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. Identity is (org_id, user_id).
type CustomerDTO struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID            uuid.UUID `gorm:"type:uuid;index"`
	Name             string
	Email            string
	Phone            string
	KycStatus        string
	KycDocumentRef   string
	DeviceLinkStatus string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		UserID:           aggregate.UserID().Bytes(),
		OrgID:            aggregate.OrgID().Bytes(),
		Name:             aggregate.Name(),
		Email:            aggregate.Email(),
		Phone:            aggregate.Phone(),
		KycStatus:        string(aggregate.KycStatus()),
		KycDocumentRef:   aggregate.KycDocumentRef(),
		DeviceLinkStatus: string(aggregate.DeviceLinkStatus()),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	orgID, err := kernel.OrgIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		userID,
		orgID,
		dto.Name,
		dto.Email,
		dto.Phone,
		kernel.KycStatus(dto.KycStatus),
		dto.KycDocumentRef,
		kernel.DeviceLinkStatus(dto.DeviceLinkStatus),
	)
}
