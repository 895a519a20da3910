// Package technicianrepo provides data transfer objects and mapping
// functions for technician persistence.
package technicianrepo

import (
	"github.com/google/uuid"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/technician"
)

// TechnicianDTO represents the database structure for persisting technician
// aggregates. The (org_id, work_status, kyc_status) combination is indexed
// for the availability listing.
type TechnicianDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID            uuid.UUID `gorm:"type:uuid;index:idx_technicians_availability"`
	UserID           uuid.UUID `gorm:"type:uuid;index"`
	Name             string
	IsActive         bool
	KycStatus        string    `gorm:"index:idx_technicians_availability"`
	WorkStatus       string    `gorm:"index:idx_technicians_availability"`
	DeviceLinkStatus string
	Version          int
}

// TableName specifies the database table name for technician entities.
func (TechnicianDTO) TableName() string {
	return "technicians"
}

func fromDomain(aggregate *technician.Technician) TechnicianDTO {
	return TechnicianDTO{
		ID:               aggregate.ID().Bytes(),
		OrgID:            aggregate.OrgID().Bytes(),
		UserID:           aggregate.UserID().Bytes(),
		Name:             aggregate.Name(),
		IsActive:         aggregate.IsActive(),
		KycStatus:        string(aggregate.KycStatus()),
		WorkStatus:       string(aggregate.WorkStatus()),
		DeviceLinkStatus: string(aggregate.DeviceLinkStatus()),
		Version:          aggregate.Version(),
	}
}

func toDomain(dto TechnicianDTO) (*technician.Technician, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orgID, err := kernel.OrgIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return technician.RestoreTechnician(
		id,
		orgID,
		userID,
		dto.Name,
		dto.IsActive,
		kernel.KycStatus(dto.KycStatus),
		technician.WorkStatus(dto.WorkStatus),
		kernel.DeviceLinkStatus(dto.DeviceLinkStatus),
		dto.Version,
	)
}
