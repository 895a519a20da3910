package technicianrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/technician"
	"aquaserve/internal/pkg/errs"
)

// GormTechnicianRepository implements TechnicianRepository using GORM.
type GormTechnicianRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTechnicianRepository creates a new GORM technician repository.
func NewGormTechnicianRepository(db *gorm.DB, tracker aggregateTracker) *GormTechnicianRepository {
	return &GormTechnicianRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new technician to the database.
func (r *GormTechnicianRepository) Add(ctx context.Context, aggregate *technician.Technician) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing technician to the database.
// The write is a compare-and-set on the stored version, so two concurrent
// attempts to claim the same technician cannot both succeed: the loser
// receives a ConflictError.
func (r *GormTechnicianRepository) Update(ctx context.Context, aggregate *technician.Technician) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&TechnicianDTO{}).
		Where("id = ? AND org_id = ? AND version = ?", dto.ID, dto.OrgID, aggregate.Version()).
		Select("*").
		Omit("id", "org_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("technician", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a technician by reference id within the given tenant. A
// technician owned by a different tenant is reported as not found.
func (r *GormTechnicianRepository) Get(
	ctx context.Context,
	orgID kernel.OrgID,
	id kernel.UUID,
) (*technician.Technician, error) {
	if err := errors.Join(orgID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto TechnicianDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND org_id = ?", id.Bytes(), orgID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("technician", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllBusy retrieves every busy technician across all tenants. Maintenance
// path for the work-status reconciliation job only.
func (r *GormTechnicianRepository) GetAllBusy(ctx context.Context) ([]*technician.Technician, error) {
	var dtos []TechnicianDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "work_status = ?", string(technician.WorkBusy)).Error
	if err != nil {
		return nil, err
	}

	technicians := make([]*technician.Technician, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		technicians = append(technicians, t)
	}

	return technicians, nil
}
