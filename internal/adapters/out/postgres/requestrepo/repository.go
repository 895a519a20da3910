package requestrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/servicerequest"
	"aquaserve/internal/pkg/errs"
)

// GormRequestRepository implements ServiceRequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM service-request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new service request to the database.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *servicerequest.Request) error {
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

// Update saves an existing service request to the database.
// The write is a compare-and-set on the stored version.
func (r *GormRequestRepository) Update(ctx context.Context, aggregate *servicerequest.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ? AND org_id = ? AND version = ?", dto.ID, dto.OrgID, aggregate.Version()).
		Select("*").
		Omit("id", "org_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("service request", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a service request by id within the given tenant. A request
// owned by a different tenant is reported as not found.
func (r *GormRequestRepository) Get(
	ctx context.Context,
	orgID kernel.OrgID,
	id kernel.UUID,
) (*servicerequest.Request, error) {
	if err := errors.Join(orgID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND org_id = ?", id.Bytes(), orgID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsAssignedTo reports whether any request currently references the
// technician as its assignee. Maintenance path for the work-status
// reconciliation job only.
func (r *GormRequestRepository) ExistsAssignedTo(ctx context.Context, technicianID kernel.UUID) (bool, error) {
	if err := technicianID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("assigned_to = ?", technicianID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
