package customerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aquaserve/internal/core/domain/model/customer"
	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/errs"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer to the database.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.UserID(), aggregate)
	return nil
}

// Update saves an existing customer to the database.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("user_id = ? AND org_id = ?", dto.UserID, dto.OrgID).
		Select("*").
		Omit("user_id", "org_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", aggregate.UserID().String())
	}

	r.tracker.TrackAggregate(aggregate.UserID(), aggregate)
	return nil
}

// Get retrieves a customer by user id within the given tenant. A customer
// owned by a different tenant is reported as not found.
func (r *GormCustomerRepository) Get(
	ctx context.Context,
	orgID kernel.OrgID,
	userID kernel.UUID,
) (*customer.Customer, error) {
	if err := errors.Join(orgID.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	err := r.db.WithContext(ctx).
		First(&dto, "user_id = ? AND org_id = ?", userID.Bytes(), orgID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
