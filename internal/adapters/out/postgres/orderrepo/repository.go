package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/order"
	"aquaserve/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database.
// The write is a compare-and-set on the stored version: the row is updated
// only when it still carries the version the aggregate was loaded with, and
// a lost race surfaces as a ConflictError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND org_id = ? AND version = ?", dto.ID, dto.OrgID, aggregate.Version()).
		Select("*").
		Omit("id", "org_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by id within the given tenant. An order owned by a
// different tenant is reported as not found.
func (r *GormOrderRepository) Get(ctx context.Context, orgID kernel.OrgID, id kernel.UUID) (*order.Order, error) {
	if err := errors.Join(orgID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND org_id = ?", id.Bytes(), orgID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCustomer retrieves every order of one customer within the tenant,
// regardless of status.
func (r *GormOrderRepository) GetAllByCustomer(
	ctx context.Context,
	orgID kernel.OrgID,
	customerID kernel.UUID,
) ([]*order.Order, error) {
	if err := errors.Join(orgID.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "org_id = ? AND customer_id = ?", orgID.Bytes(), customerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// SyncKycVerifiedByCustomer sets the kyc_verified stage flag on every order
// of the customer within the tenant. The write is status-independent and
// touches closed orders too. Each touched row's version is bumped so that
// any writer still holding a pre-propagation snapshot fails its
// compare-and-set instead of rewriting the flag.
func (r *GormOrderRepository) SyncKycVerifiedByCustomer(
	ctx context.Context,
	orgID kernel.OrgID,
	customerID kernel.UUID,
	verified bool,
) error {
	if err := errors.Join(orgID.Validate(), customerID.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("org_id = ? AND customer_id = ?", orgID.Bytes(), customerID.Bytes()).
		Updates(map[string]any{
			"kyc_verified": verified,
			"version":      gorm.Expr("version + 1"),
		}).Error
}
