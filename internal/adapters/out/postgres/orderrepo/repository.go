package orderrepo

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Associations are never saved implicitly: Add writes the order row, the
// delivery row and the line rows one by one, and never touches members or
// items. Item stock is persisted through the item repository.
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

// Add saves a new order with its delivery and lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto.Delivery).Error; err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto.Lines).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the order status and the delivery status.
//
// A cancelled order is final, so only rows still in ORDER are written. When
// the stored row is already cancelled Update returns errs.IllegalStateError
// and leaves it alone.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, order.Ordered.String()).
		Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.notUpdated(ctx, aggregate.ID())
	}

	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("order_id = ?", dto.ID).
		Update("status", dto.Delivery.Status).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) notUpdated(ctx context.Context, id kernel.UUID) error {
	var stored OrderDTO
	err := r.db.WithContext(ctx).Select("status").First(&stored, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	if err != nil {
		return err
	}
	return errs.NewIllegalStateError("order", stored.Status)
}

// Get retrieves an order by ID with its member, delivery, lines and items.
//
// The order row and its items are read with FOR UPDATE, items in id order.
// Inside a unit of work this holds both until commit, so a concurrent cancel
// of the same order waits and then sees CANCEL, and the stock written back by
// a cancel cannot overwrite a reservation made in between.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Delivery").
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("Lines.Item", func(db *gorm.DB) *gorm.DB {
			return db.Clauses(clause.Locking{Strength: "UPDATE"}).Order("id")
		}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
