package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The aggregate is always stored and loaded as a whole: the order, its
// delivery and its lines. Referenced members and items are never written.
type OrderRepository interface {
	// Add persists a new order with its delivery and lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable state of an existing order: its status and
	// the status of its delivery. Lines are immutable and are not rewritten.
	// Returns errs.IllegalStateError when the stored order is already cancelled.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its member, delivery, lines and the
	// items the lines reference, lines in their original sequence.
	// Inside a unit of work the order and its items stay locked until it ends.
	// Returns errs.ObjectNotFoundError when no order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
