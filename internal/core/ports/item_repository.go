package ports

import (
	"context"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for items.
type ItemRepository interface {
	// Add persists a new item.
	Add(ctx context.Context, it *item.Item) error

	// Get retrieves an item by identifier.
	// Returns errs.ObjectNotFoundError when no item exists.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// UpdateStock writes the item's current stock quantity.
	// Name and price are never changed by this call.
	UpdateStock(ctx context.Context, it *item.Item) error
}
