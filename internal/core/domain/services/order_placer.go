package services

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
)

// OrderPlacer is a domain service that constructs a complete Order aggregate
// for a member buying a single item.
//
// Business rules:
//   - the delivery is created READY at the member's current address
//   - the line captures the item's current price
//   - stock is reserved when the line is created
//   - no stock change survives a failed placement
//
// Example usage:
//
//	placer := services.NewOrderPlacer()
//	o, err := placer.Place(kim, book, 2)
//	if errors.Is(err, item.ErrInsufficientStock) {
//	    // not enough books
//	}
type OrderPlacer struct{}

// NewOrderPlacer creates a new OrderPlacer instance.
func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

// Place builds the delivery, the order line and the order. On success the
// item's stock has been reduced by count; persisting the order and the item
// is left to the caller.
func (p OrderPlacer) Place(m *member.Member, it *item.Item, count int) (*order.Order, error) {
	if err := errors.Join(m.Validate(), it.Validate()); err != nil {
		return nil, err
	}

	delivery, err := order.NewDelivery(kernel.NewUUID(), m.Address())
	if err != nil {
		return nil, err
	}

	line, err := order.NewOrderLine(kernel.NewUUID(), it, it.Price(), count)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), m, delivery, line)
	if err != nil {
		if cancelErr := line.Cancel(); cancelErr != nil {
			return nil, errors.Join(err, fmt.Errorf("release reserved stock: %w", cancelErr))
		}
		return nil, err
	}

	return o, nil
}
