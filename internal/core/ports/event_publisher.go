package ports

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed changes of order aggregates to
// other systems. Implementations must not modify the order.
type OrderEventPublisher interface {
	Publish(ctx context.Context, aggregates ...*order.Order) error
}
