package order

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrOrderLineIsNotConstructed is returned when validating a zero-value OrderLine.
var ErrOrderLineIsNotConstructed = errs.NewValueIsRequiredError("order line must be created via NewOrderLine or RestoreOrderLine")

// OrderLine is one purchased item within an order. The line references the
// item without owning it and captures the unit price at the time of ordering,
// so later price changes of the item do not affect the order total.
type OrderLine struct {
	id         kernel.UUID
	item       *item.Item
	orderPrice kernel.Money
	count      int

	guard guard.ConstructorGuard
}

// NewOrderLine validates its parameters and then reserves count units of the
// item by reducing its stock. If the reduction fails (typically with an
// item.InsufficientStockError) no line is returned and the stock is unchanged.
//
// Example:
//
//	line, err := order.NewOrderLine(kernel.NewUUID(), book, book.Price(), 2)
//	if errors.Is(err, item.ErrInsufficientStock) {
//	    // not enough books
//	}
func NewOrderLine(id kernel.UUID, it *item.Item, orderPrice kernel.Money, count int) (*OrderLine, error) {
	line, err := RestoreOrderLine(id, it, orderPrice, count)
	if err != nil {
		return nil, err
	}

	if err = it.ReduceStock(count); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreOrderLine rebuilds a line loaded from storage. Stock is not touched.
func RestoreOrderLine(id kernel.UUID, it *item.Item, orderPrice kernel.Money, count int) (*OrderLine, error) {
	line := &OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setItem(it),
		line.setOrderPrice(orderPrice),
		line.setCount(count),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the line was created through NewOrderLine or RestoreOrderLine.
func (l *OrderLine) Validate() error {
	if l == nil {
		return ErrOrderLineIsNotConstructed
	}
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// ID returns the line's unique identifier.
func (l *OrderLine) ID() kernel.UUID {
	return l.id
}

// Item returns the referenced item. The order never persists it; callers
// that change its stock save it through the item repository.
func (l *OrderLine) Item() *item.Item {
	return l.item
}

// OrderPrice returns the unit price captured when the line was created.
func (l *OrderLine) OrderPrice() kernel.Money {
	return l.orderPrice
}

// Count returns the number of units ordered.
func (l *OrderLine) Count() int {
	return l.count
}

// Subtotal is orderPrice × count.
func (l *OrderLine) Subtotal() kernel.Money {
	// count is positive by construction
	subtotal, _ := l.orderPrice.Multiply(l.count)
	return subtotal
}

// Cancel returns the line's count to the item's stock. It is not idempotent;
// the owning order calls it exactly once.
func (l *OrderLine) Cancel() error {
	return l.item.AddStock(l.count)
}

// reserveAgain undoes Cancel.
func (l *OrderLine) reserveAgain() error {
	return l.item.ReduceStock(l.count)
}

func (l *OrderLine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *OrderLine) setItem(it *item.Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	l.item = it
	return nil
}

func (l *OrderLine) setOrderPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.orderPrice = price
	return nil
}

func (l *OrderLine) setCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("count is invalid", fmt.Errorf("%d is not greater than 0", count))
	}
	l.count = count
	return nil
}
