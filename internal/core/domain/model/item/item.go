package item

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when validating a zero-value Item.
	ErrItemIsNotConstructed = errs.NewValueIsRequiredError("item must be created via NewItem or RestoreItem")

	// ErrInsufficientStock is the sentinel wrapped by InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a reduction larger than the available stock.
// The item's stock is left unchanged.
type InsufficientStockError struct {
	ItemID    kernel.UUID
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: item %s has %d, requested %d",
		ErrInsufficientStock, e.ItemID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Item is a product with a price and an on-hand stock quantity.
type Item struct {
	id            kernel.UUID
	name          string
	price         kernel.Money
	stockQuantity int

	guard guard.ConstructorGuard
}

// NewItem creates an item with an initial stock quantity (zero allowed).
func NewItem(id kernel.UUID, name string, price kernel.Money, stockQuantity int) (*Item, error) {
	it := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setName(name),
		it.setPrice(price),
		it.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// RestoreItem rebuilds an item loaded from storage.
func RestoreItem(id kernel.UUID, name string, price kernel.Money, stockQuantity int) (*Item, error) {
	return NewItem(id, name, price, stockQuantity)
}

// Validate ensures the item was created through NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the current unit price.
func (i *Item) Price() kernel.Money {
	return i.price
}

// StockQuantity returns the number of units on hand. It is never negative.
func (i *Item) StockQuantity() int {
	return i.stockQuantity
}

// ReduceStock removes quantity units from stock.
//
// Parameters:
//   - quantity: units to reserve, must be positive
//
// Returns:
//   - errs.ValueIsOutOfRangeError if quantity is not positive
//   - *InsufficientStockError if quantity exceeds the stock on hand
//
// Example:
//
//	if err := book.ReduceStock(2); errors.Is(err, item.ErrInsufficientStock) {
//	    // fewer than two books left
//	}
func (i *Item) ReduceStock(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	if i.stockQuantity < quantity {
		return &InsufficientStockError{
			ItemID:    i.id,
			Requested: quantity,
			Available: i.stockQuantity,
		}
	}

	i.stockQuantity -= quantity
	return nil
}

// AddStock returns quantity units to stock.
//
// Returns errs.ValueIsOutOfRangeError when quantity is not positive or the
// new stock would overflow an int.
func (i *Item) AddStock(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	if i.stockQuantity > math.MaxInt-quantity {
		return errs.NewValueIsOutOfRangeError("stock quantity", quantity, 1, math.MaxInt-i.stockQuantity)
	}

	i.stockQuantity += quantity
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Item) setStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock quantity is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	i.stockQuantity = quantity
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return nil
}
