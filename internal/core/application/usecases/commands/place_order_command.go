package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a member buying count units of one item.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(memberID, itemID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	itemID   kernel.UUID
	count    int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates both identifiers and a positive count.
func NewPlaceOrderCommand(memberID, itemID kernel.UUID, count int) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMemberID(memberID),
		cmd.setItemID(itemID),
		cmd.setCount(count),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) MemberID() kernel.UUID {
	return c.memberID
}

func (c PlaceOrderCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c PlaceOrderCommand) Count() int {
	return c.count
}

func (c *PlaceOrderCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}
	c.memberID = memberID
	return nil
}

func (c *PlaceOrderCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *PlaceOrderCommand) setCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("count is invalid", fmt.Errorf("%d is not greater than 0", count))
	}
	c.count = count
	return nil
}
