package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrRegisterItemCommandIsNotConstructed = errors.New(
	"RegisterItemCommand must be created via NewRegisterItemCommand constructor",
)

// RegisterItemCommand represents a new product put on sale with its initial stock.
type RegisterItemCommand struct { //nolint:recvcheck //using for validation
	itemID        kernel.UUID
	name          string
	price         kernel.Money
	stockQuantity int

	guard guard.ConstructorGuard
}

func NewRegisterItemCommand(
	itemID kernel.UUID,
	name string,
	price kernel.Money,
	stockQuantity int,
) (RegisterItemCommand, error) {
	cmd := RegisterItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStockQuantity(stockQuantity),
	); err != nil {
		return RegisterItemCommand{}, err
	}

	return cmd, nil
}

func (c RegisterItemCommand) Validate() error {
	return c.guard.Validate(ErrRegisterItemCommandIsNotConstructed)
}

func (c RegisterItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c RegisterItemCommand) Name() string {
	return c.name
}

func (c RegisterItemCommand) Price() kernel.Money {
	return c.price
}

func (c RegisterItemCommand) StockQuantity() int {
	return c.stockQuantity
}

func (c *RegisterItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *RegisterItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *RegisterItemCommand) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock quantity is invalid",
			fmt.Errorf("%d is negative", stockQuantity),
		)
	}
	c.stockQuantity = stockQuantity
	return nil
}
