package commands

import (
	"context"

	"shop/internal/core/domain/model/item"
)

// RegisterItemCommandHandler puts a new item on sale.
type RegisterItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

func NewRegisterItemCommandHandler(uowFactory ItemUoWFactory) RegisterItemCommandHandler {
	return RegisterItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RegisterItemCommandHandler) Handle(ctx context.Context, cmd RegisterItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	it, err := item.NewItem(cmd.ItemID(), cmd.Name(), cmd.Price(), cmd.StockQuantity())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ItemRepository().Add(ctx, it); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
