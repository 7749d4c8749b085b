package commands

import (
	"context"
)

// CancelOrderCommandHandler cancels an order inside a single unit of work.
// The order status, the delivery status and the stock of every item on the
// order's lines are written in the same transaction. The order row and its
// items stay locked from load until commit.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ObjectNotFoundError for an unknown order and
// errs.IllegalStateError when the order cannot be cancelled.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	itemRepo := uow.ItemRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	for _, line := range o.Lines() {
		if err = itemRepo.UpdateStock(ctx, line.Item()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
