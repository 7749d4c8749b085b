package commands

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/services"
)

// PlaceOrderCommandHandler places an order inside a single unit of work:
// the member and the item are loaded, the order is built and saved together
// with the reduced item stock, and everything commits or nothing does.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, item.ErrInsufficientStock) {
//	    // nothing was written
//	}
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	placer     services.OrderPlacer
}

func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		placer:     services.NewOrderPlacer(),
	}
}

// Handle returns the identifier of the new order.
// Unknown member or item yields errs.ObjectNotFoundError.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	memberRepo := uow.MemberRepository()
	itemRepo := uow.ItemRepository()
	orderRepo := uow.OrderRepository()

	m, err := memberRepo.Get(ctx, cmd.MemberID())
	if err != nil {
		return kernel.UUID{}, err
	}

	it, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return kernel.UUID{}, err
	}

	o, err := h.placer.Place(m, it, cmd.Count())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = itemRepo.UpdateStock(ctx, it); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return o.ID(), nil
}
