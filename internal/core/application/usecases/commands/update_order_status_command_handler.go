package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies an operator status override.
// The change is routed through the order's transition table, so an operator
// can close out or cancel an order but cannot conjure states that skip
// payment or dispatch.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status overrides.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status override command.
// Marking an order Delivered releases its courier, same as the regular
// completion flow.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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
	changedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	prev := changedOrder.Status()
	courierID := changedOrder.Courier()

	if err = changedOrder.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, changedOrder, prev); err != nil {
		return err
	}

	if cmd.Status() == order.Delivered && courierID != nil {
		if err = releaseCourier(ctx, uow.CourierRepository(), *courierID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
