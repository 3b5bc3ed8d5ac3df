package commands

import (
	"context"
)

// CancelOrderCommandHandler cancels an order that has not left for delivery.
// Only Pending and Confirmed orders can be cancelled; the transition table
// rejects everything else.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// The update is conditional on the status the order was read in, so a
// cancellation racing the assignment sweep loses cleanly to the dispatch.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	cancelledOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	prev := cancelledOrder.Status()
	courierID := cancelledOrder.Courier()

	if err = cancelledOrder.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, cancelledOrder, prev); err != nil {
		return err
	}

	// Cancellable statuses never carry a courier; this covers rows written
	// before that rule existed.
	if courierID != nil {
		if err = releaseCourier(ctx, uow.CourierRepository(), *courierID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
