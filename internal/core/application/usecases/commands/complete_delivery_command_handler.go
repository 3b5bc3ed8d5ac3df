package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler finalizes a delivery. The order moves to
// Delivered and the courier returns to the available pool, both within one
// transaction. The order keeps its courier reference as a delivery record.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
// The order update is conditional on OutForDelivery, so a retried completion
// report resolves to one winner instead of releasing the courier twice.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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
	deliveredOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	courierID := deliveredOrder.Courier()

	if err = deliveredOrder.Complete(); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, deliveredOrder, order.OutForDelivery); err != nil {
		return err
	}

	if courierID != nil {
		if err = releaseCourier(ctx, uow.CourierRepository(), *courierID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// releaseCourier returns a courier to the available pool. A missing courier
// row is tolerated so an order referencing a deleted courier can still close.
func releaseCourier(ctx context.Context, repo ports.CourierRepository, courierID kernel.UUID) error {
	assignedCourier, err := repo.Get(ctx, courierID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	assignedCourier.Release()

	return repo.Update(ctx, assignedCourier)
}
