package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// RefundOrderCommandHandler refunds a confirmed order through the payment
// gateway and records the Refunded status. The gateway call happens before
// the status flips: an order is never marked refunded while the money is
// still captured. The opposite window (refund issued, commit lost) is left
// to the admin status override.
type RefundOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
}

// NewRefundOrderCommandHandler creates a handler for refund operations.
func NewRefundOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the refund command.
// Resolves the order by its gateway payment ID, instructs the provider to
// return the full captured total, then moves Confirmed to Refunded via a
// conditional update.
func (h RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) error {
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
	refundedOrder, err := orderRepo.GetByPaymentID(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = refundedOrder.Refund(); err != nil {
		return err
	}

	if err = h.gateway.Refund(ctx, cmd.PaymentID(), refundedOrder.Total()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, refundedOrder, order.Confirmed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
