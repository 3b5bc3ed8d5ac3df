package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// VerifyPaymentCommandHandler confirms a pending order once the gateway's
// payment signature checks out. The signature check happens before any
// persistence work so forged callbacks never open a transaction.
type VerifyPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	verifier   services.PaymentVerifier
}

// NewVerifyPaymentCommandHandler creates a handler for payment confirmation.
func NewVerifyPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	verifier services.PaymentVerifier,
) VerifyPaymentCommandHandler {
	return VerifyPaymentCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
	}
}

// Handle processes the payment confirmation command.
// Moves the order Pending to Confirmed and records the gateway payment ID.
// The update is conditional on the stored row still being Pending, so a
// replayed callback surfaces as a conflict instead of double-confirming.
func (h VerifyPaymentCommandHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.verifier.Verify(cmd.GatewayOrderID(), cmd.GatewayPaymentID(), cmd.Signature()); err != nil {
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
	pendingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = pendingOrder.ConfirmPayment(cmd.GatewayPaymentID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, pendingOrder, order.Pending); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
