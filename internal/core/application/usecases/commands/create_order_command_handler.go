package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the coupon discount against the cart subtotal and persists the
// order in Pending status, awaiting payment verification.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	coupons    services.CouponEvaluator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and the coupon
// evaluator for discount resolution.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	coupons services.CouponEvaluator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		coupons:    coupons,
	}
}

// Handle processes the order creation command.
// An invalid coupon rejects the whole checkout; the discount is snapshotted
// into the order so later rule changes never alter past totals.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var subtotal int64
	for _, item := range cmd.Items() {
		subtotal += item.Total()
	}

	discount, err := h.coupons.Evaluate(cmd.CouponCode(), subtotal)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.Recipient(),
		cmd.Items(),
		cmd.CouponCode(),
		discount,
		time.Now().UTC(),
	)
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
