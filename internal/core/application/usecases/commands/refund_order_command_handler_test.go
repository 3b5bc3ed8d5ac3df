package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func confirmedPaidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), "customer-1", testCommandRecipient(t), testCommandItems(t), "", 0, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.ConfirmPayment("pay_refund"))
	return o
}

func TestRefundOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("refunds full total and marks order refunded", func(t *testing.T) {
		o := confirmedPaidOrder(t)

		orderRepo := new(MockOrderRepository)
		gateway := new(MockPaymentGateway)
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("Commit", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(orderRepo)

		orderRepo.On("GetByPaymentID", mock.Anything, "pay_refund").Return(o, nil)
		orderRepo.On("UpdateInStatus", mock.Anything, o, order.Confirmed).Return(nil)
		gateway.On("Refund", mock.Anything, "pay_refund", o.Total()).Return(nil)

		handler := commands.NewRefundOrderCommandHandler(stubOrderUoWFactory{uow: uow}, gateway)

		cmd, err := commands.NewRefundOrderCommand("pay_refund")
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, order.Refunded, o.Status())
		gateway.AssertExpectations(t)
		uow.AssertCalled(t, "Commit", mock.Anything)
	})

	t.Run("gateway failure leaves order confirmed", func(t *testing.T) {
		o := confirmedPaidOrder(t)

		orderRepo := new(MockOrderRepository)
		gateway := new(MockPaymentGateway)
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(orderRepo)

		orderRepo.On("GetByPaymentID", mock.Anything, "pay_refund").Return(o, nil)
		gateway.On("Refund", mock.Anything, "pay_refund", o.Total()).
			Return(errs.NewExternalServiceError("payment gateway"))

		handler := commands.NewRefundOrderCommandHandler(stubOrderUoWFactory{uow: uow}, gateway)

		cmd, err := commands.NewRefundOrderCommand("pay_refund")
		require.NoError(t, err)

		err = handler.Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrExternalService)
		orderRepo.AssertNotCalled(t, "UpdateInStatus", mock.Anything, mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("rejects refund of a pending order", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "customer-1", testCommandRecipient(t), testCommandItems(t), "", 0, time.Now())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		gateway := new(MockPaymentGateway)
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(orderRepo)
		orderRepo.On("GetByPaymentID", mock.Anything, "pay_missing").Return(o, nil)

		handler := commands.NewRefundOrderCommandHandler(stubOrderUoWFactory{uow: uow}, gateway)

		cmd, err := commands.NewRefundOrderCommand("pay_missing")
		require.NoError(t, err)

		assert.Error(t, handler.Handle(ctx, cmd))
		gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
	})
}
