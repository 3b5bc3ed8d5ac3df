package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dispatchedPair(t *testing.T) (*order.Order, *courier.Courier) {
	t.Helper()

	c, err := courier.NewCourier(
		kernel.NewUUID(), "Ravi", "+91-5550200", "KA-01-1234", courier.Location{})
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "customer-1", testCommandRecipient(t), testCommandItems(t), "", 0, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.ConfirmPayment("pay_1"))
	require.NoError(t, c.Take(o.ID()))
	require.NoError(t, o.Assign(c.ID()))

	return o, c
}

func TestCompleteDeliveryCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("marks order delivered and releases courier", func(t *testing.T) {
		o, c := dispatchedPair(t)

		orderRepo := new(MockOrderRepository)
		courierRepo := new(MockCourierRepository)
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("Commit", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("CourierRepository").Return(courierRepo)

		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil)
		orderRepo.On("UpdateInStatus", mock.Anything, o, order.OutForDelivery).Return(nil)
		courierRepo.On("Get", mock.Anything, c.ID()).Return(c, nil)
		courierRepo.On("Update", mock.Anything, c).Return(nil)

		handler := commands.NewCompleteDeliveryCommandHandler(stubUoWFactory{uow: uow})

		cmd, err := commands.NewCompleteDeliveryCommand(o.ID())
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, order.Delivered, o.Status())
		assert.NotNil(t, o.Courier(), "delivery record keeps the courier reference")
		assert.True(t, c.IsAvailable())
		assert.Nil(t, c.CurrentOrder())
		uow.AssertCalled(t, "Commit", mock.Anything)
	})

	t.Run("rejects completion of an order not out for delivery", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "customer-1", testCommandRecipient(t), testCommandItems(t), "", 0, time.Now())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(orderRepo)
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil)

		handler := commands.NewCompleteDeliveryCommandHandler(stubUoWFactory{uow: uow})

		cmd, err := commands.NewCompleteDeliveryCommand(o.ID())
		require.NoError(t, err)

		assert.Error(t, handler.Handle(ctx, cmd))
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("missing order surfaces not found", func(t *testing.T) {
		id := kernel.NewUUID()

		orderRepo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("OrderRepository").Return(orderRepo)
		orderRepo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("order", id))

		handler := commands.NewCompleteDeliveryCommandHandler(stubUoWFactory{uow: uow})

		cmd, err := commands.NewCompleteDeliveryCommand(id)
		require.NoError(t, err)

		assert.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})
}
