package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedOrder(t *testing.T) *order.Order {
	t.Helper()

	recipient, err := order.NewRecipient("Asha Rao", "+91-5550100", "12 Market Street")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Milk 1L", 2, 60)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "customer-1", recipient, []order.Item{item}, "", 0, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.ConfirmPayment("pay_1"))

	return o
}

func freeCourier(t *testing.T, name string) *courier.Courier {
	t.Helper()

	c, err := courier.NewCourier(kernel.NewUUID(), name, "+91-5550200", "KA-01-1234", courier.Location{})
	require.NoError(t, err)

	return c
}

func acquireAlways(*courier.Courier) error { return nil }

func TestCourierDispatcher_Dispatch(t *testing.T) {
	t.Run("should bind order to first available courier", func(t *testing.T) {
		busy := freeCourier(t, "Alice")
		require.NoError(t, busy.Take(kernel.NewUUID()))
		free := freeCourier(t, "Bob")
		spare := freeCourier(t, "Charlie")

		o := confirmedOrder(t)
		dispatcher := services.NewCourierDispatcher()

		result, err := dispatcher.Dispatch(o, []*courier.Courier{busy, free, spare}, acquireAlways)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsEqual(free), "should skip busy couriers")

		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(free.ID()))

		assert.False(t, free.IsAvailable())
		require.NotNil(t, free.CurrentOrder())
		assert.True(t, free.CurrentOrder().IsEqual(o.ID()))

		assert.True(t, spare.IsAvailable())
		assert.Nil(t, spare.CurrentOrder())
	})

	t.Run("should retry next candidate when acquisition conflicts", func(t *testing.T) {
		contested := freeCourier(t, "Alice")
		fallback := freeCourier(t, "Bob")

		o := confirmedOrder(t)
		dispatcher := services.NewCourierDispatcher()

		acquire := func(c *courier.Courier) error {
			if c.IsEqual(contested) {
				return errs.NewConcurrentUpdateError("courier", c.ID())
			}
			return nil
		}

		result, err := dispatcher.Dispatch(o, []*courier.Courier{contested, fallback}, acquire)

		require.NoError(t, err)
		assert.True(t, result.IsEqual(fallback))

		assert.True(t, contested.IsAvailable(), "lost candidate must be released")
		assert.Nil(t, contested.CurrentOrder())
		assert.True(t, o.Courier().IsEqual(fallback.ID()))
	})

	t.Run("should return error when every acquisition conflicts", func(t *testing.T) {
		first := freeCourier(t, "Alice")
		second := freeCourier(t, "Bob")

		o := confirmedOrder(t)
		dispatcher := services.NewCourierDispatcher()

		acquire := func(c *courier.Courier) error {
			return errs.NewConcurrentUpdateError("courier", c.ID())
		}

		result, err := dispatcher.Dispatch(o, []*courier.Courier{first, second}, acquire)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, services.ErrNoAvailableCourier)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Nil(t, o.Courier())
	})

	t.Run("should surface non-conflict acquisition failures", func(t *testing.T) {
		free := freeCourier(t, "Alice")
		o := confirmedOrder(t)
		dispatcher := services.NewCourierDispatcher()

		acquire := func(*courier.Courier) error {
			return errs.NewObjectNotFoundError("courier", free.ID())
		}

		result, err := dispatcher.Dispatch(o, []*courier.Courier{free}, acquire)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should return error when all couriers are busy", func(t *testing.T) {
		busy1 := freeCourier(t, "Alice")
		require.NoError(t, busy1.Take(kernel.NewUUID()))
		busy2 := freeCourier(t, "Bob")
		require.NoError(t, busy2.Take(kernel.NewUUID()))

		o := confirmedOrder(t)
		dispatcher := services.NewCourierDispatcher()

		result, err := dispatcher.Dispatch(o, []*courier.Courier{busy1, busy2}, acquireAlways)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, services.ErrNoAvailableCourier)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Nil(t, o.Courier())
	})

	t.Run("should return error for empty courier set", func(t *testing.T) {
		o := confirmedOrder(t)
		dispatcher := services.NewCourierDispatcher()

		result, err := dispatcher.Dispatch(o, nil, acquireAlways)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, services.ErrNoAvailableCourier)
	})

	t.Run("should reject order that is not confirmed", func(t *testing.T) {
		recipient, err := order.NewRecipient("Asha Rao", "+91-5550100", "12 Market Street")
		require.NoError(t, err)
		item, err := order.NewItem(kernel.NewUUID(), "Bread", 1, 80)
		require.NoError(t, err)
		pending, err := order.NewOrder(
			kernel.NewUUID(), "customer-1", recipient, []order.Item{item}, "", 0, time.Now())
		require.NoError(t, err)

		free := freeCourier(t, "Bob")
		dispatcher := services.NewCourierDispatcher()

		result, err := dispatcher.Dispatch(pending, []*courier.Courier{free}, acquireAlways)

		assert.Nil(t, result)
		assert.Error(t, err)
		assert.True(t, free.IsAvailable(), "courier must not be reserved for an invalid order")
	})
}
