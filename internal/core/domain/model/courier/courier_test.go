package courier_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Ravi Kumar", "+91-5550111", "KA-01-1234", courier.Location{})
	require.NoError(t, err)
	return c
}

func TestNewCourier(t *testing.T) {
	t.Run("creates available courier with no order", func(t *testing.T) {
		c := testCourier(t)

		assert.True(t, c.IsAvailable())
		assert.Nil(t, c.CurrentOrder())
		require.NoError(t, c.Validate())
	})

	t.Run("rejects missing identity fields", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "", "+91-5550111", "KA-01-1234", courier.Location{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = courier.NewCourier(kernel.NewUUID(), "Ravi Kumar", "", "KA-01-1234", courier.Location{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = courier.NewCourier(kernel.NewUUID(), "Ravi Kumar", "+91-5550111", "", courier.Location{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = courier.NewCourier(kernel.UUID{}, "Ravi Kumar", "+91-5550111", "KA-01-1234", courier.Location{})
		require.Error(t, err)
	})
}

func TestCourier_Validate(t *testing.T) {
	t.Run("zero value courier is not constructed", func(t *testing.T) {
		var c courier.Courier
		require.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
	})

	t.Run("nil courier is not constructed", func(t *testing.T) {
		var c *courier.Courier
		require.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
	})
}

func TestCourier_Take(t *testing.T) {
	t.Run("available courier takes order and becomes busy", func(t *testing.T) {
		c := testCourier(t)
		orderID := kernel.NewUUID()

		require.NoError(t, c.Take(orderID))

		assert.False(t, c.IsAvailable())
		require.NotNil(t, c.CurrentOrder())
		assert.True(t, c.CurrentOrder().IsEqual(orderID))
	})

	t.Run("busy courier cannot take another order", func(t *testing.T) {
		c := testCourier(t)
		require.NoError(t, c.Take(kernel.NewUUID()))
		require.ErrorIs(t, c.Take(kernel.NewUUID()), courier.ErrCourierIsBusy)
	})

	t.Run("off-shift courier cannot take an order", func(t *testing.T) {
		c := testCourier(t)
		c.SetAvailability(false)
		require.ErrorIs(t, c.Take(kernel.NewUUID()), courier.ErrCourierIsBusy)
	})

	t.Run("invalid order id is rejected", func(t *testing.T) {
		c := testCourier(t)
		require.Error(t, c.Take(kernel.UUID{}))
		assert.True(t, c.IsAvailable())
	})
}

func TestCourier_Release(t *testing.T) {
	t.Run("releasing returns courier to the pool", func(t *testing.T) {
		c := testCourier(t)
		require.NoError(t, c.Take(kernel.NewUUID()))

		c.Release()

		assert.True(t, c.IsAvailable())
		assert.Nil(t, c.CurrentOrder())
	})

	t.Run("releasing an idle courier is a no-op", func(t *testing.T) {
		c := testCourier(t)
		c.Release()
		assert.True(t, c.IsAvailable())
		assert.Nil(t, c.CurrentOrder())
	})
}

func TestCourier_SetAvailability(t *testing.T) {
	t.Run("setting available clears the order reference", func(t *testing.T) {
		c := testCourier(t)
		require.NoError(t, c.Take(kernel.NewUUID()))

		c.SetAvailability(true)

		assert.True(t, c.IsAvailable())
		assert.Nil(t, c.CurrentOrder())
	})

	t.Run("setting unavailable keeps courier off shift", func(t *testing.T) {
		c := testCourier(t)
		c.SetAvailability(false)
		assert.False(t, c.IsAvailable())
		assert.Nil(t, c.CurrentOrder())
	})
}

func TestRestoreCourier(t *testing.T) {
	t.Run("restores busy courier", func(t *testing.T) {
		orderID := kernel.NewUUID()
		c, err := courier.RestoreCourier(
			kernel.NewUUID(), "Ravi Kumar", "+91-5550111", "KA-01-1234", false, &orderID, courier.Location{})

		require.NoError(t, err)
		assert.False(t, c.IsAvailable())
		require.NotNil(t, c.CurrentOrder())
		assert.True(t, c.CurrentOrder().IsEqual(orderID))
	})

	t.Run("rejects available courier with active order", func(t *testing.T) {
		orderID := kernel.NewUUID()
		_, err := courier.RestoreCourier(
			kernel.NewUUID(), "Ravi Kumar", "+91-5550111", "KA-01-1234", true, &orderID, courier.Location{})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("restores off-shift courier without order", func(t *testing.T) {
		c, err := courier.RestoreCourier(
			kernel.NewUUID(), "Ravi Kumar", "+91-5550111", "KA-01-1234", false, nil, courier.Location{})
		require.NoError(t, err)
		assert.False(t, c.IsAvailable())
		assert.Nil(t, c.CurrentOrder())
	})
}

func TestNewLocation(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		loc, err := courier.NewLocation(12.97, 77.59)
		require.NoError(t, err)
		assert.Equal(t, 12.97, loc.Lat())
		assert.Equal(t, 77.59, loc.Lng())
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		_, err := courier.NewLocation(91, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = courier.NewLocation(0, -181)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
