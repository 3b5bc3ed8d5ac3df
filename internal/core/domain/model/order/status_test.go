package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "unknown"},
		{order.Pending, "pending"},
		{order.Confirmed, "confirmed"},
		{order.OutForDelivery, "out_for_delivery"},
		{order.Delivered, "delivered"},
		{order.Cancelled, "cancelled"},
		{order.Refunded, "refunded"},
		{order.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses all valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.OutForDelivery,
			order.Delivered, order.Cancelled, order.Refunded,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "PENDING", "shipped"} {
			_, err := order.StatusFromString(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.OutForDelivery,
			order.Delivered, order.Cancelled, order.Refunded,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and out-of-range fail", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("Confirm", func(t *testing.T) {
		next, err := order.Pending.Confirm()
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, next)

		for _, s := range []order.Status{
			order.Confirmed, order.OutForDelivery, order.Delivered,
			order.Cancelled, order.Refunded, order.Unknown,
		} {
			_, err := s.Confirm()
			require.Error(t, err)
		}
	})

	t.Run("Assign", func(t *testing.T) {
		next, err := order.Confirmed.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, next)

		for _, s := range []order.Status{
			order.Pending, order.OutForDelivery, order.Delivered,
			order.Cancelled, order.Refunded, order.Unknown,
		} {
			_, err := s.Assign()
			require.Error(t, err)
		}
	})

	t.Run("Complete", func(t *testing.T) {
		next, err := order.OutForDelivery.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)

		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Delivered,
			order.Cancelled, order.Refunded, order.Unknown,
		} {
			_, err := s.Complete()
			require.Error(t, err)
		}
	})

	t.Run("Cancel", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Confirmed} {
			next, err := s.Cancel()
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, next)
		}

		for _, s := range []order.Status{
			order.OutForDelivery, order.Delivered, order.Cancelled,
			order.Refunded, order.Unknown,
		} {
			_, err := s.Cancel()
			require.Error(t, err)
		}
	})

	t.Run("Refund", func(t *testing.T) {
		next, err := order.Confirmed.Refund()
		require.NoError(t, err)
		assert.Equal(t, order.Refunded, next)

		for _, s := range []order.Status{
			order.Pending, order.OutForDelivery, order.Delivered,
			order.Cancelled, order.Refunded, order.Unknown,
		} {
			_, err := s.Refund()
			require.Error(t, err)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, s := range []order.Status{order.Delivered, order.Cancelled, order.Refunded} {
		assert.True(t, s.IsTerminal(), s.String())
	}
	for _, s := range []order.Status{order.Pending, order.Confirmed, order.OutForDelivery} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	t.Run("courier allowed only when out for delivery or delivered", func(t *testing.T) {
		require.NoError(t, order.OutForDelivery.ValidateCanHaveCourier(true))
		require.NoError(t, order.Delivered.ValidateCanHaveCourier(true))

		for _, s := range []order.Status{order.Pending, order.Confirmed, order.Cancelled, order.Refunded} {
			require.Error(t, s.ValidateCanHaveCourier(true), s.String())
		}
	})

	t.Run("out for delivery requires a courier", func(t *testing.T) {
		require.Error(t, order.OutForDelivery.ValidateCanHaveCourier(false))
		require.NoError(t, order.Delivered.ValidateCanHaveCourier(false))
		require.NoError(t, order.Pending.ValidateCanHaveCourier(false))
	})
}
