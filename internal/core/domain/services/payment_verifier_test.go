package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HMAC-SHA256 of "order_abc|pay_xyz" keyed with "s3cret".
const validSignature = "69d2d55b3175eb1d5c503399ed52b90c1f0326286864d5042cdf2c46598162e7"

func TestNewPaymentVerifier(t *testing.T) {
	t.Run("should create verifier with secret", func(t *testing.T) {
		_, err := services.NewPaymentVerifier("s3cret")
		assert.NoError(t, err)
	})

	t.Run("should reject empty secret", func(t *testing.T) {
		_, err := services.NewPaymentVerifier("")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPaymentVerifier_Verify(t *testing.T) {
	verifier, err := services.NewPaymentVerifier("s3cret")
	require.NoError(t, err)

	t.Run("should accept matching signature", func(t *testing.T) {
		err := verifier.Verify("order_abc", "pay_xyz", validSignature)
		assert.NoError(t, err)
	})

	t.Run("should reject tampered signature", func(t *testing.T) {
		tampered := "0" + validSignature[1:]
		err := verifier.Verify("order_abc", "pay_xyz", tampered)
		assert.ErrorIs(t, err, services.ErrSignatureMismatch)
	})

	t.Run("should reject signature for different payment", func(t *testing.T) {
		err := verifier.Verify("order_abc", "pay_other", validSignature)
		assert.ErrorIs(t, err, services.ErrSignatureMismatch)
	})

	t.Run("should reject signature computed with different secret", func(t *testing.T) {
		other, err := services.NewPaymentVerifier("another-secret")
		require.NoError(t, err)

		err = other.Verify("order_abc", "pay_xyz", validSignature)
		assert.ErrorIs(t, err, services.ErrSignatureMismatch)
	})

	t.Run("should require all identifiers", func(t *testing.T) {
		assert.ErrorIs(t, verifier.Verify("", "pay_xyz", validSignature), errs.ErrValueIsRequired)
		assert.ErrorIs(t, verifier.Verify("order_abc", "", validSignature), errs.ErrValueIsRequired)
		assert.ErrorIs(t, verifier.Verify("order_abc", "pay_xyz", ""), errs.ErrValueIsRequired)
	})
}
