package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPaymentStatusQuery(t *testing.T) {
	query, err := queries.NewGetPaymentStatusQuery("pay_xyz")

	require.NoError(t, err)
	assert.Equal(t, "pay_xyz", query.PaymentID())
	assert.NoError(t, query.Validate())
}

func TestNewGetPaymentStatusQuery_EmptyPaymentID(t *testing.T) {
	_, err := queries.NewGetPaymentStatusQuery("")
	assert.ErrorIs(t, err, queries.ErrPaymentIDIsRequired)
}

func TestGetPaymentStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPaymentStatusQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetPaymentStatusQueryIsNotConstructed)
}
