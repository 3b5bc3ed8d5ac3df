package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
)

func TestNewGetAllCouriersQuery_Valid(t *testing.T) {
	assert.NoError(t, queries.NewGetAllCouriersQuery().Validate())
}

func TestGetAllCouriersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllCouriersQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetAllCouriersQueryIsNotConstructed)
}

func TestNewGetAvailableCouriersQuery_Valid(t *testing.T) {
	assert.NoError(t, queries.NewGetAvailableCouriersQuery().Validate())
}

func TestGetAvailableCouriersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAvailableCouriersQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetAvailableCouriersQueryIsNotConstructed)
}
