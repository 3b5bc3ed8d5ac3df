package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetPaymentStatusQueryIsNotConstructed = errors.New(
		"GetPaymentStatusQuery must be created via NewGetPaymentStatusQuery constructor",
	)
	ErrPaymentIDIsRequired = errors.New("payment id is required")
)

// GetPaymentStatusQuery resolves a gateway payment identifier to the state
// of the payment as implied by its order's lifecycle.
type GetPaymentStatusQuery struct {
	paymentID string

	guard guard.ConstructorGuard
}

// NewGetPaymentStatusQuery creates a payment status query.
func NewGetPaymentStatusQuery(paymentID string) (GetPaymentStatusQuery, error) {
	if paymentID == "" {
		return GetPaymentStatusQuery{}, ErrPaymentIDIsRequired
	}

	return GetPaymentStatusQuery{paymentID: paymentID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentStatusQueryIsNotConstructed)
}

// PaymentID returns the gateway payment identifier.
func (q GetPaymentStatusQuery) PaymentID() string {
	return q.paymentID
}

// GetPaymentStatusQueryResponse reports the payment state for one order.
type GetPaymentStatusQueryResponse struct {
	PaymentID     string
	OrderID       kernel.UUID
	PaymentStatus string
}
