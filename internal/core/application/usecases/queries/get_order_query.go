// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its full checkout snapshot.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by ID.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one priced line of the checkout snapshot.
type OrderItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// OrderResponse is the order read model. Amounts are minor currency units;
// Status carries the wire name ("pending", "confirmed", ...).
type OrderResponse struct {
	ID         kernel.UUID
	CustomerID string
	Recipient  RecipientResponse
	Items      []OrderItemResponse
	Subtotal   int64
	Discount   int64
	Total      int64
	CouponCode string
	Status     string
	PaymentID  string
	CourierID  *kernel.UUID
	CreatedAt  time.Time
}

// RecipientResponse is the delivery recipient snapshot in the read model.
type RecipientResponse struct {
	Name    string
	Phone   string
	Address string
}
