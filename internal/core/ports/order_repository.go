package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status and payment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateInStatus persists the aggregate only if the stored row is still in
	// prev status. When a concurrent writer already moved the order out of
	// prev, no row is touched and a ConcurrentUpdateError is returned.
	UpdateInStatus(ctx context.Context, aggregate *order.Order, prev order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByPaymentID retrieves the order confirmed by the given gateway
	// payment identifier.
	GetByPaymentID(ctx context.Context, paymentID string) (*order.Order, error)

	// GetAllAwaitingAssignment retrieves all confirmed orders that have no
	// courier yet, oldest first. Used by the assignment scheduler.
	GetAllAwaitingAssignment(ctx context.Context) ([]*order.Order, error)

	// GetAllForCustomer retrieves all orders of a customer, newest first.
	GetAllForCustomer(ctx context.Context, customerID string) ([]*order.Order, error)

	// CountPriorAssigned counts the customer's orders that already went
	// through courier assignment. Feeds the eligibility tiering.
	CountPriorAssigned(ctx context.Context, customerID string) (int64, error)
}
