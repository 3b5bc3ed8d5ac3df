// Package ports defines repository and gateway interfaces for the fulfillment
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
// Provides methods for storing, retrieving, and querying courier entities
// together with their availability state.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, courier *courier.Courier) error

	// UpdateIfAvailable persists the aggregate only if the stored row is
	// still marked available. This is the arbitration point of the
	// assignment scheduler: when two writers race for the same courier,
	// exactly one succeeds and the other gets a ConcurrentUpdateError.
	UpdateIfAvailable(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves every registered courier.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// GetAllAvailable retrieves all couriers currently marked available.
	// Availability is a stored flag paired with the courier's order slot,
	// not derived from order statuses.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}
