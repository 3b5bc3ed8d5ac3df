package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAvailableCouriersQueryHandler lists couriers open for assignment.
type GetAvailableCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableCouriersQueryHandler creates a handler for availability listings.
func NewGetAvailableCouriersQueryHandler(db *gorm.DB) GetAvailableCouriersQueryHandler {
	return GetAvailableCouriersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAvailableCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableCouriersQuery,
) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchCouriers(ctx, h.db, `
		SELECT
			id,
			name,
			phone,
			vehicle_number,
			is_available,
			current_order_id
		FROM couriers
		WHERE is_available = true
		ORDER BY name
	`)
}
