package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler lists the whole courier pool.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCouriersQueryHandler creates a handler for courier listings.
func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle executes the query. Couriers come back sorted by name.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
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
		ORDER BY name
	`)
}

// fetchCouriers runs a courier listing query and maps the rows. The SQL must
// select the CourierResponse columns in declaration order.
func fetchCouriers(ctx context.Context, db *gorm.DB, query string) ([]CourierResponse, error) {
	rows, err := db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]CourierResponse, 0)
	for rows.Next() {
		var (
			response       CourierResponse
			id             uuid.UUID
			currentOrderID *uuid.UUID
		)

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Phone,
			&response.VehicleNumber,
			&response.IsAvailable,
			&currentOrderID,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = courierID

		if currentOrderID != nil {
			orderID, orderErr := kernel.UUIDFromBytes((*currentOrderID)[:])
			if orderErr != nil {
				return nil, orderErr
			}
			response.CurrentOrderID = &orderID
		}

		couriers = append(couriers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
