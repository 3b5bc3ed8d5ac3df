package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler builds the customer-facing tracking view with one
// join against the courier pool.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for tracking reads.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking query.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	var (
		status        int
		courierName   sql.NullString
		courierPhone  sql.NullString
		courierPlate  sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.status,
			c.name,
			c.phone,
			c.vehicle_number
		FROM orders o
		LEFT JOIN couriers c ON c.id = o.courier_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&status, &courierName, &courierPhone, &courierPlate)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	response := TrackOrderQueryResponse{
		OrderID:  query.OrderID(),
		Status:   order.Status(status).String(),
		Estimate: EstimateUnassigned,
	}

	if courierName.Valid {
		response.Courier = &TrackedCourierResponse{
			Name:          courierName.String,
			Phone:         courierPhone.String,
			VehicleNumber: courierPlate.String,
		}
		response.Estimate = EstimateAssigned
	}

	return response, nil
}
