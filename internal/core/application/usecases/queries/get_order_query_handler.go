package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model.
// Reads straight through gorm, bypassing the aggregate layer.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			recipient_name,
			recipient_phone,
			recipient_address,
			items,
			subtotal,
			discount,
			total,
			coupon_code,
			status,
			payment_id,
			courier_id,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	response, err := scanOrderRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return response, nil
}

type orderRowScanner interface {
	Scan(dest ...any) error
}

// scanOrderRow maps one orders row into the read model. Shared by the
// single-order and customer-history handlers, which select the same columns.
func scanOrderRow(row orderRowScanner) (OrderResponse, error) {
	var (
		response  OrderResponse
		id        uuid.UUID
		itemsJSON []byte
		status    int
		paymentID sql.NullString
		courierID *uuid.UUID
		createdAt time.Time
	)

	err := row.Scan(
		&id,
		&response.CustomerID,
		&response.Recipient.Name,
		&response.Recipient.Phone,
		&response.Recipient.Address,
		&itemsJSON,
		&response.Subtotal,
		&response.Discount,
		&response.Total,
		&response.CouponCode,
		&status,
		&paymentID,
		&courierID,
		&createdAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	response.ID = orderID

	if courierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*courierID)[:])
		if courierErr != nil {
			return OrderResponse{}, courierErr
		}
		response.CourierID = &cID
	}

	if err = json.Unmarshal(itemsJSON, &response.Items); err != nil {
		return OrderResponse{}, err
	}

	response.Status = order.Status(status).String()
	response.PaymentID = paymentID.String
	response.CreatedAt = createdAt

	return response, nil
}
