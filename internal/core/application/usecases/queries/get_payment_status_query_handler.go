package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentStatusQueryHandler maps an order's lifecycle to a payment state.
// A confirmed or later order means the money was captured; refunds and
// cancellations carry their own states.
type GetPaymentStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentStatusQueryHandler creates a handler for payment status reads.
func NewGetPaymentStatusQueryHandler(db *gorm.DB) GetPaymentStatusQueryHandler {
	return GetPaymentStatusQueryHandler{db: db}
}

// Handle executes the query.
func (h GetPaymentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentStatusQuery,
) (GetPaymentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentStatusQueryResponse{}, err
	}

	var (
		id     uuid.UUID
		status int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, status
		FROM orders
		WHERE payment_id = ?
	`, query.PaymentID()).Row()

	err := row.Scan(&id, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPaymentStatusQueryResponse{}, errs.NewObjectNotFoundError("payment", query.PaymentID())
	}
	if err != nil {
		return GetPaymentStatusQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPaymentStatusQueryResponse{}, err
	}

	return GetPaymentStatusQueryResponse{
		PaymentID:     query.PaymentID(),
		OrderID:       orderID,
		PaymentStatus: paymentStatusFor(order.Status(status)),
	}, nil
}

func paymentStatusFor(status order.Status) string {
	switch status {
	case order.Confirmed, order.OutForDelivery, order.Delivered:
		return "completed"
	case order.Refunded:
		return "refunded"
	case order.Cancelled:
		return "cancelled"
	default:
		return "pending"
	}
}
