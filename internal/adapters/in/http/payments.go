package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type verifyPaymentRequest struct {
	OrderID          string `json:"orderId"`
	GatewayOrderID   string `json:"gatewayOrderId"`
	GatewayPaymentID string `json:"gatewayPaymentId"`
	Signature        string `json:"signature"`
}

type refundPaymentRequest struct {
	PaymentID string `json:"paymentId"`
}

type paymentStatusResponse struct {
	PaymentID     string `json:"paymentId"`
	OrderID       string `json:"orderId"`
	PaymentStatus string `json:"paymentStatus"`
}

// VerifyPayment handles POST /api/v1/payments/verify - gateway callback with
// the payment signature. A valid signature confirms the order.
func (s *Server) VerifyPayment(ctx echo.Context) error {
	var req verifyPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewVerifyPaymentCommand(orderID, req.GatewayOrderID, req.GatewayPaymentID, req.Signature)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if err := s.verifyPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefundPayment handles POST /api/v1/payments/refund.
func (s *Server) RefundPayment(ctx echo.Context) error {
	var req refundPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRefundOrderCommand(req.PaymentID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.refundOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPaymentStatus handles GET /api/v1/payments/:paymentId/status.
func (s *Server) GetPaymentStatus(ctx echo.Context) error {
	query, err := queries.NewGetPaymentStatusQuery(ctx.Param("paymentId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getPaymentStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentStatusResponse{
		PaymentID:     result.PaymentID,
		OrderID:       result.OrderID.String(),
		PaymentStatus: result.PaymentStatus,
	})
}
