// Package http exposes the fulfillment API over REST.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the REST handlers for orders, payments, couriers and
// delivery tracking.
type Server struct {
	// Command handlers
	createOrderHandler            commands.CreateOrderCommandHandler
	verifyPaymentHandler          commands.VerifyPaymentCommandHandler
	refundOrderHandler            commands.RefundOrderCommandHandler
	cancelOrderHandler            commands.CancelOrderCommandHandler
	updateOrderStatusHandler      commands.UpdateOrderStatusCommandHandler
	completeDeliveryHandler       commands.CompleteDeliveryCommandHandler
	createCourierHandler          commands.CreateCourierCommandHandler
	setCourierAvailabilityHandler commands.SetCourierAvailabilityCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getCustomerOrdersHandler    queries.GetCustomerOrdersQueryHandler
	trackOrderHandler           queries.TrackOrderQueryHandler
	getPaymentStatusHandler     queries.GetPaymentStatusQueryHandler
	getAllCouriersHandler       queries.GetAllCouriersQueryHandler
	getAvailableCouriersHandler queries.GetAvailableCouriersQueryHandler

	// Domain services used directly by stateless endpoints
	couponEvaluator services.CouponEvaluator
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	verifyPaymentHandler commands.VerifyPaymentCommandHandler,
	refundOrderHandler commands.RefundOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	setCourierAvailabilityHandler commands.SetCourierAvailabilityCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getPaymentStatusHandler queries.GetPaymentStatusQueryHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
	getAvailableCouriersHandler queries.GetAvailableCouriersQueryHandler,
	couponEvaluator services.CouponEvaluator,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		verifyPaymentHandler:          verifyPaymentHandler,
		refundOrderHandler:            refundOrderHandler,
		cancelOrderHandler:            cancelOrderHandler,
		updateOrderStatusHandler:      updateOrderStatusHandler,
		completeDeliveryHandler:       completeDeliveryHandler,
		createCourierHandler:          createCourierHandler,
		setCourierAvailabilityHandler: setCourierAvailabilityHandler,
		getOrderHandler:               getOrderHandler,
		getCustomerOrdersHandler:      getCustomerOrdersHandler,
		trackOrderHandler:             trackOrderHandler,
		getPaymentStatusHandler:       getPaymentStatusHandler,
		getAllCouriersHandler:         getAllCouriersHandler,
		getAvailableCouriersHandler:   getAvailableCouriersHandler,
		couponEvaluator:               couponEvaluator,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PUT("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.POST("/orders/validate-coupon", s.ValidateCoupon)
	v1.GET("/customers/:customerId/orders", s.GetCustomerOrders)

	v1.POST("/payments/verify", s.VerifyPayment)
	v1.POST("/payments/refund", s.RefundPayment)
	v1.GET("/payments/:paymentId/status", s.GetPaymentStatus)

	v1.POST("/couriers", s.CreateCourier)
	v1.GET("/couriers", s.GetCouriers)
	v1.GET("/couriers/available", s.GetAvailableCouriers)
	v1.PUT("/couriers/:id/availability", s.SetCourierAvailability)

	v1.PUT("/delivery/complete/:orderId", s.CompleteDelivery)
	v1.GET("/delivery/track/:orderId", s.TrackOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ErrorResponse is the wire format of every API error.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps an application error onto the API error contract.
func respondError(ctx echo.Context, err error) error {
	code := statusFromError(err)
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, errs.ErrExternalService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
