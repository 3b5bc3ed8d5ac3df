package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type recipientPayload struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type orderItemPayload struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

type createOrderRequest struct {
	CustomerID string             `json:"customerId"`
	Recipient  recipientPayload   `json:"recipient"`
	Items      []orderItemPayload `json:"items"`
	CouponCode string             `json:"couponCode"`
}

type createOrderResponse struct {
	OrderID string `json:"orderId"`
}

type orderResponse struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customerId"`
	Recipient  recipientPayload   `json:"recipient"`
	Items      []orderItemPayload `json:"items"`
	Subtotal   int64              `json:"subtotal"`
	Discount   int64              `json:"discount"`
	Total      int64              `json:"total"`
	CouponCode string             `json:"couponCode,omitempty"`
	Status     string             `json:"status"`
	PaymentID  string             `json:"paymentId,omitempty"`
	CourierID  string             `json:"courierId,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type validateCouponRequest struct {
	Code     string `json:"code"`
	Subtotal int64  `json:"subtotal"`
}

type validateCouponResponse struct {
	Valid       bool  `json:"valid"`
	Discount    int64 `json:"discount,omitempty"`
	FinalAmount int64 `json:"finalAmount,omitempty"`
}

// CreateOrder handles POST /api/v1/orders - checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recipient, err := order.NewRecipient(req.Recipient.Name, req.Recipient.Phone, req.Recipient.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, payload := range req.Items {
		productID, parseErr := kernel.UUIDFromString(payload.ProductID)
		if parseErr != nil {
			return badRequest(ctx, parseErr.Error())
		}
		item, itemErr := order.NewItem(productID, payload.Name, payload.Quantity, payload.Price)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.CustomerID, recipient, items, req.CouponCode)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// GetCustomerOrders handles GET /api/v1/customers/:customerId/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	results, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderResponse, len(results))
	for i, result := range results {
		response[i] = toOrderResponse(result)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - admin override.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req updateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ValidateCoupon handles POST /api/v1/orders/validate-coupon - dry-run coupon
// evaluation against a cart subtotal, no order is created.
func (s *Server) ValidateCoupon(ctx echo.Context) error {
	var req validateCouponRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	discount, err := s.couponEvaluator.Evaluate(req.Code, req.Subtotal)
	if err != nil {
		return ctx.JSON(http.StatusOK, validateCouponResponse{Valid: false})
	}

	return ctx.JSON(http.StatusOK, validateCouponResponse{
		Valid:       true,
		Discount:    discount,
		FinalAmount: req.Subtotal - discount,
	})
}

func toOrderResponse(result queries.OrderResponse) orderResponse {
	items := make([]orderItemPayload, len(result.Items))
	for i, item := range result.Items {
		items[i] = orderItemPayload{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	response := orderResponse{
		ID:         result.ID.String(),
		CustomerID: result.CustomerID,
		Recipient: recipientPayload{
			Name:    result.Recipient.Name,
			Phone:   result.Recipient.Phone,
			Address: result.Recipient.Address,
		},
		Items:      items,
		Subtotal:   result.Subtotal,
		Discount:   result.Discount,
		Total:      result.Total,
		CouponCode: result.CouponCode,
		Status:     result.Status,
		PaymentID:  result.PaymentID,
		CreatedAt:  result.CreatedAt,
	}
	if result.CourierID != nil {
		response.CourierID = result.CourierID.String()
	}

	return response
}
