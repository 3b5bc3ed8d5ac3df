package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type trackedCourierPayload struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	VehicleNumber string `json:"vehicleNumber"`
}

type trackOrderResponse struct {
	OrderID  string                 `json:"orderId"`
	Status   string                 `json:"status"`
	Courier  *trackedCourierPayload `json:"courier,omitempty"`
	Estimate string                 `json:"estimate"`
}

// CompleteDelivery handles PUT /api/v1/delivery/complete/:orderId - the
// courier confirms handover and returns to the pool.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackOrder handles GET /api/v1/delivery/track/:orderId.
func (s *Server) TrackOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := trackOrderResponse{
		OrderID:  result.OrderID.String(),
		Status:   result.Status,
		Estimate: result.Estimate,
	}
	if result.Courier != nil {
		response.Courier = &trackedCourierPayload{
			Name:          result.Courier.Name,
			Phone:         result.Courier.Phone,
			VehicleNumber: result.Courier.VehicleNumber,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
