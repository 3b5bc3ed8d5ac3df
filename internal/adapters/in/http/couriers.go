package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type locationPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type createCourierRequest struct {
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	VehicleNumber string          `json:"vehicleNumber"`
	Location      locationPayload `json:"location"`
}

type createCourierResponse struct {
	CourierID string `json:"courierId"`
}

type courierResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	VehicleNumber  string `json:"vehicleNumber"`
	IsAvailable    bool   `json:"isAvailable"`
	CurrentOrderID string `json:"currentOrderId,omitempty"`
}

type setAvailabilityRequest struct {
	Available bool `json:"available"`
}

// CreateCourier handles POST /api/v1/couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req createCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := courier.NewLocation(req.Location.Lat, req.Location.Lng)
	if err != nil {
		return respondError(ctx, err)
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(courierID, req.Name, req.Phone, req.VehicleNumber, location)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createCourierResponse{CourierID: courierID.String()})
}

// GetCouriers handles GET /api/v1/couriers - retrieves the full fleet.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetAllCouriersQuery()

	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCourierResponses(couriers))
}

// GetAvailableCouriers handles GET /api/v1/couriers/available.
func (s *Server) GetAvailableCouriers(ctx echo.Context) error {
	query := queries.NewGetAvailableCouriersQuery()

	couriers, err := s.getAvailableCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCourierResponses(couriers))
}

// SetCourierAvailability handles PUT /api/v1/couriers/:id/availability -
// shift start and end.
func (s *Server) SetCourierAvailability(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req setAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetCourierAvailabilityCommand(courierID, req.Available)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.setCourierAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toCourierResponses(couriers []queries.CourierResponse) []courierResponse {
	response := make([]courierResponse, len(couriers))
	for i, c := range couriers {
		response[i] = courierResponse{
			ID:            c.ID.String(),
			Name:          c.Name,
			Phone:         c.Phone,
			VehicleNumber: c.VehicleNumber,
			IsAvailable:   c.IsAvailable,
		}
		if c.CurrentOrderID != nil {
			response[i].CurrentOrderID = c.CurrentOrderID.String()
		}
	}
	return response
}
