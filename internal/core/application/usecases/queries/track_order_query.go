package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// Delivery estimate strings shown to customers while tracking.
const (
	EstimateAssigned   = "10-15 minutes"
	EstimateUnassigned = "Waiting for assignment"
)

// TrackOrderQuery retrieves the live tracking view of an order: its status,
// the assigned courier if any, and a delivery estimate.
type TrackOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query for one order.
func NewTrackOrderQuery(orderID kernel.UUID) (TrackOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the tracked order.
func (q TrackOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TrackOrderQueryResponse is the tracking read model. Courier is nil until
// the assignment pipeline binds one.
type TrackOrderQueryResponse struct {
	OrderID  kernel.UUID
	Status   string
	Courier  *TrackedCourierResponse
	Estimate string
}

// TrackedCourierResponse identifies the courier carrying the order.
type TrackedCourierResponse struct {
	Name          string
	Phone         string
	VehicleNumber string
}
