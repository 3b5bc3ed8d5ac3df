package commands

import (
	"context"
)

// SetCourierAvailabilityCommandHandler toggles a courier's availability.
// Coming back on shift clears any stale order back-reference; going off
// shift keeps the courier out of the assignment pool.
type SetCourierAvailabilityCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierAvailabilityCommandHandler creates a handler for availability toggles.
func NewSetCourierAvailabilityCommandHandler(uowFactory CourierUoWFactory) SetCourierAvailabilityCommandHandler {
	return SetCourierAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability toggle.
func (h SetCourierAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetCourierAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	toggledCourier, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	toggledCourier.SetAvailability(cmd.Available())

	if err = courierRepo.Update(ctx, toggledCourier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
