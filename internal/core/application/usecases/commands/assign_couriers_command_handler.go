package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

var (
	ErrNoOrdersAwaiting    = errors.New("no orders awaiting assignment")
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
)

// orderProcessingTimeout bounds the per-order transaction so one slow
// persistence call cannot stall the whole tick.
const orderProcessingTimeout = 5 * time.Second

// AssignCouriersCommandHandler runs one sweep of the courier assignment
// pipeline. Confirmed orders without a courier are checked against the
// eligibility policy and, when due, paired with an available courier.
//
// Each order gets its own transaction: a failure on one order is logged and
// the sweep moves on. Courier acquisition and order binding are both
// conditional updates, so concurrent sweeps never double-book a courier or
// an order.
//
// Example:
//
//	handler := NewAssignCouriersCommandHandler(uowFactory, policy, dispatcher, logger)
//	cmd, _ := NewAssignCouriersCommand(time.Now())
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrdersAwaiting):
//	    log.Println("Nothing to assign")
//	case errors.Is(err, ErrNoFreeCouriersFound):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Assignment sweep failed: %v", err)
//	}
type AssignCouriersCommandHandler struct {
	uowFactory UoWFactory
	policy     services.EligibilityPolicy
	dispatcher services.Dispatcher
	logger     *slog.Logger
}

// NewAssignCouriersCommandHandler creates a handler for assignment sweeps.
func NewAssignCouriersCommandHandler(
	uowFactory UoWFactory,
	policy services.EligibilityPolicy,
	dispatcher services.Dispatcher,
	logger *slog.Logger,
) AssignCouriersCommandHandler {
	return AssignCouriersCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		dispatcher: dispatcher,
		logger:     logger.With("component", "assign_couriers"),
	}
}

// Handle processes one assignment sweep.
// Returns ErrNoOrdersAwaiting when nothing is queued and ErrNoFreeCouriersFound
// when the courier pool is exhausted before any order could be assigned; both
// are quiet no-work outcomes for the scheduler.
func (h AssignCouriersCommandHandler) Handle(ctx context.Context, cmd AssignCouriersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orderIDs, err := h.collectAwaiting(ctx)
	if err != nil {
		return err
	}
	if len(orderIDs) == 0 {
		return ErrNoOrdersAwaiting
	}

	var assigned int
	for _, orderID := range orderIDs {
		err = h.assignOrder(ctx, orderID, cmd.TickAt())
		if errors.Is(err, ErrNoFreeCouriersFound) {
			if assigned == 0 {
				return ErrNoFreeCouriersFound
			}
			return nil
		}
		if err != nil {
			h.logger.Error("order assignment failed",
				"order_id", orderID.String(), "error", err)
			continue
		}
		assigned++
	}

	return nil
}

// collectAwaiting snapshots the IDs of confirmed, unassigned orders. Each
// order is re-read inside its own transaction, so a stale snapshot entry is
// harmless.
func (h AssignCouriersCommandHandler) collectAwaiting(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	awaiting, err := uow.OrderRepository().GetAllAwaitingAssignment(ctx)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(awaiting))
	for _, o := range awaiting {
		orderIDs = append(orderIDs, o.ID())
	}

	return orderIDs, nil
}

func (h AssignCouriersCommandHandler) assignOrder(
	ctx context.Context,
	orderID kernel.UUID,
	tickAt time.Time,
) error {
	ctx, cancel := context.WithTimeout(ctx, orderProcessingTimeout)
	defer cancel()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	courierRepo := uow.CourierRepository()

	awaitingOrder, err := orderRepo.Get(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	// Another sweep may have handled the order since the snapshot.
	if awaitingOrder.Status() != order.Confirmed || awaitingOrder.Courier() != nil {
		return nil
	}

	priorAssigned, err := orderRepo.CountPriorAssigned(ctx, awaitingOrder.CustomerID())
	if err != nil {
		return err
	}

	if !h.policy.Eligible(awaitingOrder.CreatedAt(), priorAssigned, tickAt) {
		return nil
	}

	couriers, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(couriers) == 0 {
		return ErrNoFreeCouriersFound
	}

	acquire := func(c *courier.Courier) error {
		return courierRepo.UpdateIfAvailable(ctx, c)
	}

	selected, err := h.dispatcher.Dispatch(awaitingOrder, couriers, acquire)
	if errors.Is(err, services.ErrNoAvailableCourier) {
		return ErrNoFreeCouriersFound
	}
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateInStatus(ctx, awaitingOrder, order.Confirmed); err != nil {
		// A lost race on the order releases the courier via rollback.
		if errors.Is(err, errs.ErrConcurrentUpdate) {
			return nil
		}
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.Info("courier assigned",
		"order_id", awaitingOrder.ID().String(),
		"courier_id", selected.ID().String())

	return nil
}
