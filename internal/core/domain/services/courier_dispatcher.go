package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ErrNoAvailableCourier is returned when no courier in the candidate set can
// take the order. The scheduler treats this as "try again next tick".
var ErrNoAvailableCourier = errors.New("no available courier")

// CourierAcquirer confirms a courier reservation against shared state.
// Implementations persist the reservation conditionally; returning an error
// wrapping errs.ErrConcurrentUpdate signals the courier was taken by a
// concurrent writer and the dispatcher moves on to the next candidate.
type CourierAcquirer func(*courier.Courier) error

// Dispatcher selects a courier for an eligible order and binds the pair.
// The shipped implementation picks the first available courier; ranking
// strategies (nearest, least-recently-busy) can replace it behind the same
// contract.
type Dispatcher interface {
	Dispatch(order *order.Order, couriers []*courier.Courier, acquire CourierAcquirer) (*courier.Courier, error)
}

// CourierDispatcher is the domain service that pairs a confirmed order with
// an available courier. It mutates both aggregates as one logical step:
// the courier takes the order and the order records the courier.
//
// Selection is deliberately first-available with no ranking or
// geo-matching.
type CourierDispatcher struct{}

// NewCourierDispatcher creates a new CourierDispatcher instance.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch binds the first courier that can take the order and whose
// reservation the acquirer confirms. A candidate lost to a concurrent
// writer is released and the next one is tried.
//
// Returns ErrNoAvailableCourier when every candidate is busy, lost, or the
// set is empty. On success both aggregates are mutated; the courier side is
// already acquired and the order side must be persisted by the caller.
func (d CourierDispatcher) Dispatch(
	o *order.Order,
	couriers []*courier.Courier,
	acquire CourierAcquirer,
) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := o.ValidateAssign(); err != nil {
		return nil, err
	}

	for _, candidate := range couriers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsAvailable() || candidate.CurrentOrder() != nil {
			continue
		}

		if err := candidate.Take(o.ID()); err != nil {
			return nil, err
		}

		if err := acquire(candidate); err != nil {
			if errors.Is(err, errs.ErrConcurrentUpdate) {
				candidate.Release()
				continue
			}
			return nil, err
		}

		if err := o.Assign(candidate.ID()); err != nil {
			return nil, err
		}

		return candidate, nil
	}

	return nil, ErrNoAvailableCourier
}
