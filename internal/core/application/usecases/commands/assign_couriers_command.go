package commands

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrAssignCouriersCommandIsNotConstructed = errors.New(
		"AssignCouriersCommand must be created via NewAssignCouriersCommand constructor",
	)
	ErrTickTimeIsRequired = errors.New("tick time is required")
)

// AssignCouriersCommand represents one scheduler tick of the courier
// assignment pipeline. The tick time is part of the command so eligibility
// windows are computed against a single instant for the whole sweep, and
// tests can drive the clock.
type AssignCouriersCommand struct { //nolint:recvcheck //using for validation
	tickAt time.Time

	guard guard.ConstructorGuard
}

// NewAssignCouriersCommand creates a command for one assignment sweep at the
// given instant.
func NewAssignCouriersCommand(tickAt time.Time) (AssignCouriersCommand, error) {
	assignCommand := AssignCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := assignCommand.setTickAt(tickAt); err != nil {
		return AssignCouriersCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCouriersCommand) Validate() error {
	return c.guard.Validate(ErrAssignCouriersCommandIsNotConstructed)
}

// TickAt returns the instant eligibility is evaluated against.
func (c AssignCouriersCommand) TickAt() time.Time {
	return c.tickAt
}

func (c *AssignCouriersCommand) setTickAt(tickAt time.Time) error {
	if tickAt.IsZero() {
		return ErrTickTimeIsRequired
	}

	c.tickAt = tickAt
	return nil
}
