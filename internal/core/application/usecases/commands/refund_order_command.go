package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrRefundOrderCommandIsNotConstructed = errors.New(
		"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
	)
	ErrPaymentIDIsRequired = errors.New("payment id is required")
)

// RefundOrderCommand represents a refund request keyed by the gateway
// payment identifier, the handle the payment provider gives support staff.
type RefundOrderCommand struct { //nolint:recvcheck //using for validation
	paymentID string

	guard guard.ConstructorGuard
}

// NewRefundOrderCommand creates a command to refund a captured payment.
func NewRefundOrderCommand(paymentID string) (RefundOrderCommand, error) {
	refundCommand := RefundOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := refundCommand.setPaymentID(paymentID); err != nil {
		return RefundOrderCommand{}, err
	}

	return refundCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

// PaymentID returns the gateway payment identifier to refund.
func (c RefundOrderCommand) PaymentID() string {
	return c.paymentID
}

func (c *RefundOrderCommand) setPaymentID(paymentID string) error {
	if paymentID == "" {
		return ErrPaymentIDIsRequired
	}

	c.paymentID = paymentID
	return nil
}
