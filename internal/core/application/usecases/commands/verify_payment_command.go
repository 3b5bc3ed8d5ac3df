package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrVerifyPaymentCommandIsNotConstructed = errors.New(
		"VerifyPaymentCommand must be created via NewVerifyPaymentCommand constructor",
	)
	ErrGatewayOrderIDIsRequired   = errors.New("gateway order id is required")
	ErrGatewayPaymentIDIsRequired = errors.New("gateway payment id is required")
	ErrSignatureIsRequired        = errors.New("signature is required")
)

// VerifyPaymentCommand represents a signed payment confirmation coming back
// from the gateway after the customer paid for a pending order.
type VerifyPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	gatewayOrderID   string
	gatewayPaymentID string
	signature        string

	guard guard.ConstructorGuard
}

// NewVerifyPaymentCommand creates a command carrying the gateway identifiers
// and their HMAC signature. All fields are required.
func NewVerifyPaymentCommand(
	orderID kernel.UUID,
	gatewayOrderID, gatewayPaymentID, signature string,
) (VerifyPaymentCommand, error) {
	verifyCommand := VerifyPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		verifyCommand.setOrderID(orderID),
		verifyCommand.setGatewayOrderID(gatewayOrderID),
		verifyCommand.setGatewayPaymentID(gatewayPaymentID),
		verifyCommand.setSignature(signature),
	); err != nil {
		return VerifyPaymentCommand{}, err
	}

	return verifyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being confirmed.
func (c VerifyPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// GatewayOrderID returns the order identifier issued by the gateway.
func (c VerifyPaymentCommand) GatewayOrderID() string {
	return c.gatewayOrderID
}

// GatewayPaymentID returns the payment identifier issued by the gateway.
func (c VerifyPaymentCommand) GatewayPaymentID() string {
	return c.gatewayPaymentID
}

// Signature returns the hex HMAC digest supplied by the gateway.
func (c VerifyPaymentCommand) Signature() string {
	return c.signature
}

func (c *VerifyPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyPaymentCommand) setGatewayOrderID(gatewayOrderID string) error {
	if gatewayOrderID == "" {
		return ErrGatewayOrderIDIsRequired
	}

	c.gatewayOrderID = gatewayOrderID
	return nil
}

func (c *VerifyPaymentCommand) setGatewayPaymentID(gatewayPaymentID string) error {
	if gatewayPaymentID == "" {
		return ErrGatewayPaymentIDIsRequired
	}

	c.gatewayPaymentID = gatewayPaymentID
	return nil
}

func (c *VerifyPaymentCommand) setSignature(signature string) error {
	if signature == "" {
		return ErrSignatureIsRequired
	}

	c.signature = signature
	return nil
}
