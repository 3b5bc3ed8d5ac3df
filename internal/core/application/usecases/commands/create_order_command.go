package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
	ErrCartIsEmpty          = errors.New("order must contain at least one item")
)

// CreateOrderCommand represents a checkout request. Carries the customer,
// the priced item snapshot, the delivery recipient and an optional coupon
// code. Amounts travel in minor currency units.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID string
	recipient  order.Recipient
	items      []order.Item
	couponCode string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, the customer is identified and the
// cart is not empty; the coupon code is resolved later by the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID string,
	recipient order.Recipient,
	items []order.Item,
	couponCode string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		couponCode: couponCode,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setRecipient(recipient),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Recipient returns the delivery recipient snapshot.
func (c CreateOrderCommand) Recipient() order.Recipient {
	return c.recipient
}

// Items returns the priced item snapshot.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// CouponCode returns the coupon code, empty when none was applied.
func (c CreateOrderCommand) CouponCode() string {
	return c.couponCode
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRecipient(recipient order.Recipient) error {
	c.recipient = recipient
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrCartIsEmpty
	}

	c.items = items
	return nil
}
