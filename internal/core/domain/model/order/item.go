package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Item is a line item snapshotted onto an order at checkout time.
// Name and Price are copied from the catalog when the order is created and
// are immune to later catalog changes. Price is in minor currency units.
type Item struct {
	productID kernel.UUID
	name      string
	quantity  int
	price     int64
}

// NewItem creates a validated line item snapshot.
// Quantity must be positive and price non-negative.
func NewItem(productID kernel.UUID, name string, quantity int, price int64) (Item, error) {
	item := Item{}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// ProductID returns the catalog reference of the item.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name as it was at checkout.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price snapshot in minor currency units.
func (i Item) Price() int64 {
	return i.price
}

// Total returns quantity times unit price.
func (i Item) Total() int64 {
	return int64(i.quantity) * i.price
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}

// Recipient holds the delivery contact details snapshotted onto an order.
type Recipient struct {
	name    string
	phone   string
	address string
}

// NewRecipient creates validated delivery contact details.
// All three fields are required.
func NewRecipient(name, phone, address string) (Recipient, error) {
	if name == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient name")
	}
	if phone == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient phone")
	}
	if address == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient address")
	}

	return Recipient{
		name:    name,
		phone:   phone,
		address: address,
	}, nil
}

// Name returns the recipient's name.
func (r Recipient) Name() string {
	return r.name
}

// Phone returns the recipient's contact phone.
func (r Recipient) Phone() string {
	return r.phone
}

// Address returns the delivery address.
func (r Recipient) Address() string {
	return r.address
}
