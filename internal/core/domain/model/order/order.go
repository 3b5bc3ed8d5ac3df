package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrPaymentIDIsRequired is returned when confirming or refunding an order
	// without a payment confirmation identifier.
	ErrPaymentIDIsRequired = errs.NewValueIsRequiredError("payment id")
)

// Order represents a checked-out grocery purchase. It is the aggregate root
// that manages the order lifecycle from checkout through payment
// confirmation, courier assignment and delivery.
//
// Order maintains these invariants:
//   - total == subtotal - discount
//   - a courier reference is only present in OutForDelivery or Delivered status
//   - status transitions follow the state machine defined on Status
//   - line items, totals, recipient details and creation time are immutable
//     snapshots taken at checkout
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated transition methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID string

	// recipient is the delivery contact snapshot
	recipient Recipient

	// items are the line item snapshots taken at checkout
	items []Item

	// subtotal, discount and total are amounts in minor currency units
	subtotal int64
	discount int64
	total    int64

	// couponCode is the coupon applied at checkout, empty if none
	couponCode string

	// status represents the current state in the order lifecycle
	status Status

	// paymentID is the gateway payment confirmation, empty until verified
	paymentID string

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *kernel.UUID

	// createdAt is the checkout timestamp, immutable once set
	createdAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status from a checkout snapshot.
//
// The subtotal is computed from the items; discount must already be resolved
// by the coupon evaluator and lie within [0, subtotal]. The total is always
// subtotal minus discount.
func NewOrder(
	id kernel.UUID,
	customerID string,
	recipient Recipient,
	items []Item,
	couponCode string,
	discount int64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		couponCode:    couponCode,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRecipient(recipient),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if err := o.setAmounts(discount); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts any lifecycle state, re-validating the
// cross-field invariants so corrupt rows never become live aggregates.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	recipient Recipient,
	items []Item,
	couponCode string,
	discount int64,
	status Status,
	paymentID string,
	courierID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		couponCode:    couponCode,
		paymentID:     paymentID,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRecipient(recipient),
		o.setItems(items),
		o.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := o.setAmounts(discount); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.courierID = courierID
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call it when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Recipient returns the delivery contact snapshot.
func (o *Order) Recipient() Recipient {
	return o.recipient
}

// Items returns a copy of the line item snapshots.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Subtotal returns the pre-discount amount in minor currency units.
func (o *Order) Subtotal() int64 {
	return o.subtotal
}

// Discount returns the coupon discount in minor currency units.
func (o *Order) Discount() int64 {
	return o.discount
}

// Total returns the payable amount, always subtotal minus discount.
func (o *Order) Total() int64 {
	return o.total
}

// CouponCode returns the applied coupon code, empty if none.
func (o *Order) CouponCode() string {
	return o.couponCode
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentID returns the gateway payment confirmation id, empty until the
// payment has been verified.
func (o *Order) PaymentID() string {
	return o.paymentID
}

// Courier returns the assigned courier's ID, nil if no courier is bound.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmPayment records a verified gateway payment and moves the order from
// Pending to Confirmed. The payment id must be non-empty; signature
// verification happens before this method is called.
func (o *Order) ConfirmPayment(paymentID string) error {
	if paymentID == "" {
		return ErrPaymentIDIsRequired
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentID = paymentID
	return nil
}

// ValidateAssign reports whether the order can currently accept a courier.
func (o *Order) ValidateAssign() error {
	return o.status.ValidateAssign()
}

// Assign binds a courier to the order and moves it to OutForDelivery.
// Only Confirmed orders without a courier can be assigned.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Complete marks the order as Delivered. The courier reference is kept on
// the order side as a record of who delivered it; releasing the courier is
// the caller's responsibility.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves a Pending or Confirmed order to Cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Refund moves a Confirmed order to Refunded. Requires a previously
// confirmed payment.
func (o *Order) Refund() error {
	if o.paymentID == "" {
		return ErrPaymentIDIsRequired
	}

	newStatus, err := o.status.Refund()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ChangeStatus applies an administrative status override by routing the
// request through the same transition methods the normal flows use, so the
// override can never skip or reverse a lifecycle step.
//
// Transitions that require data the override cannot supply are rejected:
// confirming needs a verified payment and dispatching needs a courier from
// the scheduler.
func (o *Order) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	switch next {
	case Delivered:
		return o.Complete()
	case Cancelled:
		return o.Cancel()
	case Refunded:
		return o.Refund()
	case Confirmed:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errors.New("confirmation requires payment verification"),
		)
	case OutForDelivery:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errors.New("dispatch requires courier assignment by the scheduler"),
		)
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot override status to %s", next.String()),
		)
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRecipient(recipient Recipient) error {
	if recipient == (Recipient{}) {
		return errs.NewValueIsRequiredError("recipient")
	}
	o.recipient = recipient
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setAmounts(discount int64) error {
	var subtotal int64
	for _, item := range o.items {
		subtotal += item.Total()
	}

	if discount < 0 || discount > subtotal {
		return errs.NewValueIsOutOfRangeError("discount", discount, 0, subtotal)
	}

	o.subtotal = subtotal
	o.discount = discount
	o.total = subtotal - discount
	return nil
}
