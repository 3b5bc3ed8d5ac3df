package courier

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a courier without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrVehicleNumberIsRequired is returned when attempting to create a courier without a vehicle number.
	ErrVehicleNumberIsRequired = errs.NewValueIsRequiredError("vehicle number")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
	// ErrCourierIsBusy is returned when trying to bind an order to a courier that already carries one.
	ErrCourierIsBusy = errors.New("courier already carries an order")
)

// Courier represents a delivery partner in the fulfillment system.
// It is an aggregate root managing courier identity, availability, and the
// back-reference to the order currently being delivered.
//
// The availability flag and the current-order reference change together:
// a courier carrying an order is never available, and taking or releasing an
// order updates both fields as one unit. The persistence layer mirrors this
// with a single conditional write, so two concurrent assignments can never
// bind the same courier.
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// phone is the courier's contact number
	phone string
	// vehicleNumber identifies the courier's vehicle
	vehicleNumber string
	// available reports whether the courier can take a new order
	available bool
	// currentOrderID is the order currently being delivered (nil if none)
	currentOrderID *kernel.UUID
	// location is the courier's last reported position
	location Location
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new available Courier with no active order.
// All identity fields are required.
func NewCourier(id kernel.UUID, name, phone, vehicleNumber string, location Location) (*Courier, error) {
	c := &Courier{
		available: true,
		location:  location,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setVehicleNumber(vehicleNumber),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// preserving its availability state and current order reference.
//
// The cross-field rule is re-validated on restore: a courier carrying an
// order must be unavailable. The inverse is allowed: an unavailable courier
// with no order is simply off shift.
func RestoreCourier(
	id kernel.UUID,
	name, phone, vehicleNumber string,
	available bool,
	currentOrderID *kernel.UUID,
	location Location,
) (*Courier, error) {
	c := &Courier{
		available: available,
		location:  location,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setVehicleNumber(vehicleNumber),
	); err != nil {
		return nil, err
	}

	if currentOrderID != nil {
		if err := currentOrderID.Validate(); err != nil {
			return nil, err
		}
		if available {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"availability",
				errors.New("courier with an active order cannot be available"),
			)
		}
		c.currentOrderID = currentOrderID
	}

	return c, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact number.
func (c *Courier) Phone() string {
	return c.phone
}

// VehicleNumber returns the courier's vehicle identifier.
func (c *Courier) VehicleNumber() string {
	return c.vehicleNumber
}

// IsAvailable reports whether the courier can take a new order.
func (c *Courier) IsAvailable() bool {
	return c.available
}

// CurrentOrder returns the order the courier is delivering, nil if none.
func (c *Courier) CurrentOrder() *kernel.UUID {
	return c.currentOrderID
}

// Location returns the courier's last reported position.
func (c *Courier) Location() Location {
	return c.location
}

// Take binds an order to the courier and marks it busy.
// Fails if the courier is not available or already carries an order.
func (c *Courier) Take(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !c.available || c.currentOrderID != nil {
		return ErrCourierIsBusy
	}

	c.available = false
	c.currentOrderID = &orderID
	return nil
}

// Release returns the courier to the pool: available again, no active order.
// Safe to call on a courier that carries no order.
func (c *Courier) Release() {
	c.available = true
	c.currentOrderID = nil
}

// SetAvailability applies a manual availability override.
// Making a courier available also clears its current-order reference.
// Making it unavailable with no order marks the courier off shift.
func (c *Courier) SetAvailability(available bool) {
	if available {
		c.Release()
		return
	}
	c.available = false
}

// MoveTo updates the courier's last reported position.
func (c *Courier) MoveTo(location Location) {
	c.location = location
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Courier) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return ErrVehicleNumberIsRequired
	}
	c.vehicleNumber = vehicleNumber
	return nil
}
