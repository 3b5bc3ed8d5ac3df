package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents courier onboarding. New couriers join the
// pool available, with no delivery bound.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID     kernel.UUID
	name          string
	phone         string
	vehicleNumber string
	location      courier.Location

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a courier.
func NewCreateCourierCommand(
	courierID kernel.UUID,
	name, phone, vehicleNumber string,
	location courier.Location,
) (CreateCourierCommand, error) {
	courierCommand := CreateCourierCommand{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courierCommand.setCourierID(courierID),
		courierCommand.setName(name),
		courierCommand.setPhone(phone),
		courierCommand.setVehicleNumber(vehicleNumber),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return courierCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the unique identifier for the courier.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier's display name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Phone returns the courier's contact phone.
func (c CreateCourierCommand) Phone() string {
	return c.phone
}

// VehicleNumber returns the courier's vehicle registration.
func (c CreateCourierCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// Location returns the courier's last reported position, zero when unknown.
func (c CreateCourierCommand) Location() courier.Location {
	return c.location
}

func (c *CreateCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return courier.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setPhone(phone string) error {
	if phone == "" {
		return courier.ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreateCourierCommand) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return courier.ErrVehicleNumberIsRequired
	}

	c.vehicleNumber = vehicleNumber
	return nil
}
