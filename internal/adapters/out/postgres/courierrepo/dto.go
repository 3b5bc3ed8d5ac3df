// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Availability is a stored flag updated together with the order slot; the
// conditional update on is_available arbitrates concurrent assignment.
type CourierDTO struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name           string      `gorm:"type:varchar(255);not null"`
	Phone          string      `gorm:"type:varchar(64);not null"`
	VehicleNumber  string      `gorm:"type:varchar(32);not null"`
	IsAvailable    bool        `gorm:"not null;index"`
	CurrentOrderID *uuid.UUID  `gorm:"type:uuid;index"`
	Location       LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// LocationDTO represents the embedded location coordinates within the courier table.
type LocationDTO struct {
	Lat float64 `gorm:"type:double precision"`
	Lng float64 `gorm:"type:double precision"`
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	var currentOrderID *uuid.UUID
	if id := aggregate.CurrentOrder(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	return CourierDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Phone:          aggregate.Phone(),
		VehicleNumber:  aggregate.VehicleNumber(),
		IsAvailable:    aggregate.IsAvailable(),
		CurrentOrderID: currentOrderID,
		Location: LocationDTO{
			Lat: aggregate.Location().Lat(),
			Lng: aggregate.Location().Lng(),
		},
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the aggregate using RestoreCourier, which re-checks the
// availability/order pairing.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &oID
	}

	location, err := courier.NewLocation(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		dto.Phone,
		dto.VehicleNumber,
		dto.IsAvailable,
		currentOrderID,
		location,
	)
}
