// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The item snapshot is stored as a jsonb document; the priced lines are
// immutable after checkout, so no relational access is ever needed.
type OrderDTO struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey"`
	CustomerID string       `gorm:"type:varchar(255);not null;index"`
	Recipient  RecipientDTO `gorm:"embedded;embeddedPrefix:recipient_"`
	Items      []byte       `gorm:"type:jsonb;not null"`
	Subtotal   int64        `gorm:"not null"`
	Discount   int64        `gorm:"not null"`
	Total      int64        `gorm:"not null"`
	CouponCode string       `gorm:"type:varchar(64)"`
	Status     int          `gorm:"not null;index"`
	PaymentID  *string      `gorm:"type:varchar(255);uniqueIndex"`
	CourierID  *uuid.UUID   `gorm:"type:uuid;index"`
	CreatedAt  time.Time    `gorm:"not null;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// RecipientDTO represents the embedded delivery recipient within the order table.
type RecipientDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Phone   string `gorm:"type:varchar(64);not null"`
	Address string `gorm:"type:text;not null"`
}

// itemDTO is the jsonb shape of one priced order line.
type itemDTO struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     int64     `json:"price"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var paymentID *string
	if p := aggregate.PaymentID(); p != "" {
		paymentID = &p
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID(),
		Recipient: RecipientDTO{
			Name:    aggregate.Recipient().Name(),
			Phone:   aggregate.Recipient().Phone(),
			Address: aggregate.Recipient().Address(),
		},
		Items:      itemsJSON,
		Subtotal:   aggregate.Subtotal(),
		Discount:   aggregate.Discount(),
		Total:      aggregate.Total(),
		CouponCode: aggregate.CouponCode(),
		Status:     int(aggregate.Status()),
		PaymentID:  paymentID,
		CourierID:  courierID,
		CreatedAt:  aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which re-validates
// the snapshot totals from the stored item lines.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var itemDTOs []itemDTO
	if err = json.Unmarshal(dto.Items, &itemDTOs); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, raw := range itemDTOs {
		productID, productErr := kernel.UUIDFromBytes(raw.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}

		item, itemErr := order.NewItem(productID, raw.Name, raw.Quantity, raw.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	recipient, err := order.NewRecipient(dto.Recipient.Name, dto.Recipient.Phone, dto.Recipient.Address)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	var paymentID string
	if dto.PaymentID != nil {
		paymentID = *dto.PaymentID
	}

	return order.RestoreOrder(
		id,
		dto.CustomerID,
		recipient,
		items,
		dto.CouponCode,
		dto.Discount,
		order.Status(dto.Status),
		paymentID,
		courierID,
		dto.CreatedAt,
	)
}
