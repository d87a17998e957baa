// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
//
// Orders span two tables: an orders row with the address snapshot and payment
// fields, and one order_items row per line item. The item rows carry the
// denormalized vendor column the vendor projection joins on.
package orderrepo

import (
	"time"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number        string     `gorm:"uniqueIndex"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index"`
	Address       AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	PaymentStatus int
	PaymentProof  string
	TransactionID string
	PlacedAt      time.Time
	Items         []ItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address snapshot within the
// orders table.
type AddressDTO struct {
	Street   string
	City     string
	Postcode string
	Phone    string
}

// ItemDTO represents one line item row. The vendor column is denormalized at
// placement time and indexed, so the vendor projection is a single join. The
// four status columns are written per row only.
type ItemDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `gorm:"type:uuid;index"`
	ProductID      uuid.UUID  `gorm:"type:uuid"`
	VendorID       uuid.UUID  `gorm:"type:uuid;index"`
	CourierID      *uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	ImageURL       string
	Price          int64
	Quantity       int
	VendorStatus   int
	HandoverStatus int
	CourierStatus  int
	DeliveryStatus int
}

// TableName specifies the database table name for line item rows.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	address := aggregate.Address()
	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		Number:     aggregate.Number().String(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Address: AddressDTO{
			Street:   address.Street(),
			City:     address.City(),
			Postcode: address.Postcode(),
			Phone:    address.Phone(),
		},
		PaymentStatus: int(aggregate.PaymentStatus()),
		PaymentProof:  aggregate.PaymentProof(),
		TransactionID: aggregate.TransactionID(),
		PlacedAt:      aggregate.PlacedAt(),
		Items:         items,
	}
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) ItemDTO {
	var courierID *uuid.UUID
	if id := item.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return ItemDTO{
		ID:             item.ID().Bytes(),
		OrderID:        orderID.Bytes(),
		ProductID:      item.ProductID().Bytes(),
		VendorID:       item.VendorID().Bytes(),
		CourierID:      courierID,
		Name:           item.Name(),
		ImageURL:       item.ImageURL(),
		Price:          item.Price().Amount(),
		Quantity:       item.Quantity(),
		VendorStatus:   int(item.VendorStatus()),
		HandoverStatus: int(item.HandoverStatus()),
		CourierStatus:  int(item.CourierStatus()),
		DeliveryStatus: int(item.DeliveryStatus()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including payment state and line items
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.Postcode, dto.Address.Phone)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		number,
		customerID,
		address,
		items,
		order.PaymentStatus(dto.PaymentStatus),
		dto.PaymentProof,
		dto.TransactionID,
		dto.PlacedAt,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
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

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id,
		productID,
		vendorID,
		courierID,
		dto.Name,
		dto.ImageURL,
		price,
		dto.Quantity,
		order.VendorStatus(dto.VendorStatus),
		order.HandoverStatus(dto.HandoverStatus),
		order.CourierStatus(dto.CourierStatus),
		order.DeliveryStatus(dto.DeliveryStatus),
	)
}
