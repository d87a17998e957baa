package queries

import (
	"database/sql"
	"time"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ItemResponse is one projected line item. Statuses are rendered in their
// string form for direct serialization.
type ItemResponse struct {
	ItemID         kernel.UUID
	ProductID      kernel.UUID
	CourierID      *kernel.UUID
	Name           string
	ImageURL       string
	Price          int64
	Quantity       int
	VendorStatus   string
	HandoverStatus string
	CourierStatus  string
	DeliveryStatus string
}

// OrderResponse is one projected order with the line items visible to the
// caller. Vendor and courier projections filter the items to the caller's
// own; the customer projection carries all of them.
type OrderResponse struct {
	OrderID       kernel.UUID
	Number        string
	Street        string
	City          string
	Postcode      string
	Phone         string
	PaymentStatus string
	PlacedAt      time.Time
	Items         []ItemResponse
}

// orderItemSelect is the shared column list of the order projections. The
// per-query WHERE clause decides which item rows the caller may see.
const orderItemSelect = `
	SELECT
		o.id,
		o.number,
		o.address_street,
		o.address_city,
		o.address_postcode,
		o.address_phone,
		o.payment_status,
		o.placed_at,
		i.id,
		i.product_id,
		i.courier_id,
		i.name,
		i.image_url,
		i.price,
		i.quantity,
		i.vendor_status,
		i.handover_status,
		i.courier_status,
		i.delivery_status
	FROM orders o
	JOIN order_items i ON i.order_id = o.id
`

// collectOrderRows groups joined order/item rows into per-order responses,
// preserving the row order produced by the query.
func collectOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			orderID       uuid.UUID
			number        string
			street        string
			city          string
			postcode      string
			phone         string
			paymentStatus int
			placedAt      time.Time

			itemID         uuid.UUID
			productID      uuid.UUID
			courierID      uuid.NullUUID
			name           string
			imageURL       string
			price          int64
			quantity       int
			vendorStatus   int
			handoverStatus int
			courierStatus  int
			deliveryStatus int
		)

		if err := rows.Scan(
			&orderID, &number, &street, &city, &postcode, &phone, &paymentStatus, &placedAt,
			&itemID, &productID, &courierID, &name, &imageURL, &price, &quantity,
			&vendorStatus, &handoverStatus, &courierStatus, &deliveryStatus,
		); err != nil {
			return nil, err
		}

		pos, seen := index[orderID]
		if !seen {
			id, err := kernel.UUIDFromBytes(orderID[:])
			if err != nil {
				return nil, err
			}

			orders = append(orders, OrderResponse{
				OrderID:       id,
				Number:        number,
				Street:        street,
				City:          city,
				Postcode:      postcode,
				Phone:         phone,
				PaymentStatus: order.PaymentStatus(paymentStatus).String(),
				PlacedAt:      placedAt,
				Items:         make([]ItemResponse, 0, 1),
			})
			pos = len(orders) - 1
			index[orderID] = pos
		}

		item, err := buildItemResponse(
			itemID, productID, courierID, name, imageURL, price, quantity,
			vendorStatus, handoverStatus, courierStatus, deliveryStatus,
		)
		if err != nil {
			return nil, err
		}

		orders[pos].Items = append(orders[pos].Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func buildItemResponse(
	itemID uuid.UUID,
	productID uuid.UUID,
	courierID uuid.NullUUID,
	name string,
	imageURL string,
	price int64,
	quantity int,
	vendorStatus int,
	handoverStatus int,
	courierStatus int,
	deliveryStatus int,
) (ItemResponse, error) {
	id, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return ItemResponse{}, err
	}

	prdID, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return ItemResponse{}, err
	}

	var courier *kernel.UUID
	if courierID.Valid {
		c, courierErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if courierErr != nil {
			return ItemResponse{}, courierErr
		}
		courier = &c
	}

	return ItemResponse{
		ItemID:         id,
		ProductID:      prdID,
		CourierID:      courier,
		Name:           name,
		ImageURL:       imageURL,
		Price:          price,
		Quantity:       quantity,
		VendorStatus:   order.VendorStatus(vendorStatus).String(),
		HandoverStatus: order.HandoverStatus(handoverStatus).String(),
		CourierStatus:  order.CourierStatus(courierStatus).String(),
		DeliveryStatus: order.DeliveryStatus(deliveryStatus).String(),
	}, nil
}
