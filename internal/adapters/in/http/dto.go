package http

import (
	"time"

	"bottleshop/internal/core/application/usecases/queries"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
}

type otpSendRequest struct {
	Email string `json:"email"`
}

type otpVerifyRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password,omitempty"`
}

type placeOrderRequest struct {
	Street   string             `json:"street"`
	City     string             `json:"city"`
	Postcode string             `json:"postcode"`
	Phone    string             `json:"phone"`
	Items    []orderLineRequest `json:"items"`
}

type orderLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type itemResponse struct {
	ItemID         string  `json:"item_id"`
	ProductID      string  `json:"product_id"`
	CourierID      *string `json:"courier_id,omitempty"`
	Name           string  `json:"name"`
	ImageURL       string  `json:"image_url,omitempty"`
	Price          int64   `json:"price"`
	Quantity       int     `json:"quantity"`
	VendorStatus   string  `json:"vendor_status"`
	HandoverStatus string  `json:"handover_status"`
	CourierStatus  string  `json:"courier_status"`
	DeliveryStatus string  `json:"delivery_status"`
}

type orderResponse struct {
	OrderID       string         `json:"order_id"`
	Number        string         `json:"number"`
	Street        string         `json:"street"`
	City          string         `json:"city"`
	Postcode      string         `json:"postcode"`
	Phone         string         `json:"phone"`
	PaymentStatus string         `json:"payment_status"`
	PlacedAt      time.Time      `json:"placed_at"`
	Items         []itemResponse `json:"items"`
}

type productResponse struct {
	ProductID   string    `json:"product_id"`
	VendorID    string    `json:"vendor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

type pendingAccountResponse struct {
	AccountID string    `json:"account_id"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Documents []string  `json:"documents"`
	CreatedAt time.Time `json:"created_at"`
}

func toOrderResponses(orders []queries.OrderResponse) []orderResponse {
	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		items := make([]itemResponse, len(o.Items))
		for j, item := range o.Items {
			var courierID *string
			if item.CourierID != nil {
				id := item.CourierID.String()
				courierID = &id
			}

			items[j] = itemResponse{
				ItemID:         item.ItemID.String(),
				ProductID:      item.ProductID.String(),
				CourierID:      courierID,
				Name:           item.Name,
				ImageURL:       item.ImageURL,
				Price:          item.Price,
				Quantity:       item.Quantity,
				VendorStatus:   item.VendorStatus,
				HandoverStatus: item.HandoverStatus,
				CourierStatus:  item.CourierStatus,
				DeliveryStatus: item.DeliveryStatus,
			}
		}

		response[i] = orderResponse{
			OrderID:       o.OrderID.String(),
			Number:        o.Number,
			Street:        o.Street,
			City:          o.City,
			Postcode:      o.Postcode,
			Phone:         o.Phone,
			PaymentStatus: o.PaymentStatus,
			PlacedAt:      o.PlacedAt,
			Items:         items,
		}
	}

	return response
}

func toProductResponses(products []queries.ProductResponse) []productResponse {
	response := make([]productResponse, len(products))
	for i, p := range products {
		response[i] = productResponse{
			ProductID:   p.ProductID.String(),
			VendorID:    p.VendorID.String(),
			Name:        p.Name,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Price:       p.Price,
			Stock:       p.Stock,
			CreatedAt:   p.CreatedAt,
		}
	}

	return response
}

func toPendingAccountResponses(accounts []queries.PendingAccountResponse) []pendingAccountResponse {
	response := make([]pendingAccountResponse, len(accounts))
	for i, a := range accounts {
		response[i] = pendingAccountResponse{
			AccountID: a.AccountID.String(),
			Role:      a.Role,
			Name:      a.Name,
			Email:     a.Email,
			Phone:     a.Phone,
			Documents: a.Documents,
			CreatedAt: a.CreatedAt,
		}
	}

	return response
}
