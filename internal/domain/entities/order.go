package entities

import "time"

// OrderStatus is the closed set of fulfillment states an order moves through.
//
// Transitions are unconstrained: the admin may move an order from any status
// to any other. The only transition-sensitive behavior in the system is
// crossing into or out of StatusDelivered, which triggers inventory
// reconciliation over the order's line items.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is one product-quantity-price record embedded in an order.
//
// Name, price, size and image are snapshots taken at checkout time; they are
// never re-read from the product after the order is created.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Size        string  `json:"size,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// Order is a customer order persisted in the orders table.
//
// Storage model (DynamoDB):
//   - PK: id
//   - items are stored embedded on the order record, not as separate rows.
//
// TotalAmount equals the sum of item price x quantity at creation time and is
// never recomputed on status change.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	ShippingAddress string      `json:"shipping_address"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
