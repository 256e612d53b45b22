package request

import "acme_shop/internal/domain/entities"

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CheckoutItemRequest struct {
	ProductID   string  `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Size        string  `json:"size"`
	Image       string  `json:"image"`
}

// CheckoutRequest is the storefront order submission. Item names, prices and
// images are snapshots supplied by the storefront; the total is not accepted
// from the client.
type CheckoutRequest struct {
	CustomerName    string                `json:"customer_name" binding:"required"`
	CustomerEmail   string                `json:"customer_email" binding:"required,email"`
	CustomerPhone   string                `json:"customer_phone"`
	ShippingAddress string                `json:"shipping_address" binding:"required"`
	Items           []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CheckoutRequest) ToEntity() entities.Order {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Size:        it.Size,
			Image:       it.Image,
		})
	}
	return entities.Order{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		ShippingAddress: r.ShippingAddress,
		Items:           items,
	}
}
