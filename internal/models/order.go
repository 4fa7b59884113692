package models

import "time"

// OrderStatus is the five-value order lifecycle. Orders start as pending and
// may move freely between non-terminal statuses; completed and cancelled are
// absorbing.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusShipped   OrderStatus = "shipped"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

var orderStatuses = map[OrderStatus]bool{
	StatusPending:   true,
	StatusPaid:      true,
	StatusShipped:   true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// ValidOrderStatus reports whether s is one of the five defined statuses.
func ValidOrderStatus(s OrderStatus) bool {
	return orderStatuses[s]
}

// Terminal reports whether no further status change is permitted.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// OrderItem is a single line of an order. Price is a snapshot taken at
// checkout time and never changes afterwards, independent of the live
// product price.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Product   Product `json:"products" gorm:"foreignKey:ProductID"`
}

// Order represents a customer order created at checkout.
type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	UserID          string      `json:"user_id" gorm:"type:varchar(36)"`
	TotalAmount     float64     `json:"total_amount"`
	ShippingName    string      `json:"shipping_name" gorm:"type:varchar(100)"`
	ShippingAddress string      `json:"shipping_address" gorm:"type:varchar(255)"`
	ShippingPhone   string      `json:"shipping_phone" gorm:"type:varchar(30)"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20)"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `json:"order_items" gorm:"foreignKey:OrderID"`
}
