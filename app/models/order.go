package models

import "gorm.io/gorm"

// Order status lifecycle. Transitions only move forward:
// pending → paid → processing → shipped → delivered, with cancelled
// reachable from any non-terminal state. Delivered and cancelled are
// terminal.
const (
	OrderPending    = "pending"
	OrderPaid       = "paid"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// OrderStatuses is the set of recognised status values.
var OrderStatuses = []string{
	OrderPending, OrderPaid, OrderProcessing,
	OrderShipped, OrderDelivered, OrderCancelled,
}

// ValidOrderStatus reports whether s is one of the recognised statuses.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransition reports whether an order may move from one status to
// another. Same-status writes are allowed (idempotent updates).
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case OrderPending:
		return to == OrderPaid || to == OrderCancelled
	case OrderPaid:
		return to == OrderProcessing || to == OrderCancelled
	case OrderProcessing:
		return to == OrderShipped || to == OrderCancelled
	case OrderShipped:
		return to == OrderDelivered || to == OrderCancelled
	default: // delivered, cancelled
		return false
	}
}

// Order is the entity of record for a purchase. Created exactly once
// after the gateway signature verifies; its items are price/title
// snapshots frozen at creation time and never re-read from the live
// catalogue.
type Order struct {
	gorm.Model
	UserID            *uint       `gorm:"index" json:"user_id"` // nil for guest checkout
	Items             []OrderItem `json:"items"`
	Amount            float64     `gorm:"not null" json:"amount"` // authoritative, server-computed
	Status            string      `gorm:"size:50;default:pending;index" json:"status"`
	RazorpayOrderID   string      `gorm:"size:255;index" json:"razorpay_order_id"`
	RazorpayPaymentID string      `gorm:"size:255" json:"razorpay_payment_id"`
	Delivery          Delivery    `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery"`
}

// OrderItem is a single snapshot line on an order.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Title     string  `gorm:"size:255" json:"title"`  // snapshot at order time
	Price     float64 `gorm:"not null" json:"price"`  // snapshot at order time
	Quantity  int     `gorm:"not null" json:"quantity"`
}

// Delivery holds the shipping contact captured at checkout.
type Delivery struct {
	Name    string `gorm:"size:255" json:"name"`
	Email   string `gorm:"size:255" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`
	Address string `gorm:"size:500" json:"address"`
	Pincode string `gorm:"size:20" json:"pincode"`
}

// Total recomputes Σ price×qty over the order's items.
func (o *Order) Total() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}
