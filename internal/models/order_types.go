package models

import (
	"time"
)

// Customer holds the checkout form fields frozen onto an order.
type Customer struct {
	Name       string  `json:"name" db:"name"`
	Email      string  `json:"email" db:"email"`
	Phone      string  `json:"phone" db:"phone"`
	Address    string  `json:"address" db:"address"`
	City       string  `json:"city" db:"city"`
	State      string  `json:"state" db:"state"`
	PostalCode string  `json:"postalCode" db:"postal_code"`
	Country    string  `json:"country" db:"country"`
	Notes      *string `json:"notes,omitempty" db:"notes"`
}

// Order is the model for the 'orders' table. Only Status is ever mutated
// after creation (by an administrator); everything else is frozen at checkout.
type Order struct {
	ID        string      `json:"id" db:"id"`
	Customer  Customer    `json:"customer"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total" db:"total"`
	Status    string      `json:"status" db:"status"` // e.g. pending, shipped
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
}

// OrderItem is the model for the 'order_items' table: a snapshot of one cart
// row at the moment the order was placed.
type OrderItem struct {
	ID        int64   `json:"id" db:"id"`
	OrderID   string  `json:"orderId" db:"order_id"`
	ProductID string  `json:"productId" db:"product_id"`
	Name      string  `json:"name" db:"name"`
	UnitPrice float64 `json:"unitPrice" db:"unit_price"` // Price at the time of purchase
	Quantity  int     `json:"quantity" db:"quantity"`
	Image     string  `json:"image" db:"image"`
}
