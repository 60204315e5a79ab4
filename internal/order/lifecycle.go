package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sreeayiengaran/storefront-golang/internal/models"
)

// Status is one of the closed set of states an order can occupy.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var (
	// ErrEmptyOrder rejects order creation from an empty cart or snapshot.
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrInvalidStatus rejects a status outside the closed set.
	ErrInvalidStatus = errors.New("unknown order status")

	// ErrIllegalTransition rejects a move the lifecycle does not permit,
	// including any move out of a terminal state.
	ErrIllegalTransition = errors.New("illegal order status transition")
)

// transitions is the lifecycle table: pending -> processing -> shipped ->
// delivered, with cancelled reachable from every non-terminal state. The
// terminal states (delivered, cancelled) map to nothing.
var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// Valid reports whether s is in the closed status set.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether the lifecycle permits moving from one status
// to another. Writing the current status again is allowed (the write is
// idempotent); anything out of a terminal state is not.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition is CanTransition with the reason attached. It checks
// both statuses against the closed set before consulting the table.
func ValidateTransition(from, to Status) error {
	if !from.Valid() || !to.Valid() {
		return ErrInvalidStatus
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}

// NewOrderID generates a collision-resistant order identifier. The ORD-
// prefix is kept for the storefront's order references; the UUID carries the
// uniqueness.
func NewOrderID() string {
	return "ORD-" + uuid.NewString()
}

// NewFromItems builds a pending order from a frozen cart snapshot. The item
// rows are copied, and the total is recomputed from the copies; totals
// arriving from the client are never trusted.
func NewFromItems(customer models.Customer, items []models.CartItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	o := &models.Order{
		ID:        NewOrderID(),
		Customer:  customer,
		Status:    string(StatusPending),
		CreatedAt: time.Now(),
	}

	for _, item := range items {
		o.Items = append(o.Items, models.OrderItem{
			OrderID:   o.ID,
			ProductID: item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
		o.Total += item.Price * float64(item.Quantity)
	}

	return o, nil
}
