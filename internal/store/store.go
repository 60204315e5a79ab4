package store

import (
	"context"
	"errors"

	"github.com/sreeayiengaran/storefront-golang/internal/models"
	"github.com/sreeayiengaran/storefront-golang/internal/order"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// Catalog resolves and manages products. The cart never talks to it
// directly; handlers resolve product data and hand it to the cart.
type Catalog interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// Orders persists placed orders. Create writes the order row and its item
// snapshot atomically; List returns newest first.
type Orders interface {
	Create(ctx context.Context, o *models.Order) error
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id string, status order.Status) error
	CountByStatus(ctx context.Context, status order.Status) (int, error)
}

// Messages persists customer contact messages. MarkRead is a one-way flip:
// it sets is_read and never unsets it, and repeating it changes nothing.
type Messages interface {
	Create(ctx context.Context, m *models.Message) error
	List(ctx context.Context) ([]models.Message, error)
	MarkRead(ctx context.Context, id int64) error
	CountUnread(ctx context.Context) (int, error)
}
