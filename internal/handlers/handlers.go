package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/sreeayiengaran/storefront-golang/internal/cart"
	"github.com/sreeayiengaran/storefront-golang/internal/config"
	"github.com/sreeayiengaran/storefront-golang/internal/notify"
	"github.com/sreeayiengaran/storefront-golang/internal/store"
)

// Handlers holds all dependencies for the HTTP handlers.
type Handlers struct {
	Catalog  store.Catalog
	Orders   store.Orders
	Messages store.Messages
	Carts    *cart.Registry
	Notifier notify.Notifier
	Config   *config.Config
	Log      *logrus.Logger
}
