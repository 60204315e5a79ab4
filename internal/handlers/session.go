package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sreeayiengaran/storefront-golang/internal/cart"
	"github.com/sreeayiengaran/storefront-golang/internal/middleware"
)

// session resolves the shopper session for the current request. The session
// middleware guarantees the id is set on every cart/checkout route.
func (h *Handlers) session(c *gin.Context) *cart.Session {
	sessionID := c.GetString(middleware.ContextSessionID)
	return h.Carts.Session(sessionID)
}
