package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sreeayiengaran/storefront-golang/internal/models"
	"github.com/sreeayiengaran/storefront-golang/internal/notify"
	"github.com/sreeayiengaran/storefront-golang/internal/order"
)

//
// --- Checkout Handler ---
//

// Checkout sources: the general cart, or the staged buy-now snapshot.
const (
	SourceCart   = "cart"
	SourceBuyNow = "buy_now"
)

// CheckoutInput defines the JSON for POST /v1/checkout. Every customer
// field except notes is required; validation failures create no order and
// leave the cart untouched.
type CheckoutInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Notes      string `json:"notes"`

	// Source selects what is being bought: the cart (default) or the
	// staged buy-now item. A buy-now checkout never touches the cart.
	Source string `json:"source" binding:"omitempty,oneof=cart buy_now"`
}

// Checkout is the handler for POST /v1/checkout
// It validates the shopper's details, freezes the chosen item snapshot into
// a pending order, persists it, and only then clears the source it came from.
func (h *Handlers) Checkout(c *gin.Context) {
	// 1. --- Bind & Validate Customer Fields ---
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// 2. --- Pick the Item Source ---
	if input.Source == "" {
		input.Source = SourceCart
	}
	sess := h.session(c)

	var items []models.CartItem
	fromBuyNow := input.Source == SourceBuyNow
	if fromBuyNow {
		item, ok := sess.BuyNowItem()
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No buy-now item staged"})
			return
		}
		items = []models.CartItem{item}
	} else {
		items = sess.Cart.Items()
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}
	}

	// 3. --- Build the Order ---
	// The snapshot is frozen here and the total recomputed from it; nothing
	// the client sends about prices or totals is trusted.
	customer := models.Customer{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
		Country:    input.Country,
	}
	if input.Notes != "" {
		customer.Notes = &input.Notes
	}

	newOrder, err := order.NewFromItems(customer, items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 4. --- Persist ---
	// On failure the session state is left intact so the shopper can retry.
	if err := h.Orders.Create(c.Request.Context(), newOrder); err != nil {
		h.Log.WithError(err).Error("order creation failed")
		h.Notifier.Notify("Order failed", "We could not place your order. Please try again.", notify.SeverityError)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	// 5. --- Clear the Source ---
	if fromBuyNow {
		sess.ClearBuyNow()
	} else {
		sess.Cart.Clear()
	}

	h.Notifier.Notify("Order placed", "Order "+newOrder.ID+" confirmed.", notify.SeveritySuccess)
	c.JSON(http.StatusCreated, gin.H{
		"orderId": newOrder.ID,
		"status":  newOrder.Status,
		"total":   newOrder.Total,
	})
}
