package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sreeayiengaran/storefront-golang/internal/cart"
	"github.com/sreeayiengaran/storefront-golang/internal/models"
	"github.com/sreeayiengaran/storefront-golang/internal/notify"
	"github.com/sreeayiengaran/storefront-golang/internal/store"
)

//
// --- Cart Handlers (shopper session) ---
//

// AddToCartInput defines the JSON for adding an item to the cart. A missing
// or zero quantity means 1.
type AddToCartInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"gte=0"`
}

// cartResponse is the shape every cart mutation returns, so the frontend
// always renders from freshly computed totals.
func cartResponse(crt *cart.Cart) gin.H {
	items := crt.Items()
	if items == nil {
		items = []models.CartItem{}
	}
	return gin.H{
		"items":      items,
		"itemCount":  crt.ItemCount(),
		"totalPrice": crt.TotalPrice(),
	}
}

// GetCart is the handler for GET /v1/cart
func (h *Handlers) GetCart(c *gin.Context) {
	sess := h.session(c)
	c.JSON(http.StatusOK, cartResponse(sess.Cart))
}

// AddToCart is the handler for POST /v1/cart/items
// It resolves the product from the catalog and merges it into the cart.
func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// 1. --- Resolve the product ---
	// The cart itself never fetches catalog data; it gets handed the
	// resolved product with its price captured here, at add time.
	product, err := h.Catalog.GetProduct(c.Request.Context(), input.ProductID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("catalog lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up product"})
		return
	}

	// 2. --- Merge into the cart ---
	sess := h.session(c)
	sess.Cart.Add(models.CartItem{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: input.Quantity,
		Image:    product.PrimaryImage(),
	})

	h.Notifier.Notify("Added to cart", product.Name+" added to your cart.", notify.SeveritySuccess)
	c.JSON(http.StatusCreated, cartResponse(sess.Cart))
}

// UpdateCartItemInput defines the JSON for updating an item's quantity.
// Zero is accepted and clamped up to 1; removal is its own endpoint.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"gte=0"`
}

// UpdateCartItem is the handler for PUT /v1/cart/items/:id
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	productID := c.Param("id")

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := h.session(c)
	if !sess.Cart.UpdateQuantity(productID, input.Quantity) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(sess.Cart))
}

// RemoveCartItem is the handler for DELETE /v1/cart/items/:id
// Removing an id that is not in the cart is a no-op, not an error.
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	sess := h.session(c)
	sess.Cart.Remove(c.Param("id"))
	c.JSON(http.StatusOK, cartResponse(sess.Cart))
}

// ClearCart is the handler for DELETE /v1/cart
func (h *Handlers) ClearCart(c *gin.Context) {
	sess := h.session(c)
	sess.Cart.Clear()
	c.JSON(http.StatusOK, cartResponse(sess.Cart))
}

// BuyNow is the handler for POST /v1/cart/buy-now
// It stages a single-item checkout snapshot on the session. The cart is not
// touched: buy-now coexists with whatever is already in it, and checkout
// picks one source or the other.
func (h *Handlers) BuyNow(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	product, err := h.Catalog.GetProduct(c.Request.Context(), input.ProductID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("catalog lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up product"})
		return
	}

	sess := h.session(c)
	sess.StageBuyNow(models.CartItem{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: input.Quantity,
		Image:    product.PrimaryImage(),
	})

	item, _ := sess.BuyNowItem()
	h.Notifier.Notify("Proceeding to checkout", product.Name+" staged for checkout.", notify.SeverityInfo)
	c.JSON(http.StatusOK, gin.H{
		"item":       item,
		"totalPrice": item.LineTotal(),
	})
}
