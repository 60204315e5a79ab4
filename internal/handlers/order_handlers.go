package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sreeayiengaran/storefront-golang/internal/models"
	"github.com/sreeayiengaran/storefront-golang/internal/order"
	"github.com/sreeayiengaran/storefront-golang/internal/store"
)

//
// --- Order Handlers (Admin-Only) ---
//

// ListOrders is the handler for GET /v1/admin/orders
// Orders come back most recent first.
func (h *Handlers) ListOrders(c *gin.Context) {
	orders, err := h.Orders.List(c.Request.Context())
	if err != nil {
		h.Log.WithError(err).Error("order list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrder is the handler for GET /v1/admin/orders/:id
func (h *Handlers) GetOrder(c *gin.Context) {
	o, err := h.Orders.Get(c.Request.Context(), c.Param("id"))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("order lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}

	c.JSON(http.StatusOK, o)
}

// UpdateOrderStatusInput defines the JSON for a status change.
type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus is the handler for PATCH /v1/admin/orders/:id/status
// The write goes through the lifecycle table: transitions out of delivered
// or cancelled are rejected, and writing the current status again is an
// accepted no-op.
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	target := order.Status(input.Status)
	if !target.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status: " + input.Status})
		return
	}

	// 1. --- Fetch the Current State ---
	current, err := h.Orders.Get(c.Request.Context(), orderID)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("order lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}

	// 2. --- Consult the Lifecycle Table ---
	if err := order.ValidateTransition(order.Status(current.Status), target); err != nil {
		if errors.Is(err, order.ErrIllegalTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 3. --- Write the New Status ---
	if err := h.Orders.UpdateStatus(c.Request.Context(), orderID, target); err != nil {
		h.Log.WithError(err).Error("order status update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated to " + string(target),
		"orderId": orderID,
		"status":  string(target),
	})
}
