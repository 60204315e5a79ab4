package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sreeayiengaran/storefront-golang/internal/order"
)

//
// --- Admin Dashboard Stats ---
//

type DashboardStats struct {
	PendingOrders    int `json:"pendingOrders"`
	ProcessingOrders int `json:"processingOrders"`
	ShippedOrders    int `json:"shippedOrders"`
	DeliveredOrders  int `json:"deliveredOrders"`
	CancelledOrders  int `json:"cancelledOrders"`
	UnreadMessages   int `json:"unreadMessages"`
}

// GetDashboardStats returns KPI data for the admin dashboard
// GET /v1/admin/dashboard-stats
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()
	stats := DashboardStats{}

	counts := []struct {
		status order.Status
		dst    *int
	}{
		{order.StatusPending, &stats.PendingOrders},
		{order.StatusProcessing, &stats.ProcessingOrders},
		{order.StatusShipped, &stats.ShippedOrders},
		{order.StatusDelivered, &stats.DeliveredOrders},
		{order.StatusCancelled, &stats.CancelledOrders},
	}

	for _, count := range counts {
		n, err := h.Orders.CountByStatus(ctx, count.status)
		if err != nil {
			h.Log.WithError(err).Error("order count failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
			return
		}
		*count.dst = n
	}

	unread, err := h.Messages.CountUnread(ctx)
	if err != nil {
		h.Log.WithError(err).Error("unread message count failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count messages"})
		return
	}
	stats.UnreadMessages = unread

	c.JSON(http.StatusOK, stats)
}
