package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sreeayiengaran/storefront-golang/internal/handlers"
	"github.com/sreeayiengaran/storefront-golang/internal/middleware"
)

// CORSMiddleware tells the browser the storefront frontend may talk to us.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Session-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Session-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight OPTIONS requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// CORS must be the very first thing the router uses.
	router.Use(CORSMiddleware(h.Config.AllowedOrigin))

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Public Catalog Routes ---
		v1.GET("/products", h.ListProducts)
		v1.GET("/products/:id", h.GetProduct)

		// --- Public Contact Form ---
		v1.POST("/contact", h.CreateMessage)

		// --- Shopper Routes (Session-Scoped) ---
		shop := v1.Group("/")
		shop.Use(middleware.ShopperSession())
		{
			shop.GET("/cart", h.GetCart)
			shop.POST("/cart/items", h.AddToCart)
			shop.PUT("/cart/items/:id", h.UpdateCartItem)
			shop.DELETE("/cart/items/:id", h.RemoveCartItem)
			shop.DELETE("/cart", h.ClearCart)
			shop.POST("/cart/buy-now", h.BuyNow)

			shop.POST("/checkout", h.Checkout)
		}

		// --- Admin Routes ---
		v1.POST("/admin/login", h.AdminLogin)

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuth([]byte(h.Config.JWTSecret)))
		{
			admin.POST("/products", h.CreateProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)

			admin.GET("/orders", h.ListOrders)
			admin.GET("/orders/:id", h.GetOrder)
			admin.PATCH("/orders/:id/status", h.UpdateOrderStatus)

			admin.GET("/messages", h.ListMessages)
			admin.PATCH("/messages/:id/read", h.MarkMessageRead)

			admin.GET("/dashboard-stats", h.GetDashboardStats)
		}
	}

	return router
}
