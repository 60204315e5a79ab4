package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/sreeayiengaran/storefront-golang/internal/models"
	"github.com/sreeayiengaran/storefront-golang/internal/store"
)

//
// --- Product Handlers ---
//

// ListProducts is the handler for GET /v1/products
// An optional ?category= filters the catalog.
func (h *Handlers) ListProducts(c *gin.Context) {
	products, err := h.Catalog.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.Log.WithError(err).Error("product list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct is the handler for GET /v1/products/:id
func (h *Handlers) GetProduct(c *gin.Context) {
	product, err := h.Catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("product lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// ProductInput defines the JSON for creating or updating a product.
type ProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gte=0"`
	ImageURLs   []string `json:"image_urls"`
	Category    string   `json:"category"`
}

// CreateProduct is the handler for POST /v1/admin/products
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		ImageURLs:   input.ImageURLs,
		Category:    input.Category,
	}

	if err := h.Catalog.CreateProduct(c.Request.Context(), product); err != nil {
		h.Log.WithError(err).Error("product create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct is the handler for PUT /v1/admin/products/:id
// Price edits apply to the catalog only; already-carted items and placed
// orders keep the price they captured.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	product := &models.Product{
		ID:          c.Param("id"),
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		ImageURLs:   input.ImageURLs,
		Category:    input.Category,
	}

	err := h.Catalog.UpdateProduct(c.Request.Context(), product)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("product update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct is the handler for DELETE /v1/admin/products/:id
func (h *Handlers) DeleteProduct(c *gin.Context) {
	err := h.Catalog.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("product delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
