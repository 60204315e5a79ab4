package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sreeayiengaran/storefront-golang/internal/models"
	"github.com/sreeayiengaran/storefront-golang/internal/notify"
	"github.com/sreeayiengaran/storefront-golang/internal/store"
)

//
// --- Message Handlers ---
//

// ContactInput defines the JSON for the public contact form.
type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// CreateMessage is the handler for POST /v1/contact
func (h *Handlers) CreateMessage(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	msg := &models.Message{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := h.Messages.Create(c.Request.Context(), msg); err != nil {
		h.Log.WithError(err).Error("message create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	h.Notifier.Notify("Message sent", "We received your message and will get back to you.", notify.SeveritySuccess)
	c.JSON(http.StatusCreated, gin.H{"message": "Message sent"})
}

// ListMessages is the handler for GET /v1/admin/messages
func (h *Handlers) ListMessages(c *gin.Context) {
	messages, err := h.Messages.List(c.Request.Context())
	if err != nil {
		h.Log.WithError(err).Error("message list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	if messages == nil {
		messages = []models.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// MarkMessageRead is the handler for PATCH /v1/admin/messages/:id/read
// The read flag flips to true the first time and stays there; repeating the
// call succeeds without changing anything.
func (h *Handlers) MarkMessageRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message id"})
		return
	}

	err = h.Messages.MarkRead(c.Request.Context(), id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("mark message read failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}
