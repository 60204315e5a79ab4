package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sreeayiengaran/storefront-golang/internal/auth"
)

//
// --- Admin Auth ---
//

// AdminLoginInput defines the JSON for POST /v1/admin/login
type AdminLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin checks the configured dashboard credential and issues a JWT.
func (h *Handlers) AdminLogin(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(input.Email), []byte(h.Config.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(h.Config.AdminPassword)) == 1
	if !emailOK || !passwordOK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateToken([]byte(h.Config.JWTSecret), input.Email)
	if err != nil {
		h.Log.WithError(err).Error("token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
