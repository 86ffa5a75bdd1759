package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/auth"
)

// LoginInput is the staff login payload: a display name plus the shared
// floor PIN.
type LoginInput struct {
	Name string `json:"name" binding:"required"`
	PIN  string `json:"pin" binding:"required"`
}

// Login is the handler for POST /v1/login.
// Staff authenticate with the shared PIN configured in STAFF_PIN and get a
// session token back.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	pin := os.Getenv("STAFF_PIN")
	if pin == "" {
		pin = "1234" // dev fallback, set STAFF_PIN in production
	}
	if input.PIN != pin {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect PIN"})
		return
	}

	token, err := auth.GenerateToken(input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"name":  input.Name,
	})
}
