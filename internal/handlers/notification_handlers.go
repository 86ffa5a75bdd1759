package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// --- Notification Handlers ---
//

// GetNotifications is the handler for GET /v1/notifications
// The list is already newest-first; the client renders it as-is.
func (h *Handlers) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.Store.Notifications()})
}

// MarkNotificationAsRead is the handler for PATCH /v1/notifications/:id/read
// Depending on the notification it either stays (flipped to read) or is
// dismissed outright; the response tells the UI which tab to jump to, if
// any.
func (h *Handlers) MarkNotificationAsRead(c *gin.Context) {
	id := c.Param("id")

	navigateTo := h.Store.MarkNotificationAsRead(id)

	c.JSON(http.StatusOK, gin.H{
		"notifications": h.Store.Notifications(),
		"navigateTo":    navigateTo,
	})
}

// ClearNotifications is the handler for DELETE /v1/notifications
func (h *Handlers) ClearNotifications(c *gin.Context) {
	h.Store.ClearNotifications()
	c.JSON(http.StatusOK, gin.H{"message": "Notifications cleared"})
}
