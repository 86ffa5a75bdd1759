package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

//
// --- Client Handlers ---
//

// GetClients is the handler for GET /v1/clients
func (h *Handlers) GetClients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"clients": h.Store.Clients()})
}

// GetClientHistory is the handler for GET /v1/clients/:id/history
// History comes back grouped by month in first-seen order, with the spend
// totals the profile header shows.
func (h *Handlers) GetClientHistory(c *gin.Context) {
	clientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client id"})
		return
	}

	groups, total, count, ok := h.Store.ClientHistory(clientID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"groups":     groups,
		"totalSpent": total,
		"visitCount": count,
	})
}
