package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// --- Dashboard Handlers ---
//

// GetDashboardStats is the handler for GET /v1/dashboard-stats
// The snapshot is recomputed from clients and sales on every request, never
// cached or patched, so it can't drift from the source collections.
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Dashboard())
}
