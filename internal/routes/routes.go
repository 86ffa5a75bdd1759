package routes

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/handlers"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/middleware"
)

// CORSMiddleware allows the floor tablet frontend (Vite dev server by
// default) to talk to this API.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Public Routes ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})
		v1.POST("/login", h.Login)

		// --- Floor Routes (Login Required) ---
		floor := v1.Group("/")
		floor.Use(middleware.AuthMiddleware())
		{
			// Cart
			floor.GET("/cart", h.GetCart)
			floor.POST("/cart/items", h.AddToCart)
			floor.PATCH("/cart/items/:item_id", h.UpdateCartLine)
			floor.DELETE("/cart/items/:item_id", h.DeleteCartLine)

			// Checkout & kitchen
			floor.POST("/checkout", h.Checkout)
			floor.GET("/kitchen/orders", h.GetKitchenOrders)
			floor.PATCH("/kitchen/orders/:id/complete", h.CompleteKitchenOrder)
			floor.GET("/sales", h.GetSalesHistory)

			// Inventory
			floor.GET("/inventory", h.GetInventory)
			floor.POST("/inventory", h.CreateInventoryItem)
			floor.PATCH("/inventory/:id/stock", h.AdjustStock)

			// Notifications
			floor.GET("/notifications", h.GetNotifications)
			floor.PATCH("/notifications/:id/read", h.MarkNotificationAsRead)
			floor.DELETE("/notifications", h.ClearNotifications)

			// Dashboard & clients
			floor.GET("/dashboard-stats", h.GetDashboardStats)
			floor.GET("/clients", h.GetClients)
			floor.GET("/clients/:id/history", h.GetClientHistory)
		}
	}

	return router
}
