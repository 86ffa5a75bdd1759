package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// --- Kitchen Order Handlers ---
//

// CheckoutInput defines the JSON for confirming the current cart.
type CheckoutInput struct {
	TableID int    `json:"tableId" binding:"required,gt=0"`
	Notes   string `json:"notes"`
}

// Checkout is the handler for POST /v1/checkout
// It confirms the current cart for a table. The store reconciles the cart
// against live stock first; if anything was reduced the response carries
// wasAdjusted so the operator can warn the guest.
func (h *Handlers) Checkout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	outcome := h.Store.ConfirmCheckout(input.TableID, input.Notes)
	if outcome == nil {
		// Empty or fully out-of-stock cart: a rejected operation, not a
		// server error.
		c.JSON(http.StatusConflict, gin.H{"error": "Nothing available to order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":       outcome.Order,
		"sale":        outcome.Sale,
		"wasAdjusted": outcome.WasAdjusted,
	})
}

// GetKitchenOrders is the handler for GET /v1/kitchen/orders
func (h *Handlers) GetKitchenOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.Store.KitchenOrders()})
}

// CompleteKitchenOrder is the handler for PATCH /v1/kitchen/orders/:id/complete
// A completed order leaves the active list; its table's numbering is
// recomputed from the remaining orders on the next checkout.
func (h *Handlers) CompleteKitchenOrder(c *gin.Context) {
	id := c.Param("id")

	if !h.Store.CompleteKitchenOrder(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order completed"})
}

// GetSalesHistory is the handler for GET /v1/sales
func (h *Handlers) GetSalesHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sales": h.Store.SalesHistory()})
}
