package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/checkout"
)

//
// --- Cart Handlers ---
//

// GetCart is the handler for GET /v1/cart
// It returns the current lines plus the running totals the order panel
// shows.
func (h *Handlers) GetCart(c *gin.Context) {
	lines := h.Store.Cart()

	totalItems := 0
	for _, ln := range lines {
		totalItems += ln.Qty
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      lines,
		"subtotal":   checkout.Subtotal(lines),
		"totalItems": totalItems,
	})
}

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	ItemID int64 `json:"itemId" binding:"required"`
}

// AddToCart is the handler for POST /v1/cart/items
// Adds one unit; adding past the item's stock is absorbed silently, so the
// response is the resulting cart rather than an error.
func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !h.Store.AddToCart(input.ItemID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": h.Store.Cart()})
}

// UpdateCartLineInput defines the JSON for changing a line's quantity.
// The delta may be negative; the store clamps the result to stock and
// removes the line when it reaches zero.
type UpdateCartLineInput struct {
	Delta int `json:"delta" binding:"required"`
}

// UpdateCartLine is the handler for PATCH /v1/cart/items/:item_id
func (h *Handlers) UpdateCartLine(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var input UpdateCartLineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	h.Store.UpdateCartQty(itemID, input.Delta)
	c.JSON(http.StatusOK, gin.H{"items": h.Store.Cart()})
}

// DeleteCartLine is the handler for DELETE /v1/cart/items/:item_id
func (h *Handlers) DeleteCartLine(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	h.Store.RemoveCartLine(itemID)
	c.JSON(http.StatusOK, gin.H{"items": h.Store.Cart()})
}
