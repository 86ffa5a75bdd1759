package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/models"
)

//
// --- Inventory Handlers ---
//

// GetInventory is the handler for GET /v1/inventory
func (h *Handlers) GetInventory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.Store.Inventory()})
}

// AdjustStockInput defines the JSON for a stock adjustment (delivery,
// breakage, recount). Negative deltas floor at zero.
type AdjustStockInput struct {
	Delta int `json:"delta" binding:"required"`
}

// AdjustStock is the handler for PATCH /v1/inventory/:id/stock
// The store re-reconciles the cart and derives any low/out-of-stock
// notifications inside the same transition.
func (h *Handlers) AdjustStock(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var input AdjustStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !h.Store.AdjustStock(itemID, input.Delta) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": h.Store.Inventory()})
}

// CreateInventoryItemInput defines the JSON for registering a new item.
type CreateInventoryItemInput struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Stock    int     `json:"stock" binding:"gte=0"`
	Unit     string  `json:"unit"`
	Kind     string  `json:"kind" binding:"required,oneof=dish ingredient"`
}

// CreateInventoryItem is the handler for POST /v1/inventory
func (h *Handlers) CreateInventoryItem(c *gin.Context) {
	var input CreateInventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	item := h.Store.AddInventoryItem(models.InventoryItem{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Stock:    input.Stock,
		Unit:     input.Unit,
		Kind:     input.Kind,
		Img:      slug.Make(input.Name),
	})

	c.JSON(http.StatusCreated, gin.H{"item": item})
}
