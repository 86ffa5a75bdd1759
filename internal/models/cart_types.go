package models

// CartLine is one inventory item plus the quantity requested for checkout.
// Qty is always >= 1 and never above the referenced item's current stock;
// a line whose quantity drops to 0 is removed from the cart, never kept.
type CartLine struct {
	ID    int64   `json:"id"` // references InventoryItem.ID
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Img   string  `json:"img,omitempty"`
	Qty   int     `json:"qty"`
}
