package models

// Kind values for InventoryItem.Kind
const (
	KindDish       = "dish"
	KindIngredient = "ingredient"
)

// InventoryItem is one sellable dish or tracked ingredient on the floor.
// Stock is the authoritative quantity; it is only ever mutated through the
// store's reconcile/checkout/adjust transitions, never written directly.
type InventoryItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Unit     string  `json:"unit"`
	Kind     string  `json:"kind"` // "dish" or "ingredient"
	Img      string  `json:"img,omitempty"`
}
