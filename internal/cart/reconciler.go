// Package cart keeps a cart's line quantities consistent with live
// inventory stock. Every function is pure: inputs are never mutated, a new
// slice is returned, and after any call no line exceeds its item's stock
// and no line sits at quantity zero.
package cart

import "github.com/CiaphasC/l-Elite-Gastro-sub001/internal/models"

// stockFor looks up the current stock for an item ID.
// The second return is false when the item is not in the inventory at all.
func stockFor(inventory []models.InventoryItem, itemID int64) (int, bool) {
	for _, it := range inventory {
		if it.ID == itemID {
			return it.Stock, true
		}
	}
	return 0, false
}

// clamp bounds q to [0, max].
func clamp(q, max int) int {
	if q < 0 {
		return 0
	}
	if q > max {
		return max
	}
	return q
}

// AddLine adds one unit of item to the cart. If a line for the item already
// exists its quantity grows by 1, clamped to the item's current stock in
// inventory; adding beyond available stock is a silent no-op. A new line is
// only inserted with quantity 1, so a zero-stock item never enters the cart.
func AddLine(lines []models.CartLine, item models.InventoryItem, inventory []models.InventoryItem) []models.CartLine {
	stock, ok := stockFor(inventory, item.ID)
	if !ok {
		stock = item.Stock
	}

	out := make([]models.CartLine, len(lines))
	copy(out, lines)

	for i := range out {
		if out[i].ID == item.ID {
			out[i].Qty = clamp(out[i].Qty+1, stock)
			return out
		}
	}

	if stock < 1 {
		return out
	}
	return append(out, models.CartLine{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Img:   item.Img,
		Qty:   1,
	})
}

// UpdateQty applies delta (positive or negative) to the line matching
// itemID, clamping the result to [0, current stock]. A line that lands on 0
// is removed. Lines for an unknown itemID are left untouched, and a delta
// of any magnitude stays within bounds.
func UpdateQty(lines []models.CartLine, inventory []models.InventoryItem, itemID int64, delta int) []models.CartLine {
	out := make([]models.CartLine, 0, len(lines))
	for _, ln := range lines {
		if ln.ID != itemID {
			out = append(out, ln)
			continue
		}
		stock, _ := stockFor(inventory, itemID)
		ln.Qty = clamp(ln.Qty+delta, stock)
		if ln.Qty > 0 {
			out = append(out, ln)
		}
	}
	return out
}

// Reconcile re-clamps every line against current stock. It runs after any
// external inventory change (stock adjustment, another checkout) so the
// cart can never reference more units than the floor actually has. Lines
// whose backing item disappeared, or whose clamped quantity is 0, are
// dropped.
func Reconcile(lines []models.CartLine, inventory []models.InventoryItem) []models.CartLine {
	out := make([]models.CartLine, 0, len(lines))
	for _, ln := range lines {
		stock, ok := stockFor(inventory, ln.ID)
		if !ok {
			continue
		}
		ln.Qty = clamp(ln.Qty, stock)
		if ln.Qty > 0 {
			out = append(out, ln)
		}
	}
	return out
}

// ApplyCheckoutDeduction subtracts every cart line's quantity from the
// matching item's stock, floored at 0. Items without a cart line pass
// through unchanged.
func ApplyCheckoutDeduction(inventory []models.InventoryItem, lines []models.CartLine) []models.InventoryItem {
	out := make([]models.InventoryItem, len(inventory))
	copy(out, inventory)

	for _, ln := range lines {
		for i := range out {
			if out[i].ID == ln.ID {
				out[i].Stock -= ln.Qty
				if out[i].Stock < 0 {
					out[i].Stock = 0
				}
				break
			}
		}
	}
	return out
}
