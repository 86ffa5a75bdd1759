// Package checkout turns a requested cart into the full set of state deltas
// a confirmed order produces: the effective cart, the deducted inventory,
// the new kitchen order and its sales record. Everything here is pure
// computation; the host store applies the returned values atomically or not
// at all.
package checkout

import (
	"time"

	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/cart"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/models"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/orderid"
)

// Pricing holds the checkout pricing policy. The fee rate is policy, not
// structure, so it lives here as a default rather than a literal buried in
// the total computation.
type Pricing struct {
	ServiceFeeRate float64
}

// DefaultPricing is the house policy: 10% service over the subtotal.
var DefaultPricing = Pricing{ServiceFeeRate: 0.10}

// Subtotal sums price*qty over the cart lines.
func Subtotal(lines []models.CartLine) float64 {
	var total float64
	for _, ln := range lines {
		total += ln.Price * float64(ln.Qty)
	}
	return total
}

// OrderTotal is the subtotal plus the service fee.
func (p Pricing) OrderTotal(lines []models.CartLine) float64 {
	subtotal := Subtotal(lines)
	return subtotal + subtotal*p.ServiceFeeRate
}

// Result carries every value a confirmed checkout derives. The caller
// replaces its state slices with these together; there is no partial-apply
// path.
type Result struct {
	EffectiveCart []models.CartLine
	WasAdjusted   bool
	NextInventory []models.InventoryItem
	Order         models.KitchenOrder
	Sale          models.SalesRecord
}

// Prepare runs the checkout workflow for one table:
//
//  1. Reconcile the requested cart against current stock.
//  2. Reject an empty effective cart (nil result, not an error).
//  3. Flag whether reconciliation reduced any quantity, so the operator can
//     be warned that some items were short.
//  4. Price the effective cart, deduct it from inventory, allocate the next
//     order id for the table, and snapshot the order and sales record.
//
// now is the caller's clock reading; Prepare itself performs no side
// effects.
func Prepare(requested []models.CartLine, inventory []models.InventoryItem,
	existingOrders []models.KitchenOrder, tableID int, notes string,
	now time.Time, pricing Pricing) *Result {

	effective := cart.Reconcile(requested, inventory)
	if len(effective) == 0 {
		// Nothing orderable (empty cart or everything out of stock).
		return nil
	}

	sequence := orderid.NextSequence(existingOrders, tableID)

	return &Result{
		EffectiveCart: effective,
		WasAdjusted:   wasAdjusted(requested, effective),
		NextInventory: cart.ApplyCheckoutDeduction(inventory, effective),
		Order: models.KitchenOrder{
			ID:        orderid.Encode(tableID, sequence),
			TableID:   tableID,
			Sequence:  sequence,
			Items:     effective,
			Notes:     notes,
			CreatedAt: now,
		},
		Sale: models.SalesRecord{
			Total:     pricing.OrderTotal(effective),
			Timestamp: now,
		},
	}
}

// wasAdjusted compares per-item quantities between the requested and
// effective carts.
func wasAdjusted(requested, effective []models.CartLine) bool {
	want := make(map[int64]int, len(requested))
	for _, ln := range requested {
		want[ln.ID] += ln.Qty
	}
	got := make(map[int64]int, len(effective))
	for _, ln := range effective {
		got[ln.ID] += ln.Qty
	}
	if len(want) != len(got) {
		return true
	}
	for id, qty := range want {
		if got[id] != qty {
			return true
		}
	}
	return false
}
