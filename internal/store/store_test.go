package store

import (
	"testing"
	"time"

	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/checkout"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/models"
)

func fixedClock() time.Time {
	return time.Date(2024, time.February, 14, 21, 0, 0, 0, time.UTC)
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(RestaurantState{
		Inventory: []models.InventoryItem{
			{ID: 1, Name: "Paella", Price: 20, Stock: 12, Kind: models.KindDish},
			{ID: 2, Name: "Salmón", Price: 15, Stock: 3, Kind: models.KindDish},
		},
		Clients: []models.Client{
			{ID: 1, Name: "Elena", Spent: 420, Visits: 9, VIP: true},
		},
	}, Config{Pricing: checkout.DefaultPricing, Clock: fixedClock})
}

func TestCheckoutTransitionAppliesAllDeltas(t *testing.T) {
	s := newTestStore(t)

	// Fill the cart with the salmon's entire stock.
	for i := 0; i < 3; i++ {
		if !s.AddToCart(2) {
			t.Fatal("AddToCart failed")
		}
	}

	outcome := s.ConfirmCheckout(5, "sin gluten")
	if outcome == nil {
		t.Fatal("expected checkout to succeed")
	}
	if outcome.Order.ID != "T-5-01" {
		t.Errorf("order id = %q, want T-5-01", outcome.Order.ID)
	}
	if outcome.WasAdjusted {
		t.Error("cart matched stock, should not be adjusted")
	}
	// 3 * 15 = 45 subtotal + 10% fee
	if outcome.Sale.Total != 49.5 {
		t.Errorf("sale total = %v, want 49.5", outcome.Sale.Total)
	}

	if got := s.Cart(); len(got) != 0 {
		t.Errorf("cart should be empty after checkout, got %+v", got)
	}
	if got := s.KitchenOrders(); len(got) != 1 || got[0].Notes != "sin gluten" {
		t.Errorf("kitchen orders = %+v", got)
	}
	if got := s.SalesHistory(); len(got) != 1 || !got[0].Timestamp.Equal(fixedClock()) {
		t.Errorf("sales history = %+v", got)
	}

	inv := s.Inventory()
	if inv[1].Stock != 0 {
		t.Errorf("salmon stock = %d, want 0", inv[1].Stock)
	}

	// Stock 3 -> 0 crossed straight to zero: exactly one out-of-stock
	// notice plus the order-placed lifecycle notice.
	notifs := s.Notifications()
	if len(notifs) != 2 {
		t.Fatalf("expected 2 notifications, got %+v", notifs)
	}
	var outOfStock, lowStock int
	for _, n := range notifs {
		switch n.Title {
		case "Sin stock":
			outOfStock++
		case "Stock bajo":
			lowStock++
		}
	}
	if outOfStock != 1 || lowStock != 0 {
		t.Errorf("stock notices = %d out / %d low, want 1/0", outOfStock, lowStock)
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	s := newTestStore(t)
	if outcome := s.ConfirmCheckout(1, ""); outcome != nil {
		t.Fatalf("expected nil outcome for empty cart, got %+v", outcome)
	}
	if got := s.KitchenOrders(); len(got) != 0 {
		t.Errorf("no order should have been created, got %+v", got)
	}
}

func TestSequencesPerTableAreMonotonic(t *testing.T) {
	s := newTestStore(t)

	order := func(table int) string {
		t.Helper()
		s.AddToCart(1)
		outcome := s.ConfirmCheckout(table, "")
		if outcome == nil {
			t.Fatal("checkout failed")
		}
		return outcome.Order.ID
	}

	if id := order(5); id != "T-5-01" {
		t.Errorf("first order = %q", id)
	}
	if id := order(5); id != "T-5-02" {
		t.Errorf("second order = %q", id)
	}
	if id := order(7); id != "T-7-01" {
		t.Errorf("other table starts fresh, got %q", id)
	}

	// Completing the older order must not free its number while T-5-02
	// still exists.
	if !s.CompleteKitchenOrder("T-5-01") {
		t.Fatal("complete failed")
	}
	if id := order(5); id != "T-5-03" {
		t.Errorf("after completion got %q, want T-5-03", id)
	}
}

func TestAdjustStockReconcilesCartAndNotifies(t *testing.T) {
	s := newTestStore(t)

	s.AddToCart(1)
	s.UpdateCartQty(1, +11) // clamps at stock 12
	if got := s.Cart(); got[0].Qty != 12 {
		t.Fatalf("cart qty = %d, want 12", got[0].Qty)
	}

	// Drop the paella from 12 to 2: cart must follow, and the 12 -> 2
	// crossing must raise a low-stock notice.
	if !s.AdjustStock(1, -10) {
		t.Fatal("AdjustStock failed")
	}
	if got := s.Cart(); len(got) != 1 || got[0].Qty != 2 {
		t.Errorf("cart after adjust = %+v, want qty 2", got)
	}
	notifs := s.Notifications()
	if len(notifs) != 1 || notifs[0].Title != "Stock bajo" {
		t.Errorf("notifications = %+v, want one low-stock notice", notifs)
	}

	if s.AdjustStock(99, 1) {
		t.Error("adjusting unknown item should fail")
	}
}

func TestAddInventoryItemAssignsIDAndNotifies(t *testing.T) {
	s := newTestStore(t)

	item := s.AddInventoryItem(models.InventoryItem{Name: "Azafrán", Stock: 2, Unit: "g", Kind: models.KindIngredient})
	if item.ID != 3 {
		t.Errorf("assigned id = %d, want 3", item.ID)
	}
	if got := s.Inventory(); len(got) != 3 {
		t.Errorf("inventory length = %d, want 3", len(got))
	}
	notifs := s.Notifications()
	if len(notifs) != 1 || notifs[0].Title != "Stock bajo" {
		t.Errorf("expected immediate low-stock notice, got %+v", notifs)
	}
}

func TestMarkNotificationAsRead(t *testing.T) {
	s := newTestStore(t)
	// Deplete the salmon completely so the checkout raises a stock notice
	// alongside the order-placed one.
	for i := 0; i < 3; i++ {
		s.AddToCart(2)
	}
	s.ConfirmCheckout(4, "")

	notifs := s.Notifications()
	if len(notifs) != 2 {
		t.Fatalf("expected 2 notifications after checkout, got %+v", notifs)
	}

	// The order-placed notice dismisses on read; the stock notice stays.
	for _, n := range notifs {
		nav := s.MarkNotificationAsRead(n.ID)
		if n.Type == models.NotificationStock && nav != "inventario" {
			t.Errorf("stock notice navigation = %q, want inventario", nav)
		}
	}

	remaining := s.Notifications()
	if len(remaining) != 1 {
		t.Fatalf("expected only the stock notice to remain, got %+v", remaining)
	}
	if !remaining[0].Read {
		t.Error("remaining notice should be marked read")
	}

	s.ClearNotifications()
	if got := s.Notifications(); len(got) != 0 {
		t.Errorf("expected cleared list, got %+v", got)
	}
}

func TestDashboardRecomputedAfterSales(t *testing.T) {
	s := newTestStore(t)

	before := s.Dashboard()
	if before.OrderCount != 0 || before.TotalRevenue != 0 {
		t.Fatalf("unexpected initial snapshot %+v", before)
	}

	s.AddToCart(1)
	s.ConfirmCheckout(2, "")

	after := s.Dashboard()
	if after.OrderCount != 1 || after.TotalRevenue != 22 {
		t.Errorf("snapshot after sale = %+v, want 1 order / 22 revenue", after)
	}
	if after.VIPCount != 1 || len(after.TopClients) != 1 {
		t.Errorf("client metrics wrong: %+v", after)
	}
}

func TestClientHistoryLookup(t *testing.T) {
	s := newTestStore(t)

	groups, total, count, ok := s.ClientHistory(1)
	if !ok {
		t.Fatal("expected client 1 to resolve")
	}
	// Elena has no recorded history; the fallback seed list kicks in.
	if len(groups) == 0 || count == 0 || total <= 0 {
		t.Errorf("fallback history not applied: groups=%+v total=%v count=%d", groups, total, count)
	}

	if _, _, _, ok := s.ClientHistory(999); ok {
		t.Error("unknown client should not resolve")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := newTestStore(t)
	inv := s.Inventory()
	inv[0].Stock = 0

	if got := s.Inventory(); got[0].Stock != 12 {
		t.Errorf("store state mutated through snapshot: %+v", got[0])
	}
}
