// Package store is the host state container. It owns the one authoritative
// RestaurantState snapshot and dispatches every user action through the
// pure core packages, replacing whole state slices with their results under
// a single writer lock. Core functions never see the live slices: actions
// pass the current state in and swap the returned collections in
// atomically, and the cart is re-reconciled inside every transition that
// touches inventory.
package store

import (
	"sync"
	"time"

	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/cart"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/checkout"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/clients"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/dashboard"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/models"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/notify"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/orderid"
)

// RestaurantState is everything the floor app keeps in memory.
type RestaurantState struct {
	Inventory     []models.InventoryItem
	CartLines     []models.CartLine
	KitchenOrders []models.KitchenOrder
	SalesHistory  []models.SalesRecord
	Clients       []models.Client
	Notifications []models.NotificationItem
}

// Config carries the policy knobs and the clock. An unset threshold or
// clock falls back to the defaults in New; a zero fee rate is taken
// literally (a house with no service charge is valid policy).
type Config struct {
	Thresholds notify.Thresholds
	Pricing    checkout.Pricing
	Clock      func() time.Time
}

// Store serializes all state transitions behind one mutex: one writer at a
// time, no partial applies.
type Store struct {
	mu    sync.Mutex
	state RestaurantState
	cfg   Config
}

// New builds a store around the seeded state.
func New(initial RestaurantState, cfg Config) *Store {
	if cfg.Thresholds.Low <= 0 {
		cfg.Thresholds = notify.DefaultThresholds
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Store{state: initial, cfg: cfg}
}

// --- Cart actions ---

// AddToCart adds one unit of the item to the cart. false when the item is
// unknown (stock-0 adds are silently absorbed by the reconciler instead).
func (s *Store) AddToCart(itemID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.state.Inventory {
		if item.ID == itemID {
			s.state.CartLines = cart.AddLine(s.state.CartLines, item, s.state.Inventory)
			return true
		}
	}
	return false
}

// UpdateCartQty applies a quantity delta to a cart line.
func (s *Store) UpdateCartQty(itemID int64, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CartLines = cart.UpdateQty(s.state.CartLines, s.state.Inventory, itemID, delta)
}

// RemoveCartLine drops a line regardless of its quantity.
func (s *Store) RemoveCartLine(itemID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, 0, len(s.state.CartLines))
	for _, ln := range s.state.CartLines {
		if ln.ID != itemID {
			out = append(out, ln)
		}
	}
	s.state.CartLines = out
}

// --- Checkout ---

// CheckoutOutcome is what ConfirmCheckout reports back to the caller.
type CheckoutOutcome struct {
	Order       models.KitchenOrder
	Sale        models.SalesRecord
	WasAdjusted bool
}

// ConfirmCheckout runs the order workflow for the current cart and applies
// every derived delta in one transition: new inventory, the new kitchen
// order, the sales record, an emptied cart, and any stock/lifecycle
// notifications. nil when the effective cart is empty (nothing orderable).
func (s *Store) ConfirmCheckout(tableID int, notes string) *CheckoutOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevInventory := s.state.Inventory
	res := checkout.Prepare(s.state.CartLines, prevInventory, s.state.KitchenOrders,
		tableID, notes, s.cfg.Clock(), s.cfg.Pricing)
	if res == nil {
		return nil
	}

	fresh := s.cfg.Thresholds.StockTransition(prevInventory, res.NextInventory)
	fresh = append(fresh, notify.OrderPlaced(res.Order))

	s.state.Inventory = res.NextInventory
	s.state.CartLines = nil
	s.state.KitchenOrders = append(s.state.KitchenOrders, res.Order)
	s.state.SalesHistory = append(s.state.SalesHistory, res.Sale)
	s.state.Notifications = notify.Prepend(s.state.Notifications, fresh)

	return &CheckoutOutcome{Order: res.Order, Sale: res.Sale, WasAdjusted: res.WasAdjusted}
}

// --- Inventory actions ---

// AdjustStock applies a delta to an item's stock, floored at 0, then
// re-reconciles the cart and derives any threshold notifications. false for
// an unknown item.
func (s *Store) AdjustStock(itemID int64, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state.Inventory
	next := make([]models.InventoryItem, len(prev))
	copy(next, prev)

	found := false
	for i := range next {
		if next[i].ID == itemID {
			next[i].Stock += delta
			if next[i].Stock < 0 {
				next[i].Stock = 0
			}
			found = true
			break
		}
	}
	if !found {
		return false
	}

	s.state.Inventory = next
	s.state.CartLines = cart.Reconcile(s.state.CartLines, next)
	if fresh := s.cfg.Thresholds.StockTransition(prev, next); len(fresh) > 0 {
		s.state.Notifications = notify.Prepend(s.state.Notifications, fresh)
	}
	return true
}

// AddInventoryItem registers a new item, assigning the next free id, and
// emits an immediate stock notice when the initial stock already qualifies.
func (s *Store) AddInventoryItem(item models.InventoryItem) models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	for _, it := range s.state.Inventory {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	item.ID = maxID + 1

	next := make([]models.InventoryItem, len(s.state.Inventory), len(s.state.Inventory)+1)
	copy(next, s.state.Inventory)
	s.state.Inventory = append(next, item)

	if n := s.cfg.Thresholds.ForNewItem(item); n != nil {
		s.state.Notifications = notify.Prepend(s.state.Notifications, []models.NotificationItem{*n})
	}
	return item
}

// --- Kitchen orders ---

// CompleteKitchenOrder removes a finished order from the active list and
// posts its lifecycle notice. false for an unknown id. The table's sequence
// numbering recovers naturally: the allocator rescans the remaining orders
// on the next checkout.
func (s *Store) CompleteKitchenOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.KitchenOrder, 0, len(s.state.KitchenOrders))
	var completed *models.KitchenOrder
	for _, order := range s.state.KitchenOrders {
		if order.ID == id && completed == nil {
			done := order
			completed = &done
			continue
		}
		out = append(out, order)
	}
	if completed == nil {
		return false
	}

	s.state.KitchenOrders = out
	s.state.Notifications = notify.Prepend(s.state.Notifications,
		[]models.NotificationItem{notify.OrderCompleted(*completed)})
	return true
}

// --- Notifications ---

// MarkNotificationAsRead flips or dismisses the notification and returns
// the tab the UI should navigate to (empty = stay).
func (s *Store) MarkNotificationAsRead(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := notify.MarkRead(s.state.Notifications, id)
	s.state.Notifications = res.Notifications
	return res.NavigateTo
}

// ClearNotifications empties the list.
func (s *Store) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Notifications = notify.Clear()
}

// --- Read snapshots ---
// Every getter returns copies; callers never see the live slices.

func (s *Store) Inventory() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.InventoryItem, len(s.state.Inventory))
	copy(out, s.state.Inventory)
	return out
}

func (s *Store) Cart() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, len(s.state.CartLines))
	copy(out, s.state.CartLines)
	return out
}

func (s *Store) KitchenOrders() []models.KitchenOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.KitchenOrder, len(s.state.KitchenOrders))
	copy(out, s.state.KitchenOrders)
	return out
}

func (s *Store) SalesHistory() []models.SalesRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SalesRecord, len(s.state.SalesHistory))
	copy(out, s.state.SalesHistory)
	return out
}

func (s *Store) Notifications() []models.NotificationItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.NotificationItem, len(s.state.Notifications))
	copy(out, s.state.Notifications)
	return out
}

func (s *Store) Clients() []models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Client, len(s.state.Clients))
	copy(out, s.state.Clients)
	return out
}

// Dashboard recomputes the KPI snapshot from current clients and sales.
func (s *Store) Dashboard() models.DashboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dashboard.Aggregate(s.state.Clients, s.state.SalesHistory)
}

// ClientHistory resolves and groups one client's visit history. ok is false
// for an unknown client id.
func (s *Store) ClientHistory(clientID int64) (groups []models.GroupedHistory, total float64, count int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.state.Clients {
		if c.ID == clientID {
			history := clients.ResolveHistory(c)
			total, count = clients.Totals(history)
			return clients.Group(history), total, count, true
		}
	}
	return nil, 0, 0, false
}

// NextSequencePreview reports the sequence the next order for a table would
// get, without allocating it. Used by the ticket preview.
func (s *Store) NextSequencePreview(tableID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return orderid.NextSequence(s.state.KitchenOrders, tableID)
}
