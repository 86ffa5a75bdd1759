// Package notify derives notification items from state transitions: stock
// depletion crossing the low/out thresholds, and order lifecycle events.
// Derivation is pure and idempotent per transition; only depletion emits,
// replenishment never does.
package notify

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/models"
)

// Thresholds is the stock alert policy. An item is low when its stock is
// below Low (but above zero) and out when it reaches exactly zero.
type Thresholds struct {
	Low int
}

// DefaultThresholds matches the floor policy of alerting under 10 units.
var DefaultThresholds = Thresholds{Low: 10}

// defaultTabByType maps a notification type to the tab the bell navigates
// to when the notification itself carries no explicit destination.
var defaultTabByType = map[string]string{
	models.NotificationStock:   "inventario",
	models.NotificationVIP:     "clientes",
	models.NotificationSuccess: "cocina",
}

func newID() string { return uuid.New().String() }

// stockAlert builds the low/out notification for an item, or nil when the
// stock level does not qualify.
func (t Thresholds) stockAlert(item models.InventoryItem) *models.NotificationItem {
	switch {
	case item.Stock == 0:
		return &models.NotificationItem{
			ID:         newID(),
			Type:       models.NotificationStock,
			Title:      "Sin stock",
			Message:    fmt.Sprintf("%s se ha agotado", item.Name),
			TimeLabel:  "Ahora",
			NavigateTo: "inventario",
		}
	case item.Stock < t.Low:
		return &models.NotificationItem{
			ID:        newID(),
			Type:      models.NotificationStock,
			Title:     "Stock bajo",
			Message:   fmt.Sprintf("%s: quedan %d %s", item.Name, item.Stock, item.Unit),
			TimeLabel: "Ahora",
		}
	}
	return nil
}

// StockTransition compares two inventory snapshots and emits one
// notification for every item whose stock crossed a threshold downward:
// from >= Low to below it ("stock bajo"), or to exactly zero ("sin stock",
// the more severe of the two — an item crossing straight to zero emits only
// that one). Upward crossings emit nothing.
func (t Thresholds) StockTransition(prev, next []models.InventoryItem) []models.NotificationItem {
	prevStock := make(map[int64]int, len(prev))
	for _, it := range prev {
		prevStock[it.ID] = it.Stock
	}

	var out []models.NotificationItem
	for _, it := range next {
		before, ok := prevStock[it.ID]
		if !ok {
			continue
		}
		crossedOut := it.Stock == 0 && before > 0
		crossedLow := it.Stock > 0 && it.Stock < t.Low && before >= t.Low
		if !crossedOut && !crossedLow {
			continue
		}
		if n := t.stockAlert(it); n != nil {
			out = append(out, *n)
		}
	}
	return out
}

// ForNewItem emits the stock alert for a freshly registered item whose
// initial stock already qualifies as low or out. nil when it does not.
func (t Thresholds) ForNewItem(item models.InventoryItem) *models.NotificationItem {
	return t.stockAlert(item)
}

// OrderPlaced is the lifecycle notice for an order handed to the kitchen.
// It dismisses itself once read.
func OrderPlaced(order models.KitchenOrder) models.NotificationItem {
	return models.NotificationItem{
		ID:            newID(),
		Type:          models.NotificationSuccess,
		Title:         "Pedido enviado a cocina",
		Message:       fmt.Sprintf("Pedido %s en preparación", order.ID),
		TimeLabel:     "Ahora",
		DismissOnRead: true,
	}
}

// OrderCompleted is the lifecycle notice for a finished kitchen order.
func OrderCompleted(order models.KitchenOrder) models.NotificationItem {
	return models.NotificationItem{
		ID:            newID(),
		Type:          models.NotificationInfo,
		Title:         "Pedido completado",
		Message:       fmt.Sprintf("Pedido %s servido", order.ID),
		TimeLabel:     "Ahora",
		DismissOnRead: true,
	}
}

// Prepend inserts fresh notifications at the front of the list, keeping the
// newest-first convention. Any fresh item without an id gets one, so ids
// stay unique against the existing list.
func Prepend(existing, fresh []models.NotificationItem) []models.NotificationItem {
	out := make([]models.NotificationItem, 0, len(existing)+len(fresh))
	for _, n := range fresh {
		if n.ID == "" {
			n.ID = newID()
		}
		out = append(out, n)
	}
	return append(out, existing...)
}

// ReadResult is what marking a notification read produces: the updated list
// and the tab the UI should navigate to (empty = stay put).
type ReadResult struct {
	Notifications []models.NotificationItem
	NavigateTo    string
}

// MarkRead flips the matching notification to read, or removes it entirely
// when it is flagged DismissOnRead. The navigation target is the
// notification's explicit NavigateTo when set, else the default tab for its
// type; types without a default leave navigation unchanged. An unknown id
// returns the list untouched.
func MarkRead(notifications []models.NotificationItem, id string) ReadResult {
	out := make([]models.NotificationItem, 0, len(notifications))
	var navigateTo string

	for _, n := range notifications {
		if n.ID != id {
			out = append(out, n)
			continue
		}
		if n.NavigateTo != "" {
			navigateTo = n.NavigateTo
		} else {
			navigateTo = defaultTabByType[n.Type]
		}
		if n.DismissOnRead {
			continue
		}
		n.Read = true
		out = append(out, n)
	}

	return ReadResult{Notifications: out, NavigateTo: navigateTo}
}

// Clear empties the list.
func Clear() []models.NotificationItem {
	return []models.NotificationItem{}
}
