package notify

import (
	"strings"
	"testing"

	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/models"
)

func TestStockTransitionDirectToZeroEmitsOnlyOut(t *testing.T) {
	prev := []models.InventoryItem{{ID: 2, Name: "Salmón", Stock: 3}}
	next := []models.InventoryItem{{ID: 2, Name: "Salmón", Stock: 0}}

	got := DefaultThresholds.StockTransition(prev, next)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(got))
	}
	if got[0].Title != "Sin stock" {
		t.Errorf("title = %q, want the out-of-stock notice", got[0].Title)
	}
	if got[0].Type != models.NotificationStock {
		t.Errorf("type = %q, want stock", got[0].Type)
	}
}

func TestStockTransitionLowCrossing(t *testing.T) {
	prev := []models.InventoryItem{{ID: 1, Name: "Arroz", Stock: 12, Unit: "kg"}}
	next := []models.InventoryItem{{ID: 1, Name: "Arroz", Stock: 8, Unit: "kg"}}

	got := DefaultThresholds.StockTransition(prev, next)
	if len(got) != 1 || got[0].Title != "Stock bajo" {
		t.Fatalf("expected one low-stock notice, got %+v", got)
	}
	if !strings.Contains(got[0].Message, "Arroz") {
		t.Errorf("message should name the item: %q", got[0].Message)
	}
}

func TestStockTransitionNoCrossingNoNotice(t *testing.T) {
	tests := []struct {
		name       string
		prev, next int
	}{
		{"stays high", 20, 15},
		{"stays low", 8, 5},
		{"replenished across threshold", 5, 20},
		{"restocked from zero", 0, 30},
		{"unchanged at zero", 0, 0},
	}
	for _, tt := range tests {
		prev := []models.InventoryItem{{ID: 1, Stock: tt.prev}}
		next := []models.InventoryItem{{ID: 1, Stock: tt.next}}
		if got := DefaultThresholds.StockTransition(prev, next); len(got) != 0 {
			t.Errorf("%s: expected no notifications, got %+v", tt.name, got)
		}
	}
}

func TestStockTransitionCustomThreshold(t *testing.T) {
	th := Thresholds{Low: 5}
	prev := []models.InventoryItem{{ID: 1, Stock: 9}}
	next := []models.InventoryItem{{ID: 1, Stock: 4}}

	if got := th.StockTransition(prev, next); len(got) != 1 {
		t.Fatalf("expected crossing under custom threshold, got %+v", got)
	}
	// Under the default threshold 9 -> 4 is not a crossing (both low).
	if got := DefaultThresholds.StockTransition(prev, next); len(got) != 0 {
		t.Fatalf("expected no crossing under default threshold, got %+v", got)
	}
}

func TestForNewItem(t *testing.T) {
	if n := DefaultThresholds.ForNewItem(models.InventoryItem{Name: "Azafrán", Stock: 2}); n == nil || n.Title != "Stock bajo" {
		t.Errorf("expected low-stock notice for new item, got %+v", n)
	}
	if n := DefaultThresholds.ForNewItem(models.InventoryItem{Name: "Vino", Stock: 0}); n == nil || n.Title != "Sin stock" {
		t.Errorf("expected out-of-stock notice, got %+v", n)
	}
	if n := DefaultThresholds.ForNewItem(models.InventoryItem{Name: "Pan", Stock: 50}); n != nil {
		t.Errorf("expected nil for healthy stock, got %+v", n)
	}
}

func TestPrependKeepsRecencyOrderAndUniqueIDs(t *testing.T) {
	existing := []models.NotificationItem{{ID: "a"}, {ID: "b"}}
	fresh := []models.NotificationItem{{Title: "nuevo 1"}, {Title: "nuevo 2"}}

	got := Prepend(existing, fresh)
	if len(got) != 4 {
		t.Fatalf("expected 4 notifications, got %d", len(got))
	}
	if got[0].Title != "nuevo 1" || got[2].ID != "a" {
		t.Errorf("order wrong: %+v", got)
	}

	seen := map[string]bool{}
	for _, n := range got {
		if n.ID == "" {
			t.Errorf("notification without id: %+v", n)
		}
		if seen[n.ID] {
			t.Errorf("duplicate id %q", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestMarkReadKeepsOrDismisses(t *testing.T) {
	list := []models.NotificationItem{
		{ID: "keep", Type: models.NotificationStock},
		{ID: "drop", Type: models.NotificationSuccess, DismissOnRead: true},
	}

	res := MarkRead(list, "keep")
	if len(res.Notifications) != 2 || !res.Notifications[0].Read {
		t.Errorf("expected notification kept with read=true, got %+v", res.Notifications)
	}
	if res.NavigateTo != "inventario" {
		t.Errorf("navigateTo = %q, want the stock default tab", res.NavigateTo)
	}

	res = MarkRead(list, "drop")
	if len(res.Notifications) != 1 || res.Notifications[0].ID != "keep" {
		t.Errorf("expected dismiss-on-read removal, got %+v", res.Notifications)
	}
}

func TestMarkReadNavigationResolution(t *testing.T) {
	list := []models.NotificationItem{
		{ID: "explicit", Type: models.NotificationStock, NavigateTo: "ventas"},
		{ID: "unmapped", Type: models.NotificationInfo},
	}

	if res := MarkRead(list, "explicit"); res.NavigateTo != "ventas" {
		t.Errorf("explicit NavigateTo should win, got %q", res.NavigateTo)
	}
	if res := MarkRead(list, "unmapped"); res.NavigateTo != "" {
		t.Errorf("unmapped type should leave navigation unchanged, got %q", res.NavigateTo)
	}
	if res := MarkRead(list, "missing"); len(res.Notifications) != 2 || res.NavigateTo != "" {
		t.Errorf("unknown id should be a no-op, got %+v", res)
	}
}

func TestClear(t *testing.T) {
	if got := Clear(); len(got) != 0 {
		t.Errorf("Clear() = %+v, want empty", got)
	}
}
