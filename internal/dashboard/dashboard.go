// Package dashboard folds client and sales history into the KPI snapshot
// the main screen shows. The fold recomputes everything from scratch on
// every call; the snapshot is derived data and is never patched in place,
// so it can't drift from its sources.
package dashboard

import (
	"sort"

	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/models"
)

// topClientCount is how many rows the top-spenders list shows.
const topClientCount = 3

// Aggregate computes the dashboard snapshot from the two collections.
func Aggregate(clients []models.Client, salesHistory []models.SalesRecord) models.DashboardSnapshot {
	snap := models.DashboardSnapshot{
		OrderCount:  len(salesHistory),
		ClientCount: len(clients),
	}

	for _, sale := range salesHistory {
		snap.TotalRevenue += sale.Total
	}
	if snap.OrderCount > 0 {
		snap.AverageTicket = snap.TotalRevenue / float64(snap.OrderCount)
	}

	top := make([]models.TopClient, 0, len(clients))
	for _, c := range clients {
		if c.VIP {
			snap.VIPCount++
		}
		snap.TotalVisits += c.Visits
		top = append(top, models.TopClient{Name: c.Name, Spent: c.Spent, Visits: c.Visits})
	}

	sort.SliceStable(top, func(i, j int) bool { return top[i].Spent > top[j].Spent })
	if len(top) > topClientCount {
		top = top[:topClientCount]
	}
	snap.TopClients = top

	return snap
}
