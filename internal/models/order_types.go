package models

import "time"

// KitchenOrder is a table-scoped batch of checked-out items sent to
// preparation. ID is the canonical "T-<table>-<seq>" form; legacy records
// may carry the bare "T-<table>" form with no stored sequence.
type KitchenOrder struct {
	ID        string     `json:"id"`
	TableID   int        `json:"tableId,omitempty"`
	Sequence  int        `json:"sequence,omitempty"` // 0 when unknown (legacy)
	Items     []CartLine `json:"items"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// SalesRecord is one completed checkout. Append-only: records are never
// mutated once written.
type SalesRecord struct {
	Total     float64   `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}
