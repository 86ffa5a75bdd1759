package models

// ClientHistoryItem is one recorded visit. Date is the free-text label the
// floor app shows ("14 Feb 2024"); entries are immutable once recorded.
type ClientHistoryItem struct {
	Date   string   `json:"date"`
	Type   string   `json:"type"`
	Table  string   `json:"table"`
	Items  []string `json:"items"`
	Total  float64  `json:"total"`
	Status string   `json:"status"`
}

// Client is a known guest and their visit history.
type Client struct {
	ID      int64               `json:"id"`
	Name    string              `json:"name"`
	Visits  int                 `json:"visits"`
	Spent   float64             `json:"spent"`
	VIP     bool                `json:"vip"`
	History []ClientHistoryItem `json:"history,omitempty"`
}

// GroupedHistory is one month bucket of a client's visits, in the order the
// months were first seen in the history.
type GroupedHistory struct {
	Label   string              `json:"label"` // e.g. "Feb 2024", or "Reciente"
	Entries []ClientHistoryItem `json:"entries"`
}
