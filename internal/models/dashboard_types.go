package models

// TopClient is one row of the dashboard's top-spenders list.
type TopClient struct {
	Name   string  `json:"name"`
	Spent  float64 `json:"spent"`
	Visits int     `json:"visits"`
}

// DashboardSnapshot is derived data: it is recomputed in full from the
// clients and sales collections every time either changes, never patched
// incrementally.
type DashboardSnapshot struct {
	TotalRevenue  float64     `json:"totalRevenue"`
	OrderCount    int         `json:"orderCount"`
	AverageTicket float64     `json:"averageTicket"`
	ClientCount   int         `json:"clientCount"`
	VIPCount      int         `json:"vipCount"`
	TotalVisits   int         `json:"totalVisits"`
	TopClients    []TopClient `json:"topClients"`
}
