package handlers

import "github.com/CiaphasC/l-Elite-Gastro-sub001/internal/store"

// Handlers holds the dependencies the HTTP layer needs. The store is the
// single source of truth; handlers translate requests into store actions
// and state snapshots into JSON.
type Handlers struct {
	Store *store.Store
}
