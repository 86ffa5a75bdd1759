package models

// Notification types
const (
	NotificationStock   = "stock"
	NotificationVIP     = "vip"
	NotificationSuccess = "success"
	NotificationInfo    = "info"
)

// NotificationItem is one entry in the bell dropdown, newest first.
// NavigateTo and DismissOnRead are optional per-notification overrides;
// when NavigateTo is empty the read path falls back to a per-type default.
type NotificationItem struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	Read          bool   `json:"read"`
	TimeLabel     string `json:"timeLabel"`
	NavigateTo    string `json:"navigateTo,omitempty"`
	DismissOnRead bool   `json:"dismissOnRead,omitempty"`
}
