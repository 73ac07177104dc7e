package notification

import "time"

// Notification represents an in-app alert about an obligation. The
// presentation payload (message, icon, link) is computed once at creation
// and never recomputed.
type Notification struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	RelatedID string    `json:"related_id"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	Icon      string    `json:"icon"`
	IconClass string    `json:"icon_class"`
	Link      string    `json:"link"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Type tags a notification with the obligation kind and due-status category
// it concerns. For a given tenant at most one notification exists per
// (related_id, type) pair, so an obligation escalating from "due soon" to
// "overdue" alerts again while a repeated scan of the same state does not.
type Type string

const (
	TypeDueTodayPayable    Type = "due_today_payable"
	TypeDueSoonPayable     Type = "due_soon_payable"
	TypeOverduePayable     Type = "overdue_payable"
	TypeDueTodayReceivable Type = "due_today_receivable"
	TypeDueSoonReceivable  Type = "due_soon_receivable"
	TypeOverdueReceivable  Type = "overdue_receivable"
)
