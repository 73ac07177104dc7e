package monitor

import (
	"fmt"

	"duewatch/internal/notification"
	"duewatch/internal/obligation"
)

// alertSpec is the static presentation payload for one (kind, category)
// combination. The message closure receives the counterparty name, the
// formatted outstanding amount and the localized due date.
type alertSpec struct {
	Type      notification.Type
	Icon      string
	IconClass string
	Link      string
	Message   func(counterparty, amount, dueDate string) string
}

type catalogKey struct {
	Kind     obligation.Kind
	Category Category
}

// alertCatalog maps each alert-worthy (kind, category) pair to its payload.
// OnTimeFuture and Excluded have no entry and therefore never alert.
var alertCatalog = map[catalogKey]alertSpec{
	{obligation.KindPayable, CategoryDueToday}: {
		Type:      notification.TypeDueTodayPayable,
		Icon:      "event_busy",
		IconClass: "notification-icon-danger",
		Link:      "payables",
		Message: func(counterparty, amount, _ string) string {
			return fmt.Sprintf("The bill from %q for %s is due TODAY.", counterparty, amount)
		},
	},
	{obligation.KindPayable, CategoryOverdue}: {
		Type:      notification.TypeOverduePayable,
		Icon:      "error",
		IconClass: "notification-icon-danger",
		Link:      "payables",
		Message: func(counterparty, amount, _ string) string {
			return fmt.Sprintf("The bill from %q for %s is past due.", counterparty, amount)
		},
	},
	{obligation.KindPayable, CategoryDueSoon}: {
		Type:      notification.TypeDueSoonPayable,
		Icon:      "calendar_month",
		IconClass: "notification-icon-warning",
		Link:      "payables",
		Message: func(counterparty, _, dueDate string) string {
			return fmt.Sprintf("Your payable to %q is due on %s.", counterparty, dueDate)
		},
	},
	{obligation.KindReceivable, CategoryDueToday}: {
		Type:      notification.TypeDueTodayReceivable,
		Icon:      "event_busy",
		IconClass: "notification-icon-danger",
		Link:      "receivables",
		Message: func(counterparty, _, _ string) string {
			return fmt.Sprintf("Invoice from customer %q is due TODAY.", counterparty)
		},
	},
	{obligation.KindReceivable, CategoryOverdue}: {
		Type:      notification.TypeOverdueReceivable,
		Icon:      "warning",
		IconClass: "notification-icon-danger",
		Link:      "receivables",
		Message: func(counterparty, _, _ string) string {
			return fmt.Sprintf("Invoice from customer %q is past due.", counterparty)
		},
	},
	{obligation.KindReceivable, CategoryDueSoon}: {
		Type:      notification.TypeDueSoonReceivable,
		Icon:      "event_available",
		IconClass: "notification-icon-info",
		Link:      "receivables",
		Message: func(counterparty, _, _ string) string {
			return fmt.Sprintf("The invoice from %q is approaching its due date.", counterparty)
		},
	},
}
