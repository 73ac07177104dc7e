package report

import (
	"time"

	"duewatch/internal/obligation"
)

// Session owns the obligation set loaded for a single report request.
// Each request gets its own session, so concurrent report requests never
// share state. Split records never make it into a session.
type Session struct {
	kind  obligation.Kind
	today time.Time
	items []*obligation.Obligation
}

// NewSession builds a report session from a freshly loaded obligation set
func NewSession(kind obligation.Kind, items []*obligation.Obligation, today time.Time) *Session {
	kept := make([]*obligation.Obligation, 0, len(items))
	for _, o := range items {
		if o.Status == obligation.StatusSplit {
			continue
		}
		kept = append(kept, o)
	}
	return &Session{kind: kind, today: today, items: kept}
}

// Len returns the number of obligations in the session
func (s *Session) Len() int {
	return len(s.items)
}

// openDated returns the open obligations that have a due date
func (s *Session) openDated() []*obligation.Obligation {
	out := make([]*obligation.Obligation, 0, len(s.items))
	for _, o := range s.items {
		if o.Status.IsOpen() && o.HasDueDate() {
			out = append(out, o)
		}
	}
	return out
}

// Portfolio returns the flat listing view-model, optionally narrowed to one
// status.
func (s *Session) Portfolio(status *obligation.Status) []PortfolioItem {
	items := make([]PortfolioItem, 0, len(s.items))
	for _, o := range s.items {
		if status != nil && o.Status != *status {
			continue
		}
		item := PortfolioItem{
			ID:               o.ID,
			CounterpartyName: o.CounterpartyName,
			Description:      o.Description,
			DocumentNumber:   o.DocumentNumber,
			Status:           string(o.Status),
			OriginalAmount:   o.OriginalAmount,
			Outstanding:      o.EffectiveOutstanding(),
		}
		if o.HasDueDate() {
			d := o.DueDate.Format("2006-01-02")
			item.DueDate = &d
		}
		items = append(items, item)
	}
	return items
}
