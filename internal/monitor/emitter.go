package monitor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"duewatch/internal/notification"
	"duewatch/internal/obligation"
)

// ObligationSource is the read side the emitter scans
type ObligationSource interface {
	ListOpen(ctx context.Context, tenantID string, kind obligation.Kind, statuses []obligation.Status) ([]*obligation.Obligation, error)
}

// CurrencyFormatter renders minor-unit amounts for alert messages
type CurrencyFormatter interface {
	Format(minorUnits int64) string
}

// ScanResult counts what one scan did for one tenant
type ScanResult struct {
	Scanned    int64 `json:"scanned"`
	Created    int64 `json:"created"`
	Suppressed int64 `json:"suppressed"`
	Malformed  int64 `json:"malformed"`
	Failed     int64 `json:"failed"`
}

type scanCounters struct {
	scanned    atomic.Int64
	created    atomic.Int64
	suppressed atomic.Int64
	malformed  atomic.Int64
	failed     atomic.Int64
}

func (c *scanCounters) result() ScanResult {
	return ScanResult{
		Scanned:    c.scanned.Load(),
		Created:    c.created.Load(),
		Suppressed: c.suppressed.Load(),
		Malformed:  c.malformed.Load(),
		Failed:     c.failed.Load(),
	}
}

// Emitter walks both obligation collections, classifies every open record
// and materializes at most one notification per (obligation, category) pair.
// It never mutates obligations and never sends anything externally.
type Emitter struct {
	obligations   ObligationSource
	notifications notification.Store
	money         CurrencyFormatter
	concurrency   int
	dateLayout    string
	log           zerolog.Logger
	now           func() time.Time
}

// NewEmitter creates a notification emitter
func NewEmitter(obligations ObligationSource, notifications notification.Store, money CurrencyFormatter, concurrency int, log zerolog.Logger) *Emitter {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Emitter{
		obligations:   obligations,
		notifications: notifications,
		money:         money,
		concurrency:   concurrency,
		dateLayout:    "02/01/2006",
		log:           log.With().Str("component", "emitter").Logger(),
		now:           time.Now,
	}
}

// Scan runs one monitoring pass for a tenant. The two obligation kinds are
// processed concurrently, and obligations within a kind fan out onto a
// bounded worker group. A failed check or write affects only its own
// obligation; the rest of the scan carries on.
func (e *Emitter) Scan(ctx context.Context, tenantID string) ScanResult {
	today := e.now()
	counters := &scanCounters{}

	var kinds errgroup.Group
	for _, kind := range obligation.Kinds {
		kind := kind
		kinds.Go(func() error {
			e.scanKind(ctx, tenantID, kind, today, counters)
			return nil
		})
	}
	kinds.Wait()

	result := counters.result()
	e.log.Info().
		Str("tenant", tenantID).
		Int64("scanned", result.Scanned).
		Int64("created", result.Created).
		Int64("suppressed", result.Suppressed).
		Int64("malformed", result.Malformed).
		Int64("failed", result.Failed).
		Msg("Scan finished")
	return result
}

func (e *Emitter) scanKind(ctx context.Context, tenantID string, kind obligation.Kind, today time.Time, counters *scanCounters) {
	obligations, err := e.obligations.ListOpen(ctx, tenantID, kind, obligation.OpenStatuses)
	if err != nil {
		// The next scheduled scan retries naturally; nothing to do now.
		e.log.Error().Err(err).Str("tenant", tenantID).Str("kind", string(kind)).Msg("Failed to list obligations")
		counters.failed.Add(1)
		return
	}

	var group errgroup.Group
	group.SetLimit(e.concurrency)
	for _, o := range obligations {
		o := o
		group.Go(func() error {
			e.process(ctx, tenantID, o, today, counters)
			return nil
		})
	}
	group.Wait()
}

func (e *Emitter) process(ctx context.Context, tenantID string, o *obligation.Obligation, today time.Time, counters *scanCounters) {
	counters.scanned.Add(1)

	if !o.HasDueDate() {
		e.log.Warn().Str("tenant", tenantID).Str("obligation", o.ID).Msg("Obligation has no due date, skipping")
		counters.malformed.Add(1)
		return
	}

	category, _ := Classify(o, today)
	alert, ok := alertCatalog[catalogKey{Kind: o.Kind, Category: category}]
	if !ok {
		// Excluded or not yet alert-worthy
		return
	}

	exists, err := e.notifications.Exists(ctx, tenantID, o.ID, alert.Type)
	if err != nil {
		e.log.Error().Err(err).Str("tenant", tenantID).Str("obligation", o.ID).Msg("Failed to check for existing notification")
		counters.failed.Add(1)
		return
	}
	if exists {
		counters.suppressed.Add(1)
		return
	}

	amount := e.money.Format(o.EffectiveOutstanding())
	dueDate := o.DueDate.Format(e.dateLayout)

	created, err := e.notifications.Create(ctx, tenantID, &notification.Notification{
		RelatedID: o.ID,
		Type:      alert.Type,
		Message:   alert.Message(o.CounterpartyName, amount, dueDate),
		Icon:      alert.Icon,
		IconClass: alert.IconClass,
		Link:      alert.Link,
	})
	if err != nil {
		e.log.Error().Err(err).Str("tenant", tenantID).Str("obligation", o.ID).Msg("Failed to create notification")
		counters.failed.Add(1)
		return
	}
	if !created {
		// Lost a check-then-create race; the winner's row stands.
		counters.suppressed.Add(1)
		return
	}

	counters.created.Add(1)
	e.log.Debug().
		Str("tenant", tenantID).
		Str("obligation", o.ID).
		Str("type", string(alert.Type)).
		Msg("Notification created")
}
