package monitor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duewatch/internal/notification"
	"duewatch/internal/obligation"
)

type fakeSource struct {
	byKind  map[obligation.Kind][]*obligation.Obligation
	listErr map[obligation.Kind]error
}

func (f *fakeSource) ListOpen(_ context.Context, _ string, kind obligation.Kind, _ []obligation.Status) ([]*obligation.Obligation, error) {
	if err := f.listErr[kind]; err != nil {
		return nil, err
	}
	return f.byKind[kind], nil
}

type fakeStore struct {
	mu        sync.Mutex
	rows      map[string]*notification.Notification
	existsErr map[string]error
	createErr map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rows:      make(map[string]*notification.Notification),
		existsErr: make(map[string]error),
		createErr: make(map[string]error),
	}
}

func pairKey(tenantID, relatedID string, typ notification.Type) string {
	return fmt.Sprintf("%s|%s|%s", tenantID, relatedID, typ)
}

func (f *fakeStore) Exists(_ context.Context, tenantID, relatedID string, typ notification.Type) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.existsErr[relatedID]; err != nil {
		return false, err
	}
	_, ok := f.rows[pairKey(tenantID, relatedID, typ)]
	return ok, nil
}

func (f *fakeStore) Create(_ context.Context, tenantID string, n *notification.Notification) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.createErr[n.RelatedID]; err != nil {
		return false, err
	}
	key := pairKey(tenantID, n.RelatedID, n.Type)
	if _, ok := f.rows[key]; ok {
		return false, nil
	}
	stored := *n
	stored.TenantID = tenantID
	stored.CreatedAt = time.Now()
	f.rows[key] = &stored
	return true, nil
}

func (f *fakeStore) ListByTenant(context.Context, string, int, int, bool) ([]*notification.Notification, int, error) {
	return nil, 0, nil
}
func (f *fakeStore) MarkRead(context.Context, string, []string) error { return nil }
func (f *fakeStore) MarkAllRead(context.Context, string) error        { return nil }
func (f *fakeStore) Delete(context.Context, string, string) (bool, error) {
	return false, nil
}
func (f *fakeStore) UnreadCount(context.Context, string) (int, error) { return 0, nil }

func (f *fakeStore) byType(typ notification.Type) []*notification.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*notification.Notification
	for _, n := range f.rows {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

// plainFormatter renders the raw minor-unit value, which makes message
// assertions straightforward.
type plainFormatter struct{}

func (plainFormatter) Format(minorUnits int64) string {
	return strconv.FormatInt(minorUnits, 10)
}

func newTestEmitter(source *fakeSource, store *fakeStore, at time.Time) *Emitter {
	e := NewEmitter(source, store, plainFormatter{}, 4, zerolog.Nop())
	e.now = func() time.Time { return at }
	return e
}

func payable(id string, status obligation.Status, due *time.Time) *obligation.Obligation {
	return &obligation.Obligation{
		ID:               id,
		Kind:             obligation.KindPayable,
		CounterpartyName: "Acme Supplies",
		Status:           status,
		DueDate:          due,
		OriginalAmount:   10000,
	}
}

func receivable(id string, status obligation.Status, due *time.Time) *obligation.Obligation {
	o := payable(id, status, due)
	o.Kind = obligation.KindReceivable
	o.CounterpartyName = "Blue Harbor Ltda"
	return o
}

func TestScanCreatesNotificationsForBothKinds(t *testing.T) {
	source := &fakeSource{byKind: map[obligation.Kind][]*obligation.Obligation{
		obligation.KindPayable: {
			payable("pay-1", obligation.StatusPending, dueIn(0)),
			payable("pay-2", obligation.StatusPending, dueIn(10)), // on time, no alert
		},
		obligation.KindReceivable: {
			receivable("rec-1", obligation.StatusOverdue, dueIn(-5)),
		},
	}}
	store := newFakeStore()

	result := newTestEmitter(source, store, today).Scan(context.Background(), "tenant-1")

	assert.Equal(t, int64(3), result.Scanned)
	assert.Equal(t, int64(2), result.Created)
	assert.Equal(t, int64(0), result.Failed)
	assert.Len(t, store.byType(notification.TypeDueTodayPayable), 1)
	assert.Len(t, store.byType(notification.TypeOverdueReceivable), 1)
}

func TestScanIsIdempotent(t *testing.T) {
	source := &fakeSource{byKind: map[obligation.Kind][]*obligation.Obligation{
		obligation.KindPayable: {payable("pay-1", obligation.StatusPending, dueIn(0))},
	}}
	store := newFakeStore()
	emitter := newTestEmitter(source, store, today)

	first := emitter.Scan(context.Background(), "tenant-1")
	second := emitter.Scan(context.Background(), "tenant-1")

	assert.Equal(t, int64(1), first.Created)
	assert.Equal(t, int64(0), second.Created)
	assert.Equal(t, int64(1), second.Suppressed)
	assert.Len(t, store.rows, 1)
}

func TestScanEscalationFiresNewCategory(t *testing.T) {
	due := dueIn(2)
	source := &fakeSource{byKind: map[obligation.Kind][]*obligation.Obligation{
		obligation.KindPayable: {payable("pay-1", obligation.StatusPending, due)},
	}}
	store := newFakeStore()

	// Two days before due: due-soon alert.
	newTestEmitter(source, store, today).Scan(context.Background(), "tenant-1")
	require.Len(t, store.byType(notification.TypeDueSoonPayable), 1)

	// A week later the same obligation is overdue: a different type, so it
	// fires once more instead of being suppressed.
	later := today.AddDate(0, 0, 7)
	result := newTestEmitter(source, store, later).Scan(context.Background(), "tenant-1")

	assert.Equal(t, int64(1), result.Created)
	assert.Len(t, store.byType(notification.TypeOverduePayable), 1)
	assert.Len(t, store.rows, 2)
}

func TestScanSkipsMalformedObligations(t *testing.T) {
	source := &fakeSource{byKind: map[obligation.Kind][]*obligation.Obligation{
		obligation.KindPayable: {
			payable("pay-1", obligation.StatusPending, nil),
			payable("pay-2", obligation.StatusPending, dueIn(0)),
		},
	}}
	store := newFakeStore()

	result := newTestEmitter(source, store, today).Scan(context.Background(), "tenant-1")

	assert.Equal(t, int64(1), result.Malformed)
	assert.Equal(t, int64(1), result.Created)
	assert.Len(t, store.rows, 1)
}

func TestScanIsolatesPerObligationFailures(t *testing.T) {
	source := &fakeSource{byKind: map[obligation.Kind][]*obligation.Obligation{
		obligation.KindPayable: {
			payable("pay-1", obligation.StatusPending, dueIn(0)),
			payable("pay-2", obligation.StatusPending, dueIn(-3)),
			payable("pay-3", obligation.StatusPending, dueIn(1)),
		},
	}}
	store := newFakeStore()
	store.existsErr["pay-1"] = errors.New("store unavailable")
	store.createErr["pay-2"] = errors.New("store unavailable")

	result := newTestEmitter(source, store, today).Scan(context.Background(), "tenant-1")

	assert.Equal(t, int64(2), result.Failed)
	assert.Equal(t, int64(1), result.Created)
	assert.Len(t, store.byType(notification.TypeDueSoonPayable), 1)
}

func TestScanContinuesWhenOneKindFailsToList(t *testing.T) {
	source := &fakeSource{
		byKind: map[obligation.Kind][]*obligation.Obligation{
			obligation.KindReceivable: {receivable("rec-1", obligation.StatusPending, dueIn(0))},
		},
		listErr: map[obligation.Kind]error{
			obligation.KindPayable: errors.New("store unavailable"),
		},
	}
	store := newFakeStore()

	result := newTestEmitter(source, store, today).Scan(context.Background(), "tenant-1")

	assert.Equal(t, int64(1), result.Failed)
	assert.Equal(t, int64(1), result.Created)
}

func TestScanPayloadComesFromCatalog(t *testing.T) {
	outstanding := int64(2500)
	o := payable("pay-1", obligation.StatusPartiallySettled, dueIn(0))
	o.OutstandingAmount = &outstanding

	source := &fakeSource{byKind: map[obligation.Kind][]*obligation.Obligation{
		obligation.KindPayable: {o},
	}}
	store := newFakeStore()

	newTestEmitter(source, store, today).Scan(context.Background(), "tenant-1")

	created := store.byType(notification.TypeDueTodayPayable)
	require.Len(t, created, 1)
	n := created[0]

	// Outstanding amount wins over the original amount in the message.
	assert.Contains(t, n.Message, "2500")
	assert.Contains(t, n.Message, "Acme Supplies")
	assert.Equal(t, "event_busy", n.Icon)
	assert.Equal(t, "notification-icon-danger", n.IconClass)
	assert.Equal(t, "payables", n.Link)
	assert.False(t, n.Read)
	assert.Equal(t, "pay-1", n.RelatedID)
}
