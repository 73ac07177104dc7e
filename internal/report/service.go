package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"duewatch/internal/obligation"
)

// Common errors
var (
	ErrUnknownReportType = errors.New("unknown report type")
	ErrInvalidPeriod     = errors.New("invalid period date, expected YYYY-MM-DD")
	ErrInvalidStatus     = errors.New("invalid status filter")
)

// Report types accepted in a Request
const (
	TypePortfolio = "portfolio_position"
	TypeAging     = "aging"
	TypeForecast  = "forecast"
	TypeCategory  = "category_analysis"
)

// ObligationLister is the read side the report service loads from
type ObligationLister interface {
	ListByDueDateRange(ctx context.Context, tenantID string, kind obligation.Kind, filter obligation.DueDateFilter) ([]*obligation.Obligation, error)
}

// Service builds report view-models. It is read-only and re-entrant; each
// request gets its own Session, so concurrent requests never interfere.
type Service struct {
	repo ObligationLister
	now  func() time.Time
}

// NewService creates a new report service
func NewService(repo ObligationLister) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Generate loads the obligation set for the request's filters and produces
// the requested view-model wrapped in an Envelope.
func (s *Service) Generate(ctx context.Context, tenantID string, kind obligation.Kind, req *Request) (*Envelope, error) {
	filter, statusFilter, err := s.buildFilter(req)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListByDueDateRange(ctx, tenantID, kind, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load obligations for report: %w", err)
	}

	session := NewSession(kind, items, s.now())

	var data interface{}
	var count int

	switch req.ReportType {
	case TypePortfolio:
		portfolio := session.Portfolio(statusFilter)
		data, count = portfolio, len(portfolio)
	case TypeAging:
		// The status filter never applies here: aging has its own fixed
		// open-and-overdue pre-filter.
		aging := session.Aging()
		data, count = aging, len(aging.Buckets)
	case TypeForecast:
		// Disbursement forecasts keep past-due amounts; they still have
		// to be paid. The receivables variant looks forward only.
		forecast := session.Forecast(kind == obligation.KindPayable)
		data, count = forecast, len(forecast)
	case TypeCategory:
		categories := session.Categories()
		sort.SliceStable(categories, func(a, b int) bool {
			return categories[a].OriginalTotal > categories[b].OriginalTotal
		})
		data, count = categories, len(categories)
	default:
		return nil, ErrUnknownReportType
	}

	return &Envelope{
		ReportType:    req.ReportType,
		Kind:          string(kind),
		GeneratedAt:   s.now().UTC().Format(time.RFC3339),
		ExportEnabled: count > 0,
		Data:          data,
	}, nil
}

// buildFilter translates the request filters into a repository query.
// Forecasts deliberately ignore the period bounds: the projection covers
// everything open, not just the window the UI happened to have selected.
func (s *Service) buildFilter(req *Request) (obligation.DueDateFilter, *obligation.Status, error) {
	filter := obligation.DueDateFilter{CounterpartyID: req.CounterpartyID}

	if req.ReportType != TypeForecast {
		from, err := parsePeriod(req.PeriodFrom)
		if err != nil {
			return filter, nil, err
		}
		to, err := parsePeriod(req.PeriodTo)
		if err != nil {
			return filter, nil, err
		}
		filter.From = from
		filter.To = to
	}

	var statusFilter *obligation.Status
	if req.Status != nil && *req.Status != "" {
		status := obligation.Status(*req.Status)
		switch status {
		case obligation.StatusPending, obligation.StatusPartiallySettled,
			obligation.StatusOverdue, obligation.StatusSettled:
			statusFilter = &status
		default:
			return filter, nil, ErrInvalidStatus
		}
	}

	return filter, statusFilter, nil
}

func parsePeriod(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, ErrInvalidPeriod
	}
	return &t, nil
}
