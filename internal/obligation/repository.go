package obligation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Repository provides read access to the payable and receivable collections
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new obligation repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func tableFor(kind Kind) (string, error) {
	switch kind {
	case KindPayable:
		return "payables", nil
	case KindReceivable:
		return "receivables", nil
	default:
		return "", fmt.Errorf("unknown obligation kind: %s", kind)
	}
}

const obligationColumns = `id, tenant_id, counterparty_id, counterparty_name, description,
		document_number, due_date, status, original_amount, outstanding_amount,
		category_id, category_name, created_at`

// ListOpen returns all obligations of the given kind whose status is in
// statuses (defaults to the open statuses when empty), ordered by due date.
func (r *Repository) ListOpen(ctx context.Context, tenantID string, kind Kind, statuses []Status) ([]*Obligation, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	if len(statuses) == 0 {
		statuses = OpenStatuses
	}
	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE tenant_id = $1 AND status = ANY($2)
		ORDER BY due_date ASC NULLS LAST
	`, obligationColumns, table)

	rows, err := r.db.QueryContext(ctx, query, tenantID, pq.Array(statusStrings))
	if err != nil {
		return nil, fmt.Errorf("failed to list open %s: %w", table, err)
	}
	defer rows.Close()

	return scanObligations(rows, kind)
}

// Tenants returns every tenant id that owns at least one obligation.
// The scheduled scan iterates over this set.
func (r *Repository) Tenants(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT tenant_id FROM payables
		UNION
		SELECT DISTINCT tenant_id FROM receivables
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan tenant id: %w", err)
		}
		tenants = append(tenants, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tenant ids: %w", err)
	}

	return tenants, nil
}

// DueDateFilter narrows a due-date range query. Nil bounds are open ended.
type DueDateFilter struct {
	From           *time.Time
	To             *time.Time
	CounterpartyID *string
	Statuses       []Status
}

// ListByDueDateRange returns obligations of the given kind filtered on due
// date, counterparty and status, ordered by due date ascending.
func (r *Repository) ListByDueDateRange(ctx context.Context, tenantID string, kind Kind, filter DueDateFilter) ([]*Obligation, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE tenant_id = $1`, obligationColumns, table)
	args := []interface{}{tenantID}

	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND due_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND due_date <= $%d", len(args))
	}
	if filter.CounterpartyID != nil {
		args = append(args, *filter.CounterpartyID)
		query += fmt.Sprintf(" AND counterparty_id = $%d", len(args))
	}
	if len(filter.Statuses) > 0 {
		statusStrings := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statusStrings[i] = string(s)
		}
		args = append(args, pq.Array(statusStrings))
		query += fmt.Sprintf(" AND status = ANY($%d)", len(args))
	}

	query += " ORDER BY due_date ASC NULLS LAST"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s by due date: %w", table, err)
	}
	defer rows.Close()

	return scanObligations(rows, kind)
}

func scanObligations(rows *sql.Rows, kind Kind) ([]*Obligation, error) {
	var obligations []*Obligation
	for rows.Next() {
		o := &Obligation{Kind: kind}
		var dueDate sql.NullTime
		var outstanding sql.NullInt64
		if err := rows.Scan(
			&o.ID,
			&o.TenantID,
			&o.CounterpartyID,
			&o.CounterpartyName,
			&o.Description,
			&o.DocumentNumber,
			&dueDate,
			&o.Status,
			&o.OriginalAmount,
			&outstanding,
			&o.CategoryID,
			&o.CategoryName,
			&o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan obligation: %w", err)
		}
		if dueDate.Valid {
			d := dueDate.Time
			o.DueDate = &d
		}
		if outstanding.Valid {
			v := outstanding.Int64
			o.OutstandingAmount = &v
		}
		obligations = append(obligations, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read obligations: %w", err)
	}

	return obligations, nil
}
