package notification

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository handles notification data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new notification repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Exists reports whether any notification already covers the given
// (related_id, type) pair for the tenant, regardless of read state or age.
func (r *Repository) Exists(ctx context.Context, tenantID, relatedID string, typ Type) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE tenant_id = $1 AND related_id = $2 AND type = $3
		)
	`
	if err := r.db.QueryRowContext(ctx, query, tenantID, relatedID, typ).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check notification existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new notification. The insert ignores conflicts on the
// (tenant_id, related_id, type) unique index, so two concurrent scans racing
// on the same pair produce one row; the loser reports created=false.
func (r *Repository) Create(ctx context.Context, tenantID string, n *Notification) (bool, error) {
	query := `
		INSERT INTO notifications (id, tenant_id, related_id, type, message, icon, icon_class, link, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9)
		ON CONFLICT (tenant_id, related_id, type) DO NOTHING
	`

	id := uuid.NewString()
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		id, tenantID, n.RelatedID, n.Type, n.Message, n.Icon, n.IconClass, n.Link, now,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create notification: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read notification insert result: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	n.ID = id
	n.TenantID = tenantID
	n.Read = false
	n.CreatedAt = now
	return true, nil
}

// ListByTenant retrieves notifications for a tenant, newest first
func (r *Repository) ListByTenant(ctx context.Context, tenantID string, limit, offset int, unreadOnly bool) ([]*Notification, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM notifications WHERE tenant_id = $1`
	if unreadOnly {
		countQuery += ` AND read = FALSE`
	}
	if err := r.db.QueryRowContext(ctx, countQuery, tenantID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := `
		SELECT id, tenant_id, related_id, type, message, icon, icon_class, link, read, created_at
		FROM notifications
		WHERE tenant_id = $1
	`
	if unreadOnly {
		query += ` AND read = FALSE`
	}
	query += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*Notification
	for rows.Next() {
		n := &Notification{}
		if err := rows.Scan(
			&n.ID,
			&n.TenantID,
			&n.RelatedID,
			&n.Type,
			&n.Message,
			&n.Icon,
			&n.IconClass,
			&n.Link,
			&n.Read,
			&n.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read notifications: %w", err)
	}

	return notifications, total, nil
}

// MarkRead marks the given notifications as read
func (r *Repository) MarkRead(ctx context.Context, tenantID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE notifications SET read = TRUE WHERE tenant_id = $1 AND id = ANY($2)`
	if _, err := r.db.ExecContext(ctx, query, tenantID, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

// MarkAllRead marks every notification for the tenant as read
func (r *Repository) MarkAllRead(ctx context.Context, tenantID string) error {
	query := `UPDATE notifications SET read = TRUE WHERE tenant_id = $1 AND read = FALSE`
	if _, err := r.db.ExecContext(ctx, query, tenantID); err != nil {
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}
	return nil
}

// Delete removes a notification, which re-arms its (related_id, type) pair
// for future scans.
func (r *Repository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	query := `DELETE FROM notifications WHERE tenant_id = $1 AND id = $2`
	result, err := r.db.ExecContext(ctx, query, tenantID, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete notification: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read notification delete result: %w", err)
	}
	return affected > 0, nil
}

// UnreadCount returns the count of unread notifications for a tenant
func (r *Repository) UnreadCount(ctx context.Context, tenantID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE tenant_id = $1 AND read = FALSE`
	if err := r.db.QueryRowContext(ctx, query, tenantID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
