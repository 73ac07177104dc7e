package notification

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// Store is the persistence contract the service and the monitoring engine
// depend on. *Repository is the Postgres implementation.
type Store interface {
	Exists(ctx context.Context, tenantID, relatedID string, typ Type) (bool, error)
	Create(ctx context.Context, tenantID string, n *Notification) (bool, error)
	ListByTenant(ctx context.Context, tenantID string, limit, offset int, unreadOnly bool) ([]*Notification, int, error)
	MarkRead(ctx context.Context, tenantID string, ids []string) error
	MarkAllRead(ctx context.Context, tenantID string) error
	Delete(ctx context.Context, tenantID, id string) (bool, error)
	UnreadCount(ctx context.Context, tenantID string) (int, error)
}

// Service handles notification business logic
type Service struct {
	store Store
}

// NewService creates a new notification service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List retrieves notifications for a tenant, newest first
func (s *Service) List(ctx context.Context, tenantID string, page, perPage int, unreadOnly bool) ([]*Notification, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.store.ListByTenant(ctx, tenantID, perPage, offset, unreadOnly)
}

// MarkRead marks the given notifications as read
func (s *Service) MarkRead(ctx context.Context, tenantID string, ids []string) error {
	return s.store.MarkRead(ctx, tenantID, ids)
}

// MarkAllRead marks all notifications as read for a tenant
func (s *Service) MarkAllRead(ctx context.Context, tenantID string) error {
	return s.store.MarkAllRead(ctx, tenantID)
}

// Delete removes a notification. Deleting is how a tenant re-arms the
// alert for that obligation and category.
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	deleted, err := s.store.Delete(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotificationNotFound
	}
	return nil
}

// UnreadCount returns the count of unread notifications
func (s *Service) UnreadCount(ctx context.Context, tenantID string) (int, error) {
	return s.store.UnreadCount(ctx, tenantID)
}
