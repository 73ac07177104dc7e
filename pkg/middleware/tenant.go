package middleware

import (
	"context"
	"net/http"

	"duewatch/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// TenantIDKey is the context key for the authenticated tenant ID
	TenantIDKey ContextKey = "tenant_id"

	// TenantHeader carries the tenant id on every API request. Token-based
	// auth lives in front of this service; by the time a request gets here
	// the gateway has already resolved the tenant.
	TenantHeader = "X-Tenant-ID"
)

// TenantMiddleware extracts the tenant ID from the request header and puts
// it on the context. Requests without a tenant are rejected: every store
// collection is keyed by tenant and there is no sensible default.
func TenantMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.Header.Get(TenantHeader)
		if tenantID == "" {
			response.Unauthorized(w, "X-Tenant-ID header required")
			return
		}

		ctx := context.WithValue(r.Context(), TenantIDKey, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTenantID extracts the tenant ID from the request context
func GetTenantID(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(TenantIDKey).(string)
	return tenantID, ok
}
