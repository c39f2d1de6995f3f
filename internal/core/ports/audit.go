package ports

import (
	"context"

	"github.com/talenthub/recruiting-api/internal/core/domain"
)

// AuditSink accepts security audit events for asynchronous persistence.
// Record must never block the request path.
type AuditSink interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
}
