package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talenthub/recruiting-api/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository persists security audit events. Write-only from the service
// side; the collection is read by operators, not by this API.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Kind      string `bson:"kind"`
	Subject   string `bson:"subject"`
	Email     string `bson:"email,omitempty"`
	Role      string `bson:"role,omitempty"`
	Reason    string `bson:"reason,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	doc := auditDoc{
		Kind:      string(event.Kind),
		Subject:   event.Subject,
		Email:     event.Email,
		Role:      event.Role,
		Reason:    event.Reason,
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
