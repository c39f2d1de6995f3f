package domain

import "time"

// AuditKind classifies a security-relevant outcome.
type AuditKind string

const (
	AuditUserRegistered       AuditKind = "user_registered"
	AuditLoginFailed          AuditKind = "login_failed"
	AuditForbiddenRoleAttempt AuditKind = "forbidden_role_attempt"
)

// AuditEvent records a security-relevant outcome for asynchronous
// persistence. Subject is the normalized identifier the event is about; it is
// also the ordering key for the audit dispatcher.
type AuditEvent struct {
	Kind      AuditKind `json:"kind"`
	Subject   string    `json:"subject"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
