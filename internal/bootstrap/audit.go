package bootstrap

import "context"

// AuditLog is an operational audit entry, separate from request-scoped
// application logs.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
