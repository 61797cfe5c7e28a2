package bootstrap

import "context"

type AuditLog struct {
	Action  string
	ActorID string
	Message string
	Meta    map[string]any
}

// AuditLogger records operational events that must outlive request logs
// (startup, shutdown, privileged actions).
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
