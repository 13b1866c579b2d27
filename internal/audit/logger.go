package audit

import (
	"context"
	"log/slog"
)

type Event struct {
	ActorID  *uint
	Action   string
	Entity   string
	EntityID uint
	Metadata map[string]any
}

// Logger writes one structured record per successful mutation, inline with
// the request.
type Logger struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Logger {
	if log == nil {
		log = slog.Default()
	}
	return &Logger{log: log.With("component", "audit")}
}

func (l *Logger) Record(ctx context.Context, ev Event) {
	if l == nil {
		return
	}

	attrs := []any{
		"action", ev.Action,
		"entity", ev.Entity,
		"entity_id", ev.EntityID,
	}
	if ev.ActorID != nil {
		attrs = append(attrs, "actor_id", *ev.ActorID)
	}
	if len(ev.Metadata) > 0 {
		attrs = append(attrs, "metadata", ev.Metadata)
	}

	l.log.InfoContext(ctx, "audit", attrs...)
}
