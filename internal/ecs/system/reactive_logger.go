package system

import (
	"log/slog"
	"reflect"

	"github.com/matjam/sword/internal/ecs"
	"github.com/matjam/sword/internal/ecs/component"
)

var healthType = reflect.TypeOf((*component.Health)(nil))

// HealthLogger is a reactive system: it never polls, it only consumes
// the batched notifications ComponentWatcher drains once per frame for
// the Health component.
type HealthLogger struct{}

// SystemName satisfies ecs.System.
func (*HealthLogger) SystemName() string { return "health-logger" }

// ReactiveFilter matches any entity carrying a Health component.
func (*HealthLogger) ReactiveFilter() []ecs.FilterClauseDecl {
	return []ecs.FilterClauseDecl{
		{Kind: ecs.ClauseKindAllOf, Access: ecs.AccessModeRead, Types: []reflect.Type{healthType}},
	}
}

// ReactiveComponent names Health as the component this system's
// ComponentWatcher is keyed on.
func (*HealthLogger) ReactiveComponent() reflect.Type { return healthType }

// React logs each notification in the deterministic kind/insertion order
// the drain delivers them in.
func (*HealthLogger) React(w *ecs.World, notifications []ecs.Notification) {
	for _, n := range notifications {
		slog.Info("health notification", "kind", n.Kind, "entity", n.Entity.ID(), "frame", w.Frame())
	}
}

var _ ecs.ReactiveSystem = (*HealthLogger)(nil)
