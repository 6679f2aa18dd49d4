// Package system holds the demo systems cmd wires up: an
// all-of filter consumer (Movement), a render-variant consumer
// (Renderer), and a reactive-variant consumer (HealthLogger). Each
// exercises one leg of the filter/notification machinery the core
// implements, grounded on the teacher's internal/ecs/system package.
package system

import (
	"reflect"
	"time"

	"github.com/matjam/sword/internal/ecs"
	"github.com/matjam/sword/internal/ecs/component"
)

var (
	transformType = reflect.TypeOf((*component.Transform)(nil))
	moveType      = reflect.TypeOf((*component.Move)(nil))
)

// Movement applies each matching entity's pending Move onto its
// Transform, then resets Move to zero. Grounded on the teacher's
// internal/ecs/system/movement.go.
type Movement struct {
	world *ecs.World
	ctx   *ecs.Context

	transformID ecs.ComponentID
	moveID      ecs.ComponentID
}

// NewMovement builds the Context matching any entity with both a
// Transform and a Move component.
func NewMovement(w *ecs.World) *Movement {
	ctx := w.Context([]ecs.FilterClauseDecl{
		{Kind: ecs.ClauseKindAllOf, Access: ecs.AccessModeWrite, Types: []reflect.Type{transformType, moveType}},
	})
	return &Movement{
		world:       w,
		ctx:         ctx,
		transformID: w.Registry().IDOfType(transformType),
		moveID:      w.Registry().IDOfType(moveType),
	}
}

// SystemName satisfies ecs.System.
func (*Movement) SystemName() string { return "movement" }

// ContextEntityCount satisfies ecs.ContextSized, so the World's timing
// sink reports how many entities Movement visited this frame.
func (sys *Movement) ContextEntityCount() int { return sys.ctx.Len() }

// Update applies pending movement for every matching entity.
func (sys *Movement) Update(w *ecs.World, dt time.Duration) {
	for _, id := range sys.ctx.Snapshot() {
		e, ok := w.Entity(id)
		if !ok {
			continue
		}

		transformC, ok := e.Get(sys.transformID)
		if !ok {
			continue
		}
		moveC, ok := e.Get(sys.moveID)
		if !ok {
			continue
		}

		transform := transformC.(*component.Transform)
		move := moveC.(*component.Move)

		if move.X == 0 && move.Y == 0 {
			continue
		}

		transform.X += move.X
		transform.Y += move.Y
		move.X, move.Y = 0, 0
	}
}

var (
	_ ecs.Updater      = (*Movement)(nil)
	_ ecs.ContextSized = (*Movement)(nil)
)
