package statemachine

import (
	"reflect"
	"time"

	"github.com/matjam/sword/internal/ecs"
)

var componentType = reflect.TypeOf((*Component)(nil))

// System is the update-phase driver for every entity carrying a
// statemachine Component: each Tick it resumes each matching routine by
// the frame's dt, initializing newly-seen components on first sight.
// Grounded on the teacher's system/movement.go shape (a world-held
// Context walked once per Update), generalized to the carrier-aliasing
// component this package owns.
type System struct {
	world       *ecs.World
	ctx         *ecs.Context
	componentID ecs.ComponentID

	initialized map[ecs.EntityID]bool
}

// NewSystem builds the Context filtering for any entity carrying a
// statemachine Component (all-of, since a carrier is either present or
// absent, never optional-and-ignored).
func NewSystem(w *ecs.World) *System {
	ctx := w.Context([]ecs.FilterClauseDecl{
		{Kind: ecs.ClauseKindAllOf, Access: ecs.AccessModeWrite, Types: []reflect.Type{componentType}},
	})
	return &System{
		world:       w,
		ctx:         ctx,
		componentID: w.Registry().IDOfType(componentType),
		initialized: make(map[ecs.EntityID]bool),
	}
}

// SystemName satisfies ecs.System.
func (s *System) SystemName() string { return "statemachine" }

// ContextEntityCount satisfies ecs.ContextSized, so the World's timing
// sink reports how many routines this System ticked this frame.
func (s *System) ContextEntityCount() int { return s.ctx.Len() }

// Update resumes every matching entity's Routine by dt.
func (s *System) Update(w *ecs.World, dt time.Duration) {
	for _, id := range s.ctx.Snapshot() {
		e, ok := w.Entity(id)
		if !ok {
			continue
		}
		comp, ok := e.Get(s.componentID)
		if !ok {
			continue
		}
		sm, ok := comp.(*Component)
		if !ok {
			continue
		}

		if !s.initialized[id] {
			sm.Initialize(w, id)
			s.initialized[id] = true
		}

		sm.Tick(dt)
	}
}

var (
	_ ecs.Updater      = (*System)(nil)
	_ ecs.ContextSized = (*System)(nil)
)
