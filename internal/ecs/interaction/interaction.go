// Package interaction implements a carrier component that owns an
// Effect and a single Interact operation applying that effect from one
// entity to another, synchronously within the caller's tick.
package interaction

import "github.com/matjam/sword/internal/ecs"

// Effect applies a gameplay effect from interactor to interacted (if
// present). It is free to mutate either entity; the frame pipeline's
// ordering guarantees mean any watcher fan-out from those mutations is only
// visible to reactive systems after the caller's current dispatch
// finishes, never interleaved with it.
type Effect interface {
	Apply(w *ecs.World, interactor *ecs.Entity, interacted *ecs.Entity)
}

// EffectFunc adapts a plain function to the Effect interface.
type EffectFunc func(w *ecs.World, interactor *ecs.Entity, interacted *ecs.Entity)

// Apply satisfies Effect.
func (f EffectFunc) Apply(w *ecs.World, interactor *ecs.Entity, interacted *ecs.Entity) {
	f(w, interactor, interacted)
}

// Component is the one carrier component this package defines: it owns
// an Effect and aliases onto the Registry's single reserved interactive
// id no matter how many distinct Effects a host attaches it with.
// Embedding ecs.InteractiveCarrierMarker lets this type satisfy
// ecs.InteractiveCarrier without this package reaching into ecs's
// unexported method namespace.
type Component struct {
	ecs.InteractiveCarrierMarker

	Effect Effect
}

// New wraps effect in an interactive carrier component.
func New(effect Effect) *Component {
	return &Component{Effect: effect}
}

// ComponentName satisfies ecs.Component.
func (*Component) ComponentName() string { return "Interactive" }

// Interact applies the component's Effect from interactor to
// interacted. interacted is optional: some effects (self-buffs,
// environment triggers) have no second party. Interact runs
// synchronously within the caller's tick.
func (c *Component) Interact(w *ecs.World, interactor *ecs.Entity, interacted *ecs.Entity) {
	if c.Effect == nil {
		return
	}
	c.Effect.Apply(w, interactor, interacted)
}
