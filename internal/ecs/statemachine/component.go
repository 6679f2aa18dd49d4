package statemachine

import (
	"time"

	"github.com/matjam/sword/internal/ecs"
)

// Component is the one carrier component wrapping a Routine, aliasing
// onto the Registry's single reserved state-machine id no matter how
// many distinct Funcs a host constructs one with.
// Embedding ecs.StateMachineCarrierMarker is what lets this type satisfy
// ecs.StateMachineCarrier without this package reaching into ecs's
// unexported method namespace.
type Component struct {
	ecs.StateMachineCarrierMarker

	routine *Routine
	owner   ecs.EntityID
	world   *ecs.World

	name         string
	subs         map[int]func(name string)
	nextSubToken int

	unsubDestroy func()
}

// New wraps fn in a state-machine carrier component. The Routine is not
// started until the owning entity's first Tick.
func New(fn Func) *Component {
	return &Component{routine: NewRoutine(fn)}
}

// ComponentName satisfies ecs.Component.
func (c *Component) ComponentName() string { return "StateMachine" }

// Initialize binds the component to its owning World and Entity, called
// once by the driving System the first time it sees this component on
// an entity. It also subscribes OnDestroyed to the owning entity's own
// component-removed event for this component's id, so a routine is
// aborted when its carrier leaves the entity via Entity.Destroy or
// Entity.Remove. Entity.Replace fires no component-removed event, so
// replacing the carrier through Replace does not abort this routine.
func (c *Component) Initialize(w *ecs.World, owner ecs.EntityID) {
	c.world = w
	c.owner = owner
	c.routine.bindOwner(owner)
	c.name = c.routine.CurrentName()

	if e, ok := w.Entity(owner); ok {
		id := w.Registry().IDOf(c)
		c.unsubDestroy = e.Subscribe(ecs.EntityEventKindComponentRemoved, func(ev ecs.EntityEvent) {
			if ev.Component == id {
				c.OnDestroyed()
			}
		})
	}
}

// Tick resumes the underlying Routine by dt and notifies subscribers if
// the routine's externally-visible name changed. It is a no-op once the
// Routine has stopped.
func (c *Component) Tick(dt time.Duration) {
	if c.routine.Done() {
		return
	}
	c.routine.Tick(c.world, dt)

	if name := c.routine.CurrentName(); name != c.name {
		c.name = name
		c.notify()
	}
}

// OnDestroyed releases the underlying Routine, aborting it if it has
// not already finished, and tears down the component-removed
// subscription Initialize installed.
func (c *Component) OnDestroyed() {
	c.routine.Abort()
	if c.unsubDestroy != nil {
		c.unsubDestroy()
		c.unsubDestroy = nil
	}
}

// Name returns the current externally-visible state name (the tag of
// the Routine's current wait directive).
func (c *Component) Name() string { return c.name }

// Done reports whether the underlying Routine has stopped.
func (c *Component) Done() bool { return c.routine.Done() }

// Subscribe registers callback to be notified whenever Name changes. It
// returns an unsubscribe function.
func (c *Component) Subscribe(callback func(name string)) func() {
	if c.subs == nil {
		c.subs = make(map[int]func(name string))
	}
	token := c.nextSubToken
	c.nextSubToken++
	c.subs[token] = callback
	return func() { delete(c.subs, token) }
}

func (c *Component) notify() {
	for _, cb := range c.subs {
		cb(c.name)
	}
}
