package ecs

import (
	"log/slog"
	"sort"
)

// Entity is a mutable bag of components keyed by component id, the
// owner of its own change events and activation state. All public
// operations fail fast (panic with an InvariantViolation) once Destroyed
// is true, except the read-only observations (Has, Get, Messages,
// HasMessage, ComponentIDs) and Subscribe; Remove and Replace also skip
// the check when called as part of destruction.
type Entity struct {
	id    EntityID
	world *World

	components map[ComponentID]Component

	active    bool
	destroyed bool

	messages []pendingMessage

	bus *eventBus
}

func newEntity(world *World, id EntityID) *Entity {
	return &Entity{
		id:         id,
		world:      world,
		components: make(map[ComponentID]Component),
		active:     true,
		bus:        newEventBus(),
	}
}

// ID returns the entity's stable identifier.
func (e *Entity) ID() EntityID { return e.id }

// Active reports whether the entity is currently activated.
func (e *Entity) Active() bool { return e.active }

// Destroyed reports whether Destroy has been called. Once true it never
// reverts to false.
func (e *Entity) Destroyed() bool { return e.destroyed }

func (e *Entity) failIfDestroyed(op string) {
	if e.destroyed {
		panicInvariant("operate-on-destroyed-entity", e.id, op)
	}
}

// Has reports whether e carries a component registered under id.
func (e *Entity) Has(id ComponentID) bool {
	_, ok := e.components[id]
	return ok
}

// Get returns the component registered under id, if present.
func (e *Entity) Get(id ComponentID) (Component, bool) {
	c, ok := e.components[id]
	return c, ok
}

// Add inserts c under the id the entity's World registry assigns to its
// concrete type. It panics if a component is already present for that
// id — use Replace for upsert semantics. Fires component_added.
func (e *Entity) Add(c Component) {
	e.failIfDestroyed("add")

	id := e.world.registry.IDOf(c)
	if _, exists := e.components[id]; exists {
		panicInvariant("double-add-component", e.id, c.ComponentName())
	}

	e.components[id] = c
	slog.Info("component added", "entity", e.id, "component", c.ComponentName(), "id", id)

	e.bus.dispatch(EntityEvent{Kind: EntityEventKindComponentAdded, Entity: e, Component: id})
}

// Remove removes the component registered under id, if present. It
// fires component_before_removing, performs the removal, then fires
// component_removed; it is a no-op if the component is not present.
// causedByDestroy is threaded through to the before/after events so
// removal-watching systems can distinguish an ordinary removal from one
// that is part of Destroy.
func (e *Entity) Remove(id ComponentID, causedByDestroy bool) {
	if !causedByDestroy {
		e.failIfDestroyed("remove")
	}

	c, ok := e.components[id]
	if !ok {
		return
	}

	e.bus.dispatch(EntityEvent{Kind: EntityEventKindComponentBeforeRemoving, Entity: e, Component: id, CausedByDestroy: causedByDestroy})

	delete(e.components, id)
	slog.Info("component removed", "entity", e.id, "component", c.ComponentName(), "id", id, "caused_by_destroy", causedByDestroy)

	e.bus.dispatch(EntityEvent{Kind: EntityEventKindComponentRemoved, Entity: e, Component: id, CausedByDestroy: causedByDestroy})
}

// replaceOptions configures Entity.Replace.
type replaceOptions struct {
	causedByDestroy bool
	forceKeep       bool
}

// ReplaceOption configures a call to Entity.Replace.
type ReplaceOption func(*replaceOptions)

// CausedByDestroy marks a Replace call as part of entity destruction.
func CausedByDestroy() ReplaceOption {
	return func(o *replaceOptions) { o.causedByDestroy = true }
}

// ForceKeep overrides the KeepOnReplace marker, forcing every supplied
// component to be preserved if already present (used by bulk copy/clone
// operations that should never drop existing state).
func ForceKeep() ReplaceOption {
	return func(o *replaceOptions) { o.forceKeep = true }
}

// Replace is the bulk upsert operation: for each supplied component, it
// replaces the existing value if present and different, or adds it if
// absent. A component whose type implements KeepOnReplace (or when
// ForceKeep is passed) is preserved rather than overwritten if already
// present. Fires component_before_modifying/component_modified for each
// id that actually changed.
func (e *Entity) Replace(components []Component, opts ...ReplaceOption) {
	var o replaceOptions
	for _, fn := range opts {
		fn(&o)
	}

	if !o.causedByDestroy {
		e.failIfDestroyed("replace")
	}

	for _, c := range components {
		id := e.world.registry.IDOf(c)

		existing, has := e.components[id]
		if has {
			if o.forceKeep {
				continue
			}
			if keep, ok := existing.(KeepOnReplace); ok && keep.KeepOnReplace() {
				continue
			}
			if existing == c {
				continue
			}
		}

		e.bus.dispatch(EntityEvent{Kind: EntityEventKindComponentBeforeModifying, Entity: e, Component: id, CausedByDestroy: o.causedByDestroy})

		e.components[id] = c

		e.bus.dispatch(EntityEvent{Kind: EntityEventKindComponentModified, Entity: e, Component: id, CausedByDestroy: o.causedByDestroy})
	}
}

// Touch fires component_before_modifying for a Modifiable component
// already attached to e. Call it immediately before mutating the
// component's fields in place.
func (e *Entity) Touch(id ComponentID) {
	e.failIfDestroyed("touch")
	if c, ok := e.components[id]; ok {
		if m, ok := c.(Modifiable); ok {
			m.touchModifiable()
		}
	}
	e.bus.dispatch(EntityEvent{Kind: EntityEventKindComponentBeforeModifying, Entity: e, Component: id})
}

// CommitModify fires component_modified for a Modifiable component after
// in-place mutation. Pair every Touch with exactly one CommitModify.
func (e *Entity) CommitModify(id ComponentID) {
	e.failIfDestroyed("commit-modify")
	if c, ok := e.components[id]; ok {
		if m, ok := c.(Modifiable); ok {
			m.modifiedModifiable()
		}
	}
	e.bus.dispatch(EntityEvent{Kind: EntityEventKindComponentModified, Entity: e, Component: id})
}

// Activate sets the active flag and fires "activated". Re-entrant calls
// (the entity is already active) are no-ops.
func (e *Entity) Activate() {
	e.failIfDestroyed("activate")
	if e.active {
		return
	}
	e.active = true
	slog.Info("entity activated", "entity", e.id)
	e.bus.dispatch(EntityEvent{Kind: EntityEventKindActivated, Entity: e})
}

// Deactivate clears the active flag and fires "deactivated". Re-entrant
// calls are no-ops.
func (e *Entity) Deactivate() {
	e.failIfDestroyed("deactivate")
	if !e.active {
		return
	}
	e.active = false
	slog.Info("entity deactivated", "entity", e.id)
	e.bus.dispatch(EntityEvent{Kind: EntityEventKindDeactivated, Entity: e})
}

// Destroy marks the entity destroyed, fires before_removing+removed for
// each component in descending registered-id order (a deterministic
// teardown order), then clears all subscriptions.
// It does not reclaim the entity from the World's table directly — the
// World always defers reclamation to end-of-frame, so any watcher still
// holding a pending notification for this entity keeps a valid reference.
func (e *Entity) Destroy() {
	e.failIfDestroyed("destroy")

	ids := make([]ComponentID, 0, len(e.components))
	for id := range e.components {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	e.destroyed = true
	e.active = false

	for _, id := range ids {
		e.Remove(id, true)
	}

	slog.Info("entity destroyed", "entity", e.id)
	e.bus.clear()
	e.world.scheduleReclaim(e.id)
}

// SendMessage records msg in the per-frame message bucket and fires
// message_sent. The message is visible to reactive systems and to any
// state machine waiting on its type for the remainder of the frame.
func (e *Entity) SendMessage(msg Message) {
	e.failIfDestroyed("send-message")
	e.messages = append(e.messages, pendingMessage{msg: msg})
	slog.Info("message sent", "entity", e.id, "message", msg.MessageName())
	e.bus.dispatch(EntityEvent{Kind: EntityEventKindMessageSent, Entity: e, Msg: msg})
}

// Subscribe registers h for every EntityEventKind it is interested in
// seeing for e. It returns a function; call it to stop receiving
// events. Safe to call from within a handler.
func (e *Entity) Subscribe(kind EntityEventKind, h EntityEventHandler) func() {
	s := e.bus.subscribe(kind, h)
	return func() { e.bus.unsubscribe(s) }
}

// ComponentIDs returns every component id currently attached to e, in no
// particular order.
func (e *Entity) ComponentIDs() []ComponentID {
	ids := make([]ComponentID, 0, len(e.components))
	for id := range e.components {
		ids = append(ids, id)
	}
	return ids
}
