package ecs

import (
	"log/slog"

	mapset "github.com/deckarep/golang-set/v2"
)

// Context is the per-filter-signature index: it
// maintains the matching active-entity set and the matching-but-
// deactivated set, a cached snapshot of the former, and routes
// component-level events to the ComponentWatchers registered on it.
type Context struct {
	id     ContextID
	filter Filter
	world  *World

	active       mapset.Set[EntityID]
	deactivated  mapset.Set[EntityID]
	snapshot     []EntityID
	snapshotDone bool

	tracking map[EntityID]*entityTracking

	watchers map[ComponentID]*ComponentWatcher
}

// entityTracking holds the subscription handles and matching state for
// one entity known to a Context.
type entityTracking struct {
	matching    bool
	alwaysSubs  []func()
	matchedSubs []func()
}

func newContext(world *World, id ContextID, filter Filter) *Context {
	return &Context{
		id:       id,
		filter:   filter,
		world:    world,
		active:   mapset.NewThreadUnsafeSet[EntityID](),
		deactivated: mapset.NewThreadUnsafeSet[EntityID](),
		tracking: make(map[EntityID]*entityTracking),
		watchers: make(map[ComponentID]*ComponentWatcher),
	}
}

// ID returns the context's canonical identity.
func (c *Context) ID() ContextID { return c.id }

// Len returns the number of entities currently in the active matching
// set, the entity count a TimingSink observation reports for a system
// built around this Context. Cheaper than len(Snapshot()), which also
// copies.
func (c *Context) Len() int { return c.active.Cardinality() }

// WatcherFor returns (creating if necessary) the ComponentWatcher bound
// to component id on this context.
func (c *Context) WatcherFor(component ComponentID) *ComponentWatcher {
	if w, ok := c.watchers[component]; ok {
		return w
	}
	w := newComponentWatcher(c.world, c.id, component)
	c.watchers[component] = w
	return w
}

// Snapshot returns the immutable (copy-on-read) set of currently active
// matching entity ids. The cache is invalidated lazily on any mutation
// to the active set.
func (c *Context) Snapshot() []EntityID {
	if !c.snapshotDone {
		c.snapshot = c.active.ToSlice()
		c.snapshotDone = true
	}
	out := make([]EntityID, len(c.snapshot))
	copy(out, c.snapshot)
	return out
}

func (c *Context) invalidateSnapshot() {
	c.snapshotDone = false
}

// FilterEntity introduces e to the Context: it always subscribes to the
// entity's component add/remove events (to detect future matching), and
// if e currently matches, additionally attaches the matched-only
// subscriptions, inserts e into the active or deactivated set, and
// synthesizes one component-added notification per component id already
// present on e for every watcher already registered on this context —
// so a reactive system sees a uniform stream regardless of whether the
// match pre-existed its own registration.
func (c *Context) FilterEntity(e *Entity) {
	if _, ok := c.tracking[e.ID()]; ok {
		return
	}

	t := &entityTracking{}
	c.tracking[e.ID()] = t

	t.alwaysSubs = append(t.alwaysSubs, e.Subscribe(EntityEventKindComponentAdded, func(ev EntityEvent) {
		c.onComponentChange(e, NotificationKindAdded, ev.Component, ev.CausedByDestroy)
	}))
	t.alwaysSubs = append(t.alwaysSubs, e.Subscribe(EntityEventKindComponentRemoved, func(ev EntityEvent) {
		c.onComponentChange(e, NotificationKindRemoved, ev.Component, ev.CausedByDestroy)
	}))

	if c.filter.IsNever() || e.Destroyed() || !c.filter.Matches(e) {
		return
	}

	t.matching = true
	c.attachMatchedSubs(e, t)
	c.insertIntoSets(e)

	for _, id := range e.ComponentIDs() {
		if w, ok := c.watchers[id]; ok {
			w.queue(NotificationKindAdded, e)
		}
	}
}

// onComponentChange is the always-on handler for component_added and
// component_removed, wired for every entity ever filtered into this
// Context (whether or not it currently matches). It determines whether
// the match state changed and attaches/detaches the
// matched-only subscriptions and moves the entity between the tracked
// sets. It also queues a notification on the ComponentWatcher bound to
// the triggering component id, if any: removed when the entity stops
// matching, added when it starts matching, and the event's own kind when
// it matches both before and after. Nothing is queued when it matches
// neither before nor after.
func (c *Context) onComponentChange(e *Entity, kind NotificationKind, component ComponentID, causedByDestroy bool) {
	t, ok := c.tracking[e.ID()]
	if !ok {
		return
	}

	wasMatching := t.matching
	nowMatching := !e.Destroyed() && !c.filter.IsNever() && c.filter.Matches(e)

	switch {
	case wasMatching && !nowMatching:
		if w, ok := c.watchers[component]; ok {
			w.queue(NotificationKindRemoved, e)
		}
		c.detachMatchedSubs(t)
		c.removeFromSets(e)
		t.matching = false

	case !wasMatching && nowMatching:
		t.matching = true
		c.attachMatchedSubs(e, t)
		c.insertIntoSets(e)
		if w, ok := c.watchers[component]; ok {
			w.queue(NotificationKindAdded, e)
		}

	case wasMatching && nowMatching:
		if w, ok := c.watchers[component]; ok {
			w.queue(kind, e)
		}
	}
}

// attachMatchedSubs subscribes the matched-only events: before-removing
// and before-modifying are logged only (the ComponentWatcher notification
// vocabulary has no "before" kind); modified forwards to the bound
// watcher; message-sent is logged only (reactive message consumption is
// polled directly off Entity.Messages by message-reactive systems, not
// routed through ComponentWatcher); activated/deactivated forward
// enabled/disabled to every watcher registered on this context, since
// activation is not specific to one component.
func (c *Context) attachMatchedSubs(e *Entity, t *entityTracking) {
	t.matchedSubs = append(t.matchedSubs, e.Subscribe(EntityEventKindComponentBeforeRemoving, func(ev EntityEvent) {
		slog.Debug("context observed before-removing", "context", c.id, "entity", e.ID(), "component", ev.Component)
	}))
	t.matchedSubs = append(t.matchedSubs, e.Subscribe(EntityEventKindComponentBeforeModifying, func(ev EntityEvent) {
		slog.Debug("context observed before-modifying", "context", c.id, "entity", e.ID(), "component", ev.Component)
	}))
	t.matchedSubs = append(t.matchedSubs, e.Subscribe(EntityEventKindComponentModified, func(ev EntityEvent) {
		if w, ok := c.watchers[ev.Component]; ok {
			w.queue(NotificationKindModified, e)
		}
	}))
	t.matchedSubs = append(t.matchedSubs, e.Subscribe(EntityEventKindMessageSent, func(ev EntityEvent) {
		slog.Debug("context observed message", "context", c.id, "entity", e.ID())
	}))
	t.matchedSubs = append(t.matchedSubs, e.Subscribe(EntityEventKindActivated, func(ev EntityEvent) {
		if c.deactivated.Contains(e.ID()) {
			c.deactivated.Remove(e.ID())
			c.active.Add(e.ID())
			c.invalidateSnapshot()
		}
		for _, w := range c.watchers {
			w.queue(NotificationKindEnabled, e)
		}
	}))
	t.matchedSubs = append(t.matchedSubs, e.Subscribe(EntityEventKindDeactivated, func(ev EntityEvent) {
		// A deactivating entity that still matches the filter transfers
		// from the active set to the deactivated set rather than leaving
		// the context.
		if c.active.Contains(e.ID()) {
			c.active.Remove(e.ID())
			c.deactivated.Add(e.ID())
			c.invalidateSnapshot()
		}
		for _, w := range c.watchers {
			// Cancellation (erase a pending "added" instead of recording
			// "disabled") happens inside queue; see watcher.go.
			w.queue(NotificationKindDisabled, e)
		}
	}))
}

func (c *Context) detachMatchedSubs(t *entityTracking) {
	for _, unsub := range t.matchedSubs {
		unsub()
	}
	t.matchedSubs = nil
}

func (c *Context) insertIntoSets(e *Entity) {
	if e.Active() {
		c.active.Add(e.ID())
	} else {
		c.deactivated.Add(e.ID())
	}
	c.invalidateSnapshot()
}

func (c *Context) removeFromSets(e *Entity) {
	c.active.Remove(e.ID())
	c.deactivated.Remove(e.ID())
	c.invalidateSnapshot()
}

// Contains reports whether id is currently in the active matching set.
func (c *Context) Contains(id EntityID) bool {
	return c.active.Contains(id)
}

// stopWatching tears down every subscription held for e and forgets it,
// called once an entity is fully reclaimed by the World.
func (c *Context) stopWatching(e *Entity) {
	t, ok := c.tracking[e.ID()]
	if !ok {
		return
	}
	c.detachMatchedSubs(t)
	for _, unsub := range t.alwaysSubs {
		unsub()
	}
	c.removeFromSets(e)
	delete(c.tracking, e.ID())
}
