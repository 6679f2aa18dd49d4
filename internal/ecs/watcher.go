package ecs

import (
	"fmt"
	"sync"
)

//go:generate go-enum --marshal

// NotificationKind identifies which change a ComponentWatcher is
// batching for delivery to reactive systems.
//
// ENUM(added, modified, removed, enabled, disabled)
type NotificationKind uint8

// entityIDSet is an insertion-order-preserving set of EntityIDs.
// Entity insertion order within each kind bucket must be preserved —
// a mapset.Set (hash-ordered) cannot honor that, so each pending
// notification bucket is backed by this small hand-rolled type instead
// of the mapset.Set the rest of the package uses for unordered
// membership (Context's active/deactivated sets, Registry's
// parent-relative set). The cancellation rules in queue remove from the
// middle of the order as often as they append, so a slice-plus-index-map
// pair is simpler here than reaching for an ordered-set library the pack
// never imports.
type entityIDSet struct {
	order []EntityID
	pos   map[EntityID]int
}

func newEntityIDSet() *entityIDSet {
	return &entityIDSet{pos: make(map[EntityID]int)}
}

func (s *entityIDSet) contains(id EntityID) bool {
	_, ok := s.pos[id]
	return ok
}

func (s *entityIDSet) add(id EntityID) {
	if _, ok := s.pos[id]; ok {
		return
	}
	s.pos[id] = len(s.order)
	s.order = append(s.order, id)
}

func (s *entityIDSet) remove(id EntityID) {
	i, ok := s.pos[id]
	if !ok {
		return
	}
	s.order = append(s.order[:i], s.order[i+1:]...)
	delete(s.pos, id)
	for j := i; j < len(s.order); j++ {
		s.pos[s.order[j]] = j
	}
}

func (s *entityIDSet) len() int { return len(s.order) }

// ComponentWatcher is attached to a Context and keyed by one target
// component id. It batches per-frame notifications by NotificationKind,
// deduplicating per entity within a kind and applying the added/removed
// and added/disabled cancellation rules at enqueue time.
type ComponentWatcher struct {
	id        WatcherID
	contextID ContextID
	component ComponentID
	world     *World

	mu      sync.Mutex
	pending map[NotificationKind]*entityIDSet
	refs    map[EntityID]*Entity // entity references for the current pending batch
}

func newComponentWatcher(world *World, contextID ContextID, component ComponentID) *ComponentWatcher {
	return &ComponentWatcher{
		id:        watcherID(contextID, component),
		contextID: contextID,
		component: component,
		world:     world,
		pending:   make(map[NotificationKind]*entityIDSet),
		refs:      make(map[EntityID]*Entity),
	}
}

// watcherID derives the canonical identity of a (context, component)
// pair.
func watcherID(contextID ContextID, component ComponentID) WatcherID {
	return WatcherID(fmt.Sprintf("%s#%d", contextID, component))
}

// ID returns the watcher's (context, component) derived identity.
func (w *ComponentWatcher) ID() WatcherID { return w.id }

// queue is the single enqueue entry point used by Context's fan-out. It
// applies the cancellation rules before recording anything:
//
//   - On removed, if a pending added exists for the same entity, erase it
//     (the entity never appeared from the observer's perspective) and then
//     record removed.
//   - On disabled, if a pending added exists for the same entity, erase it
//     and do not record disabled.
//
// Deactivation cancelling a pending "added" intentionally does not also
// cancel a pending "modified" for the same entity — this asymmetry is
// is intentional, not a bug to fix.
func (w *ComponentWatcher) queue(kind NotificationKind, e *Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch kind {
	case NotificationKindRemoved:
		if added, ok := w.pending[NotificationKindAdded]; ok && added.contains(e.ID()) {
			added.remove(e.ID())
		}
		w.insertLocked(NotificationKindRemoved, e)
		return
	case NotificationKindDisabled:
		if added, ok := w.pending[NotificationKindAdded]; ok && added.contains(e.ID()) {
			added.remove(e.ID())
			return
		}
		w.insertLocked(NotificationKindDisabled, e)
		return
	default:
		w.insertLocked(kind, e)
	}
}

// insertLocked must be called with w.mu held. It appends e to kind's
// bucket if it is not already present. The World drains every
// registered watcher each frame in registration order (watcherOrder),
// so no separate pending-registration bookkeeping is needed here.
func (w *ComponentWatcher) insertLocked(kind NotificationKind, e *Entity) {
	set, ok := w.pending[kind]
	if !ok {
		set = newEntityIDSet()
		w.pending[kind] = set
	}
	if !set.contains(e.ID()) {
		set.add(e.ID())
		w.refs[e.ID()] = e
	}
}

// Notification is one (kind, entity) pair delivered by a drain.
type Notification struct {
	Kind   NotificationKind
	Entity *Entity
}

// popNotifications atomically returns every pending notification, in
// the deterministic kind order and insertion order within each kind,
// with destroyed entities filtered out of every bucket except Removed
// (removals of destroyed entities are always delivered), then clears
// the pending table.
func (w *ComponentWatcher) popNotifications() []Notification {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []Notification
	for _, kind := range notificationKindOrder {
		set, ok := w.pending[kind]
		if !ok {
			continue
		}
		for _, id := range set.order {
			e := w.refs[id]
			if e == nil {
				continue
			}
			if e.Destroyed() && kind != NotificationKindRemoved {
				continue
			}
			out = append(out, Notification{Kind: kind, Entity: e})
		}
	}

	w.pending = make(map[NotificationKind]*entityIDSet)
	w.refs = make(map[EntityID]*Entity)
	return out
}

// hasPending reports whether any kind bucket currently holds an entry.
func (w *ComponentWatcher) hasPending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, set := range w.pending {
		if set.len() > 0 {
			return true
		}
	}
	return false
}
