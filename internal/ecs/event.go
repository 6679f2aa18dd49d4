package ecs

//go:generate go-enum --marshal

// EntityEventKind identifies which of an entity's lifecycle events a
// handler is being notified about.
//
// ENUM(component_added, component_before_removing, component_removed, component_before_modifying, component_modified, message_sent, activated, deactivated)
type EntityEventKind uint8

// EntityEvent is the payload delivered to entity event handlers and, by
// extension, to Context component-level fan-out. Component is the zero
// value (InvalidComponentID is not defined; callers check Kind) for
// Activated/Deactivated/MessageSent.
type EntityEvent struct {
	Kind            EntityEventKind
	Entity          *Entity
	Component       ComponentID
	CausedByDestroy bool
	Msg             Message
}

// EntityEventHandler receives entity lifecycle notifications.
type EntityEventHandler func(EntityEvent)

// eventBus is a small per-entity pub/sub registry. Handler sets are
// snapshotted (copied to a new slice) before each dispatch so that a
// handler may safely subscribe or unsubscribe from within its own
// callback: subscribing or unsubscribing from inside a handler must be
// safe.
type eventBus struct {
	nextToken int
	handlers  map[EntityEventKind]map[int]EntityEventHandler
}

func newEventBus() *eventBus {
	return &eventBus{
		handlers: make(map[EntityEventKind]map[int]EntityEventHandler),
	}
}

// subscription is an opaque handle returned by Subscribe, used to
// Unsubscribe later.
type subscription struct {
	kind  EntityEventKind
	token int
}

func (b *eventBus) subscribe(kind EntityEventKind, h EntityEventHandler) subscription {
	b.nextToken++
	token := b.nextToken
	set, ok := b.handlers[kind]
	if !ok {
		set = make(map[int]EntityEventHandler)
		b.handlers[kind] = set
	}
	set[token] = h
	return subscription{kind: kind, token: token}
}

func (b *eventBus) unsubscribe(s subscription) {
	if set, ok := b.handlers[s.kind]; ok {
		delete(set, s.token)
	}
}

// dispatch fans ev out to every handler subscribed to ev.Kind at the
// moment dispatch is called. The handler set is copied first so that
// handlers may mutate subscriptions without corrupting this dispatch.
func (b *eventBus) dispatch(ev EntityEvent) {
	set, ok := b.handlers[ev.Kind]
	if !ok || len(set) == 0 {
		return
	}

	snapshot := make([]EntityEventHandler, 0, len(set))
	for _, h := range set {
		snapshot = append(snapshot, h)
	}

	for _, h := range snapshot {
		h(ev)
	}
}

// clear removes every subscription. Called once an entity is destroyed
// and has finished firing its final removal events.
func (b *eventBus) clear() {
	b.handlers = make(map[EntityEventKind]map[int]EntityEventHandler)
}
