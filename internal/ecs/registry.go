package ecs

import (
	"log/slog"
	"reflect"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// parentRelativeType is the reflect.Type of the ParentRelative marker
// interface, used by Register and IDOfType to mark the ids of component
// types that implement it without requiring them to register explicitly.
var parentRelativeType = reflect.TypeOf((*ParentRelative)(nil)).Elem()

// Registry is a process-local bijection between component/message Go
// types and small dense integer ids. The first len(reservedCarrierKinds)
// ids are reserved for framework-known carrier interfaces; every
// concrete type implementing one of those interfaces is aliased onto
// the matching reserved id instead of receiving a fresh one.
type Registry struct {
	mu sync.Mutex

	nextID ComponentID

	idByType   map[reflect.Type]ComponentID
	typeByID   map[ComponentID]reflect.Type // diagnostic only
	carrierIDs map[reflect.Type]ComponentID // reservedCarrierKinds[i].kind -> id

	relative mapset.Set[ComponentID]

	// static is the explicitly-registered table walked by ComponentsUnder;
	// it never contains dynamically discovered types.
	static []staticEntry
}

type staticEntry struct {
	typ reflect.Type
	id  ComponentID
}

// NewRegistry constructs an empty Registry and reserves one id per
// framework-known carrier interface, in the order reservedCarrierKinds
// lists them.
func NewRegistry() *Registry {
	r := &Registry{
		idByType:   make(map[reflect.Type]ComponentID),
		typeByID:   make(map[ComponentID]reflect.Type),
		carrierIDs: make(map[reflect.Type]ComponentID),
		relative:   mapset.NewThreadUnsafeSet[ComponentID](),
	}

	for _, carrier := range reservedCarrierKinds {
		id := r.nextID
		r.nextID++
		r.carrierIDs[carrier.kind] = id
		slog.Info("reserved carrier id", "id", id, "carrier", carrier.name)
	}

	return r
}

// Register explicitly adds a type to the static table consulted by
// ComponentsUnder. It is idempotent: registering the same type twice is
// a no-op beyond the first call. Explicit registration is how a host
// opts a type into interface-based discovery (e.g. "give me every
// registered Drawable"). It obtains the type's id through IDOf, so it
// assigns one if the type has none yet.
func (r *Registry) Register(sample Component) ComponentID {
	id := r.IDOf(sample)

	typ := reflect.TypeOf(sample)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.static {
		if e.typ == typ {
			return id
		}
	}
	r.static = append(r.static, staticEntry{typ: typ, id: id})

	if typ.Implements(parentRelativeType) {
		r.relative.Add(id)
	}

	return id
}

// IDOf looks up the id for sample's concrete type, assigning one lazily
// on first sight. If the type is not itself an interface value and
// implements a reserved carrier interface, the carrier's reserved id is
// returned and no new id is allocated — this is what collapses every
// state-machine component onto one id, and every interactive component
// onto another. IDOf is idempotent per type.
func (r *Registry) IDOf(sample Component) ComponentID {
	return r.IDOfType(reflect.TypeOf(sample))
}

// IDOfType is IDOf's type-only form: it allocates (or aliases) an id for
// typ without requiring a live Component value. Filter construction uses
// this to resolve component ids from declared types.
func (r *Registry) IDOfType(typ reflect.Type) ComponentID {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.idByType[typ]; ok {
		return id
	}

	for _, carrier := range reservedCarrierKinds {
		if typ.Implements(carrier.kind) {
			id := r.carrierIDs[carrier.kind]
			r.idByType[typ] = id
			slog.Info("aliased component to carrier", "type", typ, "carrier", carrier.name, "id", id)
			return id
		}
	}

	id := r.nextID
	r.nextID++
	r.idByType[typ] = id
	r.typeByID[id] = typ

	if typ.Implements(parentRelativeType) {
		r.relative.Add(id)
	}

	slog.Info("registered component", "type", typ, "id", id)
	return id
}

// IsRelative reports whether id is "parent-relative": its value is
// interpreted relative to a parent entity. Membership comes either from
// an explicit mark (not currently exposed beyond ParentRelative
// implementations) or from the component type implementing
// ParentRelative.
func (r *Registry) IsRelative(id ComponentID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.relative.Contains(id)
}

// TypeOf returns the Go type registered under id, for diagnostic
// builds. It returns (nil, false) for carrier ids, which are aliased
// from multiple concrete types and have no single canonical type.
func (r *Registry) TypeOf(id ComponentID) (reflect.Type, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.typeByID[id]
	return t, ok
}

// ComponentsUnder walks the statically registered table (never the
// dynamically discovered one) and returns every (type, id) pair whose
// type implements iface.
func (r *Registry) ComponentsUnder(iface reflect.Type) []StaticComponent {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []StaticComponent
	for _, e := range r.static {
		if e.typ.Implements(iface) {
			out = append(out, StaticComponent{Type: e.typ, ID: e.id})
		}
	}
	return out
}

// StaticComponent is one entry returned by ComponentsUnder.
type StaticComponent struct {
	Type reflect.Type
	ID   ComponentID
}
