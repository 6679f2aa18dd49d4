package ecs

// Component is a plain data value attached to an entity, keyed by the
// ComponentID its concrete type is registered under. Components carry no
// identity of their own; identity belongs to the entity that holds them.
type Component interface {
	// ComponentName returns a human-readable name for diagnostic logging.
	// It does not participate in registry identity.
	ComponentName() string
}

// Modifiable is implemented by components whose internal mutation should
// raise before-modifying/modified events rather than requiring the
// caller to go through Entity.Replace. A system that mutates a
// Modifiable component in place calls Entity.Touch before changing it and
// Entity.CommitModify after, so the owning entity can fan out the pair of
// events.
type Modifiable interface {
	Component

	// touchModifiable and modifiedModifiable are unexported so that only
	// this package's Entity type can drive the before/after pair; callers
	// outside this package acquire them by embedding ModifiableMarker
	// rather than declaring the methods themselves, the same sealed-
	// interface idiom StateMachineCarrierMarker uses in carrier.go.
	touchModifiable()
	modifiedModifiable()
}

// ModifiableMarker is embedded by a component type defined outside this
// package to satisfy Modifiable. Its two methods are intentionally
// empty: Entity.Touch/CommitModify call them only to prove the
// interface assertion, then raise the actual before/after events
// themselves, keeping event ordering centralized in Entity.
type ModifiableMarker struct{}

func (ModifiableMarker) touchModifiable()    {}
func (ModifiableMarker) modifiedModifiable() {}

// KeepOnReplace is implemented by component types that Entity.Replace
// must preserve when present, even though the bulk replacement would
// otherwise overwrite them.
type KeepOnReplace interface {
	Component
	KeepOnReplace() bool
}

// ParentRelative is implemented by component types whose value is
// interpreted relative to a parent entity (for example, a transform
// component holding a local offset). The registry marks every id
// implementing this interface as "parent-relative".
type ParentRelative interface {
	Component
	ParentEntity() EntityID
}

// PersistField marks a field-level persistence hint on a component. No
// serializer is implemented by this module; the interface exists purely
// so a hypothetical external serializer has a stable boundary to query.
type PersistField interface {
	Component
	// ShouldPersist reports whether an external serializer should
	// include this component's data.
	ShouldPersist() bool
}

// Message is a component variant that is ephemeral: it is attached to an
// entity for exactly one frame and cleared at frame end by the World.
// Unlike a regular Component it carries no replace/keep semantics.
type Message interface {
	// MessageName returns a human-readable name for diagnostic logging.
	MessageName() string
}
