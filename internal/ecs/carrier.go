package ecs

import "reflect"

// StateMachineCarrier is implemented by the one component type that
// wraps a state-machine routine. The registry aliases
// every concrete type implementing this interface onto the same
// reserved ComponentID, which is what lets a context filter for "any
// state machine" without enumerating concrete types.
type StateMachineCarrier interface {
	Component

	// stateMachineCarrier is an unexported marker method. Go scopes
	// unexported method identifiers to the declaring package, so a type
	// declared in another package cannot implement this method directly
	// — it can only acquire it by embedding StateMachineCarrierMarker.
	// That closes the carrier-interface aliasing to exactly the one
	// framework-known kind it is meant to describe, while still
	// letting the sibling statemachine package provide the concrete
	// component type.
	stateMachineCarrier()
}

// StateMachineCarrierMarker is embedded by the statemachine package's
// carrier component to satisfy StateMachineCarrier's sealed marker
// method. This is the standard Go "sealed interface" idiom: embedding,
// not re-declaring, the unexported method.
type StateMachineCarrierMarker struct{}

func (StateMachineCarrierMarker) stateMachineCarrier() {}

// InteractiveCarrier is implemented by the one component type that
// wraps an interaction effect.
type InteractiveCarrier interface {
	Component

	interactiveCarrier()
}

// InteractiveCarrierMarker is embedded by the interaction package's
// carrier component to satisfy InteractiveCarrier's sealed marker
// method, by the same embedding idiom as StateMachineCarrierMarker.
type InteractiveCarrierMarker struct{}

func (InteractiveCarrierMarker) interactiveCarrier() {}

var (
	stateMachineCarrierType = reflect.TypeOf((*StateMachineCarrier)(nil)).Elem()
	interactiveCarrierType  = reflect.TypeOf((*InteractiveCarrier)(nil)).Elem()
)

// reservedCarrierKinds lists, in registration order, the framework-known
// carrier interfaces whose implementations are aliased onto one id each.
// The order here fixes the low end of the id space: see registry.go.
var reservedCarrierKinds = []struct {
	name string
	kind reflect.Type
}{
	{name: "state-machine", kind: stateMachineCarrierType},
	{name: "interactive", kind: interactiveCarrierType},
}
