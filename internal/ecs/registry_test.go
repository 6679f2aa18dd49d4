package ecs

import (
	"reflect"
	"testing"
)

type fakeComponent struct{}

func (*fakeComponent) ComponentName() string { return "fake" }

type otherComponent struct{}

func (*otherComponent) ComponentName() string { return "other" }

type relativeComponent struct{}

func (*relativeComponent) ComponentName() string  { return "relative" }
func (*relativeComponent) ParentEntity() EntityID { return 7 }

type smOne struct{ StateMachineCarrierMarker }

func (*smOne) ComponentName() string { return "smOne" }

type smTwo struct{ StateMachineCarrierMarker }

func (*smTwo) ComponentName() string { return "smTwo" }

func TestRegistryIDOfIsIdempotent(t *testing.T) {
	r := NewRegistry()
	id1 := r.IDOf((*fakeComponent)(nil))
	id2 := r.IDOf((*fakeComponent)(nil))
	if id1 != id2 {
		t.Fatalf("expected same id across calls, got %d and %d", id1, id2)
	}

	otherID := r.IDOf((*otherComponent)(nil))
	if otherID == id1 {
		t.Fatalf("expected distinct types to get distinct ids")
	}
}

func TestRegistryCarrierAliasing(t *testing.T) {
	r := NewRegistry()

	id1 := r.IDOfType(reflect.TypeOf((*smOne)(nil)))
	id2 := r.IDOfType(reflect.TypeOf((*smTwo)(nil)))
	if id1 != id2 {
		t.Fatalf("expected distinct concrete types implementing StateMachineCarrier to alias onto one id, got %d and %d", id1, id2)
	}
}

func TestRegistryIsRelative(t *testing.T) {
	r := NewRegistry()
	id := r.Register((*relativeComponent)(nil))
	if !r.IsRelative(id) {
		t.Fatalf("expected ParentRelative-implementing type to be marked relative")
	}

	otherID := r.Register((*fakeComponent)(nil))
	if r.IsRelative(otherID) {
		t.Fatalf("expected non-ParentRelative type to not be marked relative")
	}
}
