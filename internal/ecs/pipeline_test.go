package ecs

import (
	"testing"
	"time"
)

type fakeUpdateSystem struct {
	name     string
	requires []string
	ran      *[]string
}

func (f *fakeUpdateSystem) SystemName() string   { return f.name }
func (f *fakeUpdateSystem) Requires() []string   { return f.requires }
func (f *fakeUpdateSystem) Update(w *World, dt time.Duration) {
	*f.ran = append(*f.ran, f.name)
}

func descsFor(systems ...System) []*systemDescriptor {
	var out []*systemDescriptor
	for _, s := range systems {
		out = append(out, describeSystem(s)...)
	}
	return out
}

func TestResolveOrderAcceptsAlreadyOrderedRequires(t *testing.T) {
	var ran []string
	a := &fakeUpdateSystem{name: "a", ran: &ran}
	b := &fakeUpdateSystem{name: "b", requires: []string{"a"}, ran: &ran}
	c := &fakeUpdateSystem{name: "c", requires: []string{"b"}, ran: &ran}

	// Already in dependency order: resolveOrder accepts the list as-is,
	// unchanged.
	ordered, err := resolveOrder(SystemVariantUpdate, descsFor(a, b, c))
	if err != nil {
		t.Fatalf("resolveOrder: %v", err)
	}
	if len(ordered) != 3 {
		t.Fatalf("expected 3 descriptors, got %d", len(ordered))
	}
	names := []string{ordered[0].name, ordered[1].name, ordered[2].name}
	if names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Fatalf("expected order [a b c], got %v", names)
	}
}

func TestResolveOrderRejectsOutOfOrderRequires(t *testing.T) {
	var ran []string
	a := &fakeUpdateSystem{name: "a", ran: &ran}
	b := &fakeUpdateSystem{name: "b", requires: []string{"a"}, ran: &ran}
	c := &fakeUpdateSystem{name: "c", requires: []string{"b"}, ran: &ran}

	// c requires b and b requires a, but the list is supplied out of
	// that order: resolveOrder must reject this, not silently re-sort it
	// into [a b c].
	_, err := resolveOrder(SystemVariantUpdate, descsFor(c, a, b))
	cfgErr, ok := err.(*ConfigurationError)
	if !ok {
		t.Fatalf("expected a *ConfigurationError, got %T: %v", err, err)
	}
	if cfgErr.Kind != "unsatisfied-requires" {
		t.Fatalf("expected Kind %q, got %q", "unsatisfied-requires", cfgErr.Kind)
	}
}

func TestResolveOrderRejectsDuplicateSystemNames(t *testing.T) {
	var ran []string
	a1 := &fakeUpdateSystem{name: "dup", ran: &ran}
	a2 := &fakeUpdateSystem{name: "dup", ran: &ran}

	_, err := resolveOrder(SystemVariantUpdate, descsFor(a1, a2))
	cfgErr, ok := err.(*ConfigurationError)
	if !ok {
		t.Fatalf("expected a *ConfigurationError, got %T: %v", err, err)
	}
	if cfgErr.Kind != "duplicate-system" {
		t.Fatalf("expected Kind %q, got %q", "duplicate-system", cfgErr.Kind)
	}
}

func TestResolveOrderRejectsUnsatisfiedRequires(t *testing.T) {
	var ran []string
	a := &fakeUpdateSystem{name: "a", requires: []string{"missing"}, ran: &ran}

	_, err := resolveOrder(SystemVariantUpdate, descsFor(a))
	cfgErr, ok := err.(*ConfigurationError)
	if !ok {
		t.Fatalf("expected a *ConfigurationError, got %T: %v", err, err)
	}
	if cfgErr.Kind != "unsatisfied-requires" {
		t.Fatalf("expected Kind %q, got %q", "unsatisfied-requires", cfgErr.Kind)
	}
	if cfgErr.Detail != "missing" {
		t.Fatalf("expected Detail %q, got %q", "missing", cfgErr.Detail)
	}
}

func TestResolveOrderRejectsCycles(t *testing.T) {
	var ran []string
	a := &fakeUpdateSystem{name: "a", requires: []string{"b"}, ran: &ran}
	b := &fakeUpdateSystem{name: "b", requires: []string{"a"}, ran: &ran}

	_, err := resolveOrder(SystemVariantUpdate, descsFor(a, b))
	cfgErr, ok := err.(*ConfigurationError)
	if !ok {
		t.Fatalf("expected a *ConfigurationError, got %T: %v", err, err)
	}
	if cfgErr.Kind != "cyclic-ordering" {
		t.Fatalf("expected Kind %q, got %q", "cyclic-ordering", cfgErr.Kind)
	}
}

func TestAddSystemsRunsInDeclaredOrder(t *testing.T) {
	w, err := NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	var ran []string
	a := &fakeUpdateSystem{name: "a", ran: &ran}
	b := &fakeUpdateSystem{name: "b", requires: []string{"a"}, ran: &ran}

	if err := w.AddSystems(a, b); err != nil {
		t.Fatalf("AddSystems: %v", err)
	}
	w.Tick(time.Millisecond)

	if len(ran) != 2 || ran[0] != "a" || ran[1] != "b" {
		t.Fatalf("expected update systems to run in declared order [a b], got %v", ran)
	}
}

func TestAddSystemsRejectsOutOfOrderRequires(t *testing.T) {
	w, err := NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	var ran []string
	b := &fakeUpdateSystem{name: "b", requires: []string{"a"}, ran: &ran}
	a := &fakeUpdateSystem{name: "a", ran: &ran}

	err = w.AddSystems(b, a)
	cfgErr, ok := err.(*ConfigurationError)
	if !ok {
		t.Fatalf("expected a *ConfigurationError, got %T: %v", err, err)
	}
	if cfgErr.Kind != "unsatisfied-requires" {
		t.Fatalf("expected Kind %q, got %q", "unsatisfied-requires", cfgErr.Kind)
	}
}
