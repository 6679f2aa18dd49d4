package interaction

import (
	"testing"

	"github.com/matjam/sword/internal/ecs"
)

func TestInteractAppliesEffect(t *testing.T) {
	w, err := ecs.NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	interactor := w.AddEntity()
	interacted := w.AddEntity()

	var gotInteractor, gotInteracted ecs.EntityID
	c := New(EffectFunc(func(_ *ecs.World, a, b *ecs.Entity) {
		gotInteractor = a.ID()
		gotInteracted = b.ID()
	}))

	c.Interact(w, interactor, interacted)

	if gotInteractor != interactor.ID() || gotInteracted != interacted.ID() {
		t.Fatalf("expected effect to observe interactor=%d interacted=%d, got interactor=%d interacted=%d",
			interactor.ID(), interacted.ID(), gotInteractor, gotInteracted)
	}
}

func TestInteractToleratesNilInteracted(t *testing.T) {
	w, err := ecs.NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	interactor := w.AddEntity()

	var called bool
	var sawNilInteracted bool
	c := New(EffectFunc(func(_ *ecs.World, _ *ecs.Entity, interacted *ecs.Entity) {
		called = true
		sawNilInteracted = interacted == nil
	}))

	c.Interact(w, interactor, nil)

	if !called {
		t.Fatalf("expected the effect to still run with a nil interacted entity")
	}
	if !sawNilInteracted {
		t.Fatalf("expected the nil interacted entity to be passed through unchanged")
	}
}

func TestInteractNoopWhenEffectIsNil(t *testing.T) {
	w, err := ecs.NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	interactor := w.AddEntity()
	interacted := w.AddEntity()

	c := &Component{}

	// Must not panic.
	c.Interact(w, interactor, interacted)
}

func TestComponentCarriesInteractiveCarrierMarker(t *testing.T) {
	var _ ecs.InteractiveCarrier = (*Component)(nil)
}
