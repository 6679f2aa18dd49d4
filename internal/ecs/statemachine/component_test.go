package statemachine

import (
	"testing"

	"github.com/matjam/sword/internal/ecs"
)

func TestComponentSubscribeNotifiesOnNameChange(t *testing.T) {
	w, err := ecs.NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	c := New(func(y *Yield) {
		y.Wait(Frames(w, 2))
		y.Wait(Stop())
	})

	e := w.AddEntity(c)
	c.Initialize(w, e.ID())

	var names []string
	unsub := c.Subscribe(func(name string) { names = append(names, name) })
	defer unsub()

	c.Tick(0) // settles into the frames wait, a name change from the pre-start default
	c.Tick(0) // frames wait satisfied, cascades straight through to Stop

	if len(names) != 2 {
		t.Fatalf("expected exactly two name changes (frames, then stop), got %v", names)
	}
	if names[0] != WaitKindFrames.String() {
		t.Fatalf("expected the first observed name to be %q, got %q", WaitKindFrames.String(), names[0])
	}
	if names[1] != WaitKindStop.String() {
		t.Fatalf("expected the final name to be %q, got %q", WaitKindStop.String(), names[1])
	}
	if !c.Done() {
		t.Fatalf("expected the component to report Done once its routine stops")
	}
}

func TestComponentOnDestroyedAbortsRoutine(t *testing.T) {
	w, err := ecs.NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	c := New(func(y *Yield) {
		y.Wait(Frames(w, 1000))
	})
	e := w.AddEntity(c)
	c.Initialize(w, e.ID())
	c.Tick(0)

	c.OnDestroyed()

	if !c.Done() {
		t.Fatalf("expected OnDestroyed to abort the underlying routine")
	}
}

func TestComponentCarriesStateMachineCarrierMarker(t *testing.T) {
	var _ ecs.StateMachineCarrier = (*Component)(nil)
}
