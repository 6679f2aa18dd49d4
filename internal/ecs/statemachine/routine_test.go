package statemachine

import (
	"testing"
	"time"

	"github.com/matjam/sword/internal/ecs"
)

type pingMessage struct{}

func (pingMessage) MessageName() string { return "ping" }

func TestRoutineFramesAdvancesOverExactFrameCount(t *testing.T) {
	w, err := ecs.NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	var resumed bool
	r := NewRoutine(func(y *Yield) {
		y.Wait(Frames(w, 3))
		resumed = true
	})

	for i := 0; i < 2; i++ {
		r.Tick(w, time.Millisecond)
		if resumed {
			t.Fatalf("expected routine to still be waiting after %d ticks", i+1)
		}
	}
	r.Tick(w, time.Millisecond)
	if !resumed {
		t.Fatalf("expected routine to resume on the 3rd tick")
	}
}

func TestRoutineMsCarriesRemainder(t *testing.T) {
	w, err := ecs.NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	var firstDone, secondDone bool
	r := NewRoutine(func(y *Yield) {
		y.Wait(Ms(w, 10))
		firstDone = true
		y.Wait(Ms(w, 10))
		secondDone = true
	})

	// 3ms ticks: the first 10ms wait needs 4 ticks (12ms, 2ms remainder).
	// If that remainder were discarded instead of carried, the second
	// wait would also need a full 4 ticks (8th tick); since it carries,
	// the second wait needs only 8ms more and finishes on the 7th tick.
	for i := 0; i < 3; i++ {
		r.Tick(w, 3*time.Millisecond)
	}
	if firstDone {
		t.Fatalf("expected the first 10ms wait to still be pending after 9ms")
	}

	r.Tick(w, 3*time.Millisecond)
	if !firstDone {
		t.Fatalf("expected the first 10ms wait to resolve once 12ms has accumulated")
	}
	if secondDone {
		t.Fatalf("expected the second wait to not yet be satisfied")
	}

	r.Tick(w, 3*time.Millisecond)
	if secondDone {
		t.Fatalf("expected the second wait to still be pending")
	}

	r.Tick(w, 3*time.Millisecond)
	if secondDone {
		t.Fatalf("expected the second wait to still be pending with 8ms accumulated")
	}

	r.Tick(w, 3*time.Millisecond)
	if !secondDone {
		t.Fatalf("expected the carried remainder to let the second wait resolve on the 7th tick rather than needing a full 4 more")
	}
	if !r.Done() {
		t.Fatalf("expected the routine to be done once both waits and the function body complete")
	}
}

func TestRoutineDoneAfterStop(t *testing.T) {
	w, err := ecs.NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	r := NewRoutine(func(y *Yield) {
		y.Wait(Stop())
	})
	r.Tick(w, 0)
	if !r.Done() {
		t.Fatalf("expected routine to be done after Stop")
	}
}

func TestRoutineAbortStopsResumption(t *testing.T) {
	w, err := ecs.NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	var resumed bool
	r := NewRoutine(func(y *Yield) {
		y.Wait(Frames(w, 100))
		resumed = true
	})
	r.Tick(w, 0)
	r.Abort()
	r.Tick(w, 0)
	if resumed {
		t.Fatalf("expected Abort to prevent further resumption")
	}
	if !r.Done() {
		t.Fatalf("expected Done to report true after Abort")
	}
}

func TestWaitForMessageDefaultsToOwner(t *testing.T) {
	w, err := ecs.NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	owner := w.AddEntity()

	var resumed bool
	r := NewRoutine(func(y *Yield) {
		y.Wait(WaitForMessage(pingMessage{}))
		resumed = true
	})
	r.bindOwner(owner.ID())

	r.Tick(w, 0)
	if resumed {
		t.Fatalf("expected routine to still be waiting with no message sent")
	}

	owner.SendMessage(pingMessage{})
	r.Tick(w, 0)
	if !resumed {
		t.Fatalf("expected a message sent to the bound owner to satisfy a target-less WaitForMessage")
	}
}

func TestWaitForMessageExplicitTarget(t *testing.T) {
	w, err := ecs.NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	owner := w.AddEntity()
	other := w.AddEntity()

	var resumed bool
	r := NewRoutine(func(y *Yield) {
		y.Wait(WaitForMessage(pingMessage{}, other.ID()))
		resumed = true
	})
	r.bindOwner(owner.ID())

	owner.SendMessage(pingMessage{})
	r.Tick(w, 0)
	if resumed {
		t.Fatalf("expected a message on owner to not satisfy a wait explicitly targeting other")
	}

	other.SendMessage(pingMessage{})
	r.Tick(w, 0)
	if !resumed {
		t.Fatalf("expected a message sent to the explicit target to satisfy the wait")
	}
}
