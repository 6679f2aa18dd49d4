package ecs

import "testing"

type counter struct {
	ModifiableMarker
	n int
}

func (*counter) ComponentName() string { return "counter" }

type sticky struct{ tag string }

func (*sticky) ComponentName() string { return "sticky" }
func (*sticky) KeepOnReplace() bool   { return true }

func TestEntityAddPanicsOnDoubleAdd(t *testing.T) {
	w, err := NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	e := w.AddEntity(&widget{})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected Add to panic on a duplicate component")
		}
		if _, ok := r.(*InvariantViolation); !ok {
			t.Fatalf("expected an *InvariantViolation, got %T: %v", r, r)
		}
	}()
	e.Add(&widget{})
}

func TestEntityReplaceHonorsKeepOnReplace(t *testing.T) {
	w, err := NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	e := w.AddEntity(&sticky{tag: "original"})

	e.Replace([]Component{&sticky{tag: "replacement"}})

	id := w.Registry().IDOf((*sticky)(nil))
	got, ok := e.Get(id)
	if !ok {
		t.Fatalf("expected sticky component to remain present")
	}
	if got.(*sticky).tag != "original" {
		t.Fatalf("expected KeepOnReplace to preserve the original value, got %q", got.(*sticky).tag)
	}
}

func TestEntityReplaceForceKeepOverridesDefault(t *testing.T) {
	w, err := NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	e := w.AddEntity(&counter{n: 1})

	e.Replace([]Component{&counter{n: 2}}, ForceKeep())

	id := w.Registry().IDOf((*counter)(nil))
	got, ok := e.Get(id)
	if !ok {
		t.Fatalf("expected counter component to remain present under ForceKeep")
	}
	if got.(*counter).n != 1 {
		t.Fatalf("expected ForceKeep to preserve the original value, got n=%d", got.(*counter).n)
	}
}

func TestEntityTouchAndCommitModifyFireEvents(t *testing.T) {
	w, err := NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	e := w.AddEntity(&counter{n: 1})
	id := w.Registry().IDOf((*counter)(nil))

	var before, after int
	e.Subscribe(EntityEventKindComponentBeforeModifying, func(EntityEvent) { before++ })
	e.Subscribe(EntityEventKindComponentModified, func(EntityEvent) { after++ })

	e.Touch(id)
	c, _ := e.Get(id)
	c.(*counter).n = 2
	e.CommitModify(id)

	if before != 1 || after != 1 {
		t.Fatalf("expected exactly one before/after pair, got before=%d after=%d", before, after)
	}
}

func TestEntityDestroyTeardownOrderIsDescending(t *testing.T) {
	w, err := NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	e := w.AddEntity(&widget{}, &gadget{})

	widgetID := w.Registry().IDOf((*widget)(nil))
	gadgetID := w.Registry().IDOf((*gadget)(nil))

	var order []ComponentID
	e.Subscribe(EntityEventKindComponentRemoved, func(ev EntityEvent) {
		order = append(order, ev.Component)
	})

	e.Destroy()

	if len(order) != 2 {
		t.Fatalf("expected both components to be torn down, got %d removals", len(order))
	}
	larger, smaller := widgetID, gadgetID
	if smaller > larger {
		larger, smaller = smaller, larger
	}
	if order[0] != larger || order[1] != smaller {
		t.Fatalf("expected descending-id teardown order, got %v", order)
	}
	if !e.Destroyed() {
		t.Fatalf("expected Destroyed to report true after Destroy")
	}
}

func TestEntityOperationsPanicAfterDestroy(t *testing.T) {
	w, err := NewWorld()
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	e := w.AddEntity(&widget{})
	e.Destroy()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Add on a destroyed entity to panic")
		}
	}()
	e.Add(&gadget{})
}
