package statemachine

import (
	"log/slog"
	"reflect"
	"runtime"
	"time"

	"github.com/matjam/sword/internal/ecs"
)

// Func is the body of a Routine. It runs on its own goroutine and
// suspends itself by calling Yield.Wait, never by returning early except
// to finish for good.
type Func func(y *Yield)

// Yield is the handle a running Func uses to suspend itself until the
// directive it names is satisfied.
type Yield struct {
	routine *Routine
}

// Wait suspends the calling Func until d is satisfied, or until the
// owning Routine is aborted, in which case Wait never returns and the
// goroutine exits via runtime.Goexit.
func (y *Yield) Wait(d WaitDirective) {
	y.routine.yieldCh <- d
	select {
	case <-y.routine.resumeCh:
	case <-y.routine.abortCh:
		runtime.Goexit()
	}
}

// Routine is one resumable state-machine instance: a goroutine parked on
// a channel handshake with World.Tick, one wait directive at a time.
type Routine struct {
	fn Func

	yieldCh  chan WaitDirective
	resumeCh chan struct{}
	abortCh  chan struct{}

	started bool
	done    bool

	current WaitDirective
	elapsed time.Duration
	left    int

	// owner is the entity this Routine was bound to by the carrier
	// component's Initialize. A WaitKindMessage directive whose Target is
	// the zero EntityID resolves against owner instead.
	owner ecs.EntityID
}

// bindOwner records the entity this Routine belongs to, so a
// WaitForMessage directive constructed without an explicit target can
// resolve to it. Called once, by the carrier component's Initialize.
func (r *Routine) bindOwner(id ecs.EntityID) {
	r.owner = id
}

// NewRoutine wraps fn in a Routine. The goroutine is not started until
// the first Tick.
func NewRoutine(fn Func) *Routine {
	return &Routine{
		fn:       fn,
		yieldCh:  make(chan WaitDirective),
		resumeCh: make(chan struct{}),
		abortCh:  make(chan struct{}),
	}
}

// Done reports whether the Routine has finished (via Stop, a natural
// return, or Abort).
func (r *Routine) Done() bool { return r.done }

// CurrentName reports the tag of the wait directive the Routine is
// currently suspended on, used by the carrier component to detect the
// externally-visible name change its subscribers fire on.
func (r *Routine) CurrentName() string {
	if r.done {
		return WaitKindStop.String()
	}
	return r.current.Kind.String()
}

// Abort cancels the Routine. If its goroutine is currently parked in
// Wait, it unblocks and exits without resuming the Func body further.
func (r *Routine) Abort() {
	if r.done {
		return
	}
	r.done = true
	close(r.abortCh)
}

func (r *Routine) start() {
	r.started = true
	go func() {
		r.fn(&Yield{routine: r})
		r.yieldCh <- WaitDirective{Kind: WaitKindStop}
	}()
}

// Tick advances the Routine by one World frame. It returns once the
// Routine has either suspended on a new directive it cannot yet satisfy,
// or finished. Calling Tick on an already-done Routine is a no-op.
func (r *Routine) Tick(w *ecs.World, dt time.Duration) {
	if r.done {
		return
	}

	if !r.started {
		r.start()
		select {
		case d := <-r.yieldCh:
			r.beginWait(d)
		case <-r.abortCh:
			r.done = true
			return
		}
	}

	resumed := r.resolve(w, dt)
	if r.done || !resumed {
		return
	}

	select {
	case r.resumeCh <- struct{}{}:
	case <-r.abortCh:
		r.done = true
		return
	}

	select {
	case d := <-r.yieldCh:
		r.beginWait(d)
	case <-r.abortCh:
		r.done = true
		return
	}
}

func (r *Routine) beginWait(d WaitDirective) {
	r.current = d
	switch d.Kind {
	case WaitKindStop:
		r.done = true
	case WaitKindFrames:
		r.left = d.Frames
		r.elapsed = 0
	case WaitKindMs, WaitKindSeconds:
		// elapsed intentionally NOT reset here: a remainder carried from
		// the previous time-based wait stays applied to this one.
		// Non-time-based waits reset it.
	default:
		r.elapsed = 0
	}
}

// resolve reports whether the current wait directive is now satisfied
// and the Func should be resumed this Tick.
func (r *Routine) resolve(w *ecs.World, dt time.Duration) bool {
	switch r.current.Kind {
	case WaitKindStop:
		r.done = true
		return false

	case WaitKindNextFrame:
		return true

	case WaitKindFrames:
		if r.left <= 0 {
			return true
		}
		r.left--
		return r.left <= 0

	case WaitKindMs, WaitKindSeconds:
		r.elapsed += dt
		if r.elapsed >= r.current.For {
			r.elapsed -= r.current.For
			return true
		}
		return false

	case WaitKindMessage:
		target := r.current.Target
		if target == ecs.InvalidEntityID {
			target = r.owner
		}
		e, ok := w.Entity(target)
		if !ok {
			return false
		}
		for _, m := range e.Messages() {
			if reflect.TypeOf(m) == r.current.MessageType {
				return true
			}
		}
		return false

	case WaitKindRoutine:
		inner := r.current.Inner
		if inner == nil {
			return true
		}
		inner.Tick(w, dt)
		return inner.Done()

	default:
		slog.Warn("unknown wait kind", "kind", r.current.Kind)
		return true
	}
}
