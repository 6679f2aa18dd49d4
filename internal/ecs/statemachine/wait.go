// Package statemachine implements a coroutine-style state-machine
// runtime: a Routine is a resumable Go function driven one wait
// directive at a time by World.Tick, wrapped in the one component type
// the core's Registry aliases onto its reserved state-machine carrier
// id.
package statemachine

import (
	"fmt"
	"reflect"
	"time"

	"github.com/matjam/sword/internal/ecs"
)

//go:generate go-enum --marshal

// WaitKind identifies what a Routine is waiting for before its next
// resumption.
//
// ENUM(stop, next_frame, frames, ms, seconds, message, routine)
type WaitKind uint8

// WaitDirective is the value a Routine yields to describe what it is
// waiting for. Construct one with Stop, NextFrame, Frames, Ms, Seconds,
// WaitForMessage, or WaitForRoutine rather than the zero value.
type WaitDirective struct {
	Kind WaitKind

	Frames int
	For    time.Duration

	MessageType reflect.Type
	Target      ecs.EntityID

	Inner *Routine
}

// Stop ends the owning Routine permanently; it will never resume again.
func Stop() WaitDirective { return WaitDirective{Kind: WaitKindStop} }

// NextFrame resumes the Routine on the Tick after the one that yielded
// it. As a Routine's very first directive it is already satisfied by the
// Tick that starts the Routine. It is the most common directive and is
// interned per World rather than allocated fresh on every yield.
func NextFrame(w *ecs.World) WaitDirective {
	const key = "next_frame"
	if v, ok := w.WaitCacheGet(key); ok {
		return v.(WaitDirective)
	}
	d := WaitDirective{Kind: WaitKindNextFrame}
	w.WaitCacheSet(key, d)
	return d
}

// Frames resumes the Routine on the nth Tick that checks this directive.
// A directive yielded while a Tick resumes the Routine is first checked
// on the following Tick; a Routine's very first directive is checked on
// the Tick that starts it, so Frames(n) there resumes on the nth Tick.
func Frames(w *ecs.World, n int) WaitDirective {
	key := fmt.Sprintf("frames:%d", n)
	if v, ok := w.WaitCacheGet(key); ok {
		return v.(WaitDirective)
	}
	d := WaitDirective{Kind: WaitKindFrames, Frames: n}
	w.WaitCacheSet(key, d)
	return d
}

// Ms resumes the Routine once at least n milliseconds of Tick dt have
// accumulated. Any excess over n carries into the next wait's
// accumulation rather than being discarded.
func Ms(w *ecs.World, n int) WaitDirective {
	key := fmt.Sprintf("ms:%d", n)
	if v, ok := w.WaitCacheGet(key); ok {
		return v.(WaitDirective)
	}
	d := WaitDirective{Kind: WaitKindMs, For: time.Duration(n) * time.Millisecond}
	w.WaitCacheSet(key, d)
	return d
}

// Seconds resumes the Routine once at least s seconds of Tick dt have
// accumulated, subject to the same remainder-carry rule as Ms.
func Seconds(s float64) WaitDirective {
	return WaitDirective{Kind: WaitKindSeconds, For: time.Duration(s * float64(time.Second))}
}

// WaitForMessage resumes the Routine the first frame a message whose
// concrete type matches sample is sent to target. target is optional:
// omit it to wait on the Routine's own owning entity — the zero
// EntityID is never a real entity (see ecs.InvalidEntityID), so
// Routine.resolve substitutes the owner whenever Target is the zero
// value.
func WaitForMessage(sample ecs.Message, target ...ecs.EntityID) WaitDirective {
	d := WaitDirective{Kind: WaitKindMessage, MessageType: reflect.TypeOf(sample)}
	if len(target) > 0 {
		d.Target = target[0]
	}
	return d
}

// WaitForRoutine resumes the Routine once inner reports done. inner is
// driven to completion on its own time budget every Tick while the
// outer Routine is suspended on it — the outer Routine does not
// separately consume Frames/Ms/Seconds while waiting on an inner one.
func WaitForRoutine(inner *Routine) WaitDirective {
	return WaitDirective{Kind: WaitKindRoutine, Inner: inner}
}
