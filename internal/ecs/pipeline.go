package ecs

import (
	"reflect"
	"time"
)

//go:generate go-enum --marshal

// SystemVariant identifies which phase of the frame pipeline a system
// participates in.
//
// ENUM(early_start, start, fixed_update, update, late_update, reactive, render)
type SystemVariant uint8

//go:generate go-enum --marshal

// PauseMode controls whether a phase-scoped system runs while the World
// is paused. It is only consulted for fixed_update/update/late_update
// systems: early-start, start, reactive, and render are never paused.
//
// ENUM(normal, include_on_pause, on_pause_only)
type PauseMode uint8

// System is the minimal contract every registered system must satisfy.
// The phase(s) it actually runs in are determined by which of the
// optional interfaces below (EarlyStarter, Starter, ...) it also
// implements; a single value may implement more than one.
type System interface {
	SystemName() string
}

// Dependent is implemented by a System that must run after one or more
// other systems within the same phase. Names refer to other systems'
// SystemName, scoped to the same SystemVariant.
type Dependent interface {
	Requires() []string
}

// Pausable is implemented by a fixed_update/update/late_update system
// that wants to deviate from the default "skipped while paused" rule.
type Pausable interface {
	PauseMode() PauseMode
}

type EarlyStarter interface {
	System
	EarlyStart(w *World)
}

type Starter interface {
	System
	Start(w *World)
}

type FixedUpdater interface {
	System
	FixedUpdate(w *World, dt time.Duration)
}

type Updater interface {
	System
	Update(w *World, dt time.Duration)
}

type LateUpdater interface {
	System
	LateUpdate(w *World, dt time.Duration)
}

// Renderer is the render-phase variant, intentionally generic: the core
// never imports a graphics backend. A concrete implementation (the demo
// package's renderer system) binds this to whatever render target its
// host loop hands it.
type Renderer interface {
	System
	Render(w *World)
}

// ReactiveSystem consumes the batched notifications of one
// ComponentWatcher, drained once per frame in the deterministic kind
// order.
type ReactiveSystem interface {
	System
	ReactiveFilter() []FilterClauseDecl
	ReactiveComponent() reflect.Type
	React(w *World, notifications []Notification)
}

type systemDescriptor struct {
	variant   SystemVariant
	name      string
	requires  []string
	pauseMode PauseMode

	earlyStart   func(w *World)
	start        func(w *World)
	fixedUpdate  func(w *World, dt time.Duration)
	update       func(w *World, dt time.Duration)
	lateUpdate   func(w *World, dt time.Duration)
	render       func(w *World)
	reactiveDecl ReactiveSystem

	// entityCount is non-nil when the underlying system implements
	// ContextSized, letting runPhase report how many entities the system
	// was visiting this phase. nil for systems with no Context of their
	// own (the entity-count observation reports 0 for those).
	entityCount func() int
}

// ContextSized is optionally implemented by a system that owns a
// Context, so the World's per-system timing observation can report how
// many entities that system was visiting this phase.
type ContextSized interface {
	ContextEntityCount() int
}

// TimingSink observes per-system-per-frame elapsed wall time and the
// number of entities the system matched. The core calls it
// unconditionally; the no-op DefaultTimingSink is installed unless a
// World is constructed WithTimingSink.
type TimingSink interface {
	SystemTiming(systemName string, variant SystemVariant, frame uint64, elapsed time.Duration, entityCount int)
}

type nopTimingSink struct{}

func (nopTimingSink) SystemTiming(string, SystemVariant, uint64, time.Duration, int) {}

// DefaultTimingSink discards every observation.
var DefaultTimingSink TimingSink = nopTimingSink{}

// resolveOrder validates descs against their declared Requires, scoped
// to the names present in descs itself. It does not reorder anything:
// per spec, a required system must already appear strictly earlier in
// the supplied list, so resolveOrder's only job is to reject a list
// that does not already satisfy that constraint. It returns a
// ConfigurationError if a required name cannot be found in this phase,
// if the constraints form a cycle, or if a required name is present but
// positioned at or after the system that requires it.
func resolveOrder(variant SystemVariant, descs []*systemDescriptor) ([]*systemDescriptor, error) {
	byName := make(map[string]*systemDescriptor, len(descs))
	position := make(map[string]int, len(descs))
	for i, d := range descs {
		if _, dup := byName[d.name]; dup {
			return nil, &ConfigurationError{Kind: "duplicate-system", SystemName: d.name}
		}
		byName[d.name] = d
		position[d.name] = i
	}

	for _, d := range descs {
		for _, req := range d.requires {
			if _, ok := byName[req]; !ok {
				return nil, &ConfigurationError{Kind: "unsatisfied-requires", SystemName: d.name, Detail: req}
			}
		}
	}

	if err := detectRequiresCycle(descs, byName); err != nil {
		return nil, err
	}

	for i, d := range descs {
		for _, req := range d.requires {
			if position[req] >= i {
				return nil, &ConfigurationError{Kind: "unsatisfied-requires", SystemName: d.name, Detail: req}
			}
		}
	}

	return descs, nil
}

// detectRequiresCycle walks the Requires graph looking only for cycles,
// reported distinctly from a plain out-of-order list (an out-of-order
// but acyclic Requires graph is reported by resolveOrder's own position
// check as "unsatisfied-requires" instead).
func detectRequiresCycle(descs []*systemDescriptor, byName map[string]*systemDescriptor) error {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(descs))

	var visit func(d *systemDescriptor) error
	visit = func(d *systemDescriptor) error {
		switch color[d.name] {
		case black:
			return nil
		case gray:
			return &ConfigurationError{Kind: "cyclic-ordering", SystemName: d.name}
		}
		color[d.name] = gray
		for _, req := range d.requires {
			if err := visit(byName[req]); err != nil {
				return err
			}
		}
		color[d.name] = black
		return nil
	}

	for _, d := range descs {
		if err := visit(d); err != nil {
			return err
		}
	}
	return nil
}
