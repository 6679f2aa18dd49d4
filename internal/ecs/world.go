package ecs

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// World owns the entity table, the component registry, the per-filter
// Contexts, the per-(context,component) ComponentWatchers, and drives
// the frame pipeline. All mutation is expected from a single
// owning goroutine. The one piece of cross-goroutine safety is
// ComponentWatcher's pending-notification table, which queue guards with
// its own mutex; calling Entity.SendMessage/Add/etc. from another
// goroutine is not supported.
type World struct {
	RunID uuid.UUID

	registry *Registry

	entities     map[EntityID]*Entity
	nextEntityID EntityID

	contexts map[ContextID]*Context
	watchers map[WatcherID]*ComponentWatcher

	// watcherOrder lists every watcher id in the order its owning
	// reactive system was registered, first occurrence wins. Draining in
	// this order (rather than in the hash order of a set) is what gives
	// the registration-order-across-watchers guarantee.
	watcherOrder  []WatcherID
	reactiveOf    map[WatcherID][]*reactiveBinding
	reactiveOrder []*reactiveBinding

	byVariant map[SystemVariant][]*systemDescriptor

	paused       bool
	earlyStarted bool
	started      bool
	frame        uint64
	timingSink   TimingSink

	destroyQueue []EntityID
	deferredCmds []func(*World)

	waitCache map[string]any
}

type reactiveBinding struct {
	sys     ReactiveSystem
	watcher *ComponentWatcher
}

// WorldOption configures NewWorld.
type WorldOption func(*worldConfig)

type worldConfig struct {
	systems    []System
	timingSink TimingSink
}

// WithSystems registers systems with the World being constructed. Within
// a phase, systems run in the order passed here; Requires only checks
// that this order already places each required system earlier.
func WithSystems(systems ...System) WorldOption {
	return func(c *worldConfig) { c.systems = append(c.systems, systems...) }
}

// WithTimingSink installs a TimingSink observing per-system elapsed time
// each frame. DefaultTimingSink (a no-op) is used if omitted.
func WithTimingSink(sink TimingSink) WorldOption {
	return func(c *worldConfig) { c.timingSink = sink }
}

// NewWorld constructs a World and resolves its system ordering. Ordering
// violations (a missing Requires dependency, a cycle, a duplicate system
// name within one phase) are returned as a *ConfigurationError rather
// than panicking, since they are a caller configuration mistake
// detectable before any frame runs.
func NewWorld(opts ...WorldOption) (*World, error) {
	cfg := worldConfig{timingSink: DefaultTimingSink}
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &World{
		RunID:        uuid.New(),
		registry:     NewRegistry(),
		entities:     make(map[EntityID]*Entity),
		nextEntityID: 1,
		contexts:     make(map[ContextID]*Context),
		watchers:     make(map[WatcherID]*ComponentWatcher),
		reactiveOf:   make(map[WatcherID][]*reactiveBinding),
		byVariant:    make(map[SystemVariant][]*systemDescriptor),
		timingSink:   cfg.timingSink,
		waitCache:    make(map[string]any),
	}

	if err := w.AddSystems(cfg.systems...); err != nil {
		return nil, err
	}

	slog.Info("world constructed", "run_id", w.RunID)
	return w, nil
}

// AddSystems registers additional systems against an already-constructed
// World and re-resolves per-variant ordering. Systems that build their
// own Context in their constructor (the common shape: NewFoo(w *World))
// need a live *World to call against, which WithSystems cannot offer
// since it runs before NewWorld has one to hand back — AddSystems is
// the escape hatch: construct the World with whatever systems don't need
// one, then construct the rest against the returned World and register
// them here. Calling this after EarlyStart/Start have already run is not
// supported; register everything before the first Tick.
func (w *World) AddSystems(systems ...System) error {
	raw := make(map[SystemVariant][]*systemDescriptor)
	for variant, existing := range w.byVariant {
		raw[variant] = append(raw[variant], existing...)
	}
	for _, sys := range systems {
		for _, d := range describeSystem(sys) {
			raw[d.variant] = append(raw[d.variant], d)
		}
	}

	newByVariant := make(map[SystemVariant][]*systemDescriptor)
	for variant, descs := range raw {
		ordered, err := resolveOrder(variant, descs)
		if err != nil {
			return err
		}
		newByVariant[variant] = ordered
	}
	w.byVariant = newByVariant

	for _, d := range w.byVariant[SystemVariantReactive] {
		rs := d.reactiveDecl
		filter := BuildFilter(w.registry, rs.ReactiveFilter())
		ctx := w.contextForFilter(filter)
		componentID := w.registry.IDOfType(rs.ReactiveComponent())
		watcher := ctx.WatcherFor(componentID)
		if _, known := w.watchers[watcher.ID()]; !known {
			w.watchers[watcher.ID()] = watcher
			w.watcherOrder = append(w.watcherOrder, watcher.ID())
		}

		alreadyBound := false
		for _, b := range w.reactiveOf[watcher.ID()] {
			if b.sys == rs {
				alreadyBound = true
				break
			}
		}
		if alreadyBound {
			continue
		}

		b := &reactiveBinding{sys: rs, watcher: watcher}
		w.reactiveOf[watcher.ID()] = append(w.reactiveOf[watcher.ID()], b)
		w.reactiveOrder = append(w.reactiveOrder, b)
	}
	return nil
}

// describeSystem inspects sys for every phase interface it implements
// and returns one descriptor per phase found.
func describeSystem(sys System) []*systemDescriptor {
	name := sys.SystemName()
	var requires []string
	if d, ok := sys.(Dependent); ok {
		requires = d.Requires()
	}
	pauseMode := PauseModeNormal
	if p, ok := sys.(Pausable); ok {
		pauseMode = p.PauseMode()
	}
	var entityCount func() int
	if cs, ok := sys.(ContextSized); ok {
		entityCount = cs.ContextEntityCount
	}

	base := func(variant SystemVariant) *systemDescriptor {
		return &systemDescriptor{variant: variant, name: name, requires: requires, pauseMode: pauseMode, entityCount: entityCount}
	}

	var out []*systemDescriptor
	if s, ok := sys.(EarlyStarter); ok {
		d := base(SystemVariantEarlyStart)
		d.earlyStart = s.EarlyStart
		out = append(out, d)
	}
	if s, ok := sys.(Starter); ok {
		d := base(SystemVariantStart)
		d.start = s.Start
		out = append(out, d)
	}
	if s, ok := sys.(FixedUpdater); ok {
		d := base(SystemVariantFixedUpdate)
		d.fixedUpdate = s.FixedUpdate
		out = append(out, d)
	}
	if s, ok := sys.(Updater); ok {
		d := base(SystemVariantUpdate)
		d.update = s.Update
		out = append(out, d)
	}
	if s, ok := sys.(LateUpdater); ok {
		d := base(SystemVariantLateUpdate)
		d.lateUpdate = s.LateUpdate
		out = append(out, d)
	}
	if s, ok := sys.(Renderer); ok {
		d := base(SystemVariantRender)
		d.render = s.Render
		out = append(out, d)
	}
	if s, ok := sys.(ReactiveSystem); ok {
		d := base(SystemVariantReactive)
		d.reactiveDecl = s
		out = append(out, d)
	}
	return out
}

// Registry returns the World's component registry, used by supporting
// packages to register types and resolve filter declarations.
func (w *World) Registry() *Registry { return w.registry }

// contextForFilter returns the Context matching filter's signature,
// creating it (and retroactively running FilterEntity over every
// existing entity) if this is the first time the signature is seen.
func (w *World) contextForFilter(filter Filter) *Context {
	id := filter.Signature()
	if ctx, ok := w.contexts[id]; ok {
		return ctx
	}
	ctx := newContext(w, id, filter)
	w.contexts[id] = ctx
	for _, e := range w.entities {
		ctx.FilterEntity(e)
	}
	return ctx
}

// Context resolves decls to a Filter against the World's registry and
// returns (creating if necessary) the Context serving that signature.
// Systems that need a live entity snapshot rather than a reactive batch
// call this once at construction and retain the returned *Context.
func (w *World) Context(decls []FilterClauseDecl) *Context {
	return w.contextForFilter(BuildFilter(w.registry, decls))
}

// AddEntity creates a new entity, introduces it to every existing
// Context before attaching any component (so added events fire the
// correct number of match transitions one component at a time), then
// adds each supplied component in order.
func (w *World) AddEntity(components ...Component) *Entity {
	id := w.nextEntityID
	w.nextEntityID++

	e := newEntity(w, id)
	w.entities[id] = e

	for _, ctx := range w.contexts {
		ctx.FilterEntity(e)
	}

	for _, c := range components {
		e.Add(c)
	}

	return e
}

// Entity looks up an entity by id.
func (w *World) Entity(id EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// RemoveEntity destroys the entity identified by id, if it exists and
// is not already destroyed. It is the World-surface convenience wrapper
// over Entity.Destroy; calling it twice
// for the same id is a safe no-op the second time.
func (w *World) RemoveEntity(id EntityID) {
	e, ok := w.entities[id]
	if !ok || e.Destroyed() {
		return
	}
	e.Destroy()
}

// scheduleReclaim queues id for removal from the entity table at the
// next end-of-frame, called by Entity.Destroy. Deferring reclaim (rather
// than deleting immediately) keeps the entity's *Entity pointer valid
// for any ComponentWatcher batch still holding a reference to it this
// frame.
func (w *World) scheduleReclaim(id EntityID) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// Defer queues fn to run once, after end-of-frame destruction reclaim,
// so reactive handlers and other mid-frame callbacks can safely mutate
// the World (add/destroy entities, touch components) without disturbing
// whatever iteration is currently in progress.
func (w *World) Defer(fn func(*World)) {
	w.deferredCmds = append(w.deferredCmds, fn)
}

// WaitCacheGet/WaitCacheSet back the state-machine runtime's per-World
// (not global) interning cache for common wait directives.
func (w *World) WaitCacheGet(key string) (any, bool) {
	v, ok := w.waitCache[key]
	return v, ok
}

func (w *World) WaitCacheSet(key string, v any) {
	w.waitCache[key] = v
}

// Pause suspends fixed_update/update/late_update systems that are not
// marked IncludeOnPause/OnPauseOnly. Idempotent.
func (w *World) Pause() {
	if w.paused {
		return
	}
	w.paused = true
	slog.Info("world paused", "run_id", w.RunID, "frame", w.frame)
}

// Resume reverses Pause. Idempotent.
func (w *World) Resume() {
	if !w.paused {
		return
	}
	w.paused = false
	slog.Info("world resumed", "run_id", w.RunID, "frame", w.frame)
}

// Paused reports the current pause state.
func (w *World) Paused() bool { return w.paused }

// Frame returns the number of completed frames: it is incremented at
// the end of every LateUpdate (and so every Tick) and by Exit.
func (w *World) Frame() uint64 { return w.frame }

func (w *World) runPhase(variant SystemVariant, fn func(d *systemDescriptor)) {
	for _, d := range w.byVariant[variant] {
		start := time.Now()
		fn(d)
		count := 0
		if d.entityCount != nil {
			count = d.entityCount()
		}
		w.timingSink.SystemTiming(d.name, variant, w.frame, time.Since(start), count)
	}
}

func (w *World) shouldRunWhilePaused(mode PauseMode) bool {
	if !w.paused {
		return mode != PauseModeOnPauseOnly
	}
	return mode == PauseModeIncludeOnPause || mode == PauseModeOnPauseOnly
}

// EarlyStart runs every early-start system exactly once, the first time
// it is called. Later calls are no-ops. A host calls this once before
// the first real frame.
func (w *World) EarlyStart() {
	if w.earlyStarted {
		return
	}
	w.earlyStarted = true
	w.runPhase(SystemVariantEarlyStart, func(d *systemDescriptor) { d.earlyStart(w) })
}

// Start runs every start system exactly once, the first time it is
// called. Later calls are no-ops. EarlyStart and Start are kept as
// distinct phases with independent "ran once" state, rather than
// collapsing them behind a single predicate.
func (w *World) Start() {
	if w.started {
		return
	}
	w.started = true
	w.runPhase(SystemVariantStart, func(d *systemDescriptor) { d.start(w) })
}

// FixedUpdate runs every fixed-update system once, skipping those paused
// by the pause rule. A host with a fixed-timestep accumulator calls
// this zero or more times per displayed frame.
func (w *World) FixedUpdate(dt time.Duration) {
	w.runPhase(SystemVariantFixedUpdate, func(d *systemDescriptor) {
		if w.shouldRunWhilePaused(d.pauseMode) {
			d.fixedUpdate(w, dt)
		}
	})
}

// Update runs every update system once, skipping those paused by the
// pause rule.
func (w *World) Update(dt time.Duration) {
	w.runPhase(SystemVariantUpdate, func(d *systemDescriptor) {
		if w.shouldRunWhilePaused(d.pauseMode) {
			d.update(w, dt)
		}
	})
}

// LateUpdate runs every late-update system once, then closes out the
// frame: the reactive drain and end-of-frame bookkeeping both happen
// here, since late-update is the last phase
// a host runs exactly once per displayed frame (unlike fixed-update,
// which may run several times).
func (w *World) LateUpdate(dt time.Duration) {
	w.runPhase(SystemVariantLateUpdate, func(d *systemDescriptor) {
		if w.shouldRunWhilePaused(d.pauseMode) {
			d.lateUpdate(w, dt)
		}
	})

	w.drainReactive()
	w.endFrame()
}

// Tick is a convenience wrapper for the common case of a fixed,
// single-step frame: EarlyStart, Start, one FixedUpdate, one Update, and
// LateUpdate (which drains reactive notifications and performs
// end-of-frame bookkeeping), all with the same dt. Hosts doing real
// fixed-timestep accumulation call the granular phase methods directly
// instead.
func (w *World) Tick(dt time.Duration) {
	w.EarlyStart()
	w.Start()
	w.FixedUpdate(dt)
	w.Update(dt)
	w.LateUpdate(dt)
}

// Render runs every render-variant system, unconditionally of Paused.
func (w *World) Render() {
	w.runPhase(SystemVariantRender, func(d *systemDescriptor) { d.render(w) })
}

// Exit runs end-of-life bookkeeping: it flushes any still-pending
// deferred destruction and deferred commands so a host shutting down the
// World does not leak queued work. It does
// not run any system phase.
func (w *World) Exit() {
	w.endFrame()
	slog.Info("world exit", "run_id", w.RunID, "frame", w.frame)
}

func (w *World) drainReactive() {
	for _, id := range w.watcherOrder {
		watcher, ok := w.watchers[id]
		if !ok {
			continue
		}
		notifications := watcher.popNotifications()
		if len(notifications) == 0 {
			continue
		}
		for _, b := range w.reactiveOf[id] {
			b.sys.React(w, notifications)
		}
	}
}

func (w *World) endFrame() {
	for _, e := range w.entities {
		e.clearMessages()
	}

	if len(w.destroyQueue) > 0 {
		for _, id := range w.destroyQueue {
			e, ok := w.entities[id]
			if !ok {
				continue
			}
			for _, ctx := range w.contexts {
				ctx.stopWatching(e)
			}
			delete(w.entities, id)
		}
		w.destroyQueue = nil
	}

	if len(w.deferredCmds) > 0 {
		cmds := w.deferredCmds
		w.deferredCmds = nil
		for _, cmd := range cmds {
			cmd(w)
		}
	}

	w.frame++
}
