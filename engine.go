package wisp

import "time"

// CursorEvent is delivered to an EventSink on state changes, presses,
// releases and hover transitions.
type CursorEvent struct {
	Type EventType
	// State is the state after the event; Prev is the state before it.
	State CursorState
	Prev  CursorState
	// Node is the node under the pointer, or nil.
	Node *Node
	X, Y float64
}

// EventSink receives cursor events, for example to forward them to an ECS.
type EventSink interface {
	EmitCursorEvent(event CursorEvent)
}

// Engine owns all cursor state for one interactive tree: the current
// classification, both smoothed layers and the trail. Construct it at mount,
// call Update once per tick and Layout or Draw once per frame, and Unmount on
// teardown. Nothing else reads or writes its state.
type Engine struct {
	root *Node
	cfg  Config
	env  Environment

	host   Host
	source PointerSource
	sink   EventSink

	mounted   bool
	hasSample bool
	pressed   bool // last polled button state, for edge detection
	dragging  bool

	raw    Vec2
	target *Node
	hover  *Node
	state  CursorState

	inner *Smoother
	outer *Smoother
	trail *Trail
	anim  styleAnimator
	hits  hitTester

	debug bool
	stats debugStats
}

// NewEngine creates an unmounted engine over root. The environment is the
// one-shot capability snapshot; it decides whether Mount does anything.
func NewEngine(root *Node, cfg Config, env Environment) *Engine {
	e := &Engine{
		root:  root,
		cfg:   cfg,
		env:   env,
		state: DefaultState,
		inner: NewSmoother(cfg.Inner),
		outer: NewSmoother(cfg.Outer),
		trail: NewTrail(!env.ReducedMotion),
	}
	e.anim.snap(cfg.Styles.For(KindDefault))
	e.SetDebugMode(cfg.Debug)
	return e
}

// Mount attaches the pointer source and hides the native pointer through
// host. On an inactive environment (touch-primary or no pointer) it does
// nothing: no source is attached and host is never called. host may be nil.
func (e *Engine) Mount(host Host, source PointerSource) {
	if e.mounted || !e.env.Active() {
		return
	}
	e.host = host
	e.source = source
	e.mounted = true
	if e.host != nil {
		e.host.SetCursorVisible(false)
	}
	e.debugf("mounted")
}

// Unmount detaches the source, restores the native pointer and tears down the
// cursor model, so a later Mount starts from the default state with no
// layers. It is synchronous and safe to call more than once.
func (e *Engine) Unmount() {
	if !e.mounted {
		return
	}
	if e.host != nil {
		e.host.SetCursorVisible(true)
	}
	e.host = nil
	e.source = nil
	e.mounted = false
	e.pressed = false
	e.dragging = false
	e.reset()
	e.debugf("unmounted")
}

// reset returns the cursor model to its pre-mount state.
func (e *Engine) reset() {
	e.hasSample = false
	e.raw = Vec2{}
	e.target = nil
	e.hover = nil
	e.state = DefaultState
	e.inner.Snap(Vec2{})
	e.outer.Snap(Vec2{})
	e.trail.Reset()
	e.anim = styleAnimator{}
	e.anim.snap(e.cfg.Styles.For(KindDefault))
}

// SetEventSink sets the optional event receiver.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

// --- Queries ---

// Active reports whether the environment allows the engine to run.
func (e *Engine) Active() bool { return e.env.Active() }

// Mounted reports whether the engine is attached.
func (e *Engine) Mounted() bool { return e.mounted }

// Environment returns the capability snapshot taken at construction.
func (e *Engine) Environment() Environment { return e.env }

// Config returns the engine's tuning.
func (e *Engine) Config() Config { return e.cfg }

// State returns the current cursor state.
func (e *Engine) State() CursorState { return e.state }

// Inner returns the dot's smoothed position.
func (e *Engine) Inner() Vec2 { return e.inner.Position() }

// Outer returns the ring's smoothed position.
func (e *Engine) Outer() Vec2 { return e.outer.Position() }

// Raw returns the last raw pointer position.
func (e *Engine) Raw() Vec2 { return e.raw }

// Target returns the node under the pointer at the last move, or nil.
func (e *Engine) Target() *Node { return e.target }

// Trail returns the engine's trail. Callers must not push to it.
func (e *Engine) Trail() *Trail { return e.trail }

// Dragging reports whether a press is in progress.
func (e *Engine) Dragging() bool { return e.dragging }

// Settled reports whether both layers rest within eps of their targets.
func (e *Engine) Settled(eps float64) bool {
	return e.inner.Settled(eps) && e.outer.Settled(eps)
}

// --- Events ---

// PointerMove handles a raw pointer move to (x, y): hit-tests, classifies
// immediately, applies magnetic pull to the spring targets and records the
// trail. Ignored while unmounted.
func (e *Engine) PointerMove(x, y float64) {
	if !e.mounted {
		return
	}
	e.raw = Vec2{x, y}
	e.target = e.pick(x, y)
	e.updateHover()
	e.trail.Push(e.raw)

	adjusted := MagneticPull(e.raw, e.target, e.cfg.Magnet)
	if !e.hasSample {
		// First sample: place both layers without flying in from the origin.
		e.inner.Snap(adjusted)
		e.outer.Snap(adjusted)
		e.hasSample = true
	} else {
		e.inner.SetTarget(adjusted)
		e.outer.SetTarget(adjusted)
	}

	if !e.dragging {
		e.setState(Classify(e.target))
	}
}

// PointerDown forces the dragging state regardless of the target. The
// pre-drag label is discarded.
func (e *Engine) PointerDown() {
	if !e.mounted {
		return
	}
	e.dragging = true
	prev := e.state
	e.setState(CursorState{Kind: KindDragging})
	e.emit(CursorEvent{Type: EventPointerDown, State: e.state, Prev: prev, Node: e.target, X: e.raw.X, Y: e.raw.Y})
}

// PointerUp ends a drag and re-classifies whatever is under the pointer now,
// not what was under it when the drag started.
func (e *Engine) PointerUp() {
	if !e.mounted {
		return
	}
	e.dragging = false
	prev := e.state
	e.target = e.pick(e.raw.X, e.raw.Y)
	e.updateHover()
	e.setState(Classify(e.target))
	e.emit(CursorEvent{Type: EventPointerUp, State: e.state, Prev: prev, Node: e.target, X: e.raw.X, Y: e.raw.Y})
}

// Update is the per-tick entry point: it polls the source, turns changes into
// move/down/up events, then advances the springs, trail decay and style
// animation by dt seconds.
func (e *Engine) Update(dt float64) {
	if !e.mounted {
		return
	}
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.pollSource()

	e.inner.Step(dt)
	e.outer.Step(dt)
	e.trail.Decay(dt)
	e.anim.update(float32(dt), e.cfg.Styles.For(e.state.Kind))

	if e.debug {
		e.stats.frames++
		e.stats.updateTime += time.Since(t0)
		e.debugFrame()
	}
}

// pollSource runs the press/move/release state machine for one snapshot.
func (e *Engine) pollSource() {
	if e.source == nil {
		return
	}
	in, ok := e.source.Poll()
	if !ok {
		return
	}
	if !e.hasSample || in.X != e.raw.X || in.Y != e.raw.Y {
		e.PointerMove(in.X, in.Y)
	}
	switch {
	case in.Pressed && !e.pressed:
		e.pressed = true
		e.PointerDown()
	case !in.Pressed && e.pressed:
		e.pressed = false
		e.PointerUp()
	}
}

// pick refreshes transforms and hit-tests the tree.
func (e *Engine) pick(x, y float64) *Node {
	if e.root == nil {
		return nil
	}
	UpdateTransforms(e.root)
	return e.hits.hitTest(e.root, x, y)
}

// updateHover fires leave/enter when the node under the pointer changes.
func (e *Engine) updateHover() {
	if e.target == e.hover {
		return
	}
	if e.hover != nil {
		e.emit(CursorEvent{Type: EventPointerLeave, State: e.state, Prev: e.state, Node: e.hover, X: e.raw.X, Y: e.raw.Y})
	}
	if e.target != nil {
		e.emit(CursorEvent{Type: EventPointerEnter, State: e.state, Prev: e.state, Node: e.target, X: e.raw.X, Y: e.raw.Y})
	}
	e.hover = e.target
}

// setState switches the current state, starting the style transition and
// notifying the sink. No-op when unchanged.
func (e *Engine) setState(s CursorState) {
	if s == e.state {
		return
	}
	prev := e.state
	e.state = s
	e.anim.retarget(e.cfg.Styles.For(s.Kind))
	e.debugState(prev, s)
	e.emit(CursorEvent{Type: EventStateChange, State: s, Prev: prev, Node: e.target, X: e.raw.X, Y: e.raw.Y})
}

func (e *Engine) emit(ev CursorEvent) {
	if e.sink != nil {
		e.sink.EmitCursorEvent(ev)
	}
}
