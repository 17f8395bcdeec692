package wisp

import (
	"fmt"
	"os"
	"time"
)

// debugStats accumulates per-tick timing between log lines.
// Only populated when the engine is in debug mode.
type debugStats struct {
	frames     int
	updateTime time.Duration
}

// debugLogEvery is the number of ticks between timing lines.
const debugLogEvery = 120

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// use panics, tree depth and child count warnings are printed, and state
// transitions plus periodic timing stats are logged to stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set engine debug flag so that node
// operations (which lack an engine pointer) can check it cheaply. Only valid
// with a single engine.
var globalDebug bool

func (e *Engine) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[wisp] "+format+"\n", args...)
}

// debugState logs a state transition.
func (e *Engine) debugState(prev, next CursorState) {
	if !e.debug {
		return
	}
	name := "<nil>"
	if e.target != nil {
		name = e.target.Name
	}
	e.debugf("state: %s -> %s label=%q target=%q", prev.Kind, next.Kind, next.Label, name)
}

// debugFrame prints average update time every debugLogEvery ticks.
func (e *Engine) debugFrame() {
	if e.stats.frames < debugLogEvery {
		return
	}
	avg := e.stats.updateTime / time.Duration(e.stats.frames)
	in, out := e.inner.Position(), e.outer.Position()
	e.debugf("update avg: %v | inner: (%.1f, %.1f) | outer: (%.1f, %.1f) | trail: %d",
		avg, in.X, in.Y, out.X, out.Y, e.trail.Len())
	e.stats = debugStats{}
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("wisp debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[wisp] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[wisp] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
