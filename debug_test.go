package wisp

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func newDebugEngine(root *Node) *Engine {
	cfg := DefaultConfig()
	cfg.Debug = true
	return NewEngine(root, cfg, DesktopEnvironment)
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	e := newDebugEngine(NewContainer("root"))
	defer e.SetDebugMode(false)

	parent := NewContainer("parent")
	child := NewBox("child", 10, 10)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()
	parent.AddChild(child)
}

func TestReleaseMode_DisposedNodeNoPanic(t *testing.T) {
	e := newDebugEngine(NewContainer("root"))
	e.SetDebugMode(false)

	child := NewBox("child", 10, 10)
	child.Dispose()
	NewContainer("parent").AddChild(child) // should not panic
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	e := newDebugEngine(NewContainer("root"))
	defer e.SetDebugMode(false)

	output := captureStderr(t, func() {
		current := NewContainer("top")
		for i := 0; i < debugMaxTreeDepth+5; i++ {
			child := NewContainer(fmt.Sprintf("depth_%d", i))
			current.AddChild(child)
			current = child
		}
	})
	if !strings.Contains(output, "warning: tree depth") {
		t.Errorf("expected tree depth warning in stderr, got: %q", output)
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	e := newDebugEngine(NewContainer("root"))
	defer e.SetDebugMode(false)

	output := captureStderr(t, func() {
		parent := NewContainer("many_children")
		for i := 0; i < debugMaxChildCount+1; i++ {
			parent.AddChild(NewContainer(fmt.Sprintf("c_%d", i)))
		}
	})
	if !strings.Contains(output, "warning: node") || !strings.Contains(output, "children") {
		t.Errorf("expected child count warning in stderr, got: %q", output)
	}
}

func TestDebugMode_LogsStateTransitions(t *testing.T) {
	root := NewContainer("root")
	root.AddChild(NewAnchor("about", "About", 100, 20))
	e := newDebugEngine(root)
	defer e.SetDebugMode(false)

	output := captureStderr(t, func() {
		e.Mount(nil, NewInjectSource())
		e.PointerMove(50, 10)
		e.Unmount()
	})
	for _, want := range []string{"[wisp] mounted", "state: default -> link", `target="about"`, "[wisp] unmounted"} {
		if !strings.Contains(output, want) {
			t.Errorf("stderr missing %q, got: %q", want, output)
		}
	}
}

func TestDebugMode_PeriodicFrameStats(t *testing.T) {
	e := newDebugEngine(NewContainer("root"))
	defer e.SetDebugMode(false)
	src := NewInjectSource()
	src.Move(10, 10)

	output := captureStderr(t, func() {
		e.Mount(nil, src)
		runFrames(e, debugLogEvery)
	})
	if !strings.Contains(output, "update avg:") {
		t.Errorf("expected frame stats in stderr, got: %q", output)
	}
	if e.stats.frames != 0 {
		t.Errorf("stats not reset: %d frames", e.stats.frames)
	}
}

func TestReleaseMode_Silent(t *testing.T) {
	root := NewContainer("root")
	root.AddChild(NewAnchor("about", "About", 100, 20))
	e := NewEngine(root, DefaultConfig(), DesktopEnvironment)

	output := captureStderr(t, func() {
		e.Mount(nil, NewInjectSource())
		e.PointerMove(50, 10)
		runFrames(e, 5)
	})
	if output != "" {
		t.Errorf("release mode wrote to stderr: %q", output)
	}
}
