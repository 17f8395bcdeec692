package wisp

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a pointer script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// pointerScript is the top-level JSON structure for a pointer script.
type pointerScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a scripted pointer session frame by frame. It is a
// PointerSource: pass it to Engine.Mount in place of a real device.
//
//	{"steps": [
//	  {"action": "move", "x": 10, "y": 10},
//	  {"action": "sweep", "fromX": 10, "fromY": 10, "toX": 400, "toY": 10, "frames": 30},
//	  {"action": "press", "x": 400, "y": 10},
//	  {"action": "wait", "frames": 5},
//	  {"action": "release", "x": 400, "y": 10}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	source    *InjectSource
}

// LoadPointerScript parses a JSON pointer script.
func LoadPointerScript(jsonData []byte) (*ScriptRunner, error) {
	var script pointerScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse pointer script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse pointer script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "press", "release", "sweep", "wait":
		default:
			return nil, fmt.Errorf("parse pointer script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps, source: NewInjectSource()}, nil
}

// Done reports whether all steps have been executed and drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Poll advances the script by one frame and returns that frame's snapshot.
func (r *ScriptRunner) Poll() (PointerInput, bool) {
	r.step()
	return r.source.Poll()
}

// step queues the next action once pending events and waits have drained.
func (r *ScriptRunner) step() {
	if r.done {
		return
	}
	// Each Poll consumes one queued event; advance only on an empty queue.
	if r.source.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		r.source.Move(st.X, st.Y)
	case "press":
		r.source.Press(st.X, st.Y)
	case "release":
		r.source.Release(st.X, st.Y)
	case "sweep":
		r.source.Sweep(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
