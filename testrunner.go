package panzoom

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	Pointer int     `json:"pointer,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	From    float64 `json:"from,omitempty"`
	To      float64 `json:"to,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"press": true, "move": true, "release": true, "cancel": true,
	"tap": true, "drag": true, "pinch": true,
	"wait": true, "screenshot": true, "capture": true, "reset": true,
}

// ScriptRunner sequences injected gestures, waits and screenshots across
// frames, for demos and automated visual checks. Attach it to a Surface
// with SetScriptRunner or drive it with Step.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("panzoom: parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("panzoom: parse script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("panzoom: parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Pointer < 0 || st.Pointer >= maxPointers {
			return nil, fmt.Errorf("panzoom: parse script: step %d: pointer %d out of range", i, st.Pointer)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame. Injected events are consumed by
// the controller one per frame; the runner waits for them to drain before
// moving on. screenshot may be nil.
func (r *ScriptRunner) Step(c *Controller, screenshot func(label string)) {
	if r.done {
		return
	}
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		c.InjectPress(st.Pointer, st.X, st.Y)
	case "move":
		c.InjectMove(st.Pointer, st.X, st.Y)
	case "release":
		c.InjectRelease(st.Pointer, st.X, st.Y)
	case "cancel":
		c.InjectCancel()
	case "tap":
		c.InjectTap(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "pinch":
		c.InjectPinch(st.X, st.Y, st.From, st.To, st.Frames)
	case "capture":
		c.TriggerCapture()
	case "reset":
		c.TriggerReset()
	case "screenshot":
		if screenshot != nil {
			screenshot(st.Label)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
