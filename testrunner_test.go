package panzoom

import (
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"invalid json", `{`, "parse script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "swipe"}]}`, `unknown action "swipe"`},
		{"pointer out of range", `{"steps": [{"action": "press", "pointer": 10}]}`, "pointer 10 out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestScriptRunnerPlaysGestures(t *testing.T) {
	script := `{"steps": [
		{"action": "pinch", "x": 200, "y": 150, "from": 100, "to": 200, "frames": 4},
		{"action": "screenshot", "label": "zoomed"},
		{"action": "wait", "frames": 3},
		{"action": "tap", "x": 50, "y": 50},
		{"action": "tap", "x": 50, "y": 50},
		{"action": "screenshot", "label": "reset"}
	]}`
	r, err := LoadScript([]byte(script))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	c, _ := newTestController(t)

	shots := map[string]float64{}
	var order []string
	screenshot := func(label string) {
		shots[label] = c.Model().Zoom()
		order = append(order, label)
	}

	frames := 0
	for !r.Done() && frames < 200 {
		frames++
		r.Step(c, screenshot)
		c.processInjectedInput(ms(frames * 16))
		c.Tick(ms(frames * 16))
	}
	if !r.Done() {
		t.Fatal("script did not finish")
	}
	if strings.Join(order, ",") != "zoomed,reset" {
		t.Errorf("screenshots = %v, want zoomed then reset", order)
	}
	if !approxEqual(shots["zoomed"], 2, 1e-9) {
		t.Errorf("zoom at first screenshot = %v, want 2", shots["zoomed"])
	}
	if shots["reset"] != 1 {
		t.Errorf("zoom at second screenshot = %v, want 1", shots["reset"])
	}
}

func TestScriptRunnerWait(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	c, _ := newTestController(t)
	steps := 0
	for !r.Done() && steps < 10 {
		r.Step(c, nil)
		steps++
	}
	if steps != 3 {
		t.Errorf("wait of 3 frames took %d steps", steps)
	}
}

func TestScriptRunnerTriggers(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [{"action": "capture"}, {"action": "reset"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	c, _ := newTestController(t)
	c.Model().SetZoom(3)
	captures := 0
	c.OnCapture(func(GestureEvent) { captures++ })

	for !r.Done() {
		r.Step(c, nil)
	}
	if captures != 1 || c.Model().Zoom() != 1 {
		t.Errorf("captures = %d, zoom = %v, want 1 and 1", captures, c.Model().Zoom())
	}
}
