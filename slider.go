package panzoom

// ZoomSource is a numeric input with a fixed range and a mutable value,
// typically a zoom slider. The Model reads the range at construction and
// writes every programmatic zoom change back so the widget stays in sync.
type ZoomSource interface {
	// Range returns the inclusive bounds of the source.
	Range() (min, max float64)
	// Value returns the current value.
	Value() float64
	// SetValue stores v without raising the input notification.
	SetValue(v float64)
	// DispatchInput raises the input-changed notification with the current value.
	DispatchInput()
	// OnInput registers a callback for input-changed notifications.
	OnInput(fn func(value float64)) CallbackHandle
}

// Slider is an in-memory ZoomSource. The same type serves as the overlay
// transparency input.
type Slider struct {
	min, max float64
	value    float64
	input    handlerList[float64]
}

// NewSlider creates a slider over [min, max] holding value, clamped into range.
// If max < min the bounds are kept as given so that NewModel can reject them.
func NewSlider(min, max, value float64) *Slider {
	s := &Slider{min: min, max: max}
	s.SetValue(value)
	return s
}

// Range returns the slider bounds.
func (s *Slider) Range() (min, max float64) {
	return s.min, s.max
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.value
}

// SetValue stores v clamped to the slider range. No notification is raised.
func (s *Slider) SetValue(v float64) {
	if s.max < s.min {
		s.value = v
		return
	}
	s.value = clamp(v, s.min, s.max)
}

// DispatchInput notifies every OnInput callback with the current value.
func (s *Slider) DispatchInput() {
	s.input.fire(s.value)
}

// Input simulates the user moving the slider: the value is stored and the
// input notification raised.
func (s *Slider) Input(v float64) {
	s.SetValue(v)
	s.DispatchInput()
}

// Step nudges the value by delta as user input.
func (s *Slider) Step(delta float64) {
	s.Input(s.value + delta)
}

// OnInput registers a callback fired on every input notification.
func (s *Slider) OnInput(fn func(value float64)) CallbackHandle {
	return s.input.add(fn)
}
