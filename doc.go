// Package panzoom is a pan and zoom viewport controller for image overlays,
// with an [Ebitengine] front end.
//
// The core is independent of any windowing system: a [Model] owns the
// zoom and translation of the content inside a container and keeps it
// clamped, and a [Controller] turns raw pointer and touch events into
// gestures that drive the model.
//
// # Quick start
//
// The simplest way to get started is [Run] with a [Surface], which polls
// ebiten input, draws the overlay and opens a window:
//
//	surface, err := panzoom.NewSurface(panzoom.DefaultConfig(), 800, 600)
//	if err != nil {
//		log.Fatal(err)
//	}
//	surface.SetImage(img)
//	surface.Controller().OnCapture(func(panzoom.GestureEvent) {
//		surface.Screenshot("capture")
//	})
//	log.Fatal(panzoom.Run(surface, panzoom.RunConfig{Title: "Overlay", Width: 800, Height: 600}))
//
// To drive the core from another input system, build the pieces directly
// and feed [PointerEvent] values in arrival order:
//
//	slider := panzoom.NewSlider(1, 5, 1)
//	model, err := panzoom.NewModel(panzoom.DefaultConfig(), bounds, slider)
//	ctrl := panzoom.NewController(model)
//	model.OnChange(func(t panzoom.ViewportTransform) { el.Style.Transform = t.CSS() })
//	ctrl.HandleEvent(panzoom.PointerEvent{Action: panzoom.PointerDown, ...})
//
// # Gestures
//
// A single pressed pointer pans. Two touch contacts pinch-zoom relative to
// the zoom at the moment the second finger landed. Two quick taps reset
// the view, and a stationary single-finger press fires the capture
// trigger. Every recognizer sees every event; none consumes input.
//
// # Clamping
//
// With [ClampSnap] the scaled content always covers the container on any
// axis where it is larger, is centered on any axis where it is smaller, and
// pans stop exactly at the edge. [ClampNone] leaves translation free.
//
// # Threading
//
// Nothing in the package starts goroutines. The long-press timer is driven
// by event timestamps and [Controller.Tick], so all state changes happen
// on the caller's goroutine.
//
// [Ebitengine]: https://ebitengine.org
package panzoom
