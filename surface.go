package panzoom

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// polledPointer is the last sampled state of one input slot.
type polledPointer struct {
	down bool // a press is being reported to the controller
	held bool // raw button/contact state, even when not reported
	x, y float64
}

// Surface hosts a Controller inside an ebiten game. It polls mouse and
// touch input into pointer events, draws the overlay image at the published
// transform and the overlay alpha, and captures screenshots. Surface
// implements ebiten.Game and BoundsProvider; the content box fills the
// window.
type Surface struct {
	// ClearColor fills the window before the overlay is drawn. Nil skips it.
	ClearColor color.Color
	// ScreenshotDir is where captured PNGs are written.
	ScreenshotDir string
	// ShowHUD draws the zoom/pan readout.
	ShowHUD bool
	// ShowHelp draws the gesture help text.
	ShowHelp bool

	cfg   Config
	model *Model
	ctrl  *Controller
	zoom  *Slider
	alpha *Slider

	image     *ebiten.Image
	container Rect
	frame     int64

	runner          *ScriptRunner
	screenshotQueue []string
	updateFunc      func() error

	polled    [maxPointers]polledPointer
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchIDs  []ebiten.TouchID
	unfocused bool
}

// NewSurface creates a Surface for a width x height window. The zoom slider
// spans cfg.ZoomMin..cfg.ZoomMax and the alpha slider starts at
// cfg.OverlayAlpha. A double-tap also restores the overlay alpha.
func NewSurface(cfg Config, width, height int) (*Surface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Surface{
		ScreenshotDir: "screenshots",
		ShowHUD:       true,
		cfg:           cfg,
		zoom:          NewSlider(cfg.ZoomMin, cfg.ZoomMax, 1),
		alpha:         NewSlider(0, 1, cfg.OverlayAlpha),
		container:     Rect{Width: float64(width), Height: float64(height)},
	}
	m, err := NewModel(cfg, s, s.zoom)
	if err != nil {
		return nil, err
	}
	s.model = m
	s.ctrl = NewController(m)
	s.ctrl.OnReset(func(GestureEvent) {
		s.alpha.Input(cfg.OverlayAlpha)
	})
	return s, nil
}

// Controller returns the gesture controller.
func (s *Surface) Controller() *Controller { return s.ctrl }

// Model returns the transform model.
func (s *Surface) Model() *Model { return s.model }

// ZoomSlider returns the zoom input source bound to the model.
func (s *Surface) ZoomSlider() *Slider { return s.zoom }

// AlphaSlider returns the overlay transparency input.
func (s *Surface) AlphaSlider() *Slider { return s.alpha }

// SetImage replaces the overlay image. Nil clears it.
func (s *Surface) SetImage(img *ebiten.Image) {
	s.image = img
}

// Image returns the current overlay image.
func (s *Surface) Image() *ebiten.Image {
	return s.image
}

// SetUpdateFunc sets a callback run every Update after input has been
// delivered to the controller. A returned error stops the game.
func (s *Surface) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetScriptRunner attaches a gesture script. Its Step runs at the start of
// every Update.
func (s *Surface) SetScriptRunner(r *ScriptRunner) {
	s.runner = r
}

// ContainerRect returns the live window rectangle.
func (s *Surface) ContainerRect() Rect { return s.container }

// ContentRect returns the content layout box, which fills the window.
func (s *Surface) ContentRect() Rect { return s.container }

// now is the input clock, derived from the frame count so scripted and
// real input share one timeline.
func (s *Surface) now() time.Duration {
	return time.Duration(s.frame) * time.Second / time.Duration(s.tps())
}

func (s *Surface) tps() int {
	if tps := ebiten.TPS(); tps > 0 {
		return tps
	}
	return ebiten.DefaultTPS
}

// Update polls input (or consumes one injected event), fires due timers,
// runs the update callback and advances an animated reset.
func (s *Surface) Update() error {
	s.frame++
	now := s.now()

	if s.runner != nil {
		s.runner.Step(s.ctrl, s.Screenshot)
	}
	if !s.ctrl.processInjectedInput(now) {
		s.pollInput(now)
	}
	s.ctrl.Tick(now)
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.model.Update(1 / float32(s.tps()))
	return nil
}

func (s *Surface) pollInput(now time.Duration) {
	if !ebiten.IsFocused() {
		if !s.unfocused {
			s.unfocused = true
			for i := range s.polled {
				s.polled[i].down = false
			}
			s.ctrl.HandleEvent(PointerEvent{Action: PointerCancel, Time: now})
		}
		return
	}
	s.unfocused = false

	mx, my := ebiten.CursorPosition()
	s.emitPolled(mousePointer, SourceMouse, float64(mx), float64(my),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), now)

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	var active [maxPointers]bool
	for _, tid := range s.touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		s.emitPolled(slot, SourceTouch, float64(tx), float64(ty), true, now)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !active[i] {
			p := s.polled[i]
			s.emitPolled(i, SourceTouch, p.x, p.y, false, now)
			s.touchUsed[i] = false
			s.touchMap[i] = 0
			s.polled[i] = polledPointer{}
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Surface) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

func (s *Surface) emitPolled(id int, source PointerSource, x, y float64, pressed bool, now time.Duration) {
	next, action, ok := nextPointerAction(s.polled[id], x, y, pressed, s.container.Contains(x, y))
	s.polled[id] = next
	if !ok {
		return
	}
	s.ctrl.HandleEvent(PointerEvent{
		Action: action, PointerID: id, Source: source,
		X: x, Y: y, Time: now,
	})
}

// nextPointerAction compares a polled sample with the previous one and
// returns the event to report, if any. A press must start inside the
// surface; a pointer dragged outside leaves and is not reported again until
// it is released and pressed anew.
func nextPointerAction(prev polledPointer, x, y float64, pressed, inside bool) (polledPointer, PointerAction, bool) {
	next := polledPointer{down: prev.down, held: pressed, x: x, y: y}
	switch {
	case pressed && !prev.down && !prev.held && inside:
		next.down = true
		return next, PointerDown, true
	case prev.down && !pressed:
		next.down = false
		return next, PointerUp, true
	case prev.down && !inside:
		next.down = false
		return next, PointerLeave, true
	case prev.down && (x != prev.x || y != prev.y):
		return next, PointerMove, true
	}
	return next, 0, false
}

// Draw renders the overlay, flushes queued screenshots and draws the HUD.
func (s *Surface) Draw(screen *ebiten.Image) {
	if s.ClearColor != nil {
		screen.Fill(s.ClearColor)
	}
	if s.image != nil {
		b := s.image.Bounds()
		scale, offX, offY := coverPlacement(float64(b.Dx()), float64(b.Dy()), s.container)
		if scale > 0 {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(offX, offY)
			op.GeoM.Concat(s.model.Transform().GeoM(s.container.Center()))
			op.ColorScale.ScaleAlpha(float32(s.alpha.Value()))
			op.Filter = ebiten.FilterLinear
			s.containerImage(screen).DrawImage(s.image, op)
		}
	}
	s.flushScreenshots(screen)
	if s.ShowHUD || s.ShowHelp {
		s.drawHUD(screen)
	}
}

// containerImage clips drawing to the container rectangle.
func (s *Surface) containerImage(screen *ebiten.Image) *ebiten.Image {
	r := s.containerBounds()
	if r == screen.Bounds() {
		return screen
	}
	return screen.SubImage(r).(*ebiten.Image)
}

func (s *Surface) containerBounds() image.Rectangle {
	c := s.container
	return image.Rect(int(c.X), int(c.Y), int(c.X+c.Width), int(c.Y+c.Height))
}

// Layout tracks the window size and re-clamps the view when it changes.
func (s *Surface) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != s.container.Width || h != s.container.Height {
		s.container = Rect{Width: w, Height: h}
		s.model.Reclamp()
	}
	return outsideWidth, outsideHeight
}

// ScreenToImage maps a window point to overlay image pixel coordinates.
func (s *Surface) ScreenToImage(x, y float64) (float64, float64, error) {
	if s.image == nil {
		return 0, 0, fmt.Errorf("panzoom: no overlay image")
	}
	b := s.image.Bounds()
	scale, offX, offY := coverPlacement(float64(b.Dx()), float64(b.Dy()), s.container)
	if scale == 0 {
		return 0, 0, fmt.Errorf("panzoom: overlay image has no area")
	}
	placement := [6]float64{scale, 0, 0, scale, offX, offY}
	view := s.model.Transform().Matrix(s.container.Center())
	ix, iy := transformPoint(invertAffine(multiplyAffine(view, placement)), x, y)
	return ix, iy, nil
}

// coverPlacement scales an image to cover box, preserving aspect ratio,
// and centers it so any overflow is cropped equally from both sides.
func coverPlacement(imgW, imgH float64, box Rect) (scale, offX, offY float64) {
	if imgW <= 0 || imgH <= 0 || box.Empty() {
		return 0, 0, 0
	}
	scale = max(box.Width/imgW, box.Height/imgH)
	offX = box.X + (box.Width-imgW*scale)/2
	offY = box.Y + (box.Height-imgH*scale)/2
	return scale, offX, offY
}
