package panzoom

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const helpText = `drag / one finger   pan
pinch / wheel       zoom
double-tap          reset view
long-press          capture
ctrl+b              capture
up / down           overlay opacity
h                   toggle help`

// hudBackground keeps the readout legible over bright overlays.
var hudBackground = color.RGBA{0, 0, 0, 160}

// hudLines returns the readout shown in the corner of the surface.
func (s *Surface) hudLines() []string {
	t := s.model.Transform()
	lines := []string{
		fmt.Sprintf("zoom %.2fx  pan %.0f,%.0f", t.Zoom, t.X, t.Y),
		fmt.Sprintf("alpha %.2f  fps %.0f", s.alpha.Value(), ebiten.ActualFPS()),
	}
	switch {
	case s.ctrl.Pinching():
		lines = append(lines, "pinching")
	case s.ctrl.Dragging():
		lines = append(lines, "dragging")
	case s.ctrl.LongPressPending():
		lines = append(lines, "hold to capture")
	}
	return lines
}

// drawHUD draws the readout and, when enabled, the help text.
func (s *Surface) drawHUD(screen *ebiten.Image) {
	var text string
	if s.ShowHUD {
		text = strings.Join(s.hudLines(), "\n")
	}
	if s.ShowHelp {
		if text != "" {
			text += "\n\n"
		}
		text += helpText
	}
	lines := strings.Count(text, "\n") + 1
	width := 0
	for _, l := range strings.Split(text, "\n") {
		width = max(width, len(l))
	}
	// ebitenutil.DebugPrint uses a 6x16 glyph cell.
	vector.DrawFilledRect(screen, 4, 4, float32(width*6+8), float32(lines*16+4), hudBackground, false)
	ebitenutil.DebugPrintAt(screen, text, 8, 6)
}
