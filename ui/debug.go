package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/OpticalFlyer/canvasdesk/space"
)

// ShowDebugInfo draws frame rate and window manager state in the top-left
// corner.
func ShowDebugInfo(screen *ebiten.Image, s *space.WindowSpace) {
	ebitenutil.DebugPrint(screen, DebugText(ebiten.ActualFPS(), ebiten.ActualTPS(), s))
}

// DebugText formats the overlay text.
func DebugText(fps, tps float64, s *space.WindowSpace) string {
	g := s.Gesture()
	return fmt.Sprintf("FPS: %.2f TPS: %.2f\nWindows: %d\nGesture: %s %s\nSelected: %d Focused: %d\nCursor: %s",
		fps, tps, s.Len(), g.State, edgeLabel(g), s.Selected(), s.Focused(), s.Cursor())
}

func edgeLabel(g space.Gesture) string {
	if g.State != space.Resizing {
		return ""
	}
	return g.Edge.String()
}
