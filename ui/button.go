package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/canvasdesk/space"
)

// closeButton is the close box in a window's title bar. Its position is
// relative to the window's top-right corner.
type closeButton struct {
	size    float64
	padding float64
}

func newCloseButton(chrome Chrome) closeButton {
	return closeButton{
		size:    chrome.closeSize(),
		padding: closePadding,
	}
}

// bounds returns the absolute close box for a window at b.
func (c closeButton) bounds(b space.Rect) space.Rect {
	side := c.size - 2*c.padding
	return space.Rect{
		X:      b.Right() - c.size + c.padding,
		Y:      b.Y + c.padding,
		Width:  side,
		Height: side,
	}
}

func (c closeButton) contains(b space.Rect, x, y float64) bool {
	return c.bounds(b).Contains(x, y)
}

func (c closeButton) Draw(screen *ebiten.Image, b space.Rect) {
	r := c.bounds(b)
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.Width), float32(r.Height)

	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{150, 60, 60, 255}, true)
	vector.StrokeRect(screen, x, y, w, h, 1, color.Black, true)

	// Cross
	inset := float32(3)
	vector.StrokeLine(screen, x+inset, y+inset, x+w-inset, y+h-inset, 1.5, color.White, true)
	vector.StrokeLine(screen, x+w-inset, y+inset, x+inset, y+h-inset, 1.5, color.White, true)
}
