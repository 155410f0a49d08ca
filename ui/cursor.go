package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/canvasdesk/space"
)

var _ space.CursorSink = Cursor{}

// Cursor applies cursor hints to the ebiten window.
type Cursor struct{}

func (Cursor) SetCursor(c space.Cursor) {
	ebiten.SetCursorShape(CursorShape(c))
}

// CursorShape maps a hint to an ebiten cursor shape. Unknown hints map to
// the default arrow.
func CursorShape(c space.Cursor) ebiten.CursorShapeType {
	switch c {
	case space.CursorPointer:
		return ebiten.CursorShapePointer
	case space.CursorEWResize:
		return ebiten.CursorShapeEWResize
	case space.CursorNSResize:
		return ebiten.CursorShapeNSResize
	case space.CursorText:
		return ebiten.CursorShapeText
	default:
		return ebiten.CursorShapeDefault
	}
}
