package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// touchPointer follows the first finger on the screen as the pointer. Other
// fingers are ignored.
type touchPointer struct {
	ids []ebiten.TouchID

	primary  ebiten.TouchID
	tracking bool
	x, y     float64
}

// sample returns the primary finger's position. ok is false when no finger
// is down and none was lifted this frame.
func (t *touchPointer) sample() (x, y float64, pressed, ok bool) {
	t.ids = ebiten.AppendTouchIDs(t.ids[:0])

	if t.tracking {
		if containsTouchID(t.ids, t.primary) {
			tx, ty := ebiten.TouchPosition(t.primary)
			t.x, t.y = float64(tx), float64(ty)
			return t.x, t.y, true, true
		}
		// Lifted: report one release at the last position.
		t.tracking = false
		return t.x, t.y, false, true
	}

	if len(t.ids) == 0 {
		return 0, 0, false, false
	}
	t.primary = t.ids[0]
	t.tracking = true
	tx, ty := ebiten.TouchPosition(t.primary)
	t.x, t.y = float64(tx), float64(ty)
	return t.x, t.y, true, true
}

func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}
