package space

import "math"

// minExtentPad is added to the chrome bar height to get the smallest width
// and height a window can be resized to.
const minExtentPad = 100

// moveBy translates r, keeping the origin on the canvas.
func moveBy(r Rect, dx, dy float64) Rect {
	r.X = math.Max(0, r.X+dx)
	r.Y = math.Max(0, r.Y+dy)
	return r
}

// resizeBy drags edge e of r by (dx, dy). The dragged edge follows the
// pointer and the opposite edge stays put. The extent is clamped directly so
// it never drops below floor, and the origin never goes negative.
func resizeBy(r Rect, e Edge, dx, dy, floor float64) Rect {
	switch e {
	case EdgeTop:
		bottom := r.Bottom()
		r.Height = math.Max(r.Height-dy, floor)
		r.Y = bottom - r.Height
	case EdgeBottom:
		r.Height = math.Max(r.Height+dy, floor)
	case EdgeLeft:
		right := r.Right()
		r.Width = math.Max(r.Width-dx, floor)
		r.X = right - r.Width
	case EdgeRight:
		r.Width = math.Max(r.Width+dx, floor)
	}

	// Past the canvas origin the dragged edge stops at 0. If the far edge is
	// itself closer than floor, the window grows away from the origin.
	if r.X < 0 {
		r.Width = math.Max(r.Width+r.X, floor)
		r.X = 0
	}
	if r.Y < 0 {
		r.Height = math.Max(r.Height+r.Y, floor)
		r.Y = 0
	}
	return r
}

// clampRect applies the same floors to a rectangle that was not produced by
// a drag.
func clampRect(r Rect, floor float64) Rect {
	return Rect{
		X:      math.Max(0, r.X),
		Y:      math.Max(0, r.Y),
		Width:  math.Max(floor, r.Width),
		Height: math.Max(floor, r.Height),
	}
}
