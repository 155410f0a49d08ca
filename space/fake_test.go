package space

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	fakeBar  = 20.0
	fakeGrab = 3.0
)

// fakeWindow classifies points with plain rectangle math: a title bar of
// fakeBar pixels, edges that straddle the border by fakeGrab pixels and a
// close box in the title bar's right corner.
type fakeWindow struct {
	id      ID
	bounds  Rect
	deleted bool

	content   Content
	destroyed bool
	updates   int
	updateErr error
	keys      []KeyEvent
	tint      color.Color
	drawn     int
}

func newFakeFactory(made map[ID]*fakeWindow) Factory {
	return func(id ID, bounds Rect) Window {
		w := &fakeWindow{id: id, bounds: bounds}
		made[id] = w
		return w
	}
}

func (w *fakeWindow) ID() ID       { return w.id }
func (w *fakeWindow) Bounds() Rect { return w.bounds }

func (w *fakeWindow) MoveTo(x, y float64) {
	w.bounds.X, w.bounds.Y = x, y
}

func (w *fakeWindow) ResizeTo(width, height float64) {
	w.bounds.Width, w.bounds.Height = width, height
}

func (w *fakeWindow) Classify(x, y float64) Regions {
	b := w.bounds
	var r Regions

	withinX := x >= b.X-fakeGrab && x <= b.Right()+fakeGrab
	withinY := y >= b.Y-fakeGrab && y <= b.Bottom()+fakeGrab
	r.Edges[EdgeTop] = withinX && near(y, b.Y)
	r.Edges[EdgeRight] = withinY && near(x, b.Right())
	r.Edges[EdgeBottom] = withinX && near(y, b.Bottom())
	r.Edges[EdgeLeft] = withinY && near(x, b.X)
	onEdge := r.Edges[0] || r.Edges[1] || r.Edges[2] || r.Edges[3]

	r.Inside = b.Contains(x, y)
	r.Close = r.Inside && !onEdge &&
		x >= b.Right()-16 && x <= b.Right()-4 && y >= b.Y+4 && y <= b.Y+16
	r.TitleBar = r.Inside && !onEdge && !r.Close && y <= b.Y+fakeBar
	r.Content = r.Inside && !onEdge && y > b.Y+fakeBar
	return r
}

func near(v, edge float64) bool {
	return v >= edge-fakeGrab && v <= edge+fakeGrab
}

func (w *fakeWindow) Deleted() bool { return w.deleted }
func (w *fakeWindow) Close()        { w.deleted = true }

func (w *fakeWindow) Attach(c Content) {
	w.content = c
	if c != nil {
		c.Attach(w)
	}
}

func (w *fakeWindow) Update() error {
	w.updates++
	return w.updateErr
}

func (w *fakeWindow) ReceiveKey(ev KeyEvent) { w.keys = append(w.keys, ev) }

func (w *fakeWindow) Draw(_ *ebiten.Image, tint color.Color) {
	w.tint = tint
	w.drawn++
}

func (w *fakeWindow) Destroy() {
	w.destroyed = true
	if w.content != nil {
		w.content.Destroy()
	}
}

type fakeContent struct {
	attached  Window
	destroyed bool
}

func (c *fakeContent) Attach(w Window)              { c.attached = w }
func (c *fakeContent) Update() error                { return nil }
func (c *fakeContent) Draw(_ *ebiten.Image, _ Rect) {}
func (c *fakeContent) ReceiveKey(KeyEvent)          {}
func (c *fakeContent) Destroy()                     { c.destroyed = true }

// recordingCursor remembers every hint applied.
type recordingCursor struct {
	hints []Cursor
}

func (r *recordingCursor) SetCursor(c Cursor) { r.hints = append(r.hints, c) }
