package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/canvasdesk/space"
)

var _ space.Window = (*Window)(nil)

// Window is a decorated pane: a title bar with a close box, a border that can
// be grabbed on all four sides, and a content area below the bar.
type Window struct {
	id            space.ID
	X, Y          float64
	Width, Height float64
	Title         string

	chrome  Chrome
	close   closeButton
	content space.Content
	deleted bool
}

// NewWindow creates a window titled "Window#<id>".
func NewWindow(id space.ID, bounds space.Rect, chrome Chrome) *Window {
	return &Window{
		id:     id,
		X:      bounds.X,
		Y:      bounds.Y,
		Width:  bounds.Width,
		Height: bounds.Height,
		Title:  fmt.Sprintf("Window#%d", id),
		chrome: chrome,
		close:  newCloseButton(chrome),
	}
}

// NewFactory returns a space.Factory building Windows with the given chrome.
func NewFactory(chrome Chrome) space.Factory {
	return func(id space.ID, bounds space.Rect) space.Window {
		return NewWindow(id, bounds, chrome)
	}
}

func (w *Window) ID() space.ID { return w.id }

func (w *Window) Bounds() space.Rect {
	return space.Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}

func (w *Window) MoveTo(x, y float64) {
	w.X, w.Y = x, y
}

func (w *Window) ResizeTo(width, height float64) {
	w.Width, w.Height = width, height
}

// ContentArea is the part of the window below the title bar.
func (w *Window) ContentArea() space.Rect {
	return space.Rect{
		X:      w.X,
		Y:      w.Y + w.chrome.BarHeight,
		Width:  w.Width,
		Height: math.Max(0, w.Height-w.chrome.BarHeight),
	}
}

// edges reports which borders (x, y) is within grab distance of.
func (w *Window) edges(x, y float64) [4]bool {
	g := w.chrome.EdgeGrab
	b := w.Bounds()

	spanX := x >= b.X-g && x <= b.Right()+g
	spanY := y >= b.Y-g && y <= b.Bottom()+g

	var e [4]bool
	e[space.EdgeTop] = spanX && y >= b.Y-g && y <= b.Y+g
	e[space.EdgeRight] = spanY && x >= b.Right()-g && x <= b.Right()+g
	e[space.EdgeBottom] = spanX && y >= b.Bottom()-g && y <= b.Bottom()+g
	e[space.EdgeLeft] = spanY && x >= b.X-g && x <= b.X+g
	return e
}

// Classify implements space.Window. The title bar and content area stop short
// of the grab zones and the title bar excludes the close box, so the cursor
// hint a region sets is not overwritten by a later check.
func (w *Window) Classify(x, y float64) space.Regions {
	var r space.Regions
	r.Edges = w.edges(x, y)
	onEdge := r.Edges[0] || r.Edges[1] || r.Edges[2] || r.Edges[3]

	r.Inside = w.Bounds().Contains(x, y)
	if !r.Inside || onEdge {
		return r
	}

	r.Close = w.close.contains(w.Bounds(), x, y)
	barBottom := w.Y + w.chrome.BarHeight
	r.TitleBar = !r.Close && y <= barBottom
	r.Content = y > barBottom
	return r
}

func (w *Window) Deleted() bool { return w.deleted }

// Close flags the window for removal on the next frame.
func (w *Window) Close() { w.deleted = true }

// Attach hosts c in the window. Content implementing Titled renames it.
func (w *Window) Attach(c space.Content) {
	w.content = c
	if c == nil {
		return
	}
	if t, ok := c.(Titled); ok && t.Title() != "" {
		w.Title = t.Title()
	}
	c.Attach(w)
}

func (w *Window) Update() error {
	if w.content == nil {
		return nil
	}
	return w.content.Update()
}

func (w *Window) ReceiveKey(ev space.KeyEvent) {
	if w.content != nil {
		w.content.ReceiveKey(ev)
	}
}

func (w *Window) Destroy() {
	if w.content != nil {
		w.content.Destroy()
		w.content = nil
	}
}

// Draw renders chrome and content. A non-nil tint colors the title bar and
// thickens the border.
func (w *Window) Draw(screen *ebiten.Image, tint color.Color) {
	x, y := float32(w.X), float32(w.Y)
	width, height := float32(w.Width), float32(w.Height)
	bar := float32(w.chrome.BarHeight)

	vector.DrawFilledRect(screen, x, y, width, height, bodyColor, true)

	if w.content != nil {
		area := w.ContentArea()
		clip := image.Rect(
			int(area.X), int(area.Y),
			int(math.Ceil(area.Right())), int(math.Ceil(area.Bottom())),
		)
		if sub, ok := screen.SubImage(clip).(*ebiten.Image); ok {
			w.content.Draw(sub, area)
		}
	}

	barColor := titleColor
	stroke := float32(1)
	border := color.Color(borderColor)
	if tint != nil {
		r, g, b, _ := tint.RGBA()
		barColor = color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), panelAlpha}
		stroke = 2
		border = tint
	}
	vector.DrawFilledRect(screen, x, y, width, bar, barColor, true)
	ebitenutil.DebugPrintAt(screen, w.Title, int(w.X)+4, int(w.Y)+2)
	w.close.Draw(screen, w.Bounds())

	vector.StrokeRect(screen, x, y, width, height, stroke, border, true)
}
