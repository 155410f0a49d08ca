package space

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNotFound is returned when an id or window is not part of the stack.
var ErrNotFound = errors.New("window not found")

// ID identifies a window within a WindowSpace. The zero ID means "no window".
type ID int

// Rect is a window's outer rectangle: top-left corner plus extent, in pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() &&
		y >= r.Y && y <= r.Bottom()
}

// Edge is one of the four sides of a window.
type Edge int

// Edges in the order they are evaluated during mouse analysis.
const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Horizontal reports whether dragging the edge changes the width.
func (e Edge) Horizontal() bool {
	return e == EdgeLeft || e == EdgeRight
}

// Regions is a window's classification of a single point. The flags are not
// mutually exclusive.
type Regions struct {
	Close    bool    // over the close affordance
	Edges    [4]bool // indexed by Edge
	TitleBar bool    // over the drag bar
	Content  bool    // over the content area
	Inside   bool    // inside the outer bounds
}

// Cursor is a cursor hint handed to a CursorSink.
type Cursor string

const (
	CursorDefault  Cursor = "default"
	CursorPointer  Cursor = "pointer"
	CursorEWResize Cursor = "ew-resize"
	CursorNSResize Cursor = "ns-resize"
	CursorText     Cursor = "text"
)

// CursorSink applies cursor hints to the display. It is called for every
// hint application, including repeats of the current one.
type CursorSink interface {
	SetCursor(c Cursor)
}

type nopCursor struct{}

func (nopCursor) SetCursor(Cursor) {}

// Input is the pointer state sampled once per frame.
type Input struct {
	X, Y         float64
	PrevX, PrevY float64
	Pressed      bool
}

// Delta returns the pointer movement since the previous frame.
func (in Input) Delta() (dx, dy float64) {
	return in.X - in.PrevX, in.Y - in.PrevY
}

// KeyEvent is a keyboard event forwarded to the focused window. Rune is set
// for text input and zero for special keys, in which case Key is meaningful.
type KeyEvent struct {
	Key  ebiten.Key
	Rune rune
}

// Content is the payload hosted by a window. The space only ever reaches it
// through its window.
type Content interface {
	Attach(w Window)
	Update() error
	Draw(dst *ebiten.Image, area Rect)
	ReceiveKey(ev KeyEvent)
	Destroy()
}

// Window is a movable, resizable pane managed by a WindowSpace.
type Window interface {
	ID() ID
	Bounds() Rect
	MoveTo(x, y float64)
	ResizeTo(width, height float64)

	// Classify reports which regions of the window contain (x, y).
	Classify(x, y float64) Regions

	// Deleted reports whether the window asked to be removed. Close sets it.
	Deleted() bool
	Close()

	Attach(c Content)
	Update() error
	ReceiveKey(ev KeyEvent)

	// Draw renders the window; tint is nil when the window is neither
	// selected nor focused.
	Draw(dst *ebiten.Image, tint color.Color)
	Destroy()
}

// Factory constructs the window entity for a freshly allocated id.
type Factory func(id ID, bounds Rect) Window
