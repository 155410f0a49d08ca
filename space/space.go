// Package space manages a stack of on-canvas windows: z-order, selection,
// keyboard focus, and the pointer state machine that turns a per-frame
// pointer sample into move, resize, raise, focus and close actions.
//
// A WindowSpace is owned by a single frame loop and is not safe for
// concurrent use.
package space

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const (
	// DefaultBarHeight is the chrome title bar height assumed when none is
	// configured.
	DefaultBarHeight = 20.0

	// IDSpace bounds the randomly drawn window ids to [1, IDSpace].
	IDSpace = 1_000_000
)

var (
	defaultSelectedTint = color.RGBA{200, 100, 100, 255}
	defaultFocusedTint  = color.RGBA{100, 100, 200, 255}
)

// WindowSpace is the window manager for one canvas.
type WindowSpace struct {
	active  bool
	windows stack
	gesture Gesture
	focused ID

	// dragging is set while the button has been held across frames; mouse
	// analysis then replays lastHit instead of hit-testing so a fast
	// pointer cannot slip off the window it grabbed.
	dragging bool
	lastHit  bool

	cursor Cursor
	input  Input

	factory      Factory
	rng          *rand.Rand
	sink         CursorSink
	log          *zap.Logger
	barHeight    float64
	selectedTint color.Color
	focusedTint  color.Color
}

// Option configures a WindowSpace.
type Option func(*WindowSpace)

// WithRand sets the source window ids are drawn from.
func WithRand(r *rand.Rand) Option {
	return func(s *WindowSpace) { s.rng = r }
}

// WithCursorSink sets where cursor hints are sent.
func WithCursorSink(c CursorSink) Option {
	return func(s *WindowSpace) { s.sink = c }
}

// WithLogger sets the logger for window lifecycle and gesture events.
func WithLogger(l *zap.Logger) Option {
	return func(s *WindowSpace) { s.log = l }
}

// WithBarHeight sets the chrome title bar height used for the size floor.
func WithBarHeight(h float64) Option {
	return func(s *WindowSpace) { s.barHeight = h }
}

// WithTints sets the highlight colors for the selected and focused window.
func WithTints(selected, focused color.Color) Option {
	return func(s *WindowSpace) {
		s.selectedTint = selected
		s.focusedTint = focused
	}
}

// New creates an active, empty WindowSpace. factory builds the window
// entity for every AddWindow call.
func New(factory Factory, opts ...Option) *WindowSpace {
	s := &WindowSpace{
		active:       true,
		windows:      newStack(),
		cursor:       CursorDefault,
		factory:      factory,
		sink:         nopCursor{},
		log:          zap.NewNop(),
		barHeight:    DefaultBarHeight,
		selectedTint: defaultSelectedTint,
		focusedTint:  defaultFocusedTint,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Active reports whether the space reacts to input.
func (s *WindowSpace) Active() bool { return s.active }

// SetActive turns input handling on or off. An inactive space performs no
// hit-testing, cursor changes, drags or key forwarding. Deactivating cancels
// any gesture in progress, since the release that would end it may arrive
// while inactive.
func (s *WindowSpace) SetActive(active bool) {
	if !active && (s.dragging || s.gesture.Kind() != DragNone) {
		s.log.Debug("gesture cancelled", zap.Stringer("kind", s.gesture.Kind()))
		s.cancelGesture()
	}
	s.active = active
}

// MinExtent is the smallest width and height a window may have.
func (s *WindowSpace) MinExtent() float64 { return s.barHeight + minExtentPad }

// Len returns the number of windows.
func (s *WindowSpace) Len() int { return s.windows.len() }

// Windows returns the window ids in z-order, topmost first.
func (s *WindowSpace) Windows() []ID { return s.windows.snapshot() }

// Window looks up a window by id.
func (s *WindowSpace) Window(id ID) (Window, bool) { return s.windows.get(id) }

// Gesture returns the current drag mode.
func (s *WindowSpace) Gesture() Gesture { return s.gesture }

// Selected returns the window receiving move/resize deltas, or 0.
func (s *WindowSpace) Selected() ID { return s.gesture.Selected() }

// Focused returns the window receiving key events, or 0.
func (s *WindowSpace) Focused() ID { return s.focused }

// Hovered returns the window that claimed the pointer on the last pass, or
// 0. It is only tracked while no gesture is armed.
func (s *WindowSpace) Hovered() ID {
	if s.gesture.State == Hovering {
		return s.gesture.Window
	}
	return 0
}

// Dragging reports whether the button has been held across frames.
func (s *WindowSpace) Dragging() bool { return s.dragging }

// Cursor returns the last cursor hint applied.
func (s *WindowSpace) Cursor() Cursor { return s.cursor }

// AddWindow creates a window with a fresh id, attaches content and puts it
// on top of the stack.
func (s *WindowSpace) AddWindow(x, y, width, height float64, content Content) ID {
	id := s.newID()
	bounds := clampRect(Rect{X: x, Y: y, Width: width, Height: height}, s.MinExtent())

	w := s.factory(id, bounds)
	w.Attach(content)
	s.windows.push(w)

	s.log.Info("window added",
		zap.Int("id", int(id)),
		zap.Float64("x", bounds.X),
		zap.Float64("y", bounds.Y),
		zap.Float64("width", bounds.Width),
		zap.Float64("height", bounds.Height))
	return id
}

func (s *WindowSpace) newID() ID {
	for {
		id := ID(s.rng.IntN(IDSpace) + 1)
		if !s.windows.has(id) {
			return id
		}
	}
}

// RemoveWindow drops selection and focus references to the window, runs its
// destroy hook and takes it off the stack.
func (s *WindowSpace) RemoveWindow(id ID) error {
	w, ok := s.windows.get(id)
	if !ok {
		return fmt.Errorf("remove window %d: %w", id, ErrNotFound)
	}

	s.gesture.forget(id)
	if s.focused == id {
		s.focused = 0
	}
	w.Destroy()
	if _, err := s.windows.remove(id); err != nil {
		return err
	}

	s.log.Info("window removed", zap.Int("id", int(id)))
	return nil
}

// RaiseToTop moves the window to the top of the z-order.
func (s *WindowSpace) RaiseToTop(id ID) error {
	if err := s.windows.raise(id); err != nil {
		return err
	}
	s.log.Debug("window raised", zap.Int("id", int(id)))
	return nil
}

// Frame runs one frame: drag continuation or release depending on whether
// the button was held on the previous frame, then the update pass.
func (s *WindowSpace) Frame(in Input, wasPressed bool) error {
	switch {
	case in.Pressed && wasPressed:
		s.OnMouseDrag(in)
	case !in.Pressed && wasPressed:
		s.OnMouseRelease()
	}
	return s.Update(in)
}

// Update prunes deleted windows, advances every window's content and runs
// mouse analysis top to bottom until a window claims the pointer.
func (s *WindowSpace) Update(in Input) error {
	if !s.active {
		return nil
	}
	s.input = in
	s.setCursor(CursorDefault)

	claimed := false
	for _, id := range s.windows.snapshot() {
		w, ok := s.windows.get(id)
		if !ok {
			continue
		}
		if w.Deleted() {
			if err := s.RemoveWindow(id); err != nil {
				return err
			}
			continue
		}
		if err := w.Update(); err != nil {
			return fmt.Errorf("update window %d: %w", id, err)
		}
		if claimed {
			continue
		}
		hit, err := s.analyzeMouse(w)
		if err != nil {
			return err
		}
		claimed = hit
	}

	if !claimed {
		s.gesture.unhover()
		if in.Pressed {
			s.setFocus(0)
		}
	}
	return nil
}

// analyzeMouse hit-tests one window against the current pointer and applies
// the resulting cursor, selection and focus changes. Checks run in a fixed
// order and later ones override earlier ones. It reports whether the pointer
// is inside the window.
func (s *WindowSpace) analyzeMouse(w Window) (bool, error) {
	if s.dragging {
		return s.lastHit, nil
	}

	id := w.ID()
	in := s.input
	r := w.Classify(in.X, in.Y)

	if r.Close {
		s.setCursor(CursorPointer)
		if in.Pressed {
			if err := s.RemoveWindow(id); err != nil {
				return false, err
			}
			s.lastHit = false
			return false, nil
		}
	}

	for e := EdgeTop; e <= EdgeLeft; e++ {
		if !r.Edges[e] {
			continue
		}
		if e.Horizontal() {
			s.setCursor(CursorEWResize)
		} else {
			s.setCursor(CursorNSResize)
		}
		if in.Pressed {
			s.mustHave(id)
			s.gesture.beginResize(id, e)
			s.log.Debug("resize armed", zap.Int("id", int(id)), zap.Stringer("edge", e))
		}
	}

	if r.TitleBar {
		s.setCursor(CursorDefault)
		if in.Pressed {
			s.mustHave(id)
			s.gesture.beginMove(id)
			s.log.Debug("move armed", zap.Int("id", int(id)))
			if err := s.RaiseToTop(id); err != nil {
				return false, err
			}
		}
	} else {
		s.gesture.deselect()
	}

	if r.Content {
		s.setCursor(CursorText)
		if in.Pressed {
			s.setFocus(id)
		}
	}

	if r.Inside {
		s.gesture.hover(id)
	}
	s.lastHit = r.Inside
	return r.Inside, nil
}

// OnMouseDrag applies the pointer delta to the selected window according to
// the armed gesture. Call it on every frame the button is held after the
// frame it went down.
func (s *WindowSpace) OnMouseDrag(in Input) {
	if !s.active {
		return
	}
	s.dragging = true
	s.input = in

	id := s.gesture.Selected()
	if id == 0 {
		return
	}
	w, ok := s.windows.get(id)
	if !ok {
		s.gesture.forget(id)
		return
	}

	dx, dy := in.Delta()
	switch s.gesture.State {
	case Moving:
		r := moveBy(w.Bounds(), dx, dy)
		w.MoveTo(r.X, r.Y)
	case Resizing:
		r := resizeBy(w.Bounds(), s.gesture.Edge, dx, dy, s.MinExtent())
		w.MoveTo(r.X, r.Y)
		w.ResizeTo(r.Width, r.Height)
	}
}

// OnMouseRelease ends any gesture. Focus is kept. An inactive space still
// drops its drag state but leaves the cursor alone.
func (s *WindowSpace) OnMouseRelease() {
	if !s.active {
		s.cancelGesture()
		return
	}
	s.setCursor(CursorDefault)
	if g := s.gesture; g.Kind() != DragNone {
		s.log.Debug("gesture released",
			zap.Int("id", int(g.Window)),
			zap.Stringer("kind", g.Kind()))
	}
	s.cancelGesture()
}

func (s *WindowSpace) cancelGesture() {
	s.gesture.release()
	s.dragging = false
	s.lastHit = false
}

// ReceiveKeyEvent forwards ev to the focused window, if any.
func (s *WindowSpace) ReceiveKeyEvent(ev KeyEvent) {
	if !s.active || s.focused == 0 {
		return
	}
	if w, ok := s.windows.get(s.focused); ok {
		w.ReceiveKey(ev)
	}
}

// Draw renders the stack bottom to top so the topmost window is drawn last.
// The selected window gets the selected tint, otherwise the focused window
// gets the focused tint.
func (s *WindowSpace) Draw(dst *ebiten.Image) {
	selected := s.Selected()
	for i := s.windows.len() - 1; i >= 0; i-- {
		id := s.windows.order[i]
		var tint color.Color
		switch {
		case id == selected:
			tint = s.selectedTint
		case id == s.focused:
			tint = s.focusedTint
		}
		s.windows.byID[id].Draw(dst, tint)
	}
}

func (s *WindowSpace) setCursor(c Cursor) {
	s.sink.SetCursor(c)
	s.cursor = c
}

func (s *WindowSpace) setFocus(id ID) {
	if id != 0 {
		s.mustHave(id)
	}
	if s.focused == id {
		return
	}
	s.focused = id
	s.log.Debug("focus changed", zap.Int("id", int(id)))
}

func (s *WindowSpace) mustHave(id ID) {
	if !s.windows.has(id) {
		panic(fmt.Sprintf("space: window %d is not in the stack", id))
	}
}
