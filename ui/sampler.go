package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/canvasdesk/space"
)

// Sampler turns ebiten's polled input into per-frame snapshots for a
// WindowSpace. It remembers the previous pointer sample.
type Sampler struct {
	x, y    float64
	pressed bool
	started bool

	keys  []ebiten.Key
	runes []rune
}

// Next records this frame's pointer and returns the snapshot together with
// whether the button was held on the previous frame.
func (s *Sampler) Next(x, y float64, pressed bool) (space.Input, bool) {
	if !s.started {
		s.x, s.y = x, y
		s.started = true
	}
	in := space.Input{
		X:       x,
		Y:       y,
		PrevX:   s.x,
		PrevY:   s.y,
		Pressed: pressed,
	}
	wasPressed := s.pressed
	s.x, s.y, s.pressed = x, y, pressed
	return in, wasPressed
}

// Mouse samples the cursor position and the left mouse button.
func (s *Sampler) Mouse() (space.Input, bool) {
	x, y := ebiten.CursorPosition()
	return s.Next(float64(x), float64(y), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// Keys returns the key events of this frame.
func (s *Sampler) Keys() []space.KeyEvent {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	s.runes = ebiten.AppendInputChars(s.runes[:0])
	return KeyEvents(s.keys, s.runes)
}

// KeyEvents builds key events: one per pressed key, then one per typed
// character.
func KeyEvents(keys []ebiten.Key, runes []rune) []space.KeyEvent {
	if len(keys)+len(runes) == 0 {
		return nil
	}
	events := make([]space.KeyEvent, 0, len(keys)+len(runes))
	for _, k := range keys {
		events = append(events, space.KeyEvent{Key: k})
	}
	for _, r := range runes {
		events = append(events, space.KeyEvent{Rune: r})
	}
	return events
}
