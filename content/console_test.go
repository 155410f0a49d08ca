package content

import (
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/canvasdesk/space"
	"github.com/OpticalFlyer/canvasdesk/ui"
)

func typeText(c *Console, s string) {
	for _, r := range s {
		c.ReceiveKey(space.KeyEvent{Rune: r})
	}
}

func press(c space.Content, keys ...ebiten.Key) {
	for _, k := range keys {
		c.ReceiveKey(space.KeyEvent{Key: k})
	}
}

func TestConsoleEditing(t *testing.T) {
	c := NewConsole("")

	typeText(c, "helo")
	press(c, ebiten.KeyBackspace)
	typeText(c, "lo")
	assert.Equal(t, "hello", c.Line())

	// Letter keys arrive as key events too and must not duplicate text.
	press(c, ebiten.KeyH, ebiten.KeyE)
	c.ReceiveKey(space.KeyEvent{Rune: '\t'})
	assert.Equal(t, "hello", c.Line())

	press(c, ebiten.KeyEnter)
	assert.Equal(t, "", c.Line())
	assert.Equal(t, []string{"> hello", "hello"}, c.History())
}

func TestConsoleBackspaceOnEmptyLine(t *testing.T) {
	c := NewConsole("")

	press(c, ebiten.KeyBackspace)

	assert.Equal(t, "", c.Line())
}

func TestConsoleEscapeDiscardsLine(t *testing.T) {
	c := NewConsole("")
	typeText(c, "oops")

	press(c, ebiten.KeyEscape)

	assert.Equal(t, "", c.Line())
	assert.Empty(t, c.History())
}

func TestConsoleCommands(t *testing.T) {
	c := NewConsole("")

	typeText(c, "help")
	press(c, ebiten.KeyNumpadEnter)
	assert.Equal(t, []string{"> help", "commands: clear, exit, help"}, c.History())

	press(c, ebiten.KeyEnter)
	assert.Len(t, c.History(), 3)

	typeText(c, "clear")
	press(c, ebiten.KeyEnter)
	assert.Empty(t, c.History())
}

func TestConsoleExitClosesWindow(t *testing.T) {
	w := ui.NewWindow(3, space.Rect{Width: 200, Height: 200}, ui.DefaultChrome())
	c := NewConsole("Shell")
	w.Attach(c)
	assert.Equal(t, "Shell", w.Title)

	typeText(c, "exit")
	press(c, ebiten.KeyEnter)

	assert.True(t, w.Deleted())
}

func TestConsoleExitClosesThroughSpace(t *testing.T) {
	s := space.New(ui.NewFactory(ui.DefaultChrome()))
	id := s.AddWindow(0, 0, 200, 200, NewConsole(""))
	w, ok := s.Window(id)
	require.True(t, ok)

	// Focus it by clicking the content area.
	require.NoError(t, s.Update(space.Input{X: 100, Y: 100, PrevX: 100, PrevY: 100, Pressed: true}))
	s.OnMouseRelease()
	require.Equal(t, id, s.Focused())

	for _, r := range "exit" {
		s.ReceiveKeyEvent(space.KeyEvent{Rune: r})
	}
	s.ReceiveKeyEvent(space.KeyEvent{Key: ebiten.KeyEnter})
	require.True(t, w.Deleted())

	require.NoError(t, s.Update(space.Input{X: 500, Y: 500, PrevX: 500, PrevY: 500}))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, space.ID(0), s.Focused())
}

func TestConsoleScrollback(t *testing.T) {
	c := NewConsole("")
	c.scrollback = 4

	for i := range 3 {
		typeText(c, fmt.Sprint(i))
		press(c, ebiten.KeyEnter)
	}

	assert.Equal(t, []string{"> 1", "1", "> 2", "2"}, c.History())
}
