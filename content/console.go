package content

import (
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/OpticalFlyer/canvasdesk/space"
)

const (
	prompt      = "> "
	lineHeight  = 16
	textPadding = 4

	// DefaultScrollback is the number of history lines a console keeps.
	DefaultScrollback = 200
)

var _ space.Content = (*Console)(nil)

// Console is a single-line editor with a scrollback of committed lines.
//
// Commands:
//
//	clear  empty the scrollback
//	exit   close the hosting window
//	help   list commands
//
// Any other line is echoed into the scrollback.
type Console struct {
	title      string
	line       []rune
	history    []string
	scrollback int
	window     space.Window
}

// NewConsole returns an empty console. An empty title keeps the window's
// default one.
func NewConsole(title string) *Console {
	return &Console{title: title, scrollback: DefaultScrollback}
}

func (c *Console) Title() string { return c.title }

func (c *Console) Attach(w space.Window) { c.window = w }

func (c *Console) Update() error { return nil }

// Line returns the line being edited.
func (c *Console) Line() string { return string(c.line) }

// History returns the committed lines, oldest first.
func (c *Console) History() []string { return c.history }

func (c *Console) ReceiveKey(ev space.KeyEvent) {
	if ev.Rune != 0 {
		if unicode.IsPrint(ev.Rune) {
			c.line = append(c.line, ev.Rune)
		}
		return
	}

	switch ev.Key {
	case ebiten.KeyBackspace:
		if len(c.line) > 0 {
			c.line = c.line[:len(c.line)-1]
		}
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		c.commit()
	case ebiten.KeyEscape:
		c.line = c.line[:0]
	}
}

func (c *Console) commit() {
	line := string(c.line)
	c.line = c.line[:0]
	c.print(prompt + line)

	switch strings.TrimSpace(line) {
	case "":
	case "clear":
		c.history = c.history[:0]
	case "exit":
		if c.window != nil {
			c.window.Close()
		}
	case "help":
		c.print("commands: clear, exit, help")
	default:
		c.print(line)
	}
}

func (c *Console) print(s string) {
	c.history = append(c.history, s)
	if over := len(c.history) - c.scrollback; over > 0 {
		c.history = append(c.history[:0], c.history[over:]...)
	}
}

// Draw prints the tail of the scrollback that fits above the prompt line.
func (c *Console) Draw(dst *ebiten.Image, area space.Rect) {
	rows := max(1, (int(area.Height)-2*textPadding)/lineHeight)
	visible := c.history[max(0, len(c.history)-(rows-1)):]

	x := int(area.X) + textPadding
	y := int(area.Y) + textPadding
	for _, s := range visible {
		ebitenutil.DebugPrintAt(dst, s, x, y)
		y += lineHeight
	}
	ebitenutil.DebugPrintAt(dst, prompt+string(c.line)+"_", x, y)
}

func (c *Console) Destroy() {
	c.window = nil
}
