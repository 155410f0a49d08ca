package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/OpticalFlyer/canvasdesk/config"
	"github.com/OpticalFlyer/canvasdesk/content"
	"github.com/OpticalFlyer/canvasdesk/logging"
	"github.com/OpticalFlyer/canvasdesk/space"
	"github.com/OpticalFlyer/canvasdesk/tilemap"
	"github.com/OpticalFlyer/canvasdesk/ui"
)

var backgroundColor = color.RGBA{40, 44, 52, 255}

// Host keys, handled by the desk and never forwarded to windows.
const (
	keyDebug      = ebiten.KeyF1
	keyNewConsole = ebiten.KeyF2
	keyNewMap     = ebiten.KeyF3
)

// wheelInterval throttles wheel zooming.
const wheelInterval = 100 * time.Millisecond

// Desk implements ebiten.Game around a WindowSpace.
type Desk struct {
	cfg       *config.Config
	space     *space.WindowSpace
	sampler   ui.Sampler
	touch     touchPointer
	log       *logging.Logger
	debugMode bool

	lastInput     space.Input
	lastWheelZoom time.Time
}

func newDesk(cfg *config.Config, log *logging.Logger, opts ...space.Option) (*Desk, error) {
	chrome := ui.Chrome{
		BarHeight: cfg.Chrome.BarHeight,
		EdgeGrab:  cfg.Chrome.EdgeGrab,
		CloseSize: cfg.Chrome.CloseSize,
	}
	opts = append([]space.Option{
		space.WithLogger(log.Component("space")),
		space.WithBarHeight(chrome.BarHeight),
		space.WithTints(cfg.Tints.Selected.Color(), cfg.Tints.Focused.Color()),
	}, opts...)

	d := &Desk{
		cfg:   cfg,
		space: space.New(ui.NewFactory(chrome), opts...),
		log:   log,
	}
	for i, w := range cfg.Windows {
		c, err := newContent(w, log)
		if err != nil {
			return nil, fmt.Errorf("window %d: %w", i, err)
		}
		d.space.AddWindow(w.X, w.Y, w.Width, w.Height, c)
	}
	return d, nil
}

func newContent(w config.Window, log *logging.Logger) (space.Content, error) {
	switch w.Kind {
	case config.KindConsole:
		return content.NewConsole(w.Title), nil
	case config.KindMap:
		return content.NewMapView(w.Title, w.Lat, w.Lon, w.Zoom,
			tilemap.WithLogger(log.Component("tilemap"))), nil
	case config.KindShape:
		return content.LoadShapeView(w.Title, w.Shapefile)
	default:
		return nil, fmt.Errorf("unknown window kind %q", w.Kind)
	}
}

func (d *Desk) Update() error {
	in, wasPressed := d.pointer()
	d.lastInput = in
	if err := d.space.Frame(in, wasPressed); err != nil {
		return err
	}

	for _, ev := range d.sampler.Keys() {
		if ev.Rune == 0 && d.hostKey(ev.Key) {
			continue
		}
		d.space.ReceiveKeyEvent(ev)
	}

	d.wheel()
	return nil
}

// pointer samples the primary touch when there is one, the mouse otherwise.
func (d *Desk) pointer() (space.Input, bool) {
	if x, y, pressed, ok := d.touch.sample(); ok {
		return d.sampler.Next(x, y, pressed)
	}
	return d.sampler.Mouse()
}

func (d *Desk) hostKey(k ebiten.Key) bool {
	switch k {
	case keyDebug:
		d.debugMode = !d.debugMode
	case keyNewConsole:
		d.open(config.Window{Kind: config.KindConsole, Width: 360, Height: 240})
	case keyNewMap:
		d.open(config.Window{Kind: config.KindMap, Width: 480, Height: 360, Zoom: 2})
	default:
		return false
	}
	return true
}

// open adds a window at the pointer.
func (d *Desk) open(w config.Window) {
	w.X, w.Y = d.lastInput.X, d.lastInput.Y
	c, err := newContent(w, d.log)
	if err != nil {
		d.log.Warn("open window", zap.Error(err))
		return
	}
	d.space.AddWindow(w.X, w.Y, w.Width, w.Height, c)
}

// wheel turns vertical scrolling into zoom keys for the focused window.
func (d *Desk) wheel() {
	_, dy := ebiten.Wheel()
	if dy == 0 || time.Since(d.lastWheelZoom) < wheelInterval {
		return
	}
	d.lastWheelZoom = time.Now()
	d.space.ReceiveKeyEvent(zoomKey(dy > 0))
}

func zoomKey(in bool) space.KeyEvent {
	if in {
		return space.KeyEvent{Key: ebiten.KeyEqual}
	}
	return space.KeyEvent{Key: ebiten.KeyMinus}
}

func (d *Desk) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	d.space.Draw(screen)

	if d.debugMode {
		ui.ShowDebugInfo(screen, d.space)
	}
}

func (d *Desk) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
