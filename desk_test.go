package main

import (
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/canvasdesk/config"
	"github.com/OpticalFlyer/canvasdesk/content"
	"github.com/OpticalFlyer/canvasdesk/logging"
	"github.com/OpticalFlyer/canvasdesk/space"
	"github.com/OpticalFlyer/canvasdesk/ui"
)

func testDesk(t *testing.T, cfg *config.Config) *Desk {
	t.Helper()
	d, err := newDesk(cfg, logging.Nop(), space.WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)
	return d
}

func TestNewDeskOpensConfiguredWindows(t *testing.T) {
	d := testDesk(t, config.Default())

	ids := d.space.Windows()
	require.Len(t, ids, 2)

	top, _ := d.space.Window(ids[0])
	bottom, _ := d.space.Window(ids[1])
	assert.Equal(t, "Map", top.(*ui.Window).Title)
	assert.Equal(t, "Console", bottom.(*ui.Window).Title)
	assert.Equal(t, space.Rect{X: 440, Y: 80, Width: 520, Height: 400}, top.Bounds())
}

func TestNewDeskUsesChrome(t *testing.T) {
	cfg := config.Default()
	cfg.Chrome.BarHeight = 40
	cfg.Windows = []config.Window{{Kind: config.KindConsole, Width: 50, Height: 50}}

	d := testDesk(t, cfg)

	assert.Equal(t, 140.0, d.space.MinExtent())
	w, _ := d.space.Window(d.space.Windows()[0])
	assert.Equal(t, space.Rect{Width: 140, Height: 140}, w.Bounds())
}

func TestNewDeskShapeError(t *testing.T) {
	cfg := config.Default()
	cfg.Windows = []config.Window{{Kind: config.KindShape, Width: 200, Height: 200, Shapefile: "missing.shp"}}

	_, err := newDesk(cfg, logging.Nop())

	assert.ErrorContains(t, err, "window 0: opening shapefile missing.shp")
}

func TestNewContentKinds(t *testing.T) {
	c, err := newContent(config.Window{Kind: config.KindConsole, Title: "sh"}, logging.Nop())
	require.NoError(t, err)
	assert.IsType(t, &content.Console{}, c)

	c, err = newContent(config.Window{Kind: config.KindMap, Zoom: 3}, logging.Nop())
	require.NoError(t, err)
	assert.IsType(t, &content.MapView{}, c)
	c.Destroy()

	_, err = newContent(config.Window{Kind: "browser"}, logging.Nop())
	assert.ErrorContains(t, err, `unknown window kind "browser"`)
}

func TestHostKeys(t *testing.T) {
	cfg := config.Default()
	cfg.Windows = nil
	d := testDesk(t, cfg)
	d.lastInput = space.Input{X: 30, Y: 40}

	assert.True(t, d.hostKey(keyDebug))
	assert.True(t, d.debugMode)

	assert.True(t, d.hostKey(keyNewConsole))
	require.Equal(t, 1, d.space.Len())
	w, _ := d.space.Window(d.space.Windows()[0])
	assert.Equal(t, space.Rect{X: 30, Y: 40, Width: 360, Height: 240}, w.Bounds())

	assert.True(t, d.hostKey(keyNewMap))
	assert.Equal(t, 2, d.space.Len())

	assert.False(t, d.hostKey(ebiten.KeyA))
}

func TestZoomKey(t *testing.T) {
	assert.Equal(t, space.KeyEvent{Key: ebiten.KeyEqual}, zoomKey(true))
	assert.Equal(t, space.KeyEvent{Key: ebiten.KeyMinus}, zoomKey(false))
}

func TestContainsTouchID(t *testing.T) {
	ids := []ebiten.TouchID{3, 7}

	assert.True(t, containsTouchID(ids, 7))
	assert.False(t, containsTouchID(ids, 4))
}
