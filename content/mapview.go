package content

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/canvasdesk/space"
	"github.com/OpticalFlyer/canvasdesk/tilemap"
)

var _ space.Content = (*MapView)(nil)

// MapView shows a slippy map in the content area.
//
// Keys: = and numpad + zoom in, - and numpad - zoom out, arrows pan,
// Home restores the initial view, D toggles the tile overlay.
type MapView struct {
	title string
	tiles *tilemap.TileMap
	debug bool

	homeLat, homeLon float64
	homeZoom         int
}

// NewMapView centers a map on (lat, lon) at zoom.
func NewMapView(title string, lat, lon float64, zoom int, opts ...tilemap.Option) *MapView {
	tm := tilemap.New(0, 0, lat, lon, zoom, opts...)
	return &MapView{
		title:    title,
		tiles:    tm,
		homeLat:  tm.CenterLat,
		homeLon:  tm.CenterLon,
		homeZoom: tm.Zoom,
	}
}

func (m *MapView) Title() string { return m.title }

// Map exposes the underlying tile map.
func (m *MapView) Map() *tilemap.TileMap { return m.tiles }

func (m *MapView) Attach(space.Window) {}

func (m *MapView) Update() error { return nil }

func (m *MapView) ReceiveKey(ev space.KeyEvent) {
	if ev.Rune != 0 {
		return
	}

	cx, cy := float64(m.tiles.Width)/2, float64(m.tiles.Height)/2
	switch ev.Key {
	case ebiten.KeyEqual, ebiten.KeyNumpadAdd:
		m.tiles.ZoomAtPoint(true, cx, cy)
	case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
		m.tiles.ZoomAtPoint(false, cx, cy)
	case ebiten.KeyArrowLeft:
		m.tiles.Pan(tilemap.PanLeft)
	case ebiten.KeyArrowRight:
		m.tiles.Pan(tilemap.PanRight)
	case ebiten.KeyArrowUp:
		m.tiles.Pan(tilemap.PanUp)
	case ebiten.KeyArrowDown:
		m.tiles.Pan(tilemap.PanDown)
	case ebiten.KeyHome:
		m.tiles.CenterLat, m.tiles.CenterLon = m.homeLat, m.homeLon
		m.tiles.Zoom = m.homeZoom
	case ebiten.KeyD:
		m.debug = !m.debug
	}
}

func (m *MapView) Draw(dst *ebiten.Image, area space.Rect) {
	m.tiles.SetViewport(int(area.Width), int(area.Height))
	m.tiles.Draw(dst, area.X, area.Y, m.debug)
}

// Destroy stops outstanding tile fetches.
func (m *MapView) Destroy() {
	m.tiles.Close()
}
