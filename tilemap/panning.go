package tilemap

import (
	"github.com/OpticalFlyer/canvasdesk/proj"
)

// PanDirection represents a direction to pan the map
type PanDirection int

const (
	PanLeft PanDirection = iota
	PanRight
	PanUp
	PanDown
)

// PanSpeed in pixels per step
const PanSpeed = 50

// Pan moves the map center in the specified direction by PanSpeed pixels
func (tm *TileMap) Pan(dir PanDirection) {
	switch dir {
	case PanLeft:
		tm.PanBy(PanSpeed, 0)
	case PanRight:
		tm.PanBy(-PanSpeed, 0)
	case PanUp:
		tm.PanBy(0, PanSpeed)
	case PanDown:
		tm.PanBy(0, -PanSpeed)
	}
}

// PanBy moves the map by pixel offsets.
// Positive dx moves the map east on screen (the view goes west), positive dy
// moves it down (the view goes north). The center never leaves the world.
func (tm *TileMap) PanBy(dx, dy float64) {
	centerTileX, centerTileY := proj.LatLonToTileCoords(tm.CenterLat, tm.CenterLon, tm.Zoom)

	tm.CenterLat, tm.CenterLon = proj.TileCoordsToLatLon(
		centerTileX-dx/TileSize,
		centerTileY-dy/TileSize,
		tm.Zoom,
	)
}
