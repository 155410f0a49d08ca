package tilemap

import (
	"github.com/OpticalFlyer/canvasdesk/proj"
)

// ScreenToWorld converts viewport coordinates to tile coordinates
func (tm *TileMap) ScreenToWorld(screenX, screenY float64) (tileX, tileY float64) {
	centerTileX, centerTileY := proj.LatLonToTileCoords(tm.CenterLat, tm.CenterLon, tm.Zoom)

	tileX = centerTileX + (screenX-float64(tm.Width)/2)/TileSize
	tileY = centerTileY + (screenY-float64(tm.Height)/2)/TileSize
	return tileX, tileY
}

// ZoomAtPoint zooms one level while keeping the world point under
// (screenX, screenY) at the same viewport location. Points outside the world
// do not zoom.
func (tm *TileMap) ZoomAtPoint(zoomIn bool, screenX, screenY float64) {
	if (zoomIn && tm.Zoom >= MaxZoomLevel) || (!zoomIn && tm.Zoom <= 0) {
		return
	}

	worldX, worldY := tm.ScreenToWorld(screenX, screenY)

	n := proj.TileCount(tm.Zoom)
	if worldX < 0 || worldX > n || worldY < 0 || worldY > n {
		return
	}

	scale := 2.0
	if zoomIn {
		tm.Zoom++
	} else {
		tm.Zoom--
		scale = 0.5
	}

	newCenterX := worldX*scale - (screenX-float64(tm.Width)/2)/TileSize
	newCenterY := worldY*scale - (screenY-float64(tm.Height)/2)/TileSize

	tm.CenterLat, tm.CenterLon = proj.TileCoordsToLatLon(newCenterX, newCenterY, tm.Zoom)
}
