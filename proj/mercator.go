// Package proj holds the Web Mercator math shared by map and shape panes.
package proj

import "math"

const (
	// MaxLat is the latitude at which Web Mercator is cut off.
	MaxLat   = 85.0511
	MinLat   = -MaxLat
	MaxZoom  = 21
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi

	// maxMeters is the half-width of the EPSG:3857 plane.
	maxMeters = 20037508.34
)

// pow2 contains pre-calculated powers of 2 for zoom levels 0-21
var pow2 = [MaxZoom + 1]float64{
	1, 2, 4, 8, 16, 32, 64, 128, 256, 512,
	1024, 2048, 4096, 8192, 16384, 32768, 65536,
	131072, 262144, 524288, 1048576, 2097152,
}

// TileCount returns the number of tiles along one axis at zoom.
// Out-of-range zooms are clamped to [0, MaxZoom].
func TileCount(zoom int) float64 {
	return pow2[ClampZoom(zoom)]
}

// ClampZoom limits zoom to the supported levels.
func ClampZoom(zoom int) int {
	if zoom < 0 {
		return 0
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

// LatLonToTileCoords converts WGS84 coordinates to fractional Web Mercator
// tile coordinates at the specified zoom level. Latitude is clamped to
// [MinLat, MaxLat].
func LatLonToTileCoords(lat, lon float64, zoom int) (x, y float64) {
	if lat > MaxLat {
		lat = MaxLat
	} else if lat < MinLat {
		lat = MinLat
	}

	n := TileCount(zoom)
	x = (lon + 180.0) * (n / 360.0)

	if lat >= MaxLat {
		return x, 0
	}
	if lat <= MinLat {
		return x, n
	}

	sinLat := math.Sin(lat * degToRad)
	y = n * (0.5 - 0.25*math.Log((1.0+sinLat)/(1.0-sinLat))/math.Pi)

	return x, y
}

// TileCoordsToLatLon is the inverse of LatLonToTileCoords. Tile coordinates
// outside the world are clamped to its edges first.
func TileCoordsToLatLon(x, y float64, zoom int) (lat, lon float64) {
	n := TileCount(zoom)
	x = math.Max(0, math.Min(n, x))
	y = math.Max(0, math.Min(n, y))

	lon = x/n*360.0 - 180.0
	lat = math.Atan(math.Sinh(math.Pi*(1-2*y/n))) * radToDeg
	return math.Max(MinLat, math.Min(MaxLat, lat)), lon
}

// WebMercatorToTileCoords converts EPSG:3857 coordinates in meters to
// fractional tile coordinates at the specified zoom level.
func WebMercatorToTileCoords(x, y float64, zoom int) (tileX, tileY float64) {
	normalizedX := (x + maxMeters) / (2 * maxMeters)
	normalizedY := 1 - ((y + maxMeters) / (2 * maxMeters))

	n := TileCount(zoom)
	return normalizedX * n, normalizedY * n
}

// IsGeographic reports whether a point looks like lon/lat degrees rather
// than projected meters.
func IsGeographic(x, y float64) bool {
	return math.Abs(x) <= 180 && math.Abs(y) <= 90
}
