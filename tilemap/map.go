// Package tilemap renders an OpenStreetMap-style slippy map into a viewport.
package tilemap

import (
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"math"
	"net/http"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/OpticalFlyer/canvasdesk/proj"
)

const (
	// TileSize is the size of map tiles in pixels
	TileSize = 256
	// MaxZoomLevel is the maximum zoom level supported
	MaxZoomLevel = 19

	// DefaultTileURL is the OpenStreetMap tile template: zoom, x, y.
	DefaultTileURL = "https://tile.openstreetmap.org/%d/%d/%d.png"
)

// TileRange defines the range of tiles needed to cover the viewport
type TileRange struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Empty reports whether the range covers no tile.
func (r TileRange) Empty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// TileKey uniquely identifies a map tile
type TileKey struct {
	Zoom int
	X    int
	Y    int
}

func (k TileKey) String() string {
	return fmt.Sprintf("%d/%d/%d", k.Zoom, k.X, k.Y)
}

// Valid reports whether the key addresses a tile that exists at its zoom.
func (k TileKey) Valid() bool {
	maxCoord := 1 << k.Zoom
	return k.Zoom >= 0 && k.Zoom <= MaxZoomLevel &&
		k.X >= 0 && k.X < maxCoord && k.Y >= 0 && k.Y < maxCoord
}

// Fetcher loads the image of a single tile.
type Fetcher func(ctx context.Context, key TileKey) (image.Image, error)

// cachedTile keeps the decoded image until the draw thread uploads it.
type cachedTile struct {
	src image.Image
	img *ebiten.Image
}

// TileMap manages the slippy map tile system
type TileMap struct {
	// View state
	CenterLat float64
	CenterLon float64
	Zoom      int
	Width     int
	Height    int

	fetch  Fetcher
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc

	// Tile management
	tileCache       map[TileKey]*cachedTile
	cacheMu         sync.RWMutex
	placeholderTile *ebiten.Image
	fetching        map[TileKey]bool
	fetchingMu      sync.Mutex
	wg              sync.WaitGroup
}

// Option configures a TileMap.
type Option func(*TileMap)

// WithFetcher replaces the HTTP tile source.
func WithFetcher(f Fetcher) Option {
	return func(tm *TileMap) { tm.fetch = f }
}

// WithLogger sets the logger used for fetch failures.
func WithLogger(l *zap.Logger) Option {
	return func(tm *TileMap) { tm.log = l }
}

// New creates a new TileMap instance
func New(width, height int, lat, lon float64, zoom int, opts ...Option) *TileMap {
	ctx, cancel := context.WithCancel(context.Background())
	tm := &TileMap{
		Width:     width,
		Height:    height,
		CenterLat: lat,
		CenterLon: lon,
		Zoom:      max(0, min(MaxZoomLevel, zoom)),
		fetch:     HTTPFetcher(http.DefaultClient, DefaultTileURL, "canvasdesk/1.0"),
		log:       zap.NewNop(),
		ctx:       ctx,
		cancel:    cancel,
		tileCache: make(map[TileKey]*cachedTile),
		fetching:  make(map[TileKey]bool),
	}
	for _, opt := range opts {
		opt(tm)
	}
	return tm
}

// SetViewport resizes the area the map is drawn into.
func (tm *TileMap) SetViewport(width, height int) {
	tm.Width, tm.Height = width, height
}

// Close cancels outstanding fetches and waits for them to return.
func (tm *TileMap) Close() {
	tm.cancel()
	tm.wg.Wait()
}

// CalculateVisibleTileRange determines which tiles are needed for the current view
func (tm *TileMap) CalculateVisibleTileRange() (TileRange, float64, float64) {
	centerXTileF, centerYTileF := proj.LatLonToTileCoords(tm.CenterLat, tm.CenterLon, tm.Zoom)

	halfW := float64(tm.Width) / 2.0 / TileSize
	halfH := float64(tm.Height) / 2.0 / TileSize

	minTileX := int(math.Floor(centerXTileF - halfW))
	minTileY := int(math.Floor(centerYTileF - halfH))
	maxTileX := int(math.Floor(centerXTileF + halfW))
	maxTileY := int(math.Floor(centerYTileF + halfH))

	maxCoord := 1 << tm.Zoom
	return TileRange{
		MinX: max(0, minTileX),
		MaxX: min(maxCoord-1, maxTileX),
		MinY: max(0, minTileY),
		MaxY: min(maxCoord-1, maxTileY),
	}, centerXTileF, centerYTileF
}

// Draw renders the visible tiles with the viewport's top-left corner at
// (originX, originY) of dst. Missing tiles are requested in the background.
func (tm *TileMap) Draw(dst *ebiten.Image, originX, originY float64, debugMode bool) TileRange {
	tileRange, centerXTileF, centerYTileF := tm.CalculateVisibleTileRange()

	redColor := color.RGBA{R: 255, A: 255}
	strokeWidth := float32(1.0)

	for ty := tileRange.MinY; ty <= tileRange.MaxY; ty++ {
		for tx := tileRange.MinX; tx <= tileRange.MaxX; tx++ {
			key := TileKey{Zoom: tm.Zoom, X: tx, Y: ty}
			tileImg := tm.tileImage(key)
			isFetching := false
			if tileImg == nil {
				isFetching = tm.request(key)
			}

			drawX := originX + float64(tm.Width)/2 - (centerXTileF-float64(tx))*TileSize
			drawY := originY + float64(tm.Height)/2 - (centerYTileF-float64(ty))*TileSize
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(drawX, drawY)

			if tileImg != nil {
				dst.DrawImage(tileImg, op)
			} else {
				dst.DrawImage(tm.placeholder(), op)
			}
			if !debugMode {
				continue
			}

			fill := color.RGBA{B: 100, A: 100}
			label := key.String()
			if tileImg == nil {
				fill = color.RGBA{R: 50, A: 50}
				label = "Needed: " + label
				if isFetching {
					fill = color.RGBA{R: 100, G: 100, A: 50}
					label = "Fetching: " + key.String()
				}
			}
			vector.DrawFilledRect(dst, float32(drawX), float32(drawY),
				TileSize, TileSize, fill, false)
			vector.StrokeRect(dst, float32(drawX), float32(drawY),
				TileSize, TileSize, strokeWidth, redColor, false)
			ebitenutil.DebugPrintAt(dst, label, int(drawX)+2, int(drawY)+2)
		}
	}

	return tileRange
}

func (tm *TileMap) placeholder() *ebiten.Image {
	if tm.placeholderTile == nil {
		tm.placeholderTile = ebiten.NewImage(TileSize, TileSize)
		tm.placeholderTile.Fill(color.Black)
	}
	return tm.placeholderTile
}

// tileImage returns the uploaded tile, uploading a freshly fetched one.
// Must be called from the draw thread.
func (tm *TileMap) tileImage(key TileKey) *ebiten.Image {
	tm.cacheMu.Lock()
	defer tm.cacheMu.Unlock()

	t, ok := tm.tileCache[key]
	if !ok {
		return nil
	}
	if t.img == nil {
		t.img = ebiten.NewImageFromImage(t.src)
		t.src = nil
	}
	return t.img
}

// Cached reports whether the tile has been fetched.
func (tm *TileMap) Cached(key TileKey) bool {
	tm.cacheMu.RLock()
	defer tm.cacheMu.RUnlock()
	_, ok := tm.tileCache[key]
	return ok
}

// request starts a fetch for key unless one is running. It reports whether
// a fetch is in flight afterwards.
func (tm *TileMap) request(key TileKey) bool {
	if tm.ctx.Err() != nil {
		return false
	}

	tm.fetchingMu.Lock()
	defer tm.fetchingMu.Unlock()
	if tm.fetching[key] {
		return true
	}
	tm.fetching[key] = true
	tm.wg.Add(1)
	go tm.fetchAndCacheTile(key)
	return true
}

// fetchAndCacheTile fetches and caches a single tile
func (tm *TileMap) fetchAndCacheTile(key TileKey) {
	defer tm.wg.Done()
	defer func() {
		tm.fetchingMu.Lock()
		delete(tm.fetching, key)
		tm.fetchingMu.Unlock()
	}()

	img, err := tm.fetch(tm.ctx, key)
	if err != nil {
		if tm.ctx.Err() == nil {
			tm.log.Warn("tile fetch failed", zap.Stringer("tile", key), zap.Error(err))
		}
		return
	}

	tm.cacheMu.Lock()
	tm.tileCache[key] = &cachedTile{src: img}
	tm.cacheMu.Unlock()
}

// HTTPFetcher fetches tiles from a z/x/y URL template such as
// DefaultTileURL.
func HTTPFetcher(client *http.Client, urlTemplate, userAgent string) Fetcher {
	return func(ctx context.Context, key TileKey) (image.Image, error) {
		if !key.Valid() {
			return nil, fmt.Errorf("tile coordinates (%d, %d) out of range for zoom %d", key.X, key.Y, key.Zoom)
		}

		tileURL := fmt.Sprintf(urlTemplate, key.Zoom, key.X, key.Y)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, tileURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request for %s failed: %w", tileURL, err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching %s failed: %w", tileURL, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to fetch tile %s: %s", tileURL, resp.Status)
		}

		img, _, err := image.Decode(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("decoding image %s failed: %w", tileURL, err)
		}
		return img, nil
	}
}
