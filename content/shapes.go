package content

import (
	"fmt"
	"math"

	earcut "github.com/flywave/go-earcut"
	"github.com/jonas-p/go-shp"

	"github.com/OpticalFlyer/canvasdesk/proj"
	"github.com/OpticalFlyer/canvasdesk/space"
	"github.com/OpticalFlyer/canvasdesk/tilemap"
)

// point is a projected position in zoom-0 world pixels.
type point struct{ X, Y float64 }

type bbox struct {
	MinX, MinY, MaxX, MaxY float64
}

func emptyBox() bbox {
	return bbox{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

func (b *bbox) extend(x, y float64) {
	b.MinX = math.Min(b.MinX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxX = math.Max(b.MaxX, x)
	b.MaxY = math.Max(b.MaxY, y)
}

func (b bbox) empty() bool { return b.MinX > b.MaxX || b.MinY > b.MaxY }

// polygon is an outer ring with its holes, triangulated once at load.
type polygon struct {
	rings   [][]point
	indices []uint16 // nil when the polygon has too many vertices to fill
}

// layer is the projected geometry of one shapefile.
type layer struct {
	polygons []polygon
	lines    [][]point
	points   []point
	bounds   bbox
}

type projector func(x, y float64) point

// projectorFor picks degrees or meters from the extent of the raw data.
func projectorFor(raw bbox) projector {
	if raw.empty() || (proj.IsGeographic(raw.MinX, raw.MinY) && proj.IsGeographic(raw.MaxX, raw.MaxY)) {
		return func(x, y float64) point {
			tx, ty := proj.LatLonToTileCoords(y, x, 0)
			return point{tx * tilemap.TileSize, ty * tilemap.TileSize}
		}
	}
	return func(x, y float64) point {
		tx, ty := proj.WebMercatorToTileCoords(x, y, 0)
		return point{tx * tilemap.TileSize, ty * tilemap.TileSize}
	}
}

// buildLayer projects and triangulates shapes.
func buildLayer(shapes []shp.Shape) (*layer, error) {
	raw := emptyBox()
	for _, s := range shapes {
		b := s.BBox()
		raw.extend(b.MinX, b.MinY)
		raw.extend(b.MaxX, b.MaxY)
	}
	project := projectorFor(raw)

	l := &layer{bounds: emptyBox()}
	add := func(pts []shp.Point) []point {
		out := make([]point, len(pts))
		for i, p := range pts {
			out[i] = project(p.X, p.Y)
			l.bounds.extend(out[i].X, out[i].Y)
		}
		return out
	}

	for i, s := range shapes {
		switch s := s.(type) {
		case *shp.Polygon:
			if err := l.addPolygon(s.Parts, s.Points, add); err != nil {
				return nil, fmt.Errorf("shape %d: %w", i, err)
			}
		case *shp.PolygonZ:
			if err := l.addPolygon(s.Parts, s.Points, add); err != nil {
				return nil, fmt.Errorf("shape %d: %w", i, err)
			}
		case *shp.PolyLine:
			for _, r := range splitParts(s.Parts, s.Points) {
				l.lines = append(l.lines, add(r))
			}
		case *shp.PolyLineZ:
			for _, r := range splitParts(s.Parts, s.Points) {
				l.lines = append(l.lines, add(r))
			}
		case *shp.Point:
			l.points = append(l.points, add([]shp.Point{*s})...)
		case *shp.PointZ:
			l.points = append(l.points, add([]shp.Point{{X: s.X, Y: s.Y}})...)
		case *shp.MultiPoint:
			l.points = append(l.points, add(s.Points)...)
		}
	}
	return l, nil
}

func (l *layer) addPolygon(parts []int32, pts []shp.Point, add func([]shp.Point) []point) error {
	for _, group := range groupRings(splitParts(parts, pts)) {
		rings := make([][]point, len(group))
		for i, r := range group {
			rings[i] = add(r)
		}
		p, err := triangulate(rings)
		if err != nil {
			return err
		}
		l.polygons = append(l.polygons, p)
	}
	return nil
}

// splitParts cuts a multi-part point list at the part offsets.
func splitParts(parts []int32, pts []shp.Point) [][]shp.Point {
	if len(parts) == 0 {
		parts = []int32{0}
	}
	out := make([][]shp.Point, 0, len(parts))
	for i, start := range parts {
		end := int32(len(pts))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 || start >= end || int(end) > len(pts) {
			continue
		}
		out = append(out, pts[start:end])
	}
	return out
}

// signedArea is positive for counter-clockwise rings with y pointing up.
func signedArea(r []shp.Point) float64 {
	var a float64
	for i := range r {
		j := (i + 1) % len(r)
		a += r[i].X*r[j].Y - r[j].X*r[i].Y
	}
	return a / 2
}

// groupRings pairs clockwise outer rings with the counter-clockwise holes
// that follow them. Closing points are dropped and degenerate rings skipped.
func groupRings(rings [][]shp.Point) [][][]shp.Point {
	var groups [][][]shp.Point
	for _, r := range rings {
		if n := len(r); n > 1 && r[0] == r[n-1] {
			r = r[:n-1]
		}
		if len(r) < 3 {
			continue
		}
		if signedArea(r) > 0 && len(groups) > 0 {
			last := len(groups) - 1
			groups[last] = append(groups[last], r)
			continue
		}
		groups = append(groups, [][]shp.Point{r})
	}
	return groups
}

// triangulate runs earcut over an outer ring and its holes.
func triangulate(rings [][]point) (polygon, error) {
	p := polygon{rings: rings}

	var coords []float64
	var holes []int
	for i, r := range rings {
		if i > 0 {
			holes = append(holes, len(coords)/2)
		}
		for _, pt := range r {
			coords = append(coords, pt.X, pt.Y)
		}
	}
	if len(coords)/2 > math.MaxUint16 {
		return p, nil
	}

	tris, err := earcut.Earcut(coords, holes, 2)
	if err != nil {
		return p, fmt.Errorf("triangulating polygon: %w", err)
	}
	p.indices = make([]uint16, len(tris))
	for i, v := range tris {
		p.indices[i] = uint16(v)
	}
	return p, nil
}

// fit maps world pixels into area, preserving aspect ratio with a margin.
type fit struct {
	scale, offX, offY float64
}

const fitMargin = 8

func newFit(b bbox, area space.Rect) fit {
	if b.empty() {
		return fit{scale: 1, offX: area.X, offY: area.Y}
	}
	w := math.Max(b.MaxX-b.MinX, 1e-9)
	h := math.Max(b.MaxY-b.MinY, 1e-9)
	availW := math.Max(area.Width-2*fitMargin, 1)
	availH := math.Max(area.Height-2*fitMargin, 1)
	scale := math.Min(availW/w, availH/h)

	return fit{
		scale: scale,
		offX:  area.X + (area.Width-w*scale)/2 - b.MinX*scale,
		offY:  area.Y + (area.Height-h*scale)/2 - b.MinY*scale,
	}
}

func (f fit) apply(p point) (float32, float32) {
	return float32(p.X*f.scale + f.offX), float32(p.Y*f.scale + f.offY)
}
