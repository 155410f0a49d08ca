package content

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jonas-p/go-shp"

	"github.com/OpticalFlyer/canvasdesk/space"
)

var (
	fillColor   = color.RGBA{70, 130, 180, 160}
	strokeColor = color.RGBA{20, 40, 60, 255}
	pointColor  = color.RGBA{200, 60, 40, 255}

	whiteImage *ebiten.Image
)

const pointRadius = 2

var _ space.Content = (*ShapeView)(nil)

// ShapeView draws the geometry of an ESRI shapefile scaled to fit the
// content area. Polygons are filled and outlined, polylines stroked, points
// dotted. Coordinates may be WGS84 degrees or Web Mercator meters.
type ShapeView struct {
	title string
	layer *layer
}

// LoadShapeView reads every shape of the file at path. The title defaults
// to the file name.
func LoadShapeView(title, path string) (*ShapeView, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile %s: %w", path, err)
	}
	defer r.Close()

	var shapes []shp.Shape
	for r.Next() {
		_, s := r.Shape()
		shapes = append(shapes, s)
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading shapefile %s: %w", path, err)
	}

	if title == "" {
		title = filepath.Base(path)
	}
	return NewShapeView(title, shapes)
}

// NewShapeView builds a view over already decoded shapes.
func NewShapeView(title string, shapes []shp.Shape) (*ShapeView, error) {
	l, err := buildLayer(shapes)
	if err != nil {
		return nil, err
	}
	return &ShapeView{title: title, layer: l}, nil
}

func (v *ShapeView) Title() string { return v.title }

func (v *ShapeView) Attach(space.Window) {}

func (v *ShapeView) Update() error { return nil }

func (v *ShapeView) ReceiveKey(space.KeyEvent) {}

func (v *ShapeView) Destroy() {}

func (v *ShapeView) Draw(dst *ebiten.Image, area space.Rect) {
	f := newFit(v.layer.bounds, area)

	for _, p := range v.layer.polygons {
		if p.indices != nil {
			fillPolygon(dst, p, f)
		}
		for _, r := range p.rings {
			strokePath(dst, r, f, true)
		}
	}
	for _, l := range v.layer.lines {
		strokePath(dst, l, f, false)
	}
	for _, p := range v.layer.points {
		x, y := f.apply(p)
		vector.DrawFilledCircle(dst, x, y, pointRadius, pointColor, true)
	}
}

func fillPolygon(dst *ebiten.Image, p polygon, f fit) {
	r, g, b, a := fillColor.RGBA()
	var vs []ebiten.Vertex
	for _, ring := range p.rings {
		for _, pt := range ring {
			x, y := f.apply(pt)
			vs = append(vs, ebiten.Vertex{
				DstX:   x,
				DstY:   y,
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(r) / 0xffff,
				ColorG: float32(g) / 0xffff,
				ColorB: float32(b) / 0xffff,
				ColorA: float32(a) / 0xffff,
			})
		}
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, p.indices, white(), op)
}

func strokePath(dst *ebiten.Image, pts []point, f fit, closed bool) {
	if len(pts) < 2 {
		return
	}
	var path vector.Path
	x, y := f.apply(pts[0])
	path.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y := f.apply(p)
		path.LineTo(x, y)
	}
	if closed {
		path.Close()
	}

	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 1})
	cr, cg, cb, ca := strokeColor.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	dst.DrawTriangles(vs, is, white(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// white returns a 1x1 white source for DrawTriangles.
func white() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}
