package sketchbook

import (
	"image/color"

	"github.com/esimov/sketchbook/geom"
	"golang.org/x/image/colornames"
)

var (
	paperColor = color.NRGBA(colornames.White)
	inkColor   = color.NRGBA(colornames.Black)
)

// Cap is the shape used to finish open strokes.
type Cap int

const (
	ButtCap Cap = iota
	RoundCap
	SquareCap
)

// ShapeKind identifies the primitive a Shape describes.
type ShapeKind int

const (
	// PolygonShape is a closed loop that may be filled, stroked or both.
	PolygonShape ShapeKind = iota
	// PolylineShape is an open chain of segments. It is only stroked.
	PolylineShape
	// CircleShape is centred on Points[0] with the given Radius.
	CircleShape
)

// Style describes how a shape is painted. A color with zero alpha is not painted.
type Style struct {
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64
	Cap         Cap
}

// HasFill reports whether the shape interior is painted.
func (s Style) HasFill() bool {
	return s.Fill.A > 0
}

// HasStroke reports whether the shape outline is painted.
func (s Style) HasStroke() bool {
	return s.Stroke.A > 0 && s.StrokeWidth > 0
}

// Shape is a single entry of the display list.
type Shape struct {
	Kind   ShapeKind
	Points []geom.Point
	Radius float64
	Style  Style
}

// Scene is the display list produced by a sketch. Scene coordinates are
// centred on the origin with the Y axis pointing upwards.
type Scene struct {
	Name       string
	Width      float64
	Height     float64
	Background color.NRGBA
	Shapes     []Shape
}

// NewScene returns an empty scene of the given size on white paper.
func NewScene(name string, width, height float64) *Scene {
	return &Scene{
		Name:       name,
		Width:      width,
		Height:     height,
		Background: paperColor,
	}
}

// ToScreen maps a scene coordinate to the top-left origin, Y-down space
// used by every renderer.
func (sc *Scene) ToScreen(p geom.Point) geom.Point {
	return geom.Pt(p.X+sc.Width/2, sc.Height/2-p.Y)
}

// Polygon appends a closed polygon. Empty polygons are skipped.
func (sc *Scene) Polygon(pts geom.Polygon, style Style) {
	if len(pts) == 0 {
		return
	}
	sc.Shapes = append(sc.Shapes, Shape{Kind: PolygonShape, Points: pts, Style: style})
}

// Quad appends the quadrilateral a, b, c, d.
func (sc *Scene) Quad(a, b, c, d geom.Point, style Style) {
	sc.Polygon(geom.Polygon{a, b, c, d}, style)
}

// Line appends a single segment.
func (sc *Scene) Line(a, b geom.Point, style Style) {
	sc.Polyline([]geom.Point{a, b}, style)
}

// Polyline appends an open chain. Chains with fewer than two points are skipped.
func (sc *Scene) Polyline(pts []geom.Point, style Style) {
	if len(pts) < 2 {
		return
	}
	sc.Shapes = append(sc.Shapes, Shape{Kind: PolylineShape, Points: pts, Style: style})
}

// Circle appends a circle of radius r centred on c.
func (sc *Scene) Circle(c geom.Point, r float64, style Style) {
	sc.Shapes = append(sc.Shapes, Shape{
		Kind:   CircleShape,
		Points: []geom.Point{c},
		Radius: r,
		Style:  style,
	})
}

// outline returns a stroke only style in ink color.
func outline(width float64) Style {
	return Style{Stroke: inkColor, StrokeWidth: width}
}
