package sketchbook

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/esimov/sketchbook/geom"
)

// circleSegments is the number of sides of the polygon approximating a circle.
const circleSegments = 64

// draw paints the scene centred in the window, scaled to fit.
func (g *Gui) draw(gtx layout.Context) {
	paint.Fill(gtx.Ops, g.cfg.background)

	sc := g.scene
	if sc == nil || sc.Width <= 0 || sc.Height <= 0 {
		return
	}
	size := layout.FPt(gtx.Constraints.Max)
	scale := min(size.X/float32(sc.Width), size.Y/float32(sc.Height))
	offset := f32.Pt(
		(size.X-float32(sc.Width)*scale)/2,
		(size.Y-float32(sc.Height)*scale)/2,
	)
	tr := f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(scale, scale)).Offset(offset)
	defer op.Affine(tr).Push(gtx.Ops).Pop()

	paper := clip.Rect{Max: image.Pt(int(math.Ceil(sc.Width)), int(math.Ceil(sc.Height)))}
	paint.FillShape(gtx.Ops, sc.Background, paper.Op())

	for _, s := range sc.Shapes {
		drawShape(gtx.Ops, sc, s)
	}
}

// drawShape adds the paint operations of a single shape.
func drawShape(ops *op.Ops, sc *Scene, s Shape) {
	pts := s.Points
	if s.Kind == CircleShape {
		pts = circlePoints(s.Points[0], s.Radius)
	}
	screen := make([]f32.Point, len(pts))
	for i, p := range pts {
		q := sc.ToScreen(p)
		screen[i] = f32.Pt(float32(q.X), float32(q.Y))
	}

	closed := s.Kind != PolylineShape
	if closed && s.Style.HasFill() {
		paint.FillShape(ops, s.Style.Fill, clip.Outline{Path: tracePath(ops, screen, true)}.Op())
	}
	if !s.Style.HasStroke() {
		return
	}
	width := float32(s.Style.StrokeWidth)
	if !closed && s.Style.Cap == SquareCap {
		screen = extendEnds(screen, width/2)
	}
	paint.FillShape(ops, s.Style.Stroke, clip.Stroke{
		Path:  tracePath(ops, screen, closed),
		Width: width,
	}.Op())
	if !closed && s.Style.Cap == RoundCap {
		for _, end := range []f32.Point{screen[0], screen[len(screen)-1]} {
			dot := circleScreen(end, width/2)
			paint.FillShape(ops, s.Style.Stroke, clip.Outline{Path: tracePath(ops, dot, true)}.Op())
		}
	}
}

func tracePath(ops *op.Ops, pts []f32.Point, closed bool) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	if closed {
		p.Close()
	}
	return p.End()
}

// extendEnds moves the first and last point of an open chain outwards by d.
func extendEnds(pts []f32.Point, d float32) []f32.Point {
	if len(pts) < 2 {
		return pts
	}
	out := append([]f32.Point(nil), pts...)
	stretch := func(p, toward f32.Point) f32.Point {
		v := p.Sub(toward)
		n := float32(math.Hypot(float64(v.X), float64(v.Y)))
		if n == 0 {
			return p
		}
		return p.Add(v.Mul(d / n))
	}
	last := len(out) - 1
	out[0] = stretch(pts[0], pts[1])
	out[last] = stretch(pts[last], pts[last-1])
	return out
}

func circlePoints(c geom.Point, r float64) []geom.Point {
	pts := make([]geom.Point, circleSegments)
	for i := range pts {
		s, co := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		pts[i] = c.Add(geom.Pt(co*r, s*r))
	}
	return pts
}

func circleScreen(c f32.Point, r float32) []f32.Point {
	pts := make([]f32.Point, 0, circleSegments)
	for _, p := range circlePoints(geom.Pt(float64(c.X), float64(c.Y)), float64(r)) {
		pts = append(pts, f32.Pt(float32(p.X), float32(p.Y)))
	}
	return pts
}
