package geom

import "math"

// epsilon is the machine epsilon of float64. Determinants below it are
// treated as parallel lines.
const epsilon = 0x1p-52

// Polygon is an ordered, implicitly closed sequence of vertices.
// An empty polygon represents no region.
type Polygon []Point

// LineSegment is the directed segment from P to Q.
type LineSegment struct {
	P, Q Point
}

// Edge is one oriented boundary line of a clipping rectangle.
type Edge struct {
	Position  Point // anchor on the boundary
	Direction Point // along the boundary
	Inside    Point // perpendicular, towards the interior
}

// Contains reports whether p lies strictly on the interior side of e.
// Points exactly on the boundary line are not contained.
func (e Edge) Contains(p Point) bool {
	return p.Sub(e.Position).Dot(e.Inside) > 0
}

// Intersect returns the point where the segment crosses the infinite line
// through e. It reports false for parallel lines or when the crossing lies
// outside the segment.
func (e Edge) Intersect(s LineSegment) (Point, bool) {
	a, b := e.Position, e.Direction
	p, q := s.P, s.Q

	det := b.X*(p.Y-q.Y) - b.Y*(p.X-q.X)
	if math.Abs(det) < epsilon {
		return Point{}, false
	}

	t := (b.X*(a.Y-q.Y) - b.Y*(a.X-q.X)) / det
	if t < 0 || t > 1 {
		return Point{}, false
	}
	return p.Mul(t).Add(q.Mul(1 - t)), true
}

// Clip restricts poly to the interior of mask using the Sutherland–Hodgman
// algorithm. The input slice is left untouched. The result may contain
// duplicate vertices and is empty when poly lies entirely outside mask.
func Clip(poly Polygon, mask Rectangle) Polygon {
	if len(poly) == 0 {
		return Polygon{}
	}

	out := make(Polygon, len(poly))
	copy(out, poly)
	tmp := make(Polygon, 0, len(poly)+4)

	for _, edge := range mask.Edges() {
		if len(out) > 0 {
			prev := out[len(out)-1]
			for _, v := range out {
				if p, ok := edge.Intersect(LineSegment{prev, v}); ok {
					tmp = append(tmp, p)
				}
				if edge.Contains(v) {
					tmp = append(tmp, v)
				}
				prev = v
			}
		}
		out, tmp = tmp, out[:0]
	}
	return out
}

// Equivalent reports whether a and b describe the same vertex cycle up to
// rotation and reflection, comparing vertices with tolerance eps.
func Equivalent(a, b Polygon, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}
	for start := range n {
		if !b[start].Eq(a[0], eps) {
			continue
		}
		forward, backward := true, true
		for i := range n {
			if forward && !a[i].Eq(b[(start+i)%n], eps) {
				forward = false
			}
			if backward && !a[i].Eq(b[(start-i+n)%n], eps) {
				backward = false
			}
			if !forward && !backward {
				break
			}
		}
		if forward || backward {
			return true
		}
	}
	return false
}
