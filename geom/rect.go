package geom

// Rectangle is an axis aligned rectangle given by its bottom-left (Min)
// and top-right (Max) corners.
type Rectangle struct {
	Min, Max Point
}

// Rect returns the rectangle spanned by (x0, y0) and (x1, y1).
// The corners are not reordered.
func Rect(x0, y0, x1, y1 float64) Rectangle {
	return Rectangle{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

func (r Rectangle) BottomLeft() Point  { return r.Min }
func (r Rectangle) TopLeft() Point     { return Pt(r.Min.X, r.Max.Y) }
func (r Rectangle) TopRight() Point    { return r.Max }
func (r Rectangle) BottomRight() Point { return Pt(r.Max.X, r.Min.Y) }

// Span returns the diagonal vector from Min to Max.
func (r Rectangle) Span() Point {
	return r.Max.Sub(r.Min)
}

// Dx returns the width of r.
func (r Rectangle) Dx() float64 {
	return r.Max.X - r.Min.X
}

// Dy returns the height of r.
func (r Rectangle) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of r.
func (r Rectangle) Center() Point {
	return r.Min.Add(r.Span().Mul(0.5))
}

// Area returns the area of r.
func (r Rectangle) Area() float64 {
	return r.Dx() * r.Dy()
}

// Polygon returns the corners of r in counter-clockwise order starting at
// the bottom-left corner.
func (r Rectangle) Polygon() Polygon {
	return Polygon{r.BottomLeft(), r.BottomRight(), r.TopRight(), r.TopLeft()}
}

// Edges returns the four boundary edges of r in clipping order. Each edge
// points its Inside vector towards the interior of the rectangle.
func (r Rectangle) Edges() [4]Edge {
	bl, tl, tr, br := r.BottomLeft(), r.TopLeft(), r.TopRight(), r.BottomRight()
	return [4]Edge{
		{Position: bl, Direction: tl.Sub(bl), Inside: br.Sub(bl)},
		{Position: tl, Direction: tr.Sub(tl), Inside: bl.Sub(tl)},
		{Position: tr, Direction: br.Sub(tr), Inside: tl.Sub(tr)},
		{Position: br, Direction: bl.Sub(br), Inside: tr.Sub(br)},
	}
}
