package subdiv

import (
	"math"

	"github.com/esimov/sketchbook/geom"
)

// Quad is an axis aligned rectangle with a fill color.
type Quad struct {
	Min, Max geom.Point
	Color    Color
}

// ContainsX reports whether x lies strictly between the vertical sides of q.
func (q Quad) ContainsX(x float64) bool {
	return q.Min.X < x && x < q.Max.X
}

// ContainsY reports whether y lies strictly between the horizontal sides of q.
func (q Quad) ContainsY(y float64) bool {
	return q.Min.Y < y && y < q.Max.Y
}

// SplitX cuts q along the vertical line at x into a left and a right half.
func (q Quad) SplitX(x float64) [2]Quad {
	return [2]Quad{
		{Min: q.Min, Max: geom.Pt(x, q.Max.Y), Color: q.Color},
		{Min: geom.Pt(x, q.Min.Y), Max: q.Max, Color: q.Color},
	}
}

// SplitY cuts q along the horizontal line at y into a bottom and a top half.
func (q Quad) SplitY(y float64) [2]Quad {
	return [2]Quad{
		{Min: q.Min, Max: geom.Pt(q.Max.X, y), Color: q.Color},
		{Min: geom.Pt(q.Min.X, y), Max: q.Max, Color: q.Color},
	}
}

// Rect returns the extent of q.
func (q Quad) Rect() geom.Rectangle {
	return geom.Rectangle{Min: q.Min, Max: q.Max}
}

// Area returns the area covered by q.
func (q Quad) Area() float64 {
	return q.Rect().Area()
}

// Overlap returns the area shared by q and o.
func (q Quad) Overlap(o Quad) float64 {
	dx := math.Min(q.Max.X, o.Max.X) - math.Max(q.Min.X, o.Min.X)
	dy := math.Min(q.Max.Y, o.Max.Y) - math.Max(q.Min.Y, o.Min.Y)
	if dx <= 0 || dy <= 0 {
		return 0
	}
	return dx * dy
}
