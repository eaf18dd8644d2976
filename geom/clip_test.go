package geom

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

var unitSquare = Polygon{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}

// area returns the unsigned shoelace area of p.
func area(p Polygon) float64 {
	var sum float64
	for i := range p {
		j := (i + 1) % len(p)
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return math.Abs(sum) / 2
}

func TestClip_TotallyContainedPolygon(t *testing.T) {
	mask := Rect(-1, -1, 2, 2)
	clipped := Clip(unitSquare, mask)

	assert.True(t, Equivalent(clipped, unitSquare, tolerance),
		"clipped against %v = %v", mask, clipped)
}

func TestClip_MutuallyExclusiveRectangles(t *testing.T) {
	mask := Rect(-1, -1, -0.5, -0.5)
	clipped := Clip(unitSquare, mask)

	assert.Empty(t, clipped)
}

func TestClip_IntersectingRectangles(t *testing.T) {
	mask := Rect(0.5, 0.5, 2, 2)
	expected := Polygon{Pt(1, 0.5), Pt(1, 1), Pt(0.5, 1), Pt(0.5, 0.5)}
	clipped := Clip(unitSquare, mask)

	assert.True(t, Equivalent(clipped, expected, tolerance),
		"clipped against %v = %v", mask, clipped)
}

func TestClip_EmptyPolygon(t *testing.T) {
	assert.Empty(t, Clip(nil, Rect(0, 0, 1, 1)))
	assert.Empty(t, Clip(Polygon{}, Rect(-5, -5, 5, 5)))
}

func TestClip_TriangleAgainstInnerSquare(t *testing.T) {
	tri := Polygon{Pt(0, 0), Pt(4, 0), Pt(2, 4)}
	expected := Polygon{
		Pt(1.5, 3), Pt(1, 2), Pt(1, 1),
		Pt(3, 1), Pt(3, 2), Pt(2.5, 3),
	}
	clipped := Clip(tri, Rect(1, 1, 3, 3))

	assert.True(t, Equivalent(clipped, expected, tolerance), "got %v", clipped)
}

func TestClip_SharedBoundary(t *testing.T) {
	// Vertices on the mask boundary are dropped by the containment test,
	// the corners come back as edge intersections.
	clipped := Clip(unitSquare, Rect(0, 0, 1, 1))

	assert.True(t, Equivalent(clipped, unitSquare, tolerance), "got %v", clipped)
}

func TestClip_DegeneratePolygonDoesNotPanic(t *testing.T) {
	mask := Rect(0, 0, 1, 1)
	assert.NotPanics(t, func() {
		Clip(Polygon{Pt(0.5, 0.5), Pt(0.5, 0.5), Pt(0.5, 0.5)}, mask)
		Clip(Polygon{Pt(0, 0), Pt(2, 2)}, mask)
		Clip(Polygon{Pt(3, 3)}, mask)
	})
	assert.Len(t, Clip(Polygon{Pt(0.5, 0.5), Pt(0.5, 0.5), Pt(0.5, 0.5)}, mask), 3)
	assert.Empty(t, Clip(Polygon{Pt(3, 3)}, mask))
}

func TestClip_InputIsNotModified(t *testing.T) {
	poly := Polygon{Pt(-1, -1), Pt(2, -1), Pt(2, 2), Pt(-1, 2)}
	orig := append(Polygon(nil), poly...)
	Clip(poly, Rect(0, 0, 1, 1))

	assert.Equal(t, orig, poly)
}

func TestClip_AxisAlignedAreaMatchesIntersection(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	mask := Rect(-10, -10, 10, 10)

	for range 200 {
		x0, y0 := rnd.Float64()*40-20, rnd.Float64()*40-20
		x1, y1 := x0+rnd.Float64()*20+0.1, y0+rnd.Float64()*20+0.1
		r := Rect(x0, y0, x1, y1)

		ix := math.Max(0, math.Min(x1, mask.Max.X)-math.Max(x0, mask.Min.X))
		iy := math.Max(0, math.Min(y1, mask.Max.Y)-math.Max(y0, mask.Min.Y))

		clipped := Clip(r.Polygon(), mask)
		assert.InDelta(t, ix*iy, area(clipped), 1e-6, "rect %v", r)
	}
}

func TestClip_RotatedBarStaysInsideMask(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	mask := Rect(0, 0, 50, 50)
	mid := mask.Center()

	for range 100 {
		angle := rnd.Float64() * 2 * math.Pi
		bar := Polygon{
			Pt(mid.X+50, mid.Y+4), Pt(mid.X-50, mid.Y+4),
			Pt(mid.X-50, mid.Y-4), Pt(mid.X+50, mid.Y-4),
		}
		for i := range bar {
			bar[i] = RotateAbout(bar[i], mid, angle)
		}
		clipped := Clip(bar, mask)
		assert.NotEmpty(t, clipped)
		for _, p := range clipped {
			assert.True(t, p.X >= -1e-6 && p.X <= 50+1e-6, "x out of mask: %v", p)
			assert.True(t, p.Y >= -1e-6 && p.Y <= 50+1e-6, "y out of mask: %v", p)
		}
	}
}

func TestEdge_ContainsIsStrict(t *testing.T) {
	edges := Rect(0, 0, 1, 1).Edges()

	assert.True(t, edges[0].Contains(Pt(0.5, 0.5)))
	assert.False(t, edges[0].Contains(Pt(0, 0.5)))
	assert.False(t, edges[0].Contains(Pt(-0.5, 0.5)))
	for _, e := range edges {
		assert.True(t, e.Contains(Pt(0.5, 0.5)))
	}
}

func TestEdge_IntersectParallelSegment(t *testing.T) {
	e := Rect(0, 0, 1, 1).Edges()[0]

	_, ok := e.Intersect(LineSegment{Pt(0.5, 0), Pt(0.5, 1)})
	assert.False(t, ok)

	p, ok := e.Intersect(LineSegment{Pt(-1, 0.5), Pt(1, 0.5)})
	assert.True(t, ok)
	assert.True(t, p.Eq(Pt(0, 0.5), tolerance), "got %v", p)

	_, ok = e.Intersect(LineSegment{Pt(1, 0.5), Pt(2, 0.5)})
	assert.False(t, ok)
}

func TestEquivalent(t *testing.T) {
	testCases := []struct {
		name string
		a, b Polygon
		want bool
	}{
		{"empty", Polygon{}, nil, true},
		{"identical", unitSquare, unitSquare, true},
		{"rotated", unitSquare, Polygon{Pt(1, 1), Pt(0, 1), Pt(0, 0), Pt(1, 0)}, true},
		{"reflected", unitSquare, Polygon{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}, true},
		{"length mismatch", unitSquare, unitSquare[:3], false},
		{"different", unitSquare, Polygon{Pt(0, 0), Pt(1, 0), Pt(1, 2), Pt(0, 1)}, false},
		{"shuffled", unitSquare, Polygon{Pt(0, 0), Pt(1, 1), Pt(1, 0), Pt(0, 1)}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Equivalent(tc.a, tc.b, tolerance))
		})
	}
}
