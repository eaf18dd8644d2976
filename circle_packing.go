package sketchbook

import (
	"math/rand/v2"

	"github.com/esimov/sketchbook/geom"
)

const (
	packedCircles  = 500
	initialRadius  = 3.0
	radiusGrowth   = 0.2
	packingRetries = 200_000
)

type circle struct {
	center geom.Point
	radius float64
}

func (c circle) intersects(o circle) bool {
	return c.center.Sub(o.center).Len() < c.radius+o.radius
}

// escapes reports whether c crosses the border of the square of side size
// centred on the origin.
func (c circle) escapes(size float64) bool {
	half := size / 2
	return c.center.X+c.radius > half || c.center.Y+c.radius > half ||
		c.center.X-c.radius < -half || c.center.Y-c.radius < -half
}

func overlapsAny(c circle, circles []circle) bool {
	for _, o := range circles {
		if c.intersects(o) {
			return true
		}
	}
	return false
}

// packCircles scatters up to n circles by rejection sampling, growing each
// one until it touches a neighbour or the border, or reaches a quarter of
// the square. It gives up after a fixed number of rejected samples.
func packCircles(size float64, n int, rnd *rand.Rand) []circle {
	circles := make([]circle, 0, n)
	for attempts := 0; len(circles) < n && attempts < packingRetries; attempts++ {
		c := circle{
			center: geom.Pt(uniform(rnd, -0.5, 0.5)*size, uniform(rnd, -0.5, 0.5)*size),
			radius: initialRadius,
		}
		if overlapsAny(c, circles) {
			continue
		}
		for c.radius <= size*0.25 && !c.escapes(size) && !overlapsAny(c, circles) {
			c.radius += radiusGrowth
		}
		circles = append(circles, c)
	}
	return circles
}

func circlePacking(sc *Scene, rnd *rand.Rand) {
	for _, c := range packCircles(sc.Width*0.9, packedCircles, rnd) {
		sc.Circle(c.center, c.radius, outline(2))
	}
}
