package sketchbook

import (
	"math/rand/v2"

	"github.com/esimov/sketchbook/geom"
	"github.com/esimov/sketchbook/utils"
)

// catmullRom is a uniform Catmull-Rom spline through evenly spaced keys
// on the [0, 1] parameter range.
type catmullRom []geom.Point

// sample evaluates the spline at t. The first and the last segment lack a
// neighbouring key, so no value is reported for them.
func (c catmullRom) sample(t float64) (geom.Point, bool) {
	segments := float64(len(c) - 1)
	i := int(t * segments)
	if i <= 0 || i >= len(c)-2 {
		return geom.Point{}, false
	}
	u := t*segments - float64(i)
	p0, p1, p2, p3 := c[i-1], c[i], c[i+1], c[i+2]

	u2, u3 := u*u, u*u*u
	a := p1.Mul(2)
	b := p2.Sub(p0).Mul(u)
	d := p0.Mul(2).Sub(p1.Mul(5)).Add(p2.Mul(4)).Sub(p3).Mul(u2)
	e := p1.Mul(3).Sub(p0).Sub(p2.Mul(3)).Add(p3).Mul(u3)

	return a.Add(b).Add(d).Add(e).Mul(0.5), true
}

// joyDivision stacks noisy ridgelines whose amplitude peaks in the middle.
// Each ridge masks the ones behind it.
func joyDivision(sc *Scene, rnd *rand.Rand) {
	const (
		layers     = 30
		keys       = 30
		resolution = 200
	)
	var (
		height = sc.Width
		vstep  = height * 0.85 / layers
		hstep  = height / keys
		vstart = -height/2 + 50
		hstart = -height / 2
		bottom = -sc.Height / 2
	)

	ridges := make([][]geom.Point, layers)
	for l := range layers {
		spline := make(catmullRom, keys+1)
		for j := range spline {
			variance := float64(keys/2 - utils.Abs(j-keys/2))
			deviation := rnd.Float64() * vstep * variance * variance * 0.02
			spline[j] = geom.Pt(
				hstart+float64(j)*hstep,
				vstart+vstep*float64(l)+deviation,
			)
		}
		for s := range resolution {
			if p, ok := spline.sample(float64(s) / resolution); ok {
				ridges[l] = append(ridges[l], p)
			}
		}
	}

	mask := Style{Fill: paperColor}
	line := outline(2)
	for l := layers - 1; l >= 0; l-- {
		ridge := ridges[l]
		if len(ridge) < 2 {
			continue
		}
		area := make(geom.Polygon, 0, len(ridge)+2)
		area = append(area, geom.Pt(ridge[0].X, bottom))
		area = append(area, ridge...)
		area = append(area, geom.Pt(ridge[len(ridge)-1].X, bottom))

		sc.Polygon(area, mask)
		sc.Polyline(ridge, line)
	}
}
