package sketchbook

import (
	"math"
	"math/rand/v2"

	"github.com/esimov/sketchbook/geom"
)

// tiledLines fills a 30x30 grid with diagonals leaning left or right at random.
func tiledLines(sc *Scene, rnd *rand.Rand) {
	const n = 30
	var (
		step  = sc.Width / n
		start = -sc.Width / 2
		style = Style{Stroke: inkColor, StrokeWidth: 2, Cap: SquareCap}
	)
	for i := range n {
		for j := range n {
			x := start + float64(i)*step
			y := start + float64(j)*step
			if coin(rnd) {
				sc.Line(geom.Pt(x, y), geom.Pt(x+step, y+step), style)
			} else {
				sc.Line(geom.Pt(x+step, y), geom.Pt(x, y+step), style)
			}
		}
	}
}

// unDeuxTrois draws one, two or three parallel strokes per cell, rotated
// about the cell centre. The stroke count decreases towards the top.
func unDeuxTrois(sc *Scene, rnd *rand.Rand) {
	const n = 15
	var (
		width = sc.Width * 0.9
		step  = width / n
		start = -width / 2
		style = Style{Stroke: inkColor, StrokeWidth: 5, Cap: RoundCap}
	)
	for i := range n {
		for j := range n {
			lines := 3 - j/5

			var lineStart, lineStep float64
			switch lines {
			case 1:
				lineStart, lineStep = 0.5, 0.5
			case 2:
				lineStart, lineStep = 0.2, 0.6
			case 3:
				lineStart, lineStep = 0.1, 0.4
			}

			fi, fj := float64(i), float64(j)
			mid := geom.Pt(start+step*(fi+0.5), start+step*(fj+0.5))
			angle := uniform(rnd, 0, math.Pi)
			for k := range lines {
				x := start + step*(fi+lineStep*float64(k)+lineStart)
				p1 := geom.RotateAbout(geom.Pt(x, start+step*fj), mid, angle)
				p2 := geom.RotateAbout(geom.Pt(x, start+step*(fj+1)), mid, angle)
				sc.Line(p1, p2, style)
			}
		}
	}
}
