package sketchbook

import (
	"math"
	"math/rand/v2"

	"github.com/esimov/sketchbook/geom"
)

// cubicDisarray lays out a 9x9 grid of squares whose rotation and sideways
// displacement fade out from the bottom row to the top row.
func cubicDisarray(sc *Scene, rnd *rand.Rand) {
	const n = 9
	var (
		area  = sc.Width * 0.9
		start = -area / 2
		step  = area / n
		half  = step / 2
	)
	for i := range n {
		for j := range n {
			square := [4]geom.Point{
				geom.Pt(-half, -half),
				geom.Pt(half, -half),
				geom.Pt(half, half),
				geom.Pt(-half, half),
			}
			variance := 1 - float64(j)/(n-1)
			rotate := uniform(rnd, -1, 1) * variance * math.Pi * 0.06
			displacement := geom.Pt(
				start+(float64(i)+0.5)*step+uniform(rnd, -1, 1)*variance*half,
				start+(float64(j)+0.5)*step,
			)
			for k := range square {
				square[k] = square[k].Rotate(rotate).Add(displacement)
			}
			sc.Quad(square[0], square[1], square[2], square[3], outline(2))
		}
	}
}

// finalSquareRatio is the size of the innermost square relative to its cell.
const finalSquareRatio = 0.1

// hypnoticSquares nests shrinking squares in every cell of a 10x10 grid,
// drifting them towards a random neighbour.
func hypnoticSquares(sc *Scene, rnd *rand.Rand) {
	const n = 10
	var (
		size  = sc.Width * 0.9
		start = -size / 2
		step  = size / n
	)
	for i := range n {
		for j := range n {
			x := start + step*float64(i)
			y := start + step*float64(j)
			dx := 0.4 * float64(rnd.IntN(3)-1)
			dy := 0.4 * float64(rnd.IntN(3)-1)
			steps := 3 + rnd.IntN(3)

			for s := 0; s <= steps; s++ {
				t := float64(s) / float64(steps)
				side := step*(1-t) + step*finalSquareRatio*t
				shrink := step - side
				ox := x + shrink/2 + shrink*dx*0.5
				oy := y + shrink/2 + shrink*dy*0.5
				sc.Quad(
					geom.Pt(ox, oy),
					geom.Pt(ox+side, oy),
					geom.Pt(ox+side, oy+side),
					geom.Pt(ox, oy+side),
					outline(2),
				)
			}
		}
	}
}
