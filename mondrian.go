package sketchbook

import (
	"math/rand/v2"

	"github.com/esimov/sketchbook/geom"
	"github.com/esimov/sketchbook/subdiv"
)

// pietMondrian tiles the canvas with randomly split rectangles, three of
// them painted in primary colors, outlined with thick black borders.
func pietMondrian(sc *Scene, rnd *rand.Rand) {
	for _, q := range subdiv.Mondrian(sc.Width*0.9, 6, rnd) {
		sc.Quad(
			geom.Pt(q.Min.X, q.Min.Y),
			geom.Pt(q.Max.X, q.Min.Y),
			geom.Pt(q.Max.X, q.Max.Y),
			geom.Pt(q.Min.X, q.Max.Y),
			Style{Fill: q.Color.NRGBA(), Stroke: inkColor, StrokeWidth: 5},
		)
	}
}
