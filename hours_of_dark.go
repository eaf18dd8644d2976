package sketchbook

import (
	"math"
	"math/rand/v2"

	"github.com/esimov/sketchbook/geom"
)

const daysInYear = 365

// hoursOfDark draws one bar per day of the year. The bar angle and thickness
// follow the length of the night over the year, and every bar is clipped
// to its own cell.
func hoursOfDark(sc *Scene, _ *rand.Rand) {
	var (
		n     = int(math.Ceil(math.Sqrt(daysInYear)))
		size  = sc.Width * 0.9
		start = -size / 2
		step  = size / float64(n)
		fill  = Style{Fill: inkColor}
	)
	for day := range daysInYear {
		col, row := day/n, day%n
		bottomLeft := geom.Pt(start+float64(col)*step, -start-float64(row+1)*step)
		cell := geom.Rectangle{Min: bottomLeft, Max: bottomLeft.Add(geom.Pt(step, step))}

		phi := float64(day) / daysInYear * math.Pi
		angle := math.Sin(phi)*math.Pi*0.45 + 2.42
		thickness := math.Abs(math.Cos(phi))*2 + 1

		sc.Polygon(nightBar(cell, angle, thickness), fill)
	}
}

// nightBar returns a bar crossing the centre of cell, rotated by angle
// and clipped to the cell.
func nightBar(cell geom.Rectangle, angle, thickness float64) geom.Polygon {
	mid := cell.Center()
	v := geom.Pt(0, 0.05*cell.Dy()*thickness)
	w := geom.Pt(cell.Dx(), 0)

	bar := geom.Polygon{
		mid.Add(v).Add(w),
		mid.Add(v).Sub(w),
		mid.Sub(v).Sub(w),
		mid.Sub(v).Add(w),
	}
	for i := range bar {
		bar[i] = geom.RotateAbout(bar[i], mid, angle)
	}
	return geom.Clip(bar, cell)
}
