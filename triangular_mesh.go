package sketchbook

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/esimov/sketchbook/geom"
)

// meshGrid holds the jittered lattice rows, bottom to top.
type meshGrid [][]geom.Point

// newMeshGrid scatters n points per row on a lattice of equilateral
// triangles, shifting every other row by half a step.
func newMeshGrid(size float64, n int, rnd *rand.Rand) meshGrid {
	var (
		xstart = -size / 2
		xstep  = size / float64(n)
		ystep  = xstep * math.Sqrt(3) * 0.5
		m      = int(math.Floor(size/ystep)) + 1
		ystart = -(float64(m-1) * ystep) * 0.5
	)
	grid := make(meshGrid, 0, m)
	for j := range m {
		var xoffset float64
		if j%2 == 0 {
			xoffset = xstep * 0.5
		}
		row := make([]geom.Point, 0, n)
		for i := range n {
			row = append(row, geom.Pt(
				xstart+float64(i)*xstep+xoffset+uniform(rnd, -0.3, 0.3)*xstep,
				ystart+float64(j)*ystep+uniform(rnd, -0.3, 0.3)*ystep,
			))
		}
		grid = append(grid, row)
	}
	return grid
}

// triangles walks every pair of adjacent rows, first emitting the triangles
// pointing up and then the ones pointing down.
func (g meshGrid) triangles(fn func(tri [3]geom.Point)) {
	fan := func(base, apex []geom.Point, skip bool) {
		if skip && len(apex) > 0 {
			apex = apex[1:]
		}
		for k := 0; k+1 < len(base) && k < len(apex); k++ {
			fn([3]geom.Point{apex[k], base[k], base[k+1]})
		}
	}
	for i := 0; i+1 < len(g); i++ {
		lower, upper := g[i], g[i+1]
		fan(lower, upper, i%2 == 0)
		fan(upper, lower, i%2 == 1)
	}
}

// triangularMesh shades each triangle of a jittered mesh with a random gray.
func triangularMesh(sc *Scene, rnd *rand.Rand) {
	grid := newMeshGrid(sc.Width*0.9, 7, rnd)
	grid.triangles(func(tri [3]geom.Point) {
		shade := uint8(rnd.Float64() * 0xff)
		sc.Polygon(geom.Polygon{tri[0], tri[1], tri[2]}, Style{
			Fill:        color.NRGBA{R: shade, G: shade, B: shade, A: 0xff},
			Stroke:      inkColor,
			StrokeWidth: 2,
		})
	})
}
