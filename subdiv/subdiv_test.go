package subdiv

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/esimov/sketchbook/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// scripted replays a fixed sequence of draws, repeating the last one.
type scripted struct {
	vals []int
	pos  int
}

func (s *scripted) IntN(n int) int {
	v := s.vals[min(s.pos, len(s.vals)-1)]
	s.pos++
	return v % n
}

func never() *scripted { return &scripted{vals: []int{0}} }

func totalArea(quads []Quad) float64 {
	var sum float64
	for _, q := range quads {
		sum += q.Area()
	}
	return sum
}

func TestSubdivider_SplitXDefersNewHalves(t *testing.T) {
	s := New(geom.Rect(0, 0, 10, 10), White, never())
	s.SplitX(5)

	require.Len(t, s.Quads, 2)
	assert.Equal(t, geom.Pt(0, 0), s.Quads[0].Min)
	assert.Equal(t, geom.Pt(5, 10), s.Quads[0].Max)
	assert.Equal(t, geom.Pt(5, 0), s.Quads[1].Min)
	assert.Equal(t, geom.Pt(10, 10), s.Quads[1].Max)

	// Neither half strictly straddles the line it was cut on.
	s.SplitX(5)
	assert.Len(t, s.Quads, 2)
}

func TestSubdivider_SplitYKeepsParentColor(t *testing.T) {
	s := New(geom.Rect(0, 0, 4, 4), Red, never())
	s.SplitY(1)

	require.Len(t, s.Quads, 2)
	assert.Equal(t, geom.Pt(4, 1), s.Quads[0].Max)
	assert.Equal(t, geom.Pt(0, 1), s.Quads[1].Min)
	for _, q := range s.Quads {
		assert.Equal(t, Red, q.Color)
	}
}

func TestSubdivider_CoinFlipStopsThePass(t *testing.T) {
	s := New(geom.Rect(0, 0, 10, 10), White, &scripted{vals: []int{1}})
	s.Subdivide([]float64{2, 4, 6}, []float64{3, 7})

	assert.Len(t, s.Quads, 1)
}

func TestSubdivider_BoundaryCoordinatesAreIgnored(t *testing.T) {
	s := New(geom.Rect(0, 0, 10, 10), White, never())
	s.Subdivide([]float64{0, 10, -3, 12}, []float64{0, 10})

	assert.Len(t, s.Quads, 1)
}

func TestSubdivider_SplitsEveryStraddlingQuad(t *testing.T) {
	s := New(geom.Rect(0, 0, 10, 10), White, never())
	s.SplitX(5)
	s.SplitY(5)

	// Both halves of the first pass straddle y=5.
	assert.Len(t, s.Quads, 4)
	assert.InDelta(t, 100.0, totalArea(s.Quads), eps)
}

func TestSubdivider_PreservesAreaAndDisjointness(t *testing.T) {
	bounds := geom.Rect(-360, -360, 360, 360)
	xs := []float64{-240, -120, 0, 120, 240}
	ys := []float64{-300, -100, 50, 200}

	for seed := range uint64(50) {
		rnd := rand.New(rand.NewPCG(seed, seed+1))
		s := New(bounds, White, rnd)
		s.Subdivide(xs, ys)

		assert.InDelta(t, bounds.Area(), totalArea(s.Quads), 1e-6, "seed %d", seed)
		for i := range s.Quads {
			for j := i + 1; j < len(s.Quads); j++ {
				assert.LessOrEqual(t, s.Quads[i].Overlap(s.Quads[j]), eps,
					"seed %d: quads %v and %v overlap", seed, s.Quads[i], s.Quads[j])
			}
		}
	}
}

func TestSubdivider_CutsOnlyAlongSuppliedLines(t *testing.T) {
	bounds := geom.Rect(0, 0, 600, 600)
	xs := []float64{100, 250, 400, 550}
	ys := []float64{150, 300, 450}
	validX := append([]float64{bounds.Min.X, bounds.Max.X}, xs...)
	validY := append([]float64{bounds.Min.Y, bounds.Max.Y}, ys...)

	for seed := range uint64(50) {
		s := New(bounds, White, rand.New(rand.NewPCG(seed, 42)))
		for i := range xs {
			s.SplitWith(geom.Pt(xs[i], ys[min(i, len(ys)-1)]))
		}
		for _, q := range s.Quads {
			assert.Contains(t, validX, q.Min.X)
			assert.Contains(t, validX, q.Max.X)
			assert.Contains(t, validY, q.Min.Y)
			assert.Contains(t, validY, q.Max.Y)
		}
	}
}

func TestSubdivider_PaintCollisionKeepsLastColor(t *testing.T) {
	s := New(geom.Rect(0, 0, 10, 10), White, never())
	s.Subdivide([]float64{2, 4, 6, 8}, nil)
	require.Len(t, s.Quads, 5)

	s.rnd = &scripted{vals: []int{3, 3, 3}}
	s.Paint(Yellow, Red, Blue)

	for i, q := range s.Quads {
		if i == 3 {
			assert.Equal(t, Blue, q.Color)
		} else {
			assert.Equal(t, White, q.Color)
		}
	}
}

func TestMondrian_AtMostThreeAccentQuads(t *testing.T) {
	for seed := range uint64(100) {
		quads := Mondrian(720, 6, rand.New(rand.NewPCG(seed, seed*3)))

		painted := slices.DeleteFunc(slices.Clone(quads), func(q Quad) bool {
			return q.Color == White
		})
		assert.LessOrEqual(t, len(painted), 3, "seed %d", seed)
		assert.NotEmpty(t, painted, "seed %d", seed)
		assert.InDelta(t, 720.0*720.0, totalArea(quads), 1e-6, "seed %d", seed)
	}
}

func TestMondrian_IsDeterministicForASeed(t *testing.T) {
	a := Mondrian(500, 6, rand.New(rand.NewPCG(9, 9)))
	b := Mondrian(500, 6, rand.New(rand.NewPCG(9, 9)))

	assert.Equal(t, a, b)
}

func TestColor_RGB8RoundTrip(t *testing.T) {
	c := RGB8(19, 86, 162)

	assert.InDelta(t, 19.0/255, c.R, eps)
	assert.Equal(t, uint8(86), c.NRGBA().G)
	assert.Equal(t, uint8(0xff), c.NRGBA().A)
}
