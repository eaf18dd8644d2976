// Package subdiv partitions a rectangle into a Mondrian style tiling by
// randomly splitting the quads that straddle a sequence of grid lines.
package subdiv

import "github.com/esimov/sketchbook/geom"

// Source is the randomness the subdivider consumes. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a uniformly distributed value in [0, n).
	IntN(n int) int
}

// Subdivider owns the working collection of quads.
type Subdivider struct {
	Quads []Quad
	rnd   Source
}

// New returns a Subdivider holding a single quad that covers bounds.
func New(bounds geom.Rectangle, background Color, rnd Source) *Subdivider {
	return &Subdivider{
		Quads: []Quad{{Min: bounds.Min, Max: bounds.Max, Color: background}},
		rnd:   rnd,
	}
}

// SplitX splits quads straddling the vertical line at x until none are left
// or a coin flip ends the pass.
func (s *Subdivider) SplitX(x float64) {
	s.split(
		func(q Quad) bool { return q.ContainsX(x) },
		func(q Quad) [2]Quad { return q.SplitX(x) },
	)
}

// SplitY splits quads straddling the horizontal line at y until none are
// left or a coin flip ends the pass.
func (s *Subdivider) SplitY(y float64) {
	s.split(
		func(q Quad) bool { return q.ContainsY(y) },
		func(q Quad) [2]Quad { return q.SplitY(y) },
	)
}

// SplitWith runs a vertical pass at p.X followed by a horizontal pass at p.Y.
func (s *Subdivider) SplitWith(p geom.Point) {
	s.SplitX(p.X)
	s.SplitY(p.Y)
}

// Subdivide runs a vertical pass for every x in xs, then a horizontal pass
// for every y in ys.
func (s *Subdivider) Subdivide(xs, ys []float64) {
	for _, x := range xs {
		s.SplitX(x)
	}
	for _, y := range ys {
		s.SplitY(y)
	}
}

// split is one coordinate pass. The halves produced during the pass are
// held back until the pass ends, so they never straddle the same line again.
func (s *Subdivider) split(straddles func(Quad) bool, cut func(Quad) [2]Quad) {
	var pending []Quad
	for {
		idx := s.find(straddles)
		if idx < 0 {
			break
		}
		if s.rnd.IntN(2) == 1 {
			break
		}
		q := s.Quads[idx]
		s.Quads = append(s.Quads[:idx], s.Quads[idx+1:]...)

		halves := cut(q)
		pending = append(pending, halves[0], halves[1])
	}
	s.Quads = append(s.Quads, pending...)
}

func (s *Subdivider) find(match func(Quad) bool) int {
	for i, q := range s.Quads {
		if match(q) {
			return i
		}
	}
	return -1
}

// Paint assigns each color to a quad picked uniformly at random, with
// replacement. A quad drawn more than once keeps the last color.
func (s *Subdivider) Paint(colors ...Color) {
	if len(s.Quads) == 0 {
		return
	}
	for _, c := range colors {
		s.Quads[s.rnd.IntN(len(s.Quads))].Color = c
	}
}

// Mondrian tiles the square of side size centred on the origin. It splits
// along n evenly spaced diagonal grid points, then paints three quads with
// the yellow, red and blue accents.
func Mondrian(size float64, n int, rnd Source) []Quad {
	start := -size / 2
	s := New(geom.Rect(start, start, start+size, start+size), White, rnd)

	step := size / float64(n)
	for i := range n {
		c := start + float64(i)*step
		s.SplitWith(geom.Pt(c, c))
	}
	s.Paint(Yellow, Red, Blue)

	return s.Quads
}
