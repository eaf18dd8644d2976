package sketchbook

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// ErrUnknownSketch is returned when no sketch is registered under a name.
var ErrUnknownSketch = errors.New("unknown sketch")

// Sketch generates a scene for a drawing area of the given width.
// Generate must draw all of its randomness from rnd.
type Sketch interface {
	Name() string
	Generate(width float64, rnd *rand.Rand) *Scene
}

type sketchFunc struct {
	name string
	gen  func(sc *Scene, rnd *rand.Rand)
}

func (s sketchFunc) Name() string { return s.name }

func (s sketchFunc) Generate(width float64, rnd *rand.Rand) *Scene {
	sc := NewScene(s.name, width, width)
	s.gen(sc, rnd)
	return sc
}

var registry = map[string]Sketch{}

func register(name string, gen func(sc *Scene, rnd *rand.Rand)) {
	registry[name] = sketchFunc{name: name, gen: gen}
}

func init() {
	register("tiled-lines", tiledLines)
	register("joy-division", joyDivision)
	register("cubic-disarray", cubicDisarray)
	register("triangular-mesh", triangularMesh)
	register("un-deux-trois", unDeuxTrois)
	register("circle-packing", circlePacking)
	register("hypnotic-squares", hypnoticSquares)
	register("piet-mondrian", pietMondrian)
	register("hours-of-dark", hoursOfDark)
}

// Sketches returns the names of all registered sketches in sorted order.
func Sketches() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the sketch registered under name.
func Lookup(name string) (Sketch, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSketch, name)
	}
	return s, nil
}

// uniform returns a value drawn uniformly from [lo, hi).
func uniform(rnd *rand.Rand, lo, hi float64) float64 {
	return lo + rnd.Float64()*(hi-lo)
}

// coin returns the outcome of a fair coin flip.
func coin(rnd *rand.Rand) bool {
	return rnd.IntN(2) == 1
}
