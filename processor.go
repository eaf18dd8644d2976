package sketchbook

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/esimov/sketchbook/utils"
)

// Default drawing area, in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 800
)

// Processor options
type Processor struct {
	Sketch  string
	Width   int
	Height  int
	Seed    uint64
	Preview bool
	Spinner *utils.Spinner
	Logger  *slog.Logger

	rnd *rand.Rand
}

// logger returns the configured logger or a handler-less default.
func (p *Processor) logger() *slog.Logger {
	if p.Logger == nil {
		p.Logger = slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// source returns the random source shared by all the generations of p.
// A zero seed is replaced with a time based one.
func (p *Processor) source() *rand.Rand {
	if p.rnd == nil {
		if p.Seed == 0 {
			p.Seed = uint64(time.Now().UnixNano())
		}
		p.rnd = rand.New(rand.NewPCG(p.Seed, p.Seed>>32|p.Seed<<32))
		p.logger().Info("random source initialized", "seed", p.Seed)
	}
	return p.rnd
}

func (p *Processor) size() (float64, float64) {
	w, h := p.Width, p.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return float64(w), float64(h)
}

// Generate produces a new scene for the configured sketch. Successive calls
// on the same Processor continue the same random sequence.
func (p *Processor) Generate() (*Scene, error) {
	w, h := p.size()
	return p.generate(w, h)
}

func (p *Processor) generate(width, height float64) (*Scene, error) {
	s, err := Lookup(p.Sketch)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	sc := s.Generate(width, p.source())
	sc.Width, sc.Height = width, height

	p.logger().Debug("scene generated",
		"sketch", s.Name(),
		"shapes", len(sc.Shapes),
		"elapsed", time.Since(start),
	)
	return sc, nil
}

// Process generates a scene and encodes it into w.
func (p *Processor) Process(w io.Writer, format Format) error {
	sc, err := p.Generate()
	if err != nil {
		return err
	}
	if err := Render(w, format, sc); err != nil {
		return fmt.Errorf("could not render %s as %v: %w", sc.Name, format, err)
	}
	return nil
}
