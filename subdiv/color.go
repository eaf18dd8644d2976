package subdiv

import (
	"image/color"

	"github.com/esimov/sketchbook/utils"
)

// Color is an opaque RGB color with channels in the [0, 1] range.
type Color struct {
	R, G, B float64
}

// The Mondrian palette.
var (
	White  = RGB8(255, 255, 255)
	Yellow = RGB8(247, 216, 68)
	Red    = RGB8(212, 9, 32)
	Blue   = RGB8(19, 86, 162)
)

// RGB8 converts 8 bit channel values to a Color.
func RGB8(r, g, b uint8) Color {
	scale := func(c uint8) float64 { return float64(c) / 255 }
	return Color{scale(r), scale(g), scale(b)}
}

// NRGBA converts c back to an 8 bit, fully opaque color.
func (c Color) NRGBA() color.NRGBA {
	conv := func(v float64) uint8 {
		return uint8(utils.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{R: conv(c.R), G: conv(c.G), B: conv(c.B), A: 0xff}
}
