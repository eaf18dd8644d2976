package sketchbook

import (
	"testing"

	"gioui.org/f32"
	"github.com/esimov/sketchbook/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview_WindowSize(t *testing.T) {
	w, h := windowSize(400, 300)
	assert.Equal(t, 400.0, w)
	assert.Equal(t, 300.0, h)

	w, h = windowSize(2732, 1536)
	assert.InDelta(t, 1366, w, 1e-9)
	assert.InDelta(t, 768, h, 1e-9)

	w, h = windowSize(800, 800)
	assert.InDelta(t, 768, w, 1e-9)
	assert.InDelta(t, 768, h, 1e-9)
}

func TestGui_NewGUI(t *testing.T) {
	g, err := NewGUI(&Processor{Sketch: "hours-of-dark", Width: 300, Height: 200})
	require.NoError(t, err)

	assert.Equal(t, "Sketchbook: hours-of-dark", g.cfg.window.title)
	assert.Equal(t, 300.0, g.cfg.window.w)
	assert.Equal(t, 200.0, g.cfg.window.h)
	assert.NotNil(t, g.scene)

	_, err = NewGUI(&Processor{Sketch: "nope"})
	assert.ErrorIs(t, err, ErrUnknownSketch)
}

func TestDraw_ExtendEnds(t *testing.T) {
	pts := []f32.Point{f32.Pt(0, 0), f32.Pt(10, 0), f32.Pt(10, 10)}
	out := extendEnds(pts, 2)

	assert.Equal(t, f32.Pt(-2, 0), out[0])
	assert.Equal(t, f32.Pt(10, 0), out[1])
	assert.Equal(t, f32.Pt(10, 12), out[2])
	assert.Equal(t, f32.Pt(0, 0), pts[0], "input is not modified")
}

func TestDraw_CirclePoints(t *testing.T) {
	c := geom.Pt(3, 4)
	pts := circlePoints(c, 2)

	require.Len(t, pts, circleSegments)
	for _, p := range pts {
		assert.InDelta(t, 2, p.Sub(c).Len(), 1e-9)
	}
}
