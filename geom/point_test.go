package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Rotate(t *testing.T) {
	p := Pt(1, 0).Rotate(math.Pi / 2)
	assert.True(t, p.Eq(Pt(0, 1), tolerance), "got %v", p)

	p = RotateAbout(Pt(2, 1), Pt(1, 1), math.Pi)
	assert.True(t, p.Eq(Pt(0, 1), tolerance), "got %v", p)
}

func TestRectangle_Corners(t *testing.T) {
	r := Rect(-1, -2, 3, 4)

	assert.Equal(t, Pt(-1, -2), r.BottomLeft())
	assert.Equal(t, Pt(-1, 4), r.TopLeft())
	assert.Equal(t, Pt(3, 4), r.TopRight())
	assert.Equal(t, Pt(3, -2), r.BottomRight())
	assert.Equal(t, Pt(4, 6), r.Span())
	assert.Equal(t, Pt(1, 1), r.Center())
	assert.InDelta(t, 24.0, r.Area(), tolerance)
}

func TestRectangle_EdgesPointInwards(t *testing.T) {
	r := Rect(0, 0, 2, 1)
	for i, e := range r.Edges() {
		assert.True(t, e.Contains(r.Center()), "edge %d", i)
		assert.InDelta(t, 0.0, e.Direction.Dot(e.Inside), tolerance, "edge %d not perpendicular", i)
	}
}
