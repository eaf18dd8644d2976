package sketchbook

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// rasterize paints the scene into an image using the gg software renderer.
func rasterize(sc *Scene) (image.Image, error) {
	w, h := int(math.Ceil(sc.Width)), int(math.Ceil(sc.Height))
	dc := gg.NewContext(w, h)
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(sc.Background))
	dc.SetLineJoin(gg.LineJoinMiter)

	for _, s := range sc.Shapes {
		if err := rasterizeShape(dc, sc, s); err != nil {
			return nil, err
		}
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func rasterizeShape(dc *gg.Context, sc *Scene, s Shape) error {
	defer dc.ClearPath()

	if s.Kind == CircleShape {
		c := sc.ToScreen(s.Points[0])
		dc.DrawCircle(c.X, c.Y, s.Radius)
	} else {
		for i, p := range s.Points {
			p = sc.ToScreen(p)
			if i == 0 {
				dc.MoveTo(p.X, p.Y)
			} else {
				dc.LineTo(p.X, p.Y)
			}
		}
		if s.Kind == PolygonShape {
			dc.ClosePath()
		}
	}

	if s.Style.HasFill() && s.Kind != PolylineShape {
		dc.SetColor(s.Style.Fill)
		if err := dc.FillPreserve(); err != nil {
			return err
		}
	}
	if s.Style.HasStroke() {
		dc.SetColor(s.Style.Stroke)
		dc.SetLineWidth(s.Style.StrokeWidth)
		dc.SetLineCap(ggCap(s.Style.Cap))
		if err := dc.StrokePreserve(); err != nil {
			return err
		}
	}
	return nil
}

func ggCap(c Cap) gg.LineCap {
	switch c {
	case RoundCap:
		return gg.LineCapRound
	case SquareCap:
		return gg.LineCapSquare
	}
	return gg.LineCapButt
}
