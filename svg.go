package sketchbook

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// renderSVG writes the scene as an SVG document. Coordinates are rounded to
// whole pixels.
func renderSVG(w io.Writer, sc *Scene) error {
	var buf bytes.Buffer

	width, height := int(math.Ceil(sc.Width)), int(math.Ceil(sc.Height))
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Title(sc.Name)
	canvas.Rect(0, 0, width, height, "fill:"+svgColor(sc.Background))

	for _, s := range sc.Shapes {
		style := svgStyle(s)
		switch s.Kind {
		case CircleShape:
			c := sc.ToScreen(s.Points[0])
			canvas.Circle(round(c.X), round(c.Y), round(s.Radius), style)
		case PolygonShape, PolylineShape:
			xs := make([]int, len(s.Points))
			ys := make([]int, len(s.Points))
			for i, p := range s.Points {
				p = sc.ToScreen(p)
				xs[i], ys[i] = round(p.X), round(p.Y)
			}
			if s.Kind == PolygonShape {
				canvas.Polygon(xs, ys, style)
			} else {
				canvas.Polyline(xs, ys, style)
			}
		}
	}
	canvas.End()

	if _, err := io.Copy(w, &buf); err != nil {
		return fmt.Errorf("could not write the svg document: %w", err)
	}
	return nil
}

func svgStyle(s Shape) string {
	var b strings.Builder
	if s.Style.HasFill() && s.Kind != PolylineShape {
		fmt.Fprintf(&b, "fill:%s", svgColor(s.Style.Fill))
	} else {
		b.WriteString("fill:none")
	}
	if s.Style.HasStroke() {
		fmt.Fprintf(&b, ";stroke:%s;stroke-width:%g", svgColor(s.Style.Stroke), s.Style.StrokeWidth)
		switch s.Style.Cap {
		case RoundCap:
			b.WriteString(";stroke-linecap:round")
		case SquareCap:
			b.WriteString(";stroke-linecap:square")
		}
	}
	return b.String()
}

func svgColor(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func round(v float64) int {
	return int(math.Round(v))
}
