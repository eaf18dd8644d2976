package sketchbook

import (
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"github.com/esimov/sketchbook/geom"
)

// renderPDF writes the scene as a single page PDF measured in points.
func renderPDF(w io.Writer, sc *Scene) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: sc.Width, Ht: sc.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(sc.Name, true)
	pdf.AddPage()

	pdf.SetFillColor(int(sc.Background.R), int(sc.Background.G), int(sc.Background.B))
	pdf.Rect(0, 0, sc.Width, sc.Height, "F")
	pdf.SetLineJoinStyle("miter")

	for _, s := range sc.Shapes {
		mode := pdfStyle(pdf, s)
		if mode == "" {
			continue
		}
		switch s.Kind {
		case CircleShape:
			c := sc.ToScreen(s.Points[0])
			pdf.Circle(c.X, c.Y, s.Radius, mode)
		case PolygonShape:
			pdf.Polygon(pdfPoints(sc, s.Points), mode)
		case PolylineShape:
			for i, p := range s.Points {
				p = sc.ToScreen(p)
				if i == 0 {
					pdf.MoveTo(p.X, p.Y)
				} else {
					pdf.LineTo(p.X, p.Y)
				}
			}
			pdf.DrawPath("D")
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("could not write the pdf document: %w", err)
	}
	return nil
}

// pdfStyle applies the shape style to the document and returns the fpdf
// paint mode, or an empty string when nothing is painted.
func pdfStyle(pdf *fpdf.Fpdf, s Shape) string {
	var mode string
	if s.Style.HasFill() && s.Kind != PolylineShape {
		f := s.Style.Fill
		pdf.SetFillColor(int(f.R), int(f.G), int(f.B))
		mode += "F"
	}
	if s.Style.HasStroke() {
		c := s.Style.Stroke
		pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
		pdf.SetLineWidth(s.Style.StrokeWidth)
		switch s.Style.Cap {
		case RoundCap:
			pdf.SetLineCapStyle("round")
		case SquareCap:
			pdf.SetLineCapStyle("square")
		default:
			pdf.SetLineCapStyle("butt")
		}
		mode = "D" + mode
	}
	return mode
}

func pdfPoints(sc *Scene, pts []geom.Point) []fpdf.PointType {
	out := make([]fpdf.PointType, len(pts))
	for i, p := range pts {
		p = sc.ToScreen(p)
		out[i] = fpdf.PointType{X: p.X, Y: p.Y}
	}
	return out
}
