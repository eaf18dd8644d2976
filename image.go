package sketchbook

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned for output files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format is an output encoding. The zero value means the format is not set.
type Format int

const (
	PNG Format = iota + 1
	JPEG
	BMP
	SVG
	PDF
)

var formatExts = map[string]Format{
	".png":  PNG,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".bmp":  BMP,
	".svg":  SVG,
	".pdf":  PDF,
}

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	case SVG:
		return "svg"
	case PDF:
		return "pdf"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format named by s, e.g. "png" or "svg".
func ParseFormat(s string) (Format, error) {
	f, ok := formatExts["."+strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// FormatFromPath derives the output format from the file extension.
// A path without extension is encoded as PNG.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return PNG, nil
	}
	if f, ok := formatExts[ext]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Render encodes the scene into w using the requested format.
func Render(w io.Writer, format Format, sc *Scene) error {
	switch format {
	case SVG:
		return renderSVG(w, sc)
	case PDF:
		return renderPDF(w, sc)
	case PNG, JPEG, BMP:
		img, err := rasterize(sc)
		if err != nil {
			return fmt.Errorf("could not rasterize the scene: %w", err)
		}
		return encodeImg(w, format, img)
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
}

// encodeImg encodes a raster image to a destination of type io.Writer.
func encodeImg(w io.Writer, format Format, img image.Image) error {
	switch format {
	case JPEG:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(100))
	case PNG:
		return imaging.Encode(w, img, imaging.PNG)
	case BMP:
		return bmp.Encode(w, imaging.Clone(img))
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
}
