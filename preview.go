package sketchbook

import (
	"math"
)

const (
	MaxScreenX = 1366
	MaxScreenY = 768
)

// windowSize returns the preview window size for a drawing area of width × height.
// The aspect ratio is retained when the area does not fit on the screen.
func windowSize(width, height int) (float64, float64) {
	w, h := float64(width), float64(height)
	if w > MaxScreenX || h > MaxScreenY {
		ratio := math.Min(MaxScreenX/w, MaxScreenY/h)
		w, h = w*ratio, h*ratio
	}
	return w, h
}

// ShowPreview opens a Gio window with the configured sketch and blocks until
// it is closed. It must not be called from the main goroutine, which belongs
// to app.Main.
func (p *Processor) ShowPreview() error {
	gui, err := NewGUI(p)
	if err != nil {
		return err
	}
	return gui.Run()
}
