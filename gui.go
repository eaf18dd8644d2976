package sketchbook

import (
	"fmt"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

// Gui is the preview window. It paints the current scene on every frame
// and regenerates it on demand.
type Gui struct {
	cfg struct {
		window struct {
			w     float64
			h     float64
			title string
		}
		background color.NRGBA
	}
	proc  *Processor
	scene *Scene
}

// NewGUI generates the first scene of p and prepares the window configuration.
func NewGUI(p *Processor) (*Gui, error) {
	sc, err := p.Generate()
	if err != nil {
		return nil, err
	}
	g := &Gui{proc: p, scene: sc}
	g.cfg.window.w, g.cfg.window.h = windowSize(int(sc.Width), int(sc.Height))
	g.cfg.window.title = fmt.Sprintf("Sketchbook: %s", sc.Name)
	g.cfg.background = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	return g, nil
}

// Run is the event loop of the preview window. Space regenerates the
// scene using the current window width, Escape closes the window.
func (g *Gui) Run() error {
	w := new(app.Window)
	w.Option(
		app.Title(g.cfg.window.title),
		app.Size(unit.Dp(g.cfg.window.w), unit.Dp(g.cfg.window.h)),
	)

	defer func() {
		if g.proc.Spinner != nil {
			g.proc.Spinner.RestoreCursor()
		}
	}()

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			g.handleKeys(gtx, w)
			g.draw(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (g *Gui) handleKeys(gtx layout.Context, w *app.Window) {
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: key.NameSpace},
			key.Filter{Name: key.NameEscape},
		)
		if !ok {
			return
		}
		e, ok := ev.(key.Event)
		if !ok || e.State != key.Release {
			continue
		}
		switch e.Name {
		case key.NameEscape:
			w.Perform(system.ActionClose)
		case key.NameSpace:
			g.regenerate(gtx)
		}
	}
}

// regenerate replaces the scene with a new one sized to the window.
func (g *Gui) regenerate(gtx layout.Context) {
	width := float64(gtx.Metric.PxToDp(gtx.Constraints.Max.X))
	height := float64(gtx.Metric.PxToDp(gtx.Constraints.Max.Y))
	sc, err := g.proc.generate(width, height)
	if err != nil {
		g.proc.logger().Error("could not regenerate the scene", "error", err)
		return
	}
	g.scene = sc
}
