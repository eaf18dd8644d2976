package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"gioui.org/app"
	"github.com/esimov/sketchbook"
	"github.com/esimov/sketchbook/utils"
	"github.com/gogpu/gg"
)

const HelpBanner = `
┌─┐┬┌─┌─┐┌┬┐┌─┐┬ ┬┌┐ ┌─┐┌─┐┬┌─
└─┐├┴┐├┤  │ │  ├─┤├┴┐│ ││ │├┴┐
└─┘┴ ┴└─┘ ┴ └─┘┴ ┴└─┘└─┘└─┘┴ ┴

Generative art sketches.
    Version: %s

Usage: sketchbook [flags] [sketch]

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	sketchName  = flag.String("sketch", "", "Sketch to draw (see -list)")
	destination = flag.String("out", "", "Destination file, - for stdout; opens a preview window when empty")
	format      = flag.String("format", "", "Output format overriding the file extension (png, jpg, bmp, svg, pdf)")
	width       = flag.Int("width", sketchbook.DefaultWidth, "Drawing width")
	height      = flag.Int("height", sketchbook.DefaultHeight, "Drawing height")
	seed        = flag.Uint64("seed", 0, "Random seed, 0 for a time based one")
	list        = flag.Bool("list", false, "List the available sketches")
	verbose     = flag.Bool("verbose", false, "Print diagnostic logs")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nSketches:\n  %s\n", strings.Join(sketchbook.Sketches(), "\n  "))
	}
	flag.Parse()

	if *list {
		for _, name := range sketchbook.Sketches() {
			fmt.Println(name)
		}
		return
	}

	name := *sketchName
	if name == "" && flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	if name == "" {
		flag.Usage()
		os.Exit(2)
	}
	if _, err := sketchbook.Lookup(name); err != nil {
		log.Fatalf("%s %s",
			utils.DecorateText(err.Error(), utils.ErrorMessage),
			utils.DecorateText("(run with -list to see the available sketches)", utils.DefaultMessage),
		)
	}

	logger := slog.New(slog.DiscardHandler)
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	gg.SetLogger(logger)

	proc := &sketchbook.Processor{
		Sketch:  name,
		Width:   *width,
		Height:  *height,
		Seed:    *seed,
		Preview: *destination == "",
		Logger:  logger,
	}

	if proc.Preview {
		go func() {
			if err := proc.ShowPreview(); err != nil {
				log.Fatal(utils.Decoratef(utils.ErrorMessage, "Preview window closed with error: %v", err))
			}
			os.Exit(0)
		}()
		app.Main()
		return
	}

	op := &sketchbook.Ops{
		Dst:      *destination,
		PipeName: pipeName,
		Quiet:    *destination == pipeName,
	}
	if *format != "" {
		f, err := sketchbook.ParseFormat(*format)
		if err != nil {
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
		op.Format = f
	}

	if err := proc.Execute(op); err != nil {
		if errors.Is(err, sketchbook.ErrTerminalPipe) {
			log.Print(utils.DecorateText("Redirect the output to a file or another program: sketchbook -out - ... > out.png", utils.DefaultMessage))
		}
		os.Exit(1)
	}
}
