/*
Package sketchbook is a collection of generative art sketches. Every sketch
produces a Scene, a display list of polygons, polylines and circles, which
can be previewed in a window or encoded as PNG, JPEG, BMP, SVG or PDF.

The package provides a command line interface. To list the supported
sketches type:

	$ sketchbook -list

The API can also be used directly:

	package main

	import (
		"log"
		"os"

		"github.com/esimov/sketchbook"
	)

	func main() {
		p := &sketchbook.Processor{
			Sketch: "piet-mondrian",
			Seed:   42,
		}

		if err := p.Process(os.Stdout, sketchbook.SVG); err != nil {
			log.Fatalf("Error drawing the sketch: %v", err)
		}
	}
*/
package sketchbook
