/*
Package trimosaic converts raster images into low-poly art: a grid of alternating
up and down pointing triangles, each painted with the color of the source pixel it covers.

The package provides a command line utility supporting various customization options.
Check the supported commands by typing:

	$ trimosaic --help

Using Go interfaces the API can expose the result either as vector or raster type.

Example to generate a mosaic and output the result as SVG:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/trimosaic"
	)

	func main() {
		cfg := trimosaic.DefaultConfig()
		cfg.VerticalTriangles = 40
		cfg.Output = "mosaic.svg"

		f, err := os.Open("input.png")
		if err != nil {
			fmt.Printf("Unable to open source: %v", err)
			return
		}
		defer f.Close()

		if _, err := trimosaic.NewProcessor(cfg).Process(f); err != nil {
			fmt.Printf("Error on mosaic generation: %s", err.Error())
		}
	}

The individual stages are exported as well: ComputeGrid sizes the grid after the image
aspect ratio, Walker.Generate produces the triangle records and the SVG and Image
writers serialize a Document.
*/
package trimosaic
