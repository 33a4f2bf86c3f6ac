package trimosaic

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Default configuration values.
const (
	DefaultVerticalTriangles = 30
	DefaultTriangleHeight    = 0.1
	DefaultOutput            = "out.svg"
)

// Config holds the options of a mosaic run.
type Config struct {
	// Source is the path or http(s) URL of the PNG image. Required.
	Source string
	// VerticalTriangles is the number of triangle rows. Defaults to 30.
	VerticalTriangles int
	// TriangleHeight is the height of a row in canvas units. Defaults to 0.1.
	TriangleHeight float64
	// Output is the destination file. A ".png" extension selects raster output,
	// anything else is written as SVG. Defaults to "out.svg".
	Output string
	// Mode selects filled triangles or outlines only.
	Mode Mode
	// Stroke is the outline color in outline mode. Defaults to black.
	Stroke Paint
	// StrokeWidth in canvas units. Defaults to 0.001.
	StrokeWidth float64
	// Grayscale converts sampled colors to gray levels.
	Grayscale bool
}

// DefaultConfig returns a configuration with every optional field set to its default.
func DefaultConfig() Config {
	return Config{
		VerticalTriangles: DefaultVerticalTriangles,
		TriangleHeight:    DefaultTriangleHeight,
		Output:            DefaultOutput,
		Mode:              FillMode,
		Stroke:            Black,
		StrokeWidth:       DefaultStrokeWidth,
	}
}

// ParseArgs maps the positional arguments
//
//	<image-path> [vertical-triangles] [triangle-height] [output-path]
//
// onto a default configuration. No file is touched.
func ParseArgs(args []string) (Config, error) {
	cfg := DefaultConfig()

	if len(args) == 0 || args[0] == "" {
		return cfg, errors.Wrapf(ErrMissingArgument, "%s: image path", StageArguments)
	}
	cfg.Source = args[0]

	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return cfg, errors.Wrapf(ErrInvalidNumericArgument,
				"%s: vertical triangles %q must be a positive integer", StageArguments, args[1])
		}
		cfg.VerticalTriangles = n
	}
	if len(args) > 2 {
		h, err := strconv.ParseFloat(args[2], 64)
		if err != nil || !(h > 0) || math.IsInf(h, 0) {
			return cfg, errors.Wrapf(ErrInvalidNumericArgument,
				"%s: triangle height %q must be a positive number", StageArguments, args[2])
		}
		cfg.TriangleHeight = h
	}
	if len(args) > 3 && args[3] != "" {
		cfg.Output = args[3]
	}
	return cfg, nil
}

// Validate checks the numeric fields of the configuration.
func (c Config) Validate() error {
	if c.Source == "" {
		return errors.Wrapf(ErrMissingArgument, "%s: image path", StageArguments)
	}
	if c.VerticalTriangles <= 0 {
		return errors.Wrapf(ErrInvalidNumericArgument, "%s: vertical triangles %d", StageArguments, c.VerticalTriangles)
	}
	if !(c.TriangleHeight > 0) || math.IsInf(c.TriangleHeight, 0) {
		return errors.Wrapf(ErrInvalidNumericArgument, "%s: triangle height %v", StageArguments, c.TriangleHeight)
	}
	if c.StrokeWidth < 0 {
		return errors.Wrapf(ErrInvalidNumericArgument, "%s: stroke width %v", StageArguments, c.StrokeWidth)
	}
	return nil
}
