package trimosaic

import (
	"math"

	"github.com/pkg/errors"
)

// GridParameters describes the triangle grid laid over the source image.
type GridParameters struct {
	// Vertical is the number of triangle rows.
	Vertical int
	// Horizontal is the number of column strides fitting the image width.
	Horizontal int
	// TriangleHeight is the vertical extent of a row in canvas units.
	TriangleHeight float64
	// HalfBaseWidth is half of a triangle's base edge, which is also the column stride.
	HalfBaseWidth float64
}

// ComputeGrid derives the horizontal triangle count and the half-base width so that the
// resulting grid approximates the aspect ratio of an imageWidth x imageHeight image.
//
// The horizontal count truncates, which may leave a partial column on the right edge.
func ComputeGrid(imageWidth, imageHeight, vertical int, triangleHeight float64) (GridParameters, error) {
	if imageWidth <= 0 || imageHeight <= 0 {
		return GridParameters{}, errors.Wrapf(ErrInvalidInput, "image size %dx%d", imageWidth, imageHeight)
	}
	if vertical <= 0 {
		return GridParameters{}, errors.Wrapf(ErrInvalidInput, "vertical triangle count %d", vertical)
	}
	if !(triangleHeight > 0) || math.IsInf(triangleHeight, 0) {
		return GridParameters{}, errors.Wrapf(ErrInvalidInput, "triangle height %v", triangleHeight)
	}

	ratio := imageWidth * vertical / imageHeight
	return GridParameters{
		Vertical:       vertical,
		Horizontal:     int(math.Floor(float64(ratio) * math.Sqrt(3))),
		TriangleHeight: triangleHeight,
		HalfBaseWidth:  triangleHeight / math.Sqrt(3),
	}, nil
}

// CanvasSize returns the width and height of the drawing covered by the grid.
func (g GridParameters) CanvasSize() (float64, float64) {
	return float64(g.Horizontal) * g.HalfBaseWidth, float64(g.Vertical) * g.TriangleHeight
}

// Cells returns the number of triangles produced by a full walk of the grid.
// The column range is inclusive to cover the trailing partial column.
func (g GridParameters) Cells() int {
	return g.Vertical * (g.Horizontal + 1)
}
