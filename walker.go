package trimosaic

import (
	"github.com/pkg/errors"
)

// Mode selects how triangles are painted.
type Mode int

const (
	// FillMode paints every triangle with the color sampled under it.
	FillMode Mode = iota
	// OutlineMode draws only the triangle edges, without sampling colors.
	OutlineMode
)

func (m Mode) String() string {
	switch m {
	case FillMode:
		return "fill"
	case OutlineMode:
		return "outline"
	}
	return "unknown"
}

// Point is a position in canvas space.
type Point struct {
	X, Y float64
}

// Cell identifies a triangle of the grid.
type Cell struct {
	Row, Col int
}

// PointsUp reports the orientation of the triangle occupying the cell. Orientation
// alternates like a checkerboard so that neighbours share their edges.
func (c Cell) PointsUp() bool {
	return (c.Row%2 == 0) != (c.Col%2 == 0)
}

// Geometry holds the canvas-space placement of a single triangle.
type Geometry struct {
	Origin        Point
	HalfBaseWidth float64
	Height        float64
	PointsUp      bool
}

// Vertices returns the three corners of the triangle, starting with the vertex the
// path moves to first.
func (g Geometry) Vertices() [3]Point {
	x, y, h, t := g.Origin.X, g.Origin.Y, g.HalfBaseWidth, g.Height
	if g.PointsUp {
		return [3]Point{{x, y}, {x - h, y + t}, {x + h, y + t}}
	}
	return [3]Point{{x, y + t}, {x - h, y}, {x + h, y}}
}

// Path returns the drawing operations outlining the triangle.
func (g Geometry) Path() []PathOp {
	return TrianglePath(g.Origin.X, g.Origin.Y, g.HalfBaseWidth, g.Height, g.PointsUp)
}

// Record is one triangle of the mosaic. Color is nil in outline mode.
type Record struct {
	Cell     Cell
	Geometry Geometry
	Color    *Color
}

// Walker visits the grid cells and builds the mosaic records.
type Walker struct {
	Mode      Mode
	Grayscale bool
}

// Generate walks the grid in row-major order, left to right and top to bottom, and
// returns one record per cell: grid.Vertical * (grid.Horizontal + 1) records in total.
func (w Walker) Generate(buf *PixelBuffer, grid GridParameters) ([]Record, error) {
	if buf.Len() == 0 {
		return nil, ErrEmptyImage
	}
	if grid.Vertical <= 0 || grid.Horizontal < 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "grid %dx%d", grid.Horizontal, grid.Vertical)
	}

	var (
		width, height = buf.Width(), buf.Height()
		records       = make([]Record, 0, grid.Cells())
		// A grid narrower than a single stride (Horizontal == 0) only holds the
		// trailing column, which maps to pixel column 0.
		columns = Max(grid.Horizontal, 1)
	)

	for row := 0; row < grid.Vertical; row++ {
		imgY := Min(row*height/grid.Vertical, height-1)
		for col := 0; col <= grid.Horizontal; col++ {
			cell := Cell{Row: row, Col: col}
			rec := Record{
				Cell: cell,
				Geometry: Geometry{
					Origin:        Point{X: float64(col) * grid.HalfBaseWidth, Y: float64(row) * grid.TriangleHeight},
					HalfBaseWidth: grid.HalfBaseWidth,
					Height:        grid.TriangleHeight,
					PointsUp:      cell.PointsUp(),
				},
			}
			if w.Mode == FillMode {
				imgX := Min(col*width/columns, width-1)
				c := buf.Sample(imgX, imgY)
				if w.Grayscale {
					c = c.Gray()
				}
				rec.Color = &c
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

// Generate walks the grid in fill mode.
func Generate(buf *PixelBuffer, grid GridParameters) ([]Record, error) {
	return Walker{Mode: FillMode}.Generate(buf, grid)
}
