package trimosaic

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// DefaultStrokeWidth is the stroke width, in canvas units, applied to every triangle.
// Filled triangles are stroked with their own color so adjacent tiles show no seams.
const DefaultStrokeWidth = 0.001

// PathCmd is a single drawing instruction.
type PathCmd int

const (
	// MoveTo starts a new subpath at an absolute point.
	MoveTo PathCmd = iota
	// LineBy draws a line to a point relative to the current one.
	LineBy
	// Close joins the current point back to the subpath start.
	Close
)

// PathOp is a drawing instruction with its operands. LineBy operands are relative
// to the current point.
type PathOp struct {
	Cmd  PathCmd
	X, Y float64
}

// TrianglePath returns the operations drawing a triangle whose cell origin is (x, y).
//
// An up-pointing triangle starts at its apex (x, y). A down-pointing triangle starts at
// its bottom vertex (x, y+height), so its top edge lies on the row boundary it shares
// with the row above.
func TrianglePath(x, y, halfBaseWidth, height float64, pointsUp bool) []PathOp {
	if pointsUp {
		return []PathOp{
			{Cmd: MoveTo, X: x, Y: y},
			{Cmd: LineBy, X: -halfBaseWidth, Y: height},
			{Cmd: LineBy, X: 2 * halfBaseWidth, Y: 0},
			{Cmd: Close},
		}
	}
	return []PathOp{
		{Cmd: MoveTo, X: x, Y: y + height},
		{Cmd: LineBy, X: -halfBaseWidth, Y: -height},
		{Cmd: LineBy, X: 2 * halfBaseWidth, Y: 0},
		{Cmd: Close},
	}
}

// PathData encodes the operations as an SVG path "d" attribute.
func PathData(ops []PathOp) string {
	var sb strings.Builder
	for i, op := range ops {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch op.Cmd {
		case MoveTo:
			fmt.Fprintf(&sb, "M%s,%s", formatFloat(op.X), formatFloat(op.Y))
		case LineBy:
			fmt.Fprintf(&sb, "l%s,%s", formatFloat(op.X), formatFloat(op.Y))
		case Close:
			sb.WriteByte('z')
		}
	}
	return sb.String()
}

// Walk replays the operations as absolute coordinates. moveTo and lineTo receive the
// resolved points, closePath is called on Close.
func Walk(ops []PathOp, moveTo, lineTo func(x, y float64), closePath func()) {
	var cx, cy float64
	for _, op := range ops {
		switch op.Cmd {
		case MoveTo:
			cx, cy = op.X, op.Y
			moveTo(cx, cy)
		case LineBy:
			cx, cy = cx+op.X, cy+op.Y
			lineTo(cx, cy)
		case Close:
			closePath()
		}
	}
}

// Hex encodes the color as an uppercase #RRGGBB string.
func (c Color) Hex() string {
	return strings.ToUpper(colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex())
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Paint is a stroke color as written in the document: either a color name or a hex value.
type Paint struct {
	Name  string
	Color Color
}

// Black is the default outline paint.
var Black = Paint{Name: "black"}

// ParsePaint accepts a CSS color name ("black", "steelblue") or a #RRGGBB hex value.
func ParsePaint(s string) (Paint, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return Paint{Name: name, Color: Color{R: c.R, G: c.G, B: c.B}}, nil
	}
	c, err := colorful.Hex(name)
	if err != nil {
		return Paint{}, errors.Wrapf(ErrInvalidInput, "color %q", s)
	}
	r, g, b := c.RGB255()
	return Paint{Color: Color{R: r, G: g, B: b}}, nil
}

// Attr returns the value used in a color attribute.
func (p Paint) Attr() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Color.Hex()
}

// Style describes how a triangle path is painted.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Attrs returns the style as SVG presentation attributes.
func (s Style) Attrs() []string {
	return []string{
		fmt.Sprintf(`fill="%s"`, s.Fill),
		fmt.Sprintf(`stroke="%s"`, s.Stroke),
		fmt.Sprintf(`stroke-width="%s"`, formatFloat(s.StrokeWidth)),
	}
}

// RecordStyle returns the paint of a record. Records carrying a color are filled and
// stroked with it; the others get a transparent fill with a solid outline.
func RecordStyle(rec Record, outline Paint, strokeWidth float64) Style {
	if rec.Color != nil {
		hex := rec.Color.Hex()
		return Style{Fill: hex, Stroke: hex, StrokeWidth: strokeWidth}
	}
	return Style{Fill: "none", Stroke: outline.Attr(), StrokeWidth: strokeWidth}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
