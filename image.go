package trimosaic

import (
	"image/color"
	"image/png"
	"io"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Image rasterizes documents into PNG files of Width x Height pixels.
type Image struct {
	Width  int
	Height int
}

// Write draws every record onto a white background and encodes the result as PNG.
func (im *Image) Write(w io.Writer, doc *Document) error {
	if im.Width <= 0 || im.Height <= 0 {
		return errors.Wrapf(ErrInvalidInput, "raster size %dx%d", im.Width, im.Height)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return errors.Wrapf(ErrInvalidInput, "canvas size %vx%v", doc.Width, doc.Height)
	}

	ctx := gg.NewContext(im.Width, im.Height)
	ctx.DrawRectangle(0, 0, float64(im.Width), float64(im.Height))
	ctx.SetRGBA(1, 1, 1, 1)
	ctx.Fill()

	sx := float64(im.Width) / doc.Width
	sy := float64(im.Height) / doc.Height

	for _, rec := range doc.Records {
		ctx.Push()
		Walk(rec.Geometry.Path(),
			func(x, y float64) { ctx.MoveTo(x*sx, y*sy) },
			func(x, y float64) { ctx.LineTo(x*sx, y*sy) },
			ctx.ClosePath,
		)
		if rec.Color != nil {
			c := color.RGBA{R: rec.Color.R, G: rec.Color.G, B: rec.Color.B, A: 255}
			ctx.SetFillStyle(gg.NewSolidPattern(c))
			ctx.SetStrokeStyle(gg.NewSolidPattern(c))
			// Stroke with the fill color so neighbouring tiles leave no seams.
			ctx.SetLineWidth(1)
			ctx.FillPreserve()
			ctx.Stroke()
		} else {
			ctx.SetStrokeStyle(gg.NewSolidPattern(doc.Outline.Color))
			ctx.SetLineWidth(1)
			ctx.Stroke()
		}
		ctx.Pop()
	}

	return png.Encode(w, ctx.Image())
}
