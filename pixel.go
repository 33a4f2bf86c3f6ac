package trimosaic

import (
	"github.com/pkg/errors"
)

// Color is a 24-bit RGB sample.
type Color struct {
	R, G, B uint8
}

// Gray returns the luma equivalent of the color.
func (c Color) Gray() Color {
	l := luma(c.R, c.G, c.B)
	return Color{R: l, G: l, B: l}
}

// PixelBuffer is a row-major RGB image, three bytes per pixel.
// It is never modified once created.
type PixelBuffer struct {
	width  int
	height int
	data   []byte
}

// NewPixelBuffer wraps data as a width x height RGB buffer.
func NewPixelBuffer(width, height int, data []byte) (*PixelBuffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "image size %dx%d", width, height)
	}
	if len(data) != width*height*3 {
		return nil, errors.Wrapf(ErrInvalidInput,
			"pixel data has %d bytes, expected %d for %dx%d", len(data), width*height*3, width, height)
	}
	return &PixelBuffer{width: width, height: height, data: data}, nil
}

// Width of the buffer in pixels.
func (p *PixelBuffer) Width() int { return p.width }

// Height of the buffer in pixels.
func (p *PixelBuffer) Height() int { return p.height }

// Len returns the number of bytes held by the buffer.
func (p *PixelBuffer) Len() int {
	if p == nil {
		return 0
	}
	return len(p.data)
}

// Sample returns the pixel at (x, y). Coordinates outside of the image are clamped
// to the nearest edge pixel.
func (p *PixelBuffer) Sample(x, y int) Color {
	x = Clamp(x, 0, p.width-1)
	y = Clamp(y, 0, p.height-1)

	idx := (x + y*p.width) * 3
	return Color{R: p.data[idx], G: p.data[idx+1], B: p.data[idx+2]}
}
