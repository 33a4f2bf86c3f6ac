package trimosaic

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/pkg/errors"
)

// Decoder turns an encoded image into an RGB pixel buffer.
type Decoder interface {
	Decode(r io.Reader) (*PixelBuffer, error)
}

// PNG color types accepted by PNGDecoder.
const (
	pngGrayscale      = 0
	pngTruecolor      = 2
	pngGrayscaleAlpha = 4
	pngTruecolorAlpha = 6
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// pngHeader holds the IHDR fields relevant to normalization.
type pngHeader struct {
	width, height uint32
	bitDepth      uint8
	colorType     uint8
}

// PNGDecoder decodes 8-bit RGB, RGBA, grayscale and grayscale+alpha PNG images.
// Alpha is dropped and gray levels are replicated across the three channels.
type PNGDecoder struct{}

// Decode reads the whole PNG stream and normalizes it to 24-bit RGB.
func (PNGDecoder) Decode(r io.Reader) (*PixelBuffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(ErrFileOpen, "%s: %v", StageDecode, err)
	}
	if len(data) == 0 {
		return nil, errors.Wrap(ErrEmptyImage, StageDecode)
	}

	hdr, err := readPNGHeader(data)
	if err != nil {
		return nil, errors.Wrap(err, StageDecode)
	}
	if hdr.bitDepth != 8 {
		return nil, errors.Wrapf(ErrUnsupportedBitDepth, "%s: bit depth %d", StageDecode, hdr.bitDepth)
	}
	switch hdr.colorType {
	case pngGrayscale, pngTruecolor, pngGrayscaleAlpha, pngTruecolorAlpha:
	default:
		return nil, errors.Wrapf(ErrUnsupportedColorEncoding, "%s: color type %d", StageDecode, hdr.colorType)
	}
	if hdr.width == 0 || hdr.height == 0 {
		return nil, errors.Wrap(ErrEmptyImage, StageDecode)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupportedColorEncoding, "%s: %v", StageDecode, err)
	}

	buf, err := NewPixelBuffer(img.Bounds().Dx(), img.Bounds().Dy(), toRGB(img))
	if err != nil {
		return nil, errors.Wrap(err, StageDecode)
	}
	return buf, nil
}

// readPNGHeader validates the signature and parses the leading IHDR chunk.
func readPNGHeader(data []byte) (pngHeader, error) {
	// signature, chunk length, chunk type and the 13 byte IHDR payload
	const minLen = 8 + 4 + 4 + 13
	if len(data) < minLen || !bytes.Equal(data[:8], pngSignature) {
		return pngHeader{}, errors.Wrap(ErrUnsupportedColorEncoding, "not a PNG image")
	}
	if string(data[12:16]) != "IHDR" {
		return pngHeader{}, errors.Wrap(ErrUnsupportedColorEncoding, "missing IHDR chunk")
	}
	ihdr := data[16:]
	return pngHeader{
		width:     binary.BigEndian.Uint32(ihdr[0:4]),
		height:    binary.BigEndian.Uint32(ihdr[4:8]),
		bitDepth:  ihdr[8],
		colorType: ihdr[9],
	}, nil
}

// toRGB flattens any image type into row-major RGB bytes with min-point at (0, 0).
func toRGB(img image.Image) []byte {
	var (
		bounds = img.Bounds()
		minX   = bounds.Min.X
		minY   = bounds.Min.Y
		w      = bounds.Dx()
		h      = bounds.Dy()
		dst    = make([]byte, w*h*3)
		di     int
	)

	switch src := img.(type) {
	case *image.RGBA:
		for y := 0; y < h; y++ {
			si := src.PixOffset(minX, minY+y)
			for x := 0; x < w; x++ {
				copy(dst[di:di+3], src.Pix[si:si+3])
				di += 3
				si += 4
			}
		}
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			si := src.PixOffset(minX, minY+y)
			for x := 0; x < w; x++ {
				copy(dst[di:di+3], src.Pix[si:si+3])
				di += 3
				si += 4
			}
		}
	case *image.Gray:
		for y := 0; y < h; y++ {
			si := src.PixOffset(minX, minY+y)
			for x := 0; x < w; x++ {
				c := src.Pix[si]
				dst[di+0] = c
				dst[di+1] = c
				dst[di+2] = c
				di += 3
				si++
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := color.NRGBAModel.Convert(img.At(minX+x, minY+y)).(color.NRGBA)
				dst[di+0] = c.R
				dst[di+1] = c.G
				dst[di+2] = c.B
				di += 3
			}
		}
	}
	return dst
}
