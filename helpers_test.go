package trimosaic

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	red   = Color{R: 0xff}
	green = Color{G: 0xff}
	blue  = Color{B: 0xff}
	white = Color{R: 0xff, G: 0xff, B: 0xff}
)

// quadrantImage returns the 2x2 fixture: red, green on top and blue, white below.
func quadrantImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	img.Set(1, 0, color.RGBA{G: 0xff, A: 0xff})
	img.Set(0, 1, color.RGBA{B: 0xff, A: 0xff})
	img.Set(1, 1, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	return img
}

func quadrantBuffer(t testing.TB) *PixelBuffer {
	t.Helper()
	buf, err := NewPixelBuffer(2, 2, []byte{
		0xff, 0, 0, 0, 0xff, 0,
		0, 0, 0xff, 0xff, 0xff, 0xff,
	})
	require.NoError(t, err)
	return buf
}

// coordBuffer returns a buffer whose pixel (x, y) holds the color (x, y, 0), which makes
// the sampled coordinate readable from a record's color.
func coordBuffer(t testing.TB, width, height int) *PixelBuffer {
	t.Helper()
	data := make([]byte, 0, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			data = append(data, byte(x), byte(y), 0)
		}
	}
	buf, err := NewPixelBuffer(width, height, data)
	require.NoError(t, err)
	return buf
}

func encodePNG(t testing.TB, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// rawPNG assembles a non-interlaced PNG from already filtered scanlines, which covers
// encodings image/png never writes.
func rawPNG(t testing.TB, width, height uint32, bitDepth, colorType byte, scanlines []byte) []byte {
	t.Helper()

	var out bytes.Buffer
	out.Write(pngSignature)

	chunk := func(typ string, data []byte) {
		var length [4]byte
		binary.BigEndian.PutUint32(length[:], uint32(len(data)))
		out.Write(length[:])

		body := append([]byte(typ), data...)
		out.Write(body)

		var crc [4]byte
		binary.BigEndian.PutUint32(crc[:], crc32.ChecksumIEEE(body))
		out.Write(crc[:])
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], width)
	binary.BigEndian.PutUint32(ihdr[4:8], height)
	ihdr[8] = bitDepth
	ihdr[9] = colorType
	chunk("IHDR", ihdr)

	var z bytes.Buffer
	zw := zlib.NewWriter(&z)
	_, err := zw.Write(scanlines)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	chunk("IDAT", z.Bytes())
	chunk("IEND", nil)

	return out.Bytes()
}
