package trimosaic

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(cfg Config) (*Processor, *memory.Handler) {
	handler := memory.New()
	p := NewProcessor(cfg)
	p.Logger = &log.Logger{Handler: handler, Level: log.DebugLevel}
	return p, handler
}

func TestProcessSVG(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source = "quadrant.png"
	cfg.VerticalTriangles = 2
	cfg.TriangleHeight = 1
	cfg.Output = filepath.Join(t.TempDir(), "out.svg")

	p, handler := newTestProcessor(cfg)
	doc, err := p.Process(bytes.NewReader(encodePNG(t, quadrantImage())))
	require.NoError(t, err)

	require.Len(t, doc.Records, 8)
	assert.InDelta(t, 1.732, doc.Width, 1e-3)
	assert.Equal(t, 2.0, doc.Height)
	require.NotNil(t, doc.Records[0].Color)
	assert.Equal(t, "#FF0000", doc.Records[0].Color.Hex())

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, 8, strings.Count(string(data), "<path"))

	var messages []string
	for _, e := range handler.Entries {
		messages = append(messages, e.Message)
	}
	assert.Equal(t, []string{"decoded image", "generated mosaic", "document written"}, messages)
}

func TestProcessRaster(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source = "quadrant.png"
	cfg.VerticalTriangles = 2
	cfg.TriangleHeight = 1
	cfg.Output = filepath.Join(t.TempDir(), "out.png")

	p, _ := newTestProcessor(cfg)
	_, err := p.Process(bytes.NewReader(encodePNG(t, quadrantImage())))
	require.NoError(t, err)

	f, err := os.Open(cfg.Output)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
}

func TestProcessOutline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source = "quadrant.png"
	cfg.Mode = OutlineMode
	cfg.Output = filepath.Join(t.TempDir(), "out.svg")

	p, _ := newTestProcessor(cfg)
	doc, err := p.Process(bytes.NewReader(encodePNG(t, quadrantImage())))
	require.NoError(t, err)
	for _, rec := range doc.Records {
		assert.Nil(t, rec.Color)
	}
	assert.Len(t, doc.Records, 30*(51+1))
}

func tallImagePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1, 50))
	for y := 0; y < 50; y++ {
		img.Set(0, y, color.RGBA{R: uint8(y * 5), A: 0xff})
	}
	return encodePNG(t, img)
}

func TestProcessZeroWidthCanvas(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Source = "tall.png"
	cfg.VerticalTriangles = 3
	cfg.Output = filepath.Join(dir, "out.svg")

	p, handler := newTestProcessor(cfg)
	doc, err := p.Process(bytes.NewReader(tallImagePNG(t)))
	require.NoError(t, err)
	assert.Len(t, doc.Records, 3)
	assert.Equal(t, 0.0, doc.Width)

	var warned bool
	for _, e := range handler.Entries {
		if e.Level == log.WarnLevel {
			warned = true
			assert.Equal(t, 1, e.Fields["width"])
			assert.Equal(t, 50, e.Fields["height"])
		}
	}
	assert.True(t, warned, "expected a zero width warning")

	// The raster writer refuses a zero width canvas and no file is produced.
	cfg.Output = filepath.Join(dir, "out.png")
	p, _ = newTestProcessor(cfg)
	_, err = p.Process(bytes.NewReader(tallImagePNG(t)))
	assert.ErrorIs(t, err, ErrDocumentWrite)
	assert.NoFileExists(t, cfg.Output)
}

func TestProcessErrors(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Source = "broken.png"
	cfg.Output = filepath.Join(dir, "out.svg")

	p, _ := newTestProcessor(cfg)
	_, err := p.Process(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyImage)
	assert.NoFileExists(t, cfg.Output)

	_, err = p.Process(strings.NewReader("this is not an image at all"))
	assert.ErrorIs(t, err, ErrUnsupportedColorEncoding)
	assert.NoFileExists(t, cfg.Output)

	cfg.TriangleHeight = 0
	p, _ = newTestProcessor(cfg)
	_, err = p.Process(bytes.NewReader(encodePNG(t, quadrantImage())))
	assert.ErrorIs(t, err, ErrInvalidNumericArgument)

	cfg = DefaultConfig()
	cfg.Source = "quadrant.png"
	cfg.Output = filepath.Join(dir, "missing", "out.svg")
	p, _ = newTestProcessor(cfg)
	_, err = p.Process(bytes.NewReader(encodePNG(t, quadrantImage())))
	assert.ErrorIs(t, err, ErrDocumentWrite)
}
