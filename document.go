package trimosaic

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Document is the ordered list of triangles making up a mosaic together
// with the size of the canvas they are drawn on.
type Document struct {
	Width   float64
	Height  float64
	Records []Record

	// Outline is the stroke paint used for records without a color.
	Outline Paint
	// StrokeWidth applies to every record, in canvas units.
	StrokeWidth float64
}

// NewDocument creates an empty document sized after the grid.
func NewDocument(grid GridParameters) *Document {
	w, h := grid.CanvasSize()
	return &Document{
		Width:       w,
		Height:      h,
		Records:     make([]Record, 0, grid.Cells()),
		Outline:     Black,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// Append adds records at the end of the document.
func (d *Document) Append(recs ...Record) {
	d.Records = append(d.Records, recs...)
}

// Style returns the paint of a record within the document.
func (d *Document) Style(rec Record) Style {
	return RecordStyle(rec, d.Outline, d.StrokeWidth)
}

// Writer serializes a document.
type Writer interface {
	Write(w io.Writer, doc *Document) error
}

// WriterFor picks the document writer matching the output file extension. Raster
// output is rendered at width x height pixels.
func WriterFor(path string, width, height int) Writer {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return &Image{Width: width, Height: height}
	default:
		return &SVG{
			Title:       "Triangle mosaic",
			Description: "Raster image converted to a grid of alternating triangles.",
		}
	}
}

// WriteFile serializes the document into the file at path. The document is written
// to a temporary file in the same directory and renamed into place once complete,
// so a failed write never leaves a partial file behind.
func WriteFile(path string, doc *Document, wr Writer) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(ErrDocumentWrite, "%s: %v", StageWrite, err)
	}
	tmp := f.Name()

	if err := wr.Write(f, doc); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrapf(ErrDocumentWrite, "%s: %v", StageWrite, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(ErrDocumentWrite, "%s: %v", StageWrite, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(ErrDocumentWrite, "%s: %v", StageWrite, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(ErrDocumentWrite, "%s: %v", StageWrite, err)
	}
	return nil
}
