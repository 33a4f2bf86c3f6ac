package trimosaic

import (
	"io"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

// Processor runs the mosaic pipeline: decode, grid sizing, walk and serialization.
type Processor struct {
	Config
	Decoder Decoder
	Logger  log.Interface
}

// NewProcessor returns a processor decoding PNG input and logging through the
// package level apex logger.
func NewProcessor(cfg Config) *Processor {
	return &Processor{
		Config:  cfg,
		Decoder: PNGDecoder{},
		Logger:  log.Log,
	}
}

// Build decodes the source image and returns the mosaic document along with the
// source image size.
func (p *Processor) Build(src io.Reader) (*Document, *PixelBuffer, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	dec := p.Decoder
	if dec == nil {
		dec = PNGDecoder{}
	}
	buf, err := dec.Decode(src)
	if err != nil {
		return nil, nil, err
	}
	p.logger().WithFields(log.Fields{
		"width":  buf.Width(),
		"height": buf.Height(),
	}).Debug("decoded image")

	grid, err := ComputeGrid(buf.Width(), buf.Height(), p.VerticalTriangles, p.TriangleHeight)
	if err != nil {
		return nil, nil, errors.Wrap(err, StageGenerate)
	}

	walker := Walker{Mode: p.Mode, Grayscale: p.Grayscale}
	records, err := walker.Generate(buf, grid)
	if err != nil {
		return nil, nil, errors.Wrap(err, StageGenerate)
	}

	doc := NewDocument(grid)
	doc.Outline = p.Stroke
	doc.StrokeWidth = p.StrokeWidth
	doc.Append(records...)

	p.logger().WithFields(log.Fields{
		"rows":      grid.Vertical,
		"columns":   grid.Horizontal,
		"triangles": len(doc.Records),
		"mode":      p.Mode,
	}).Debug("generated mosaic")

	if doc.Width == 0 {
		p.logger().WithFields(log.Fields{
			"width":  buf.Width(),
			"height": buf.Height(),
		}).Warn("image too narrow for a single column, canvas has zero width")
	}

	return doc, buf, nil
}

// Process builds the mosaic of src and writes it to the configured output file.
func (p *Processor) Process(src io.Reader) (*Document, error) {
	doc, buf, err := p.Build(src)
	if err != nil {
		return nil, err
	}

	wr := WriterFor(p.Output, buf.Width(), buf.Height())
	if err := WriteFile(p.Output, doc, wr); err != nil {
		return nil, err
	}
	p.logger().WithField("output", p.Output).Debug("document written")

	return doc, nil
}

func (p *Processor) logger() log.Interface {
	if p.Logger == nil {
		return log.Log
	}
	return p.Logger
}
