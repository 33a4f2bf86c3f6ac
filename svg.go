package trimosaic

import (
	"bufio"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// SVG writes documents as scalable vector graphics.
type SVG struct {
	Title       string
	Description string
}

// Write emits one path element per record, in document order.
func (s *SVG) Write(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)

	canvas.Startraw(
		fmt.Sprintf(` viewBox="0 0 %s %s"`, formatFloat(doc.Width), formatFloat(doc.Height)),
		` preserveAspectRatio="xMidYMid meet"`,
	)
	if s.Title != "" {
		canvas.Title(s.Title)
	}
	if s.Description != "" {
		canvas.Desc(s.Description)
	}
	for _, rec := range doc.Records {
		canvas.Path(PathData(rec.Geometry.Path()), doc.Style(rec).Attrs()...)
	}
	canvas.End()

	return bw.Flush()
}
