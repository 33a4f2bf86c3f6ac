package trimosaic

import "github.com/pkg/errors"

// Error kinds returned by the mosaic pipeline. Every error surfaced by this
// package wraps one of these together with the stage that produced it, so
// callers should compare with errors.Is.
var (
	ErrMissingArgument          = errors.New("missing argument")
	ErrInvalidNumericArgument   = errors.New("invalid numeric argument")
	ErrInvalidInput             = errors.New("invalid input")
	ErrFileOpen                 = errors.New("unable to open file")
	ErrUnsupportedBitDepth      = errors.New("unsupported bit depth")
	ErrUnsupportedColorEncoding = errors.New("unsupported color encoding")
	ErrEmptyImage               = errors.New("empty image")
	ErrDocumentWrite            = errors.New("unable to write document")
)

// Pipeline stages used as error context.
const (
	StageArguments = "parse arguments"
	StageDecode    = "decode"
	StageGenerate  = "generate"
	StageWrite     = "write"
)
