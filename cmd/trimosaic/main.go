package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/esimov/trimosaic"
	"github.com/esimov/trimosaic/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const helpBanner = `Convert raster images into a low-poly mosaic of alternating triangles.

The output is an SVG document unless the output path ends in .png, in which
case the mosaic is rasterized at the size of the source image.`

type options struct {
	outline bool
	stroke  string
	gray    bool
	verbose bool
}

func main() {
	log.SetHandler(clihandler.Default)

	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "trimosaic <image-path> [vertical-triangles=30] [triangle-height=0.1] [output-path=out.svg]",
		Short:         "Convert a PNG image into a triangle mosaic",
		Long:          helpBanner,
		Args:          cobra.MaximumNArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
			cfg, err := configure(args, opts)
			if err != nil {
				return err
			}
			return run(cfg, stderr)
		},
	}

	cmd.Flags().BoolVarP(&opts.outline, "outline", "o", false, "Draw triangle outlines only")
	cmd.Flags().StringVarP(&opts.stroke, "stroke", "s", "black", "Outline color, as a name or #RRGGBB")
	cmd.Flags().BoolVarP(&opts.gray, "gray", "g", false, "Convert sampled colors to grayscale")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "V", false, "Enable verbose logging")

	return cmd
}

// configure validates every argument before any file is opened.
func configure(args []string, opts *options) (trimosaic.Config, error) {
	cfg, err := trimosaic.ParseArgs(args)
	if err != nil {
		return cfg, err
	}
	if opts.outline {
		cfg.Mode = trimosaic.OutlineMode
	}
	cfg.Grayscale = opts.gray
	if opts.stroke != "" {
		paint, err := trimosaic.ParsePaint(opts.stroke)
		if err != nil {
			return cfg, errors.Wrap(err, trimosaic.StageArguments)
		}
		cfg.Stroke = paint
	}
	return cfg, nil
}

func run(cfg trimosaic.Config, stderr io.Writer) error {
	src, closer, err := openSource(cfg.Source)
	if err != nil {
		return err
	}
	defer closer()

	var spinner *utils.Spinner
	if f, ok := stderr.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		spinner = utils.NewSpinner(stderr, "Generating triangle mosaic...")
		spinner.Start()
	}

	start := time.Now()
	doc, err := trimosaic.NewProcessor(cfg).Process(src)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return errors.Wrapf(err, "converting %s", cfg.Source)
	}

	log.WithFields(log.Fields{
		"triangles": len(doc.Records),
		"elapsed":   utils.FormatTime(time.Since(start)),
	}).Infof("saved as %s %s", filepath.Base(cfg.Output), utils.Decorate("✓", utils.SuccessColor))
	return nil
}

func openSource(src string) (io.Reader, func(), error) {
	if utils.IsURL(src) {
		r, err := utils.DownloadImage(src)
		if err != nil {
			return nil, nil, errors.Wrapf(trimosaic.ErrFileOpen, "%v", err)
		}
		return r, func() {}, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, nil, errors.Wrapf(trimosaic.ErrFileOpen, "%v", err)
	}
	return f, func() { f.Close() }, nil
}
