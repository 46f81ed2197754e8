package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/okgraph/diffdist"
	"github.com/benoitkugler/okgraph/graphconfig"
	"github.com/benoitkugler/okgraph/graphpdf"
	"github.com/benoitkugler/okgraph/graphraster"
	"github.com/benoitkugler/okgraph/graphsvg"
	"github.com/benoitkugler/okgraph/improvement"
	"github.com/spf13/cobra"
)

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
)

// resolveFormat returns `flag` when set, or the format
// matching the extension of `output`.
func resolveFormat(output, flag string) (Format, error) {
	s := flag
	if s == "" {
		s = strings.TrimPrefix(filepath.Ext(output), ".")
	}
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatPDF, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected png, pdf or svg)", s)
	}
}

type options struct {
	input, output, format, config string
	verbose                       bool
	logger                        *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "okgraph",
		Short:         "Draws the improvement distribution of an A/B test",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug information")
	rootCmd.PersistentFlags().StringVarP(&opts.input, "input", "i", "", "YAML file describing the variations")
	rootCmd.PersistentFlags().StringVar(&opts.config, "config", "", "YAML file whose graph settings are applied over the ones of the input")
	rootCmd.MarkPersistentFlagRequired("input")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Renders the graph to an image file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts)
		},
	}
	renderCmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	renderCmd.Flags().StringVar(&opts.format, "format", "", "output format: png, pdf or svg (default from the output extension)")
	renderCmd.MarkFlagRequired("output")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Prints the improvement distribution and its axis labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(opts, cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(renderCmd, summaryCmd)
	return rootCmd
}

// load reads the input, then applies the optional config file
// over its graph settings.
func load(opts *options) ([]diffdist.Variation, graphconfig.Config, error) {
	variations, cfg, err := readInputFile(opts.input)
	if err != nil {
		return nil, cfg, err
	}
	if opts.config != "" {
		cfg, err = cfg.OverlayFile(opts.config)
		if err != nil {
			return nil, cfg, err
		}
	}
	return variations, cfg, nil
}

func runRender(opts *options) error {
	format, err := resolveFormat(opts.output, opts.format)
	if err != nil {
		return err
	}
	variations, cfg, err := load(opts)
	if err != nil {
		return err
	}
	// the file is only created for a successful render
	var out bytes.Buffer
	if err := render(&out, format, cfg, variations, opts.logger); err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, out.Bytes(), 0o644); err != nil {
		return err
	}
	opts.logger.Info("graph written", "path", opts.output, "format", format, "bytes", out.Len())
	return nil
}

// render draws the graph with the backend of `format`, and encodes it to `w`.
func render(w io.Writer, format Format, cfg graphconfig.Config, variations []diffdist.Variation, logger *slog.Logger) error {
	renderOpts := []improvement.Option{improvement.WithLogger(logger)}
	switch format {
	case FormatPNG:
		_, rd, err := graphraster.NewImage(int(cfg.Canvas.Width), int(cfg.Canvas.Height))
		if err != nil {
			return err
		}
		defer rd.Close()
		if err := improvement.Render(rd, cfg, variations, renderOpts...); err != nil {
			return err
		}
		return rd.WritePNG(w)
	case FormatPDF:
		pdf, rd := graphpdf.NewDocument(cfg.Canvas.Width, cfg.Canvas.Height)
		if err := improvement.Render(rd, cfg, variations, renderOpts...); err != nil {
			return err
		}
		return graphpdf.Write(pdf, w)
	case FormatSVG:
		rd := graphsvg.NewRenderer(cfg.Canvas.Width, cfg.Canvas.Height)
		if err := improvement.Render(rd, cfg, variations, renderOpts...); err != nil {
			return err
		}
		_, err := rd.WriteTo(w)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func runSummary(opts *options, w io.Writer) error {
	variations, cfg, err := load(opts)
	if err != nil {
		return err
	}
	s, err := improvement.Summarize(cfg, variations)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "control:     %s (mean %g, variance %g)\n", displayName(s.Control), s.Control.Proportion.Mean, s.Control.Proportion.Variance)
	fmt.Fprintf(w, "experiment:  %s (mean %g, variance %g)\n", displayName(s.Experiment), s.Experiment.Proportion.Mean, s.Experiment.Proportion.Variance)
	fmt.Fprintf(w, "difference:  %.4g ± %.4g (%s)\n", s.Mean, s.StdDev, improvement.FormatPercentageImprovement(s.Improvement))
	fmt.Fprintf(w, "P(improves): %.1f%%\n", 100*s.ProbabilityOfImprovement)
	labels := make([]string, len(s.Axis.Ticks))
	for i, tick := range s.Axis.Ticks {
		labels[i] = tick.Label
	}
	fmt.Fprintf(w, "axis:        %s\n", strings.Join(labels, " "))
	return nil
}

func displayName(v diffdist.Variation) string {
	if v.Name == "" {
		return v.Role.String()
	}
	return v.Name
}
