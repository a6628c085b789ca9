package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-safearea/internal/errors"
	"github.com/grindlemire/go-safearea/internal/layout"
	"github.com/grindlemire/go-safearea/internal/resolution"
)

// resolveResult is the printable form of a resolution.
type resolveResult struct {
	Requested   string      `json:"requested_policy"`
	Policy      string      `json:"policy"`
	Scale       float64     `json:"scale"`
	DesignSize  layout.Size `json:"design_size"`
	DisplaySize layout.Size `json:"display_size"`
	Design      layout.Rect `json:"design"`
	Window      layout.Rect `json:"window"`
	View        layout.Rect `json:"view"`
}

func newResolveResult(info resolution.Info) resolveResult {
	return resolveResult{
		Requested:   info.Requested.String(),
		Policy:      info.Policy.String(),
		Scale:       info.Scale,
		DesignSize:  info.DesignSize,
		DisplaySize: info.DisplaySize,
		Design:      info.DesignRect,
		Window:      info.WindowRect,
		View:        info.ViewRect,
	}
}

type resolveOptions struct {
	design  string
	display string
	mode    string
	epsilon float64
	output  string
}

func (c *CLI) resolveCommand() *cobra.Command {
	opts := resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Map a design canvas onto a display",
		Long: `Resolve applies a resolution policy to a design size and a display size and
prints the scale and the visible part of the canvas.`,
		Example: `  safearea resolve --display 1920x1080
  safearea resolve --design 1080x1920 --display 1170x2532 --mode no-border -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.design, "design", "1080x1920", "design canvas size, WIDTHxHEIGHT")
	cmd.Flags().StringVar(&opts.display, "display", "1170x2532", "display size in pixels, WIDTHxHEIGHT")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "auto", "policy: auto, show-all, no-border, fixed-width, fixed-height")
	cmd.Flags().Float64Var(&opts.epsilon, "epsilon", resolution.DefaultEpsilon, "aspect-ratio tolerance for auto")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format: text or json")

	return cmd
}

func runResolve(w io.Writer, opts resolveOptions) error {
	design, err := parseSize(opts.design)
	if err != nil {
		return err
	}
	display, err := parseSize(opts.display)
	if err != nil {
		return err
	}
	mode, err := resolution.ParseMode(opts.mode)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "--mode")
	}

	info := resolution.Resolve(design, display, resolution.Options{Mode: mode, Epsilon: opts.epsilon})

	switch opts.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newResolveResult(info))
	case "text", "":
		printTitle(w, "Resolution")
		printKeyValue(w, "requested", info.Requested.String())
		printKeyValue(w, "policy", info.Policy.String())
		printKeyValue(w, "scale", formatNumber(info.Scale))
		printRect(w, "design", info.DesignRect)
		printRect(w, "window", info.WindowRect)
		printRect(w, "view", info.ViewRect)
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown output format %q (want text or json)", opts.output)
}
