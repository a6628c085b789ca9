package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-safearea/internal/safearea"
	"github.com/grindlemire/go-safearea/internal/snapshotfmt"
	"github.com/grindlemire/go-safearea/internal/validate"
)

type computeOptions struct {
	surface surfaceFlags
	rotate  int
	output  string
}

func (c *CLI) computeCommand() *cobra.Command {
	opts := computeOptions{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the safe-area rectangles for a display",
		Long: `Compute runs the full safe-area model against a simulated display and prints
the design, view, design-safe, device-safe and final-safe rectangles.`,
		Example: `  safearea compute --display 1170x2532 --insets 90,0,34,0
  safearea compute -c safearea.toml --display 2532x1170 -o msgpack > snap.bin
  safearea compute --insets 90,0,34,0 --rotate 1 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompute(cmd, opts)
		},
	}

	opts.surface.register(cmd)
	cmd.Flags().IntVar(&opts.rotate, "rotate", 0, "quarter turns to apply before computing (negative turns counter-clockwise)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format: text, json, yaml, toml, msgpack")

	return cmd
}

func (c *CLI) runCompute(cmd *cobra.Command, opts computeOptions) error {
	logger := loggerFromContext(cmd.Context())

	var format snapshotfmt.Format
	if opts.output != "text" {
		f, err := snapshotfmt.ParseFormat(opts.output)
		if err != nil {
			return err
		}
		format = f
	}

	sim, m, err := opts.surface.build(logger)
	if err != nil {
		return err
	}
	defer m.Destroy()

	for i := 0; i < abs(opts.rotate); i++ {
		sim.Rotate(opts.rotate > 0)
	}

	snap := m.Snapshot()
	if err := validate.Snapshot(snap, 0); err != nil {
		logger.Warn("snapshot failed validation", "err", err)
	}

	if format != "" {
		return snapshotfmt.Encode(cmd.OutOrStdout(), format, snap)
	}
	printSnapshot(cmd.OutOrStdout(), snap)
	return nil
}

func printSnapshot(w io.Writer, s safearea.Snapshot) {
	r := s.Resolution
	printTitle(w, "Safe area")
	printKeyValue(w, "policy", r.Policy.String()+StyleDim.Render(" (requested "+r.Requested.String()+")"))
	printKeyValue(w, "scale", formatNumber(r.Scale))
	printRect(w, "design", s.Design)
	printRect(w, "view", s.View)
	printRect(w, "design safe", s.DesignSafe)
	printRect(w, "device safe", s.DeviceSafe)
	printRect(w, "final safe", s.FinalSafe)
	printDetail(w, "margins top=%.2f right=%.2f bottom=%.2f left=%.2f",
		s.Margins.Top, s.Margins.Right, s.Margins.Bottom, s.Margins.Left)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
