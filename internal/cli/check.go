package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-safearea/internal/config"
	"github.com/grindlemire/go-safearea/internal/errors"
	"github.com/grindlemire/go-safearea/internal/layout"
	"github.com/grindlemire/go-safearea/internal/layoutroot"
	"github.com/grindlemire/go-safearea/internal/validate"
)

type checkOptions struct {
	surface  surfaceFlags
	elements string
	rotate   bool
}

func (c *CLI) checkCommand() *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that anchored elements stay inside the safe area",
		Long: `Check places every element of a YAML manifest through a layout root and
reports each element that spills outside the final safe rectangle. With
--rotate the check runs again after a quarter turn. The command fails when
any element spills.`,
		Example: `  safearea check --elements hud.yaml --display 1170x2532 --insets 90,0,34,0
  safearea check -c safearea.yaml --elements hud.yaml --rotate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, opts)
		},
	}

	opts.surface.register(cmd)
	cmd.Flags().StringVarP(&opts.elements, "elements", "e", "", "element manifest (.yaml)")
	cmd.Flags().BoolVar(&opts.rotate, "rotate", false, "also check after a clockwise quarter turn")
	_ = cmd.MarkFlagRequired("elements")

	return cmd
}

func (c *CLI) runCheck(cmd *cobra.Command, opts checkOptions) error {
	logger := loggerFromContext(cmd.Context())
	w := cmd.OutOrStdout()

	manifest, err := config.LoadManifest(opts.elements)
	if err != nil {
		return err
	}

	sim, m, err := opts.surface.build(logger)
	if err != nil {
		return err
	}
	defer m.Destroy()

	root, err := layoutroot.New(m, layoutroot.WithLogger(logger))
	if err != nil {
		return err
	}
	defer root.Destroy()

	named := make([]validate.Named, 0, len(manifest.Elements))
	for _, e := range manifest.Elements {
		box := layout.NewBox(e.Width, e.Height)
		root.AddWithAnchor(e.ID, box, e.Anchor, e.OffsetX, e.OffsetY)
		named = append(named, validate.Named{Name: e.ID, Element: box})
	}

	spills := reportViolations(w, "initial", m.FinalSafeRect(), named)
	if opts.rotate {
		sim.Rotate(true)
		spills += reportViolations(w, "rotated", m.FinalSafeRect(), named)
	}

	if spills > 0 {
		return errors.New(errors.ErrCodeOutOfBounds, "%d element placement(s) outside the safe area", spills)
	}
	printSuccess(w, "%d element(s) inside the safe area", len(named))
	return nil
}

func reportViolations(w io.Writer, label string, safe layout.Rect, named []validate.Named) int {
	printInfo(w, "%s: safe rect %s", label, formatRect(safe))

	violations := validate.Elements(safe, named)
	for _, v := range violations {
		printError(w, "%s spills outside by %.2f", v.Name, v.Overflow.Worst())
		printDetail(w, "bounds %s", formatRect(v.Bounds))
	}
	return len(violations)
}
