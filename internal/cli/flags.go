package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-safearea/internal/config"
	"github.com/grindlemire/go-safearea/internal/errors"
	"github.com/grindlemire/go-safearea/internal/host"
	"github.com/grindlemire/go-safearea/internal/layout"
	"github.com/grindlemire/go-safearea/internal/safearea"
)

// parseSize parses "WxH", for example "1170x2532".
func parseSize(s string) (layout.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return layout.Size{}, errors.New(errors.ErrCodeInvalidInput, "size %q must look like WIDTHxHEIGHT", s)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return layout.Size{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "size %q width", s)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return layout.Size{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "size %q height", s)
	}
	return layout.NewSize(width, height), nil
}

// parseInsets parses device insets in CSS order, "top,right,bottom,left".
// One value applies to every side and two values are vertical,horizontal.
func parseInsets(s string) (safearea.Insets, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return safearea.Insets{}, nil
	}

	parts := strings.Split(s, ",")
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return safearea.Insets{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "insets %q", s)
		}
		if v < 0 {
			return safearea.Insets{}, errors.New(errors.ErrCodeInvalidInput, "insets %q: negative value %g", s, v)
		}
		vals[i] = v
	}

	switch len(vals) {
	case 1:
		return safearea.Insets{Top: vals[0], Right: vals[0], Bottom: vals[0], Left: vals[0]}, nil
	case 2:
		return safearea.Insets{Top: vals[0], Right: vals[1], Bottom: vals[0], Left: vals[1]}, nil
	case 4:
		return safearea.Insets{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	}
	return safearea.Insets{}, errors.New(errors.ErrCodeInvalidInput,
		"insets %q: want 1, 2 or 4 comma-separated values, got %d", s, len(vals))
}

// surfaceFlags are the flags shared by commands that build a manager.
type surfaceFlags struct {
	configPath string
	display    string
	insets     string
}

func (f *surfaceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "safe-area config file (.toml, .yaml)")
	cmd.Flags().StringVar(&f.display, "display", "1170x2532", "display size in pixels, WIDTHxHEIGHT")
	cmd.Flags().StringVar(&f.insets, "insets", "", "device insets in pixels, top,right,bottom,left")
}

func (f *surfaceFlags) loadConfig() (config.Config, error) {
	if f.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(f.configPath)
}

// build returns a simulated display and a manager following it. The caller
// must Destroy the manager.
func (f *surfaceFlags) build(logger *log.Logger) (*host.Sim, *safearea.Manager, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	display, err := parseSize(f.display)
	if err != nil {
		return nil, nil, err
	}
	insets, err := parseInsets(f.insets)
	if err != nil {
		return nil, nil, err
	}

	sim := host.NewSim(display.Width, display.Height)
	sim.SetInsets(insets)
	m, err := safearea.NewManager(sim, cfg.Manager(), safearea.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return sim, m, nil
}
