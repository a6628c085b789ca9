// Package config loads the authored safe-area configuration from TOML or
// YAML.
//
// Recognised keys:
//
//	design_width = 1080
//	design_height = 1920
//
//	[resolution_policy]
//	mode = "AUTO"        # AUTO, SHOW_ALL, NO_BORDER, FIXED_WIDTH, FIXED_HEIGHT
//	epsilon = 0.01
//
//	[safe_margin_percent] # fractions of the view dimension on that axis
//	top = 0.05
//	bottom = 0.05
//	left = 0.0
//	right = 0.0
//
//	[min_safe_area]       # design units
//	width = 600
//	height = 900
//
// Omitted keys keep the values from [Default].
package config

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-safearea/internal/errors"
	"github.com/grindlemire/go-safearea/internal/layout"
	"github.com/grindlemire/go-safearea/internal/resolution"
	"github.com/grindlemire/go-safearea/internal/safearea"
)

// Format names a configuration encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Policy is the resolution_policy table.
type Policy struct {
	Mode    resolution.Mode `toml:"mode" yaml:"mode"`
	Epsilon float64         `toml:"epsilon" yaml:"epsilon"`
}

// Margins is the safe_margin_percent table.
type Margins struct {
	Top    float64 `toml:"top" yaml:"top"`
	Bottom float64 `toml:"bottom" yaml:"bottom"`
	Left   float64 `toml:"left" yaml:"left"`
	Right  float64 `toml:"right" yaml:"right"`
}

// MinSize is the min_safe_area table.
type MinSize struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// Config is the on-disk form of safearea.Config.
type Config struct {
	DesignWidth  float64 `toml:"design_width" yaml:"design_width"`
	DesignHeight float64 `toml:"design_height" yaml:"design_height"`

	ResolutionPolicy  Policy  `toml:"resolution_policy" yaml:"resolution_policy"`
	SafeMarginPercent Margins `toml:"safe_margin_percent" yaml:"safe_margin_percent"`
	MinSafeArea       MinSize `toml:"min_safe_area" yaml:"min_safe_area"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	d := safearea.DefaultConfig()
	return Config{
		DesignWidth:  d.DesignSize.Width,
		DesignHeight: d.DesignSize.Height,
		ResolutionPolicy: Policy{
			Mode:    d.Policy.Mode,
			Epsilon: d.Policy.Epsilon,
		},
	}
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported config extension %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}
}

// Load reads, decodes and validates the file at path.
func Load(path string) (Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInternal, err, "read config %s", path)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, errors.Wrap(errors.GetCode(err), err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes data in the given format on top of Default and validates
// the result.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	default:
		return Config{}, errors.New(errors.ErrCodeInvalidFormat, "unknown config format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	if c.DesignWidth <= 0 || c.DesignHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"design size must be positive, got %gx%g", c.DesignWidth, c.DesignHeight)
	}
	if c.ResolutionPolicy.Mode > resolution.FixedHeight {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid resolution policy %v", c.ResolutionPolicy.Mode)
	}
	if c.ResolutionPolicy.Epsilon < 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"resolution_policy.epsilon must be >= 0, got %g", c.ResolutionPolicy.Epsilon)
	}

	m := c.SafeMarginPercent
	for _, side := range []struct {
		name string
		v    float64
	}{
		{"top", m.Top}, {"bottom", m.Bottom}, {"left", m.Left}, {"right", m.Right},
	} {
		if side.v < 0 || side.v >= 1 {
			return errors.New(errors.ErrCodeInvalidConfig,
				"safe_margin_percent.%s must be in [0, 1), got %g", side.name, side.v)
		}
	}
	if m.Left+m.Right >= 1 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"safe_margin_percent left + right must be < 1, got %g", m.Left+m.Right)
	}
	if m.Top+m.Bottom >= 1 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"safe_margin_percent top + bottom must be < 1, got %g", m.Top+m.Bottom)
	}

	if c.MinSafeArea.Width < 0 || c.MinSafeArea.Height < 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"min_safe_area must be non-negative, got %gx%g", c.MinSafeArea.Width, c.MinSafeArea.Height)
	}
	return nil
}

// Manager converts c to the engine's configuration.
func (c Config) Manager() safearea.Config {
	m := c.SafeMarginPercent
	return safearea.Config{
		DesignSize: layout.NewSize(c.DesignWidth, c.DesignHeight),
		Policy: resolution.Options{
			Mode:    c.ResolutionPolicy.Mode,
			Epsilon: c.ResolutionPolicy.Epsilon,
		},
		MarginPercent: layout.PadTRBL(m.Top, m.Right, m.Bottom, m.Left),
		MinSafeArea:   layout.NewSize(c.MinSafeArea.Width, c.MinSafeArea.Height),
	}
}
