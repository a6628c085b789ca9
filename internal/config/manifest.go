package config

import (
	stderrors "errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-safearea/internal/errors"
	"github.com/grindlemire/go-safearea/internal/layout"
)

// Element is one anchored node of a manifest.
//
//	elements:
//	  - id: close
//	    anchor: top-right
//	    width: 96
//	    height: 96
//	    offset_x: -24
//	    offset_y: 24
type Element struct {
	ID      string        `yaml:"id"`
	Anchor  layout.Anchor `yaml:"anchor"`
	Width   float64       `yaml:"width"`
	Height  float64       `yaml:"height"`
	OffsetX float64       `yaml:"offset_x"`
	OffsetY float64       `yaml:"offset_y"`
}

// Manifest lists the elements placed by the check command.
type Manifest struct {
	Elements []Element `yaml:"elements"`
}

// LoadManifest reads and validates a YAML element manifest.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Manifest{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
		}
		return Manifest{}, errors.Wrap(errors.ErrCodeInternal, err, "read manifest %s", path)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates a YAML element manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode manifest")
	}

	seen := make(map[string]bool, len(m.Elements))
	for i, e := range m.Elements {
		switch {
		case e.ID == "":
			return Manifest{}, errors.New(errors.ErrCodeInvalidInput, "element %d has no id", i)
		case seen[e.ID]:
			return Manifest{}, errors.New(errors.ErrCodeInvalidInput, "duplicate element id %q", e.ID)
		case e.Width < 0 || e.Height < 0:
			return Manifest{}, errors.New(errors.ErrCodeInvalidInput,
				"element %q has negative size %gx%g", e.ID, e.Width, e.Height)
		}
		seen[e.ID] = true
	}
	return m, nil
}
