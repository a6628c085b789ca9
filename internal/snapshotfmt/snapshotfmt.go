// Package snapshotfmt encodes safe-area snapshots for export.
//
// A snapshot is flattened into [Document], a plain tagged struct, so every
// encoder sees the same field names:
//
//	{
//	  "seq": 1,
//	  "policy": "FIXED_WIDTH",
//	  "scale": 1.083,
//	  "final_safe": {"x": 0, "y": 83.07, "width": 1080, "height": 2254.6},
//	  ...
//	}
package snapshotfmt

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-safearea/internal/errors"
	"github.com/grindlemire/go-safearea/internal/layout"
	"github.com/grindlemire/go-safearea/internal/safearea"
)

// Format names an export encoding.
type Format string

const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	TOML    Format = "toml"
	MsgPack Format = "msgpack"
)

// Formats lists every supported encoding.
var Formats = []Format{JSON, YAML, TOML, MsgPack}

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case JSON, YAML, TOML, MsgPack:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", s)
}

// Document is the exported form of a snapshot.
type Document struct {
	Seq       uint64  `json:"seq" yaml:"seq" toml:"seq" msgpack:"seq"`
	Requested string  `json:"requested_policy" yaml:"requested_policy" toml:"requested_policy" msgpack:"requested_policy"`
	Policy    string  `json:"policy" yaml:"policy" toml:"policy" msgpack:"policy"`
	Scale     float64 `json:"scale" yaml:"scale" toml:"scale" msgpack:"scale"`

	DisplaySize layout.Size `json:"display_size" yaml:"display_size" toml:"display_size" msgpack:"display_size"`
	DesignSize  layout.Size `json:"design_size" yaml:"design_size" toml:"design_size" msgpack:"design_size"`

	Design     layout.Rect `json:"design" yaml:"design" toml:"design" msgpack:"design"`
	Window     layout.Rect `json:"window" yaml:"window" toml:"window" msgpack:"window"`
	View       layout.Rect `json:"view" yaml:"view" toml:"view" msgpack:"view"`
	DesignSafe layout.Rect `json:"design_safe" yaml:"design_safe" toml:"design_safe" msgpack:"design_safe"`
	DeviceSafe layout.Rect `json:"device_safe" yaml:"device_safe" toml:"device_safe" msgpack:"device_safe"`
	FinalSafe  layout.Rect `json:"final_safe" yaml:"final_safe" toml:"final_safe" msgpack:"final_safe"`

	Insets  safearea.Insets `json:"insets" yaml:"insets" toml:"insets" msgpack:"insets"`
	Margins layout.Padding  `json:"margins" yaml:"margins" toml:"margins" msgpack:"margins"`
}

// FromSnapshot flattens s.
func FromSnapshot(s safearea.Snapshot) Document {
	r := s.Resolution
	return Document{
		Seq:         s.Seq,
		Requested:   r.Requested.String(),
		Policy:      r.Policy.String(),
		Scale:       r.Scale,
		DisplaySize: r.DisplaySize,
		DesignSize:  r.DesignSize,
		Design:      s.Design,
		Window:      r.WindowRect,
		View:        s.View,
		DesignSafe:  s.DesignSafe,
		DeviceSafe:  s.DeviceSafe,
		FinalSafe:   s.FinalSafe,
		Insets:      s.Insets,
		Margins:     s.Margins,
	}
}

// Encode writes s to w in format.
func Encode(w io.Writer, format Format, s safearea.Snapshot) error {
	return EncodeDocument(w, format, FromSnapshot(s))
}

// EncodeDocument writes doc to w in format.
func EncodeDocument(w io.Writer, format Format, doc Document) error {
	var err error
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	case TOML:
		err = toml.NewEncoder(w).Encode(doc)
	case MsgPack:
		err = msgpack.NewEncoder(w).Encode(doc)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", format)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", format)
	}
	return nil
}

// Decode reads a document written by EncodeDocument.
func Decode(r io.Reader, format Format) (Document, error) {
	var doc Document
	var err error
	switch format {
	case JSON:
		err = json.NewDecoder(r).Decode(&doc)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case TOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	case MsgPack:
		err = msgpack.NewDecoder(r).Decode(&doc)
	default:
		return Document{}, errors.New(errors.ErrCodeInvalidFormat, "unknown input format %q", format)
	}
	if err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", format)
	}
	return doc, nil
}
