package layout

import (
	"fmt"
	"strings"
)

// Anchor names one of the nine normalized reference points of a rectangle.
type Anchor uint8

const (
	TopLeft      Anchor = iota // (0, 0)
	TopCenter                  // (0.5, 0)
	TopRight                   // (1, 0)
	CenterLeft                 // (0, 0.5)
	Center                     // (0.5, 0.5)
	CenterRight                // (1, 0.5)
	BottomLeft                 // (0, 1)
	BottomCenter               // (0.5, 1)
	BottomRight                // (1, 1)
)

var anchorNames = [...]string{
	TopLeft:      "TOP_LEFT",
	TopCenter:    "TOP_CENTER",
	TopRight:     "TOP_RIGHT",
	CenterLeft:   "CENTER_LEFT",
	Center:       "CENTER",
	CenterRight:  "CENTER_RIGHT",
	BottomLeft:   "BOTTOM_LEFT",
	BottomCenter: "BOTTOM_CENTER",
	BottomRight:  "BOTTOM_RIGHT",
}

// Anchors returns all nine anchors in row-major order.
func Anchors() []Anchor {
	return []Anchor{
		TopLeft, TopCenter, TopRight,
		CenterLeft, Center, CenterRight,
		BottomLeft, BottomCenter, BottomRight,
	}
}

// Valid reports whether a is one of the nine defined anchors.
func (a Anchor) Valid() bool {
	return int(a) < len(anchorNames)
}

// Normalized returns the anchor's coordinates within a unit square.
// Each component is 0, 0.5 or 1. Invalid anchors resolve to the top-left corner.
func (a Anchor) Normalized() (nx, ny float64) {
	if !a.Valid() {
		return 0, 0
	}
	col := int(a) % 3
	row := int(a) / 3
	return float64(col) / 2, float64(row) / 2
}

func (a Anchor) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Anchor(%d)", uint8(a))
	}
	return anchorNames[a]
}

// ParseAnchor parses an anchor name. Matching ignores case and treats '-',
// '_' and ' ' as equivalent, so "top-right", "TOP_RIGHT" and "TopRight" all
// name [TopRight]. "MIDDLE" is accepted as an alias for CENTER.
func ParseAnchor(s string) (Anchor, error) {
	key := normalizeAnchorName(s)
	for i, name := range anchorNames {
		if normalizeAnchorName(name) == key {
			return Anchor(i), nil
		}
	}
	switch key {
	case "middle":
		return Center, nil
	case "middleleft", "left":
		return CenterLeft, nil
	case "middleright", "right":
		return CenterRight, nil
	case "top":
		return TopCenter, nil
	case "bottom":
		return BottomCenter, nil
	}
	return TopLeft, fmt.Errorf("unknown anchor %q", s)
}

func normalizeAnchorName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Anchor) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid anchor %d", uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Anchor) UnmarshalText(text []byte) error {
	parsed, err := ParseAnchor(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
