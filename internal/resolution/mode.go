package resolution

import (
	"fmt"
	"strings"
)

// Mode is a strategy for mapping the design canvas onto a display surface.
type Mode uint8

const (
	// Auto picks FixedWidth, FixedHeight or ShowAll by comparing aspect ratios.
	Auto Mode = iota
	// ShowAll fits the whole canvas (contain); the display may letterbox.
	ShowAll
	// NoBorder covers the whole display; canvas edges may be cropped.
	NoBorder
	// FixedWidth maps canvas width to display width.
	FixedWidth
	// FixedHeight maps canvas height to display height.
	FixedHeight
)

var modeNames = [...]string{
	Auto:        "AUTO",
	ShowAll:     "SHOW_ALL",
	NoBorder:    "NO_BORDER",
	FixedWidth:  "FIXED_WIDTH",
	FixedHeight: "FIXED_HEIGHT",
}

func (m Mode) String() string {
	if int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// ParseMode parses a policy name. Case is ignored and '-' is accepted in
// place of '_', so "show-all" and "SHOW_ALL" are equivalent.
func ParseMode(s string) (Mode, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for i, name := range modeNames {
		if name == key {
			return Mode(i), nil
		}
	}
	return Auto, fmt.Errorf("unknown resolution policy %q (want one of %s)", s, strings.Join(modeNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if int(m) >= len(modeNames) {
		return nil, fmt.Errorf("invalid resolution policy %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
