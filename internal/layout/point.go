package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x" toml:"x" msgpack:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y" msgpack:"y"`
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Size represents a width/height pair.
type Size struct {
	Width  float64 `json:"width" yaml:"width" toml:"width" msgpack:"width"`
	Height float64 `json:"height" yaml:"height" toml:"height" msgpack:"height"`
}

// NewSize creates a Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Floor returns s with each dimension raised to at least floor.
func (s Size) Floor(floor float64) Size {
	return Size{Width: max(s.Width, floor), Height: max(s.Height, floor)}
}

// Ratio returns Width/Height. A zero height yields 0.
func (s Size) Ratio() float64 {
	if s.Height == 0 {
		return 0
	}
	return s.Width / s.Height
}

// Swap returns the size with width and height exchanged.
func (s Size) Swap() Size {
	return Size{Width: s.Height, Height: s.Width}
}
