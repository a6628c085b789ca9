package layout

import "testing"

func TestAnchorPoint(t *testing.T) {
	type tc struct {
		rect     Rect
		anchor   Anchor
		expected Point
	}

	tests := map[string]tc{
		"bottom right": {
			rect:     NewRect(0, 0, 100, 200),
			anchor:   BottomRight,
			expected: Point{X: 100, Y: 200},
		},
		"center": {
			rect:     NewRect(0, 0, 100, 200),
			anchor:   Center,
			expected: Point{X: 50, Y: 100},
		},
		"offset rect top right": {
			rect:     NewRect(10, 20, 100, 200),
			anchor:   TopRight,
			expected: Point{X: 110, Y: 20},
		},
		"offset rect center left": {
			rect:     NewRect(10, 20, 100, 200),
			anchor:   CenterLeft,
			expected: Point{X: 10, Y: 120},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := AnchorPoint(tt.rect, tt.anchor); got != tt.expected {
				t.Errorf("AnchorPoint(%+v, %v) = %+v, want %+v", tt.rect, tt.anchor, got, tt.expected)
			}
		})
	}
}

func TestPlace(t *testing.T) {
	box := NewBox(20, 10)
	Place(box, NewRect(0, 0, 100, 200), TopRight, -10, 10)

	if got, want := box.Position(), (Point{X: 90, Y: 10}); got != want {
		t.Errorf("Position() = %+v, want %+v", got, want)
	}
	if got := box.Size(); got != NewSize(20, 10) {
		t.Errorf("Place changed size to %+v", got)
	}
}

func TestPlace_NilElements(t *testing.T) {
	type tc struct {
		element Positionable
	}

	tests := map[string]tc{
		"nil interface":     {element: nil},
		"typed nil pointer": {element: (*Box)(nil)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if !IsNil(tt.element) {
				t.Errorf("IsNil(%#v) = false, want true", tt.element)
			}
			// Must not panic.
			Place(tt.element, NewRect(0, 0, 100, 100), Center, 0, 0)
		})
	}

	if IsNil(NewBox(1, 1)) {
		t.Error("IsNil(NewBox()) = true, want false")
	}
}

func TestApplyPadding(t *testing.T) {
	type tc struct {
		rect     Rect
		padding  Padding
		expected Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:     NewRect(0, 0, 100, 100),
			padding:  PadAll(10),
			expected: NewRect(10, 10, 80, 80),
		},
		"asymmetric": {
			rect:     NewRect(10, 20, 100, 50),
			padding:  PadTRBL(5, 10, 15, 20),
			expected: NewRect(30, 25, 70, 30),
		},
		"negative sides ignored": {
			rect:     NewRect(0, 0, 100, 100),
			padding:  PadTRBL(-5, 10, 0, -3),
			expected: NewRect(0, 0, 90, 100),
		},
		"over padded collapses": {
			rect:     NewRect(0, 0, 10, 10),
			padding:  PadSymmetric(2, 8),
			expected: NewRect(8, 2, 0, 6),
		},
		"over padded clamps to right edge": {
			rect:     NewRect(0, 0, 10, 10),
			padding:  PadTRBL(0, 0, 0, 30),
			expected: NewRect(10, 0, 0, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			input := tt.rect
			got := ApplyPadding(tt.rect, tt.padding)
			if got != tt.expected {
				t.Errorf("ApplyPadding() = %+v, want %+v", got, tt.expected)
			}
			if input != tt.rect {
				t.Errorf("ApplyPadding mutated input: %+v", tt.rect)
			}
		})
	}
}

func TestClampToRect(t *testing.T) {
	type tc struct {
		point    Point
		rect     Rect
		size     Size
		expected Point
	}

	tests := map[string]tc{
		"inside unchanged": {
			point:    Point{X: 10, Y: 10},
			rect:     NewRect(0, 0, 100, 100),
			size:     NewSize(20, 20),
			expected: Point{X: 10, Y: 10},
		},
		"past right edge": {
			point:    Point{X: 95, Y: 10},
			rect:     NewRect(0, 0, 100, 100),
			size:     NewSize(20, 20),
			expected: Point{X: 80, Y: 10},
		},
		"before top left": {
			point:    Point{X: -5, Y: -50},
			rect:     NewRect(0, 0, 100, 100),
			size:     NewSize(20, 20),
			expected: Point{X: 0, Y: 0},
		},
		"point only": {
			point:    Point{X: 150, Y: 150},
			rect:     NewRect(0, 0, 100, 100),
			expected: Point{X: 100, Y: 100},
		},
		"element larger than rect pins to start": {
			point:    Point{X: 50, Y: 50},
			rect:     NewRect(10, 10, 100, 100),
			size:     NewSize(200, 20),
			expected: Point{X: 10, Y: 50},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ClampToRect(tt.point, tt.rect, tt.size); got != tt.expected {
				t.Errorf("ClampToRect() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestCalculateOverflow(t *testing.T) {
	type tc struct {
		bounds   Rect
		rect     Rect
		expected Overflow
		inside   bool
	}

	tests := map[string]tc{
		"fully inside": {
			bounds:   NewRect(10, 10, 20, 20),
			rect:     NewRect(0, 0, 100, 100),
			expected: Overflow{Top: -10, Right: -70, Bottom: -70, Left: -10},
			inside:   true,
		},
		"flush with edges": {
			bounds:   NewRect(0, 0, 100, 100),
			rect:     NewRect(0, 0, 100, 100),
			expected: Overflow{},
			inside:   true,
		},
		"spills right and bottom": {
			bounds:   NewRect(90, 95, 20, 10),
			rect:     NewRect(0, 0, 100, 100),
			expected: Overflow{Top: -95, Right: 10, Bottom: 5, Left: -90},
		},
		"spills top left": {
			bounds:   NewRect(-4, -2, 10, 10),
			rect:     NewRect(0, 0, 100, 100),
			expected: Overflow{Top: 2, Right: -94, Bottom: -92, Left: 4},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := CalculateOverflow(tt.bounds, tt.rect)
			if got != tt.expected {
				t.Errorf("CalculateOverflow() = %+v, want %+v", got, tt.expected)
			}
			box := &Box{Rect: tt.bounds}
			if in := IsInRect(box, tt.rect); in != tt.inside {
				t.Errorf("IsInRect() = %v, want %v", in, tt.inside)
			}
		})
	}
}

func TestOverflow_Worst(t *testing.T) {
	o := Overflow{Top: -3, Right: 7, Bottom: 2, Left: -1}
	if got := o.Worst(); got != 7 {
		t.Errorf("Worst() = %v, want 7", got)
	}
	if !o.Any(5) {
		t.Error("Any(5) = false, want true")
	}
	if o.Any(7) {
		t.Error("Any(7) = true, want false")
	}
}
