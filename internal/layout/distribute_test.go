package layout

import "testing"

func boxes(sizes ...float64) []Positionable {
	out := make([]Positionable, len(sizes))
	for i, s := range sizes {
		b := NewBox(s, s)
		b.X, b.Y = 7, 7
		out[i] = b
	}
	return out
}

func TestDistribute(t *testing.T) {
	type tc struct {
		elements   []Positionable
		start, end float64
		horizontal bool
		expected   []Point
	}

	tests := map[string]tc{
		"empty": {
			elements: nil,
			start:    0,
			end:      100,
		},
		"single element takes midpoint": {
			elements:   boxes(10),
			start:      0,
			end:        100,
			horizontal: true,
			expected:   []Point{{X: 50, Y: 7}},
		},
		"three horizontal": {
			elements:   boxes(10, 10, 10),
			start:      0,
			end:        100,
			horizontal: true,
			expected:   []Point{{X: 0, Y: 7}, {X: 50, Y: 7}, {X: 100, Y: 7}},
		},
		"five vertical": {
			elements: boxes(1, 1, 1, 1, 1),
			start:    100,
			end:      500,
			expected: []Point{{X: 7, Y: 100}, {X: 7, Y: 200}, {X: 7, Y: 300}, {X: 7, Y: 400}, {X: 7, Y: 500}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Distribute(tt.elements, tt.start, tt.end, tt.horizontal)
			if len(got) != len(tt.expected) {
				t.Fatalf("Distribute() returned %d points, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("point %d = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
			for _, el := range tt.elements {
				if el.Position() != (Point{X: 7, Y: 7}) {
					t.Errorf("Distribute moved an element to %+v", el.Position())
				}
			}
		})
	}
}

func TestAlign(t *testing.T) {
	type tc struct {
		elements   []Positionable
		start      float64
		spacing    float64
		horizontal bool
		expected   []Point
	}

	tests := map[string]tc{
		"horizontal mixed sizes": {
			elements:   boxes(10, 20, 30),
			start:      5,
			spacing:    2,
			horizontal: true,
			expected:   []Point{{X: 5, Y: 7}, {X: 17, Y: 7}, {X: 39, Y: 7}},
		},
		"vertical no spacing": {
			elements: boxes(10, 10),
			start:    0,
			expected: []Point{{X: 7, Y: 0}, {X: 7, Y: 10}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Align(tt.elements, tt.start, tt.spacing, tt.horizontal)
			if len(got) != len(tt.expected) {
				t.Fatalf("Align() returned %d points, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("point %d = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}
