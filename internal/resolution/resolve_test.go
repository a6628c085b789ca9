package resolution

import (
	"math"
	"testing"

	"github.com/grindlemire/go-safearea/internal/layout"
)

const tol = 1e-9

func TestResolveMode(t *testing.T) {
	type tc struct {
		design, display layout.Size
		opts            Options
		expected        Mode
	}

	tests := map[string]tc{
		"same ratio shows all": {
			design:   layout.NewSize(1080, 1920),
			display:  layout.NewSize(540, 960),
			expected: ShowAll,
		},
		"landscape display on portrait design fixes height": {
			design:   layout.NewSize(1080, 1920),
			display:  layout.NewSize(1920, 1080),
			expected: FixedHeight,
		},
		"taller phone fixes width": {
			design:   layout.NewSize(1080, 1920),
			display:  layout.NewSize(1170, 2532),
			expected: FixedWidth,
		},
		"within default epsilon": {
			design:   layout.NewSize(1000, 1000),
			display:  layout.NewSize(1005, 1000),
			expected: ShowAll,
		},
		"outside tighter epsilon": {
			design:   layout.NewSize(1000, 1000),
			display:  layout.NewSize(1005, 1000),
			opts:     Options{Epsilon: 0.001},
			expected: FixedHeight,
		},
		"explicit mode wins": {
			design:   layout.NewSize(1080, 1920),
			display:  layout.NewSize(1920, 1080),
			opts:     Options{Mode: NoBorder},
			expected: NoBorder,
		},
		"degenerate display": {
			design:   layout.NewSize(1000, 2000),
			display:  layout.NewSize(0, -5),
			expected: FixedHeight,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ResolveMode(tt.design, tt.display, tt.opts); got != tt.expected {
				t.Errorf("ResolveMode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	type tc struct {
		design, display layout.Size
		mode            Mode
		policy          Mode
		scale           float64
		window          layout.Rect
		view            layout.Rect
	}

	design := layout.NewSize(1000, 2000)
	display := layout.NewSize(500, 500)

	tests := map[string]tc{
		"show all letterboxes horizontally": {
			design: design, display: display, mode: ShowAll,
			policy: ShowAll,
			scale:  0.25,
			window: layout.NewRect(-500, 0, 2000, 2000),
			view:   layout.NewRect(0, 0, 1000, 2000),
		},
		"no border crops vertically": {
			design: design, display: display, mode: NoBorder,
			policy: NoBorder,
			scale:  0.5,
			window: layout.NewRect(0, 500, 1000, 1000),
			view:   layout.NewRect(0, 500, 1000, 1000),
		},
		"fixed width": {
			design: design, display: display, mode: FixedWidth,
			policy: FixedWidth,
			scale:  0.5,
			window: layout.NewRect(0, 500, 1000, 1000),
			view:   layout.NewRect(0, 500, 1000, 1000),
		},
		"fixed height": {
			design: design, display: display, mode: FixedHeight,
			policy: FixedHeight,
			scale:  0.25,
			window: layout.NewRect(-500, 0, 2000, 2000),
			view:   layout.NewRect(0, 0, 1000, 2000),
		},
		"identical sizes": {
			design: layout.NewSize(1080, 1920), display: layout.NewSize(1080, 1920), mode: Auto,
			policy: ShowAll,
			scale:  1,
			window: layout.NewRect(0, 0, 1080, 1920),
			view:   layout.NewRect(0, 0, 1080, 1920),
		},
		"half size": {
			design: layout.NewSize(1080, 1920), display: layout.NewSize(540, 960), mode: Auto,
			policy: ShowAll,
			scale:  0.5,
			window: layout.NewRect(0, 0, 1080, 1920),
			view:   layout.NewRect(0, 0, 1080, 1920),
		},
		"zero display is floored": {
			design: design, display: layout.NewSize(0, 0), mode: Auto,
			policy: FixedHeight,
			scale:  1.0 / 2000,
			window: layout.NewRect(-500, 0, 2000, 2000),
			view:   layout.NewRect(0, 0, 1000, 2000),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			info := Resolve(tt.design, tt.display, Options{Mode: tt.mode})

			if info.Policy != tt.policy {
				t.Errorf("Policy = %v, want %v", info.Policy, tt.policy)
			}
			if info.Requested != tt.mode {
				t.Errorf("Requested = %v, want %v", info.Requested, tt.mode)
			}
			if math.Abs(info.Scale-tt.scale) > tol {
				t.Errorf("Scale = %v, want %v", info.Scale, tt.scale)
			}
			if !info.WindowRect.Approx(tt.window, 1e-6) {
				t.Errorf("WindowRect = %+v, want %+v", info.WindowRect, tt.window)
			}
			if !info.ViewRect.Approx(tt.view, 1e-6) {
				t.Errorf("ViewRect = %+v, want %+v", info.ViewRect, tt.view)
			}
			if !info.DesignRect.ContainsRectApprox(info.ViewRect, 1e-9) {
				t.Errorf("ViewRect %+v escapes DesignRect %+v", info.ViewRect, info.DesignRect)
			}
		})
	}
}

func TestResolve_LandscapeOnPortraitNeverShowsAll(t *testing.T) {
	info := Resolve(layout.NewSize(1080, 1920), layout.NewSize(1920, 1080), Options{})

	if info.Policy == ShowAll {
		t.Fatalf("Policy = %v, want a fixed-axis policy", info.Policy)
	}
	if info.Policy != FixedHeight {
		t.Errorf("Policy = %v, want %v", info.Policy, FixedHeight)
	}
	if want := 1080.0 / 1920.0; math.Abs(info.Scale-want) > tol {
		t.Errorf("Scale = %v, want %v", info.Scale, want)
	}
}

func TestResolve_ScaleIsPositive(t *testing.T) {
	designs := []layout.Size{
		layout.NewSize(1080, 1920),
		layout.NewSize(1920, 1080),
		layout.NewSize(0, 0),
		layout.NewSize(-10, 50),
	}
	displays := []layout.Size{
		layout.NewSize(1, 1),
		layout.NewSize(0, 0),
		layout.NewSize(200, 300),
		layout.NewSize(3840, 2160),
		layout.NewSize(-1, 800),
	}

	for _, d := range designs {
		for _, v := range displays {
			for _, m := range []Mode{Auto, ShowAll, NoBorder, FixedWidth, FixedHeight} {
				info := Resolve(d, v, Options{Mode: m})
				if !(info.Scale > 0) || math.IsInf(info.Scale, 0) {
					t.Errorf("Resolve(%v, %v, %v).Scale = %v, want finite > 0", d, v, m, info.Scale)
				}
				if info.ViewRect.IsEmpty() {
					t.Errorf("Resolve(%v, %v, %v).ViewRect is empty", d, v, m)
				}
				if info.Policy == Auto {
					t.Errorf("Resolve(%v, %v, %v).Policy = Auto", d, v, m)
				}
			}
		}
	}
}

func TestInfo_DisplayRoundTrip(t *testing.T) {
	info := Resolve(layout.NewSize(1080, 1920), layout.NewSize(1170, 2532), Options{})

	p := layout.Point{X: 321.5, Y: 987.25}
	back := info.ToDesign(info.ToDisplay(p))
	if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
		t.Errorf("ToDesign(ToDisplay(%+v)) = %+v", p, back)
	}

	origin := info.ToDisplay(layout.Point{X: info.WindowRect.X, Y: info.WindowRect.Y})
	if math.Abs(origin.X) > 1e-9 || math.Abs(origin.Y) > 1e-9 {
		t.Errorf("window origin maps to %+v, want display origin", origin)
	}
}

func TestParseMode(t *testing.T) {
	type tc struct {
		input    string
		expected Mode
		wantErr  bool
	}

	tests := map[string]tc{
		"canonical":  {input: "SHOW_ALL", expected: ShowAll},
		"lower":      {input: "no_border", expected: NoBorder},
		"kebab":      {input: "fixed-width", expected: FixedWidth},
		"padded":     {input: "  FIXED_HEIGHT ", expected: FixedHeight},
		"auto":       {input: "auto", expected: Auto},
		"unknown":    {input: "stretch", wantErr: true},
		"empty text": {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var m Mode
			err := m.UnmarshalText([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && m != tt.expected {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.input, m, tt.expected)
			}
		})
	}
}
