package host

import (
	"errors"
	"testing"

	"github.com/grindlemire/go-safearea/internal/layout"
	"github.com/grindlemire/go-safearea/internal/safearea"
)

func TestSim_Resize(t *testing.T) {
	sim := NewSim(800, 600)
	var got []layout.Size
	unsubscribe := sim.OnResize(func(s layout.Size) { got = append(got, s) })

	sim.Resize(1024, 768)
	unsubscribe()
	sim.Resize(10, 10)

	if len(got) != 1 || got[0] != layout.NewSize(1024, 768) {
		t.Errorf("resize events = %v, want [{1024 768}]", got)
	}
	if sim.DisplaySize() != layout.NewSize(10, 10) {
		t.Errorf("DisplaySize() = %v, want {10 10}", sim.DisplaySize())
	}
	if sim.Listeners() != 0 {
		t.Errorf("Listeners() = %d, want 0", sim.Listeners())
	}
}

func TestSim_Rotate(t *testing.T) {
	type tc struct {
		clockwise bool
		size      layout.Size
		insets    safearea.Insets
	}

	start := safearea.Insets{Top: 90, Bottom: 30}

	tests := map[string]tc{
		"clockwise moves notch right": {
			clockwise: true,
			size:      layout.NewSize(2532, 1170),
			insets:    safearea.Insets{Right: 90, Left: 30},
		},
		"counter clockwise moves notch left": {
			clockwise: false,
			size:      layout.NewSize(2532, 1170),
			insets:    safearea.Insets{Left: 90, Right: 30},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sim := NewSim(1170, 2532)
			sim.SetInsets(start)
			fired := 0
			sim.OnOrientationChange(func() { fired++ })

			sim.Rotate(tt.clockwise)

			if fired != 1 {
				t.Errorf("orientation listeners fired %d times, want 1", fired)
			}
			if sim.DisplaySize() != tt.size {
				t.Errorf("DisplaySize() = %v, want %v", sim.DisplaySize(), tt.size)
			}
			if got, _ := sim.ProbeInsets(); got != tt.insets {
				t.Errorf("ProbeInsets() = %+v, want %+v", got, tt.insets)
			}
		})
	}
}

func TestSim_FullTurnRestoresInsets(t *testing.T) {
	sim := NewSim(100, 200)
	start := safearea.Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}
	sim.SetInsets(start)

	for i := 0; i < 4; i++ {
		sim.Rotate(true)
	}

	if sim.Insets() != start {
		t.Errorf("insets after four turns = %+v, want %+v", sim.Insets(), start)
	}
	if sim.DisplaySize() != layout.NewSize(100, 200) {
		t.Errorf("size after four turns = %v", sim.DisplaySize())
	}
}

func TestSim_FailProbe(t *testing.T) {
	sim := NewSim(100, 100)
	sim.SetInsets(safearea.Insets{Top: 5})
	boom := errors.New("unsupported")

	sim.FailProbe(boom)
	if _, err := sim.ProbeInsets(); !errors.Is(err, boom) {
		t.Errorf("ProbeInsets() error = %v, want %v", err, boom)
	}

	sim.FailProbe(nil)
	got, err := sim.ProbeInsets()
	if err != nil || got.Top != 5 {
		t.Errorf("ProbeInsets() = %+v, %v; want top 5, nil", got, err)
	}
	if sim.Probes() != 2 {
		t.Errorf("Probes() = %d, want 2", sim.Probes())
	}
}
