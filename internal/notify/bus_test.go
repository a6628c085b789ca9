package notify

import "testing"

func TestBus_EmitOrder(t *testing.T) {
	var bus Bus[int]
	var got []string

	bus.Subscribe(func(v int) { got = append(got, "a") })
	bus.Subscribe(func(v int) { got = append(got, "b") })
	bus.Subscribe(func(v int) { got = append(got, "c") })

	bus.Emit(1)

	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("delivery order = %v, want [a b c]", got)
	}
}

func TestBus_Unbind(t *testing.T) {
	type tc struct {
		unbindTwice bool
	}

	tests := map[string]tc{
		"unbind once":  {},
		"unbind twice": {unbindTwice: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var bus Bus[string]
			calls := 0
			unbind := bus.Subscribe(func(string) { calls++ })
			other := 0
			bus.Subscribe(func(string) { other++ })

			bus.Emit("first")
			unbind()
			if tt.unbindTwice {
				unbind()
			}
			bus.Emit("second")

			if calls != 1 {
				t.Errorf("unbound subscriber called %d times, want 1", calls)
			}
			if other != 2 {
				t.Errorf("remaining subscriber called %d times, want 2", other)
			}
			if bus.Len() != 1 {
				t.Errorf("Len() = %d, want 1", bus.Len())
			}
		})
	}
}

func TestBus_SubscribeDuringEmit(t *testing.T) {
	var bus Bus[int]
	late := 0

	bus.Subscribe(func(int) {
		if late == 0 {
			bus.Subscribe(func(int) { late++ })
		}
	})

	bus.Emit(1)
	if late != 0 {
		t.Fatalf("subscriber added during Emit was called %d times, want 0", late)
	}

	bus.Emit(2)
	if late != 1 {
		t.Errorf("late subscriber called %d times after second Emit, want 1", late)
	}
}

func TestBus_Clear(t *testing.T) {
	var bus Bus[int]
	calls := 0
	unbind := bus.Subscribe(func(int) { calls++ })

	bus.Clear()
	bus.Emit(1)
	unbind()

	if calls != 0 {
		t.Errorf("cleared subscriber called %d times", calls)
	}
	if bus.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", bus.Len())
	}
}
