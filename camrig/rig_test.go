package camrig

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func vecApprox(a, b mgl64.Vec3) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestPanDisplacementIsLinear(t *testing.T) {
	r := New(3, Held)

	if !r.OnKeyChange("ArrowUp", true) {
		t.Fatalf("ArrowUp should be bound")
	}
	for _, dt := range []float64{0.016, 0.5, 2} {
		got := r.Tick(dt)
		want := mgl64.Vec3{0, 0, 3 * dt}
		if !vecApprox(got, want) {
			t.Fatalf("dt %v: got %v want %v", dt, got, want)
		}
	}

	r.OnKeyChange("ArrowLeft", true)
	if got := r.Tick(1); !vecApprox(got, mgl64.Vec3{-3, 0, 3}) {
		t.Fatalf("diagonal pan: got %v", got)
	}

	r.OnKeyChange("ArrowUp", false)
	r.OnKeyChange("ArrowLeft", false)
	if got := r.Tick(1); got != (mgl64.Vec3{}) {
		t.Fatalf("released keys should stop panning, got %v", got)
	}
}

type keyEvent struct {
	key     string
	pressed bool
}

func TestOpposingKeysPerMode(t *testing.T) {
	cases := []struct {
		name         string
		mode         Mode
		events       []keyEvent
		wantVertical int
	}{
		{
			name: "held_release_one_of_two",
			mode: Held,
			events: []keyEvent{{"arrowup", true}, {"arrowdown", true}, {"arrowdown", false}},
			wantVertical: 1,
		},
		{
			name: "held_latest_press_wins",
			mode: Held,
			events: []keyEvent{{"arrowup", true}, {"arrowdown", true}},
			wantVertical: -1,
		},
		{
			name: "last_write_release_zeroes_axis",
			mode: LastWrite,
			events: []keyEvent{{"arrowup", true}, {"arrowdown", true}, {"arrowdown", false}},
			wantVertical: 0,
		},
		{
			name: "held_repeat_press_is_idempotent",
			mode: Held,
			events: []keyEvent{{"arrowup", true}, {"arrowup", true}, {"arrowup", false}},
			wantVertical: 0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := New(1, c.mode)
			for _, ev := range c.events {
				r.OnKeyChange(ev.key, ev.pressed)
			}
			if got := r.Axis(Vertical); got != c.wantVertical {
				t.Fatalf("vertical axis: got %d want %d", got, c.wantVertical)
			}
		})
	}
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	r := New(3, Held)
	if r.OnKeyChange("w", true) {
		t.Fatalf("w should not be bound")
	}
	if got := r.Tick(1); got != (mgl64.Vec3{}) {
		t.Fatalf("unbound key moved the rig: %v", got)
	}
}

func TestSetModeResetsHeldKeys(t *testing.T) {
	r := New(3, Held)
	r.OnKeyChange("ArrowRight", true)
	r.SetMode(LastWrite)
	if r.Axis(Horizontal) != 0 {
		t.Fatalf("expected axis cleared after mode switch")
	}
	if r.Mode != LastWrite {
		t.Fatalf("mode not switched")
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("last_write"); err != nil || m != LastWrite {
		t.Fatalf("last_write: got %v %v", m, err)
	}
	if m, err := ParseMode(""); err != nil || m != Held {
		t.Fatalf("empty: got %v %v", m, err)
	}
	if _, err := ParseMode("sticky"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
