// Package camrig turns held arrow keys into a pan translation for a camera
// anchor.
package camrig

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

const DefaultPanSpeed = 3.0

const (
	KeyUp    = "arrowup"
	KeyDown  = "arrowdown"
	KeyLeft  = "arrowleft"
	KeyRight = "arrowright"
)

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Mode selects how opposing keys on one axis combine.
type Mode int

const (
	// Held follows the most recently pressed key that is still down.
	Held Mode = iota
	// LastWrite lets every key event overwrite the axis, so releasing one of
	// two held opposing keys zeroes the axis.
	LastWrite
)

func (m Mode) String() string {
	switch m {
	case Held:
		return "held"
	case LastWrite:
		return "last_write"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "held":
		return Held, nil
	case "last_write", "lastwrite":
		return LastWrite, nil
	default:
		return Held, fmt.Errorf("camrig: unknown axis mode %q", s)
	}
}

type binding struct {
	axis Axis
	sign int
}

var bindings = map[string]binding{
	KeyUp:    {Vertical, 1},
	KeyDown:  {Vertical, -1},
	KeyLeft:  {Horizontal, -1},
	KeyRight: {Horizontal, 1},
}

// Rig holds the pan state. The zero value is a stopped rig in Held mode with
// no pan speed.
type Rig struct {
	PanSpeed float64
	Mode     Mode

	axes [2]int
	held [2][]string
}

func New(panSpeed float64, mode Mode) *Rig {
	return &Rig{PanSpeed: panSpeed, Mode: mode}
}

// OnKeyChange records a key press or release. It reports whether the key is
// bound to an axis.
func (r *Rig) OnKeyChange(key string, pressed bool) bool {
	if r == nil {
		return false
	}
	key = strings.ToLower(key)
	b, ok := bindings[key]
	if !ok {
		return false
	}

	if r.Mode == LastWrite {
		if pressed {
			r.axes[b.axis] = b.sign
		} else {
			r.axes[b.axis] = 0
		}
		return true
	}

	r.release(b.axis, key)
	if pressed {
		r.held[b.axis] = append(r.held[b.axis], key)
	}
	r.axes[b.axis] = 0
	if n := len(r.held[b.axis]); n > 0 {
		r.axes[b.axis] = bindings[r.held[b.axis][n-1]].sign
	}
	return true
}

func (r *Rig) release(axis Axis, key string) {
	keys := r.held[axis][:0]
	for _, k := range r.held[axis] {
		if k != key {
			keys = append(keys, k)
		}
	}
	r.held[axis] = keys
}

// Axis returns the current value of a, one of -1, 0, 1.
func (r *Rig) Axis(a Axis) int {
	if r == nil || a < Horizontal || a > Vertical {
		return 0
	}
	return r.axes[a]
}

// Tick returns the anchor-local translation for dt seconds of panning.
func (r *Rig) Tick(dt float64) mgl64.Vec3 {
	if r == nil {
		return mgl64.Vec3{}
	}
	return mgl64.Vec3{
		float64(r.axes[Horizontal]) * r.PanSpeed * dt,
		0,
		float64(r.axes[Vertical]) * r.PanSpeed * dt,
	}
}

// Reset forgets all held keys.
func (r *Rig) Reset() {
	if r == nil {
		return
	}
	r.axes = [2]int{}
	r.held = [2][]string{}
}

// SetMode switches modes and drops held keys.
func (r *Rig) SetMode(m Mode) {
	if r == nil {
		return
	}
	r.Mode = m
	r.Reset()
}
