// Package nav implements click-to-move navigation for a single actor: a
// two-state (Idle, Moving) controller that walks the actor in a straight line
// toward a target on the ground plane and drives its animation clips.
//
// The package has no engine dependencies. Callers own the Pose and the
// Navigator and hand them in on every call.
package nav

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	ClipIdle    = "idle"
	ClipRunning = "running"

	DefaultSpeed          = 4.0
	DefaultArrivalEpsilon = 1.0
)

// Animator plays and stops named clips. Play on a clip that is already
// playing must be a no-op.
type Animator interface {
	Play(clip string, loop bool)
	Stop(clip string)
}

type State int

const (
	Idle State = iota
	Moving
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// StopMode selects what ends a walk.
type StopMode int

const (
	// StopDistance ends a walk when the actor is within the arrival epsilon.
	StopDistance StopMode = iota
	// StopTrigger ends a walk only through Cancel, fired by a trigger volume
	// placed on the target.
	StopTrigger
	// StopEither accepts both.
	StopEither
)

func (m StopMode) String() string {
	switch m {
	case StopDistance:
		return "distance"
	case StopTrigger:
		return "trigger"
	case StopEither:
		return "either"
	default:
		return fmt.Sprintf("StopMode(%d)", int(m))
	}
}

func (m StopMode) UsesDistance() bool {
	return m == StopDistance || m == StopEither
}

func (m StopMode) UsesTrigger() bool {
	return m == StopTrigger || m == StopEither
}

// ParseStopMode accepts "distance", "trigger" or "either". Empty means
// distance.
func ParseStopMode(s string) (StopMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "distance":
		return StopDistance, nil
	case "trigger":
		return StopTrigger, nil
	case "either", "both":
		return StopEither, nil
	default:
		return StopDistance, fmt.Errorf("nav: unknown stop mode %q", s)
	}
}

// Transition reports what a call did to the navigator state.
type Transition int

const (
	None Transition = iota
	Started
	Retargeted
	Arrived
	Cancelled
)

func (t Transition) String() string {
	switch t {
	case None:
		return "none"
	case Started:
		return "started"
	case Retargeted:
		return "retargeted"
	case Arrived:
		return "arrived"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Transition(%d)", int(t))
	}
}

// Navigator is the movement state of one actor. Moving is true exactly when
// HasTarget is true.
type Navigator struct {
	Speed          float64
	ArrivalEpsilon float64
	Stop           StopMode

	Target    mgl64.Vec3
	HasTarget bool
	Moving    bool
}

func NewNavigator(speed, arrivalEpsilon float64, stop StopMode) Navigator {
	return Navigator{
		Speed:          speed,
		ArrivalEpsilon: arrivalEpsilon,
		Stop:           stop,
	}
}

func (n *Navigator) State() State {
	if n != nil && n.Moving {
		return Moving
	}
	return Idle
}

func (n *Navigator) epsilon() float64 {
	if n.ArrivalEpsilon <= 0 {
		return DefaultArrivalEpsilon
	}
	return n.ArrivalEpsilon
}

// Remaining returns the planar distance left to the target, or 0 when idle.
func (n *Navigator) Remaining(pose Pose) float64 {
	if n == nil || !n.HasTarget {
		return 0
	}
	return PlanarDistance(pose.Position, n.Target)
}

// SetTarget starts (or redirects) a walk toward point. Points within the
// arrival epsilon of the actor are ignored. The stored target takes the
// actor's current height.
func (n *Navigator) SetTarget(pose *Pose, point mgl64.Vec3, anim Animator) Transition {
	if n == nil || pose == nil {
		return None
	}
	if PlanarDistance(pose.Position, point) < n.epsilon() {
		return None
	}

	tr := Started
	if n.Moving {
		tr = Retargeted
	}

	point[1] = pose.Position.Y()
	n.Target = point
	n.HasTarget = true
	n.Moving = true

	pose.LookAt(point)
	if anim != nil {
		anim.Play(ClipRunning, true)
	}
	return tr
}

// Tick advances a walk by dt seconds along the facing chosen in SetTarget.
// A step that would pass the target lands on it instead.
func (n *Navigator) Tick(pose *Pose, dt float64, anim Animator) Transition {
	if n == nil || pose == nil || !n.Moving || !n.HasTarget {
		return None
	}

	if n.arrived(*pose) {
		n.halt(anim)
		return Arrived
	}

	step := n.Speed * dt
	if step <= 0 {
		return None
	}

	if step >= PlanarDistance(pose.Position, n.Target) {
		pose.Position[0] = n.Target.X()
		pose.Position[2] = n.Target.Z()
	} else {
		pose.TranslateLocal(mgl64.Vec3{0, 0, step})
	}

	if n.arrived(*pose) {
		n.halt(anim)
		return Arrived
	}
	return None
}

// Cancel halts a walk from outside, e.g. when the actor enters the target's
// trigger volume.
func (n *Navigator) Cancel(anim Animator) Transition {
	if n == nil || (!n.Moving && !n.HasTarget) {
		return None
	}
	n.halt(anim)
	return Cancelled
}

func (n *Navigator) arrived(pose Pose) bool {
	if !n.Stop.UsesDistance() {
		return false
	}
	return PlanarDistance(pose.Position, n.Target) < n.epsilon()
}

func (n *Navigator) halt(anim Animator) {
	n.Target = mgl64.Vec3{}
	n.HasTarget = false
	n.Moving = false
	if anim != nil {
		anim.Stop(ClipRunning)
		anim.Play(ClipIdle, true)
	}
}
