package nav

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type recordingAnimator struct {
	playing map[string]bool
	plays   []string
	stops   []string
}

func newRecordingAnimator() *recordingAnimator {
	return &recordingAnimator{playing: map[string]bool{ClipIdle: true}}
}

func (a *recordingAnimator) Play(clip string, loop bool) {
	a.plays = append(a.plays, clip)
	a.playing[clip] = true
}

func (a *recordingAnimator) Stop(clip string) {
	a.stops = append(a.stops, clip)
	a.playing[clip] = false
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSetTargetScenarioArrivesOnThirdTick(t *testing.T) {
	pose := Pose{}
	anim := newRecordingAnimator()
	n := NewNavigator(4, 1, StopDistance)

	if tr := n.SetTarget(&pose, mgl64.Vec3{0, 0, 10}, anim); tr != Started {
		t.Fatalf("expected Started, got %v", tr)
	}
	if !anim.playing[ClipRunning] {
		t.Fatalf("expected running clip to play")
	}

	wantZ := []float64{4, 8}
	for i, z := range wantZ {
		if tr := n.Tick(&pose, 1.0, anim); tr != None {
			t.Fatalf("tick %d: expected None, got %v", i+1, tr)
		}
		if !approx(pose.Position.Z(), z) {
			t.Fatalf("tick %d: expected z=%v, got %v", i+1, z, pose.Position.Z())
		}
	}

	if tr := n.Tick(&pose, 1.0, anim); tr != Arrived {
		t.Fatalf("tick 3: expected Arrived, got %v", tr)
	}
	if n.Moving || n.HasTarget || n.State() != Idle {
		t.Fatalf("expected idle with no target, got moving=%v hasTarget=%v", n.Moving, n.HasTarget)
	}
	if anim.playing[ClipRunning] || !anim.playing[ClipIdle] {
		t.Fatalf("expected running stopped and idle playing, got %v", anim.playing)
	}

	before := pose
	if tr := n.Tick(&pose, 1.0, anim); tr != None {
		t.Fatalf("tick after arrival: expected None, got %v", tr)
	}
	if pose != before {
		t.Fatalf("tick after arrival moved the actor: %v -> %v", before, pose)
	}
}

func TestSetTargetWithinEpsilonIsNoop(t *testing.T) {
	cases := []struct {
		name   string
		moving bool
	}{
		{"idle", false},
		{"moving", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pose := Pose{Position: mgl64.Vec3{2, 1, 2}}
			anim := newRecordingAnimator()
			n := NewNavigator(4, 1, StopDistance)
			if c.moving {
				n.SetTarget(&pose, mgl64.Vec3{20, 0, 2}, anim)
			}
			yaw := pose.Yaw
			target := n.Target

			if tr := n.SetTarget(&pose, mgl64.Vec3{2.5, 0, 2.5}, anim); tr != None {
				t.Fatalf("expected None, got %v", tr)
			}
			if n.Moving != c.moving {
				t.Fatalf("moving changed: want %v got %v", c.moving, n.Moving)
			}
			if pose.Yaw != yaw || n.Target != target {
				t.Fatalf("noop SetTarget changed yaw or target")
			}
		})
	}
}

func TestSetTargetPinsHeightAndFacesTarget(t *testing.T) {
	pose := Pose{Position: mgl64.Vec3{0, 1, 0}}
	n := NewNavigator(4, 1, StopDistance)

	n.SetTarget(&pose, mgl64.Vec3{5, 0, 0}, nil)
	if n.Target.Y() != 1 {
		t.Fatalf("expected target y pinned to 1, got %v", n.Target.Y())
	}
	if !approx(pose.Yaw, math.Pi/2) {
		t.Fatalf("expected yaw pi/2 facing +X, got %v", pose.Yaw)
	}

	n.Tick(&pose, 0.5, nil)
	if !approx(pose.Position.X(), 2) || !approx(pose.Position.Y(), 1) || !approx(pose.Position.Z(), 0) {
		t.Fatalf("unexpected position after tick: %v", pose.Position)
	}
}

func TestRetargetWhileMovingSkipsIdle(t *testing.T) {
	pose := Pose{}
	anim := newRecordingAnimator()
	n := NewNavigator(4, 1, StopDistance)

	n.SetTarget(&pose, mgl64.Vec3{0, 0, 10}, anim)
	n.Tick(&pose, 0.5, anim)

	if tr := n.SetTarget(&pose, mgl64.Vec3{-10, 0, 2}, anim); tr != Retargeted {
		t.Fatalf("expected Retargeted, got %v", tr)
	}
	if !n.Moving {
		t.Fatalf("expected still moving")
	}
	if len(anim.stops) != 0 {
		t.Fatalf("retarget should not stop any clip, got stops %v", anim.stops)
	}
	if !approx(pose.Yaw, -math.Pi/2) {
		t.Fatalf("expected facing -X after retarget, got yaw %v", pose.Yaw)
	}
}

func TestTickConvergesForAnyPositiveDelta(t *testing.T) {
	targets := []mgl64.Vec3{
		{0, 0, 10},
		{-7, 0, 3},
		{12.5, 0, -30},
		{1.01, 0, 0},
	}
	deltas := []float64{1.0 / 60, 0.1, 0.37, 1, 5}

	for _, target := range targets {
		for _, dt := range deltas {
			pose := Pose{}
			n := NewNavigator(4, 1, StopDistance)
			if tr := n.SetTarget(&pose, target, nil); tr != Started {
				t.Fatalf("target %v: expected Started, got %v", target, tr)
			}

			arrived := false
			for i := 0; i < 100000 && !arrived; i++ {
				arrived = n.Tick(&pose, dt, nil) == Arrived
			}
			if !arrived {
				t.Fatalf("target %v dt %v: never arrived, at %v", target, dt, pose.Position)
			}
			if PlanarDistance(pose.Position, target) >= 1 {
				t.Fatalf("target %v dt %v: arrived %v away", target, dt, PlanarDistance(pose.Position, target))
			}
		}
	}
}

func TestTickIgnoresDistanceInTriggerMode(t *testing.T) {
	pose := Pose{}
	anim := newRecordingAnimator()
	n := NewNavigator(4, 1, StopTrigger)
	n.SetTarget(&pose, mgl64.Vec3{0, 0, 3}, anim)

	for i := 0; i < 5; i++ {
		if tr := n.Tick(&pose, 1, anim); tr != None {
			t.Fatalf("tick %d: expected None in trigger mode, got %v", i, tr)
		}
	}
	if !n.Moving {
		t.Fatalf("expected still moving until cancelled")
	}
	if !approx(pose.Position.Z(), 3) {
		t.Fatalf("expected actor parked on target, got %v", pose.Position)
	}

	if tr := n.Cancel(anim); tr != Cancelled {
		t.Fatalf("expected Cancelled, got %v", tr)
	}
	if n.Moving || n.HasTarget {
		t.Fatalf("expected idle after cancel")
	}
	if tr := n.Cancel(anim); tr != None {
		t.Fatalf("second cancel should be None, got %v", tr)
	}
}

func TestTickNoopWhenIdleOrNonPositiveDelta(t *testing.T) {
	pose := Pose{Position: mgl64.Vec3{1, 1, 1}}
	n := NewNavigator(4, 1, StopDistance)

	if tr := n.Tick(&pose, 1, nil); tr != None {
		t.Fatalf("idle tick: expected None, got %v", tr)
	}

	n.SetTarget(&pose, mgl64.Vec3{1, 0, 10}, nil)
	before := pose.Position
	for _, dt := range []float64{0, -1} {
		if tr := n.Tick(&pose, dt, nil); tr != None {
			t.Fatalf("dt %v: expected None, got %v", dt, tr)
		}
	}
	if pose.Position != before {
		t.Fatalf("non-positive dt moved the actor")
	}
}

func TestParseStopMode(t *testing.T) {
	cases := []struct {
		in      string
		want    StopMode
		wantErr bool
	}{
		{"", StopDistance, false},
		{"distance", StopDistance, false},
		{"Trigger", StopTrigger, false},
		{"either", StopEither, false},
		{"both", StopEither, false},
		{"sometimes", StopDistance, true},
	}
	for _, c := range cases {
		got, err := ParseStopMode(c.in)
		if (err != nil) != c.wantErr {
			t.Fatalf("%q: err=%v wantErr=%v", c.in, err, c.wantErr)
		}
		if got != c.want {
			t.Fatalf("%q: got %v want %v", c.in, got, c.want)
		}
	}
}
