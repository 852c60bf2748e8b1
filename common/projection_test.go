package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestProjectionRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		anchor mgl64.Vec3
		world  mgl64.Vec3
	}{
		{"origin", mgl64.Vec3{0, 15, 0}, mgl64.Vec3{0, 0, 0}},
		{"offset_anchor", mgl64.Vec3{3, 15, -4}, mgl64.Vec3{5, 0, 2}},
		{"low_camera", mgl64.Vec3{0, 2, 0}, mgl64.Vec3{-1.5, 0, 0.25}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewProjection(c.anchor, 0.8, 1280, 720)
			sx, sy := p.ToScreen(c.world)
			back := p.ToWorld(sx, sy)
			if math.Abs(back.X()-c.world.X()) > 1e-9 || math.Abs(back.Z()-c.world.Z()) > 1e-9 {
				t.Fatalf("round trip: %v -> (%v,%v) -> %v", c.world, sx, sy, back)
			}
		})
	}
}

func TestProjectionOrientation(t *testing.T) {
	p := NewProjection(mgl64.Vec3{0, 15, 0}, 0.8, 1280, 720)

	cx, cy := p.ToScreen(mgl64.Vec3{})
	if cx != 640 || cy != 360 {
		t.Fatalf("anchor should project to screen centre, got (%v,%v)", cx, cy)
	}

	_, upY := p.ToScreen(mgl64.Vec3{0, 0, 1})
	if upY >= cy {
		t.Fatalf("+Z should be up on screen, got y=%v centre=%v", upY, cy)
	}

	rightX, _ := p.ToScreen(mgl64.Vec3{1, 0, 0})
	if rightX <= cx {
		t.Fatalf("+X should be right on screen, got x=%v centre=%v", rightX, cx)
	}

	// The top edge of the screen sits altitude*tan(fov/2) units away.
	edge := 15 * math.Tan(0.4)
	_, topY := p.ToScreen(mgl64.Vec3{0, 0, edge})
	if math.Abs(topY) > 1e-9 {
		t.Fatalf("expected top edge at y=0, got %v", topY)
	}
}
