package nav

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a world-space position plus a yaw about +Y. Yaw 0 faces +Z.
type Pose struct {
	Position mgl64.Vec3
	Yaw      float64
}

// Forward returns the unit facing vector on the horizontal plane.
func (p Pose) Forward() mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(p.Yaw), 0, math.Cos(p.Yaw)}
}

// Right returns the unit vector to the right of Forward.
func (p Pose) Right() mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(p.Yaw), 0, -math.Sin(p.Yaw)}
}

// LookAt turns the pose to face point. Only yaw changes.
func (p *Pose) LookAt(point mgl64.Vec3) {
	if p == nil {
		return
	}
	dx := point.X() - p.Position.X()
	dz := point.Z() - p.Position.Z()
	if dx == 0 && dz == 0 {
		return
	}
	p.Yaw = math.Atan2(dx, dz)
}

// TranslateLocal moves the pose by v expressed in its own frame
// (X right, Y up, Z forward).
func (p *Pose) TranslateLocal(v mgl64.Vec3) {
	if p == nil {
		return
	}
	world := p.Right().Mul(v.X()).
		Add(mgl64.Vec3{0, v.Y(), 0}).
		Add(p.Forward().Mul(v.Z()))
	p.Position = p.Position.Add(world)
}

// PlanarDistance is the distance between a and b ignoring Y.
func PlanarDistance(a, b mgl64.Vec3) float64 {
	return math.Hypot(a.X()-b.X(), a.Z()-b.Z())
}
