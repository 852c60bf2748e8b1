package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projection maps the ground plane (Y 0) to screen pixels for a camera
// looking straight down. World +X is screen right, world +Z is screen up.
type Projection struct {
	Center        mgl64.Vec3
	PixelsPerUnit float64
	Width         float64
	Height        float64
}

// NewProjection sizes the view so the vertical field of view fov (radians)
// spans the screen height from an eye at anchor.
func NewProjection(anchor mgl64.Vec3, fov, width, height float64) Projection {
	altitude := anchor.Y()
	if altitude <= 0 {
		altitude = 1
	}
	if fov <= 0 || fov >= math.Pi {
		fov = 0.8
	}
	if height <= 0 {
		height = BaseHeight
	}
	if width <= 0 {
		width = BaseWidth
	}
	halfExtent := altitude * math.Tan(fov/2)
	return Projection{
		Center:        anchor,
		PixelsPerUnit: (height / 2) / halfExtent,
		Width:         width,
		Height:        height,
	}
}

// ToScreen returns the screen pixel for world point p.
func (p Projection) ToScreen(world mgl64.Vec3) (float64, float64) {
	sx := p.Width/2 + (world.X()-p.Center.X())*p.PixelsPerUnit
	sy := p.Height/2 - (world.Z()-p.Center.Z())*p.PixelsPerUnit
	return sx, sy
}

// ToWorld returns the ground-plane point under screen pixel (sx, sy).
func (p Projection) ToWorld(sx, sy float64) mgl64.Vec3 {
	x := p.Center.X() + (sx-p.Width/2)/p.PixelsPerUnit
	z := p.Center.Z() - (sy-p.Height/2)/p.PixelsPerUnit
	return mgl64.Vec3{x, 0, z}
}

// Scale converts a world length to pixels.
func (p Projection) Scale(length float64) float64 {
	return length * p.PixelsPerUnit
}
