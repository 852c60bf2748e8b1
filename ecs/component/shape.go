package component

import "github.com/go-gl/mathgl/mgl64"

type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// Shape is an entity's extent in world units. Boxes use Size (X width,
// Y height, Z depth); circles use Radius on the ground plane.
type Shape struct {
	Kind   ShapeKind
	Size   mgl64.Vec3
	Radius float64
}

var ShapeComponent = NewComponent[Shape]()
