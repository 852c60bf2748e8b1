package component

type SurfaceKind int

const (
	SurfaceNone SurfaceKind = iota
	SurfaceGround
	SurfaceObstacle
)

func (k SurfaceKind) String() string {
	switch k {
	case SurfaceGround:
		return "ground"
	case SurfaceObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// Surface makes an entity pickable. Only ground surfaces accept move
// commands; obstacles block picks that would reach the ground below.
type Surface struct {
	Kind SurfaceKind
}

var SurfaceComponent = NewComponent[Surface]()
