package component

import "github.com/milk9111/clickwalk/nav"

// Transform places an entity in the world. Ground sits at Y 0.
type Transform struct {
	nav.Pose
}

var TransformComponent = NewComponent[Transform]()
