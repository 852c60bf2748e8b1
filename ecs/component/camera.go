package component

import "github.com/milk9111/clickwalk/camrig"

// Camera looks straight down from its transform. The transform is the rig
// anchor; panning translates it in its local frame.
type Camera struct {
	FOV        float64
	ViewWidth  float64
	ViewHeight float64
	Rig        *camrig.Rig
}

var CameraComponent = NewComponent[Camera]()
