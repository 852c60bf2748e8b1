package system

import (
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
)

// CameraSystem feeds key changes to each camera rig and pans the anchor.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	in := frameInput(w)
	ecs.ForEach2(w, component.CameraComponent, component.TransformComponent, func(e ecs.Entity, cam *component.Camera, transform *component.Transform) {
		if cam.Rig == nil {
			return
		}
		if in != nil {
			for _, k := range in.Keys {
				cam.Rig.OnKeyChange(k.Key, k.Pressed)
			}
		}
		transform.TranslateLocal(cam.Rig.Tick(dt))
	})
}

// SetViewport records the drawable size on every camera.
func SetViewport(w *ecs.World, width, height int) {
	ecs.ForEach(w, component.CameraComponent, func(e ecs.Entity, cam *component.Camera) {
		cam.ViewWidth = float64(width)
		cam.ViewHeight = float64(height)
	})
}
