package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/clickwalk/camrig"
	"github.com/milk9111/clickwalk/common"
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
	"github.com/milk9111/clickwalk/nav"
	"github.com/milk9111/clickwalk/prefabs"
)

// NewCamera builds the camera anchor and its pan rig. Non-zero panSpeed and a
// non-nil mode override the prefab.
func NewCamera(w *ecs.World, panSpeed float64, mode *camrig.Mode) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}

	axis, err := camrig.ParseMode(cameraSpec.AxisMode)
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	if mode != nil {
		axis = *mode
	}
	if panSpeed <= 0 {
		panSpeed = cameraSpec.PanSpeed
	}
	if panSpeed <= 0 {
		panSpeed = camrig.DefaultPanSpeed
	}
	fov := cameraSpec.FOV
	if fov <= 0 {
		fov = 0.8
	}

	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.TransformComponent, &component.Transform{Pose: nav.Pose{
		Position: mgl64.Vec3{cameraSpec.Transform.X, cameraSpec.Transform.Y, cameraSpec.Transform.Z},
		Yaw:      cameraSpec.Transform.Yaw,
	}}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent, &component.Camera{
		FOV:        fov,
		ViewWidth:  common.BaseWidth,
		ViewHeight: common.BaseHeight,
		Rig:        camrig.New(panSpeed, axis),
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
