package system

import (
	"log"

	"github.com/milk9111/clickwalk/camrig"
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
	"github.com/milk9111/clickwalk/nav"
	"github.com/milk9111/clickwalk/prefabs"
)

// HotReloadSystem reapplies tunable prefab values when their files change on
// disk. Layout prefabs (ground, trees) only take effect on restart.
type HotReloadSystem struct {
	events <-chan string
	errors <-chan error
}

func NewHotReloadSystem(watcher *prefabs.Watcher) *HotReloadSystem {
	if watcher == nil {
		return nil
	}
	return &HotReloadSystem{events: watcher.Events, errors: watcher.Errors}
}

func (hr *HotReloadSystem) Update(w *ecs.World, dt float64) {
	if hr == nil || w == nil {
		return
	}
	for {
		select {
		case name, ok := <-hr.events:
			if !ok {
				hr.events = nil
				return
			}
			Reload(w, name)
		case err, ok := <-hr.errors:
			if !ok {
				hr.errors = nil
				continue
			}
			log.Printf("hotreload: watcher: %v", err)
		default:
			return
		}
	}
}

// Reload applies the prefab file name to the running world.
func Reload(w *ecs.World, name string) {
	switch name {
	case prefabs.ActorFile:
		spec, err := prefabs.LoadActorSpec()
		if err != nil {
			log.Printf("hotreload: %v", err)
			return
		}
		stop, err := nav.ParseStopMode(spec.Stop)
		if err != nil {
			log.Printf("hotreload: %v", err)
			return
		}
		ecs.ForEach(w, component.NavigationComponent, func(e ecs.Entity, n *nav.Navigator) {
			if spec.Speed > 0 {
				n.Speed = spec.Speed
			}
			if spec.ArrivalEpsilon > 0 {
				n.ArrivalEpsilon = spec.ArrivalEpsilon
			}
			n.Stop = stop
		})
		log.Printf("hotreload: actor speed %.2f, epsilon %.2f, stop %s", spec.Speed, spec.ArrivalEpsilon, stop)
	case prefabs.CameraFile:
		spec, err := prefabs.LoadCameraSpec()
		if err != nil {
			log.Printf("hotreload: %v", err)
			return
		}
		mode, err := camrig.ParseMode(spec.AxisMode)
		if err != nil {
			log.Printf("hotreload: %v", err)
			return
		}
		ecs.ForEach(w, component.CameraComponent, func(e ecs.Entity, cam *component.Camera) {
			if spec.FOV > 0 {
				cam.FOV = spec.FOV
			}
			if cam.Rig == nil {
				return
			}
			if spec.PanSpeed > 0 {
				cam.Rig.PanSpeed = spec.PanSpeed
			}
			if cam.Rig.Mode != mode {
				cam.Rig.SetMode(mode)
			}
		})
		log.Printf("hotreload: camera fov %.2f, pan speed %.2f, axis %s", spec.FOV, spec.PanSpeed, mode)
	default:
		log.Printf("hotreload: %s changed, restart to apply", name)
	}
}
