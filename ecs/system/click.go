package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/clickwalk/common"
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
	"github.com/milk9111/clickwalk/nav"
)

// Picker resolves a ground-plane point to the surface under it.
type Picker interface {
	Pick(point mgl64.Vec3) PickResult
}

// ClickMoveSystem turns primary-button presses on the ground into movement
// targets for the actor.
type ClickMoveSystem struct {
	picker Picker
	debug  bool
}

func NewClickMoveSystem(picker Picker, debug bool) *ClickMoveSystem {
	return &ClickMoveSystem{picker: picker, debug: debug}
}

func (cs *ClickMoveSystem) Update(w *ecs.World, dt float64) {
	if cs == nil || cs.picker == nil || w == nil {
		return
	}

	in := frameInput(w)
	if in == nil || len(in.Pointers) == 0 {
		return
	}
	proj, ok := ActiveProjection(w)
	if !ok {
		return
	}
	actor, ok := w.First(component.ActorTagComponent)
	if !ok {
		return
	}
	navigator, ok := ecs.Get(w, actor, component.NavigationComponent)
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, actor, component.TransformComponent)
	if !ok {
		return
	}
	anim, _ := ecs.Get(w, actor, component.AnimationComponent)

	for _, p := range in.Pointers {
		// Chorded presses are not move commands.
		if p.Buttons != component.ButtonPrimary {
			continue
		}
		hit := cs.picker.Pick(proj.ToWorld(p.X, p.Y))
		if !hit.Hit || hit.Surface != component.SurfaceGround {
			if cs.debug {
				log.Printf("click: (%.0f, %.0f) hit %s, ignored", p.X, p.Y, hit.Surface)
			}
			continue
		}

		tr := navigator.SetTarget(&transform.Pose, hit.Point, anim)
		if tr == nav.None {
			continue
		}
		if cs.debug {
			log.Printf("click: %s toward (%.2f, %.2f)", tr, hit.Point.X(), hit.Point.Z())
		}
		w.Events().Push(ecs.Event{
			Type: EventNavigation,
			Data: NavigationEvent{Entity: actor, Transition: tr, Target: navigator.Target},
		})
	}
}

// frameInput returns the input singleton, or nil before input is gathered.
func frameInput(w *ecs.World) *component.Input {
	e, ok := w.First(component.InputComponent)
	if !ok {
		return nil
	}
	in, _ := ecs.Get(w, e, component.InputComponent)
	return in
}

// ActiveProjection builds the ground projection for the first camera.
func ActiveProjection(w *ecs.World) (common.Projection, bool) {
	e, ok := w.First(component.CameraComponent)
	if !ok {
		return common.Projection{}, false
	}
	cam, _ := ecs.Get(w, e, component.CameraComponent)
	transform, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return common.Projection{}, false
	}
	return common.NewProjection(transform.Position, cam.FOV, cam.ViewWidth, cam.ViewHeight), true
}
