package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
	"github.com/milk9111/clickwalk/nav"
)

// EventNavigation is pushed whenever an actor starts, redirects or ends a
// move. Data is a NavigationEvent.
const EventNavigation = "navigation"

type NavigationEvent struct {
	Entity     ecs.Entity
	Transition nav.Transition
	Target     mgl64.Vec3
}

// NavigationSystem advances every navigating entity toward its target.
type NavigationSystem struct {
	debug bool
}

func NewNavigationSystem(debug bool) *NavigationSystem {
	return &NavigationSystem{debug: debug}
}

func (ns *NavigationSystem) Update(w *ecs.World, dt float64) {
	if ns == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.NavigationComponent, component.TransformComponent, func(e ecs.Entity, n *nav.Navigator, transform *component.Transform) {
		target := n.Target
		anim, _ := ecs.Get(w, e, component.AnimationComponent)
		if n.Tick(&transform.Pose, dt, anim) != nav.Arrived {
			return
		}
		if ns.debug {
			log.Printf("navigation: %v arrived at (%.2f, %.2f)", e, transform.Position.X(), transform.Position.Z())
		}
		w.Events().Push(ecs.Event{
			Type: EventNavigation,
			Data: NavigationEvent{Entity: e, Transition: nav.Arrived, Target: target},
		})
	})
}
