package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
	"github.com/milk9111/clickwalk/nav"
)

// The cp space lies in the ground plane: cp X is world X and cp Y is world Z.
const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeTrigger
	collisionTypeSurface
)

const (
	categoryGround uint = 1 << iota
	categoryObstacle
	categoryActor
	categoryTrigger
	categoryPick
)

// parkedOffset is where an idle trigger waits, well outside any ground.
const parkedOffset = 1e6

const pickSlop = 1e-3

// PickResult describes what lies under a ground-plane point.
type PickResult struct {
	Hit     bool
	Point   mgl64.Vec3
	Surface component.SurfaceKind
	Entity  ecs.Entity
}

type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	debug         bool

	surfaces     map[*cp.Shape]ecs.Entity
	surfaceKinds map[ecs.Entity]component.SurfaceKind
	bodies       map[ecs.Entity]*cp.Body
	actorShapes  map[*cp.Shape]ecs.Entity
	entered      map[ecs.Entity]bool
}

func NewPhysicsSystem(debug bool) *PhysicsSystem {
	return &PhysicsSystem{
		space:        newSpace(),
		debug:        debug,
		surfaces:     make(map[*cp.Shape]ecs.Entity),
		surfaceKinds: make(map[ecs.Entity]component.SurfaceKind),
		bodies:       make(map[ecs.Entity]*cp.Body),
		actorShapes:  make(map[*cp.Shape]ecs.Entity),
		entered:      make(map[ecs.Entity]bool),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncSurfaces(w)
	ps.syncActors(w)
	ps.syncTriggers(w)

	if dt <= 0 {
		return
	}

	clear(ps.entered)
	ps.space.Step(dt)
	ps.flushTriggerContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	triggerHandler := ps.space.NewCollisionHandler(collisionTypeActor, collisionTypeTrigger)
	triggerHandler.UserData = ps
	triggerHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		actor, ok := sys.actorShapes[shapeA]
		if !ok {
			actor, ok = sys.actorShapes[shapeB]
			if !ok {
				return true
			}
		}
		sys.entered[actor] = true
		return true
	}

	ps.handlersReady = true
}

// syncSurfaces adds static shapes for pickable entities seen for the first
// time. Surfaces never move.
func (ps *PhysicsSystem) syncSurfaces(w *ecs.World) {
	for _, e := range w.Query(component.SurfaceComponent, component.TransformComponent) {
		if _, ok := ps.surfaceKinds[e]; ok {
			continue
		}
		surface, _ := ecs.Get(w, e, component.SurfaceComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)

		var shape *cp.Shape
		var category uint
		switch surface.Kind {
		case component.SurfaceGround:
			ground, ok := ecs.Get(w, e, component.GroundComponent)
			if !ok {
				continue
			}
			cx, cz := transform.Position.X(), transform.Position.Z()
			bb := cp.BB{L: cx - ground.Width/2, B: cz - ground.Depth/2, R: cx + ground.Width/2, T: cz + ground.Depth/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
			category = categoryGround
		case component.SurfaceObstacle:
			s, ok := ecs.Get(w, e, component.ShapeComponent)
			if !ok {
				continue
			}
			shape = staticShape(ps.space.StaticBody, transform.Position, s)
			category = categoryObstacle
		default:
			continue
		}

		shape.SetCollisionType(collisionTypeSurface)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, category, categoryPick))
		ps.space.AddShape(shape)

		ps.surfaces[shape] = e
		ps.surfaceKinds[e] = surface.Kind
	}
}

func staticShape(body *cp.Body, pos mgl64.Vec3, s *component.Shape) *cp.Shape {
	if s.Kind == component.ShapeCircle {
		return cp.NewCircle(body, s.Radius, cp.Vector{X: pos.X(), Y: pos.Z()})
	}
	bb := cp.BB{
		L: pos.X() - s.Size.X()/2,
		B: pos.Z() - s.Size.Z()/2,
		R: pos.X() + s.Size.X()/2,
		T: pos.Z() + s.Size.Z()/2,
	}
	return cp.NewBox2(body, bb, 0)
}

// footprint returns the ground-plane width and depth of a shape.
func footprint(s *component.Shape) (float64, float64) {
	if s.Kind == component.ShapeCircle {
		return s.Radius * 2, s.Radius * 2
	}
	return s.Size.X(), s.Size.Z()
}

func (ps *PhysicsSystem) syncActors(w *ecs.World) {
	for _, e := range w.Query(component.ActorTagComponent, component.TransformComponent, component.ShapeComponent) {
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		body, ok := ps.bodies[e]
		if !ok {
			s, _ := ecs.Get(w, e, component.ShapeComponent)
			width, depth := footprint(s)
			body = cp.NewBody(1, cp.MomentForBox(1, width, depth))
			shape := cp.NewBox(body, width, depth, 0)
			shape.SetCollisionType(collisionTypeActor)
			shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryActor, categoryTrigger))
			ps.space.AddBody(body)
			ps.space.AddShape(shape)
			ps.bodies[e] = body
			ps.actorShapes[shape] = e
		}
		body.SetPosition(cp.Vector{X: transform.Position.X(), Y: transform.Position.Z()})
		body.SetVelocity(0, 0)
	}
}

// syncTriggers moves each trigger onto the actor's movement target, or parks
// it when the actor has nowhere to go.
func (ps *PhysicsSystem) syncTriggers(w *ecs.World) {
	var navigator *nav.Navigator
	if actor, ok := w.First(component.ActorTagComponent); ok {
		navigator, _ = ecs.Get(w, actor, component.NavigationComponent)
	}

	ecs.ForEach2(w, component.TriggerComponent, component.TransformComponent, func(e ecs.Entity, trigger *component.Trigger, transform *component.Transform) {
		body, ok := ps.bodies[e]
		if !ok {
			size := trigger.Size
			if size <= 0 {
				size = 0.2
			}
			body = cp.NewBody(1, cp.MomentForBox(1, size, size))
			shape := cp.NewBox(body, size, size, 0)
			shape.SetSensor(true)
			shape.SetCollisionType(collisionTypeTrigger)
			shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categoryTrigger, categoryActor))
			ps.space.AddBody(body)
			ps.space.AddShape(shape)
			ps.bodies[e] = body
		}

		if navigator != nil && navigator.HasTarget {
			trigger.Parked = false
			transform.Position = mgl64.Vec3{navigator.Target.X(), 0, navigator.Target.Z()}
		} else {
			trigger.Parked = true
			transform.Position = mgl64.Vec3{parkedOffset, 0, parkedOffset}
		}
		body.SetPosition(cp.Vector{X: transform.Position.X(), Y: transform.Position.Z()})
		body.SetVelocity(0, 0)
	})
}

// flushTriggerContacts cancels navigation for actors that entered the target
// trigger this step, when their stop mode listens for it.
func (ps *PhysicsSystem) flushTriggerContacts(w *ecs.World) {
	for actor := range ps.entered {
		navigator, ok := ecs.Get(w, actor, component.NavigationComponent)
		if !ok || !navigator.HasTarget || !navigator.Stop.UsesTrigger() {
			continue
		}
		target := navigator.Target
		anim, _ := ecs.Get(w, actor, component.AnimationComponent)
		if navigator.Cancel(anim) != nav.Cancelled {
			continue
		}
		if ps.debug {
			log.Printf("physics: %v entered target trigger at (%.2f, %.2f)", actor, target.X(), target.Z())
		}
		w.Events().Push(ecs.Event{
			Type: EventNavigation,
			Data: NavigationEvent{Entity: actor, Transition: nav.Cancelled, Target: target},
		})
	}
	clear(ps.entered)
}

// Pick returns the topmost surface containing point. Obstacles occlude the
// ground beneath them.
func (ps *PhysicsSystem) Pick(point mgl64.Vec3) PickResult {
	if ps == nil || ps.space == nil {
		return PickResult{}
	}

	p := cp.Vector{X: point.X(), Y: point.Z()}
	bb := cp.BB{L: p.X - pickSlop, B: p.Y - pickSlop, R: p.X + pickSlop, T: p.Y + pickSlop}
	filter := cp.NewShapeFilter(cp.NO_GROUP, categoryPick, categoryGround|categoryObstacle)

	var result PickResult
	ps.space.BBQuery(bb, filter, func(shape *cp.Shape, data interface{}) {
		e, ok := ps.surfaces[shape]
		if !ok {
			return
		}
		if info := shape.PointQuery(p); info.Distance > 0 {
			return
		}
		kind := ps.surfaceKinds[e]
		if result.Hit && result.Surface == component.SurfaceObstacle {
			return
		}
		result = PickResult{
			Hit:     true,
			Point:   mgl64.Vec3{point.X(), 0, point.Z()},
			Surface: kind,
			Entity:  e,
		}
	}, nil)

	return result
}
