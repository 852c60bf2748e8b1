package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
	"github.com/milk9111/clickwalk/nav"
	"github.com/milk9111/clickwalk/prefabs"
)

// NewActor builds the click-to-move actor. A non-nil stop overrides the
// prefab's stop mode.
func NewActor(w *ecs.World, stop *nav.StopMode) (ecs.Entity, error) {
	spec, err := prefabs.LoadActorSpec()
	if err != nil {
		return 0, fmt.Errorf("actor: load spec: %w", err)
	}

	mode, err := nav.ParseStopMode(spec.Stop)
	if err != nil {
		return 0, fmt.Errorf("actor: %w", err)
	}
	if stop != nil {
		mode = *stop
	}
	speed := spec.Speed
	if speed <= 0 {
		speed = nav.DefaultSpeed
	}
	eps := spec.ArrivalEpsilon
	if eps <= 0 {
		eps = nav.DefaultArrivalEpsilon
	}

	actor := w.CreateEntity()
	if err := ecs.Add(w, actor, component.ActorTagComponent, &component.ActorTag{}); err != nil {
		return 0, fmt.Errorf("actor: add tag: %w", err)
	}
	if err := ecs.Add(w, actor, component.TransformComponent, &component.Transform{Pose: nav.Pose{
		Position: mgl64.Vec3{spec.Transform.X, spec.Transform.Y, spec.Transform.Z},
		Yaw:      spec.Transform.Yaw,
	}}); err != nil {
		return 0, fmt.Errorf("actor: add transform: %w", err)
	}
	if err := ecs.Add(w, actor, component.ShapeComponent, &component.Shape{
		Kind: component.ShapeBox,
		Size: mgl64.Vec3{spec.Size.X, spec.Size.Y, spec.Size.Z},
	}); err != nil {
		return 0, fmt.Errorf("actor: add shape: %w", err)
	}

	navigator := nav.NewNavigator(speed, eps, mode)
	if err := ecs.Add(w, actor, component.NavigationComponent, &navigator); err != nil {
		return 0, fmt.Errorf("actor: add navigation: %w", err)
	}

	defs := make([]component.ClipDef, 0, len(spec.Animation.Clips))
	for _, c := range spec.Animation.Clips {
		defs = append(defs, component.ClipDef{Name: c.Name, Frames: c.Frames, FPS: c.FPS, Loop: c.Loop})
	}
	anim := component.NewAnimation(defs)
	initial := spec.Animation.Initial
	if initial == "" {
		initial = nav.ClipIdle
	}
	if def, ok := anim.Defs[initial]; ok {
		anim.Play(initial, def.Loop)
	}
	if err := ecs.Add(w, actor, component.AnimationComponent, anim); err != nil {
		return 0, fmt.Errorf("actor: add animation: %w", err)
	}

	if err := ecs.Add(w, actor, component.RenderableComponent, &component.Renderable{
		Color: spec.Color.RGBA,
		Layer: layerActor,
	}); err != nil {
		return 0, fmt.Errorf("actor: add renderable: %w", err)
	}

	return actor, nil
}
