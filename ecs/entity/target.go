package entity

import (
	"fmt"

	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
	"github.com/milk9111/clickwalk/prefabs"
)

// NewTarget builds the invisible marker trigger that follows the actor's
// movement target. It starts parked.
func NewTarget(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadTargetSpec()
	if err != nil {
		return 0, fmt.Errorf("target: load spec: %w", err)
	}

	target := w.CreateEntity()
	if err := ecs.Add(w, target, component.TransformComponent, &component.Transform{}); err != nil {
		return 0, fmt.Errorf("target: add transform: %w", err)
	}
	if err := ecs.Add(w, target, component.TriggerComponent, &component.Trigger{Size: spec.Size, Parked: true}); err != nil {
		return 0, fmt.Errorf("target: add trigger: %w", err)
	}
	if err := ecs.Add(w, target, component.RenderableComponent, &component.Renderable{
		Color:     spec.Color.RGBA,
		Layer:     layerMarker,
		DebugOnly: true,
	}); err != nil {
		return 0, fmt.Errorf("target: add renderable: %w", err)
	}
	return target, nil
}
