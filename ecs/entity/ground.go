package entity

import (
	"fmt"

	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
	"github.com/milk9111/clickwalk/prefabs"
)

const (
	layerGround = iota
	layerMarker
	layerTrees
	layerActor
)

func NewGround(w *ecs.World, spec *prefabs.GroundSpec) (ecs.Entity, error) {
	ground := w.CreateEntity()
	if err := ecs.Add(w, ground, component.TransformComponent, &component.Transform{}); err != nil {
		return 0, fmt.Errorf("ground: add transform: %w", err)
	}
	if err := ecs.Add(w, ground, component.GroundComponent, &component.Ground{
		Width: spec.Width,
		Depth: spec.Depth,
		Tiles: spec.Tiles,
	}); err != nil {
		return 0, fmt.Errorf("ground: add ground: %w", err)
	}
	if err := ecs.Add(w, ground, component.SurfaceComponent, &component.Surface{Kind: component.SurfaceGround}); err != nil {
		return 0, fmt.Errorf("ground: add surface: %w", err)
	}
	if err := ecs.Add(w, ground, component.RenderableComponent, &component.Renderable{
		Color: spec.Color.RGBA,
		Layer: layerGround,
	}); err != nil {
		return 0, fmt.Errorf("ground: add renderable: %w", err)
	}
	return ground, nil
}
