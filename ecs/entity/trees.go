package entity

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
	"github.com/milk9111/clickwalk/nav"
	"github.com/milk9111/clickwalk/prefabs"
)

// NewTrees scatters obstacle trees over ground using the trees prefab's
// script.
func NewTrees(w *ecs.World, ground *prefabs.GroundSpec) ([]ecs.Entity, error) {
	spec, err := prefabs.LoadTreesSpec()
	if err != nil {
		return nil, fmt.Errorf("trees: load spec: %w", err)
	}

	radius := spec.Radius
	if radius <= 0 {
		radius = 0.5
	}
	positions, err := prefabs.Scatter(spec.Script, prefabs.ScatterParams{
		Count:      spec.Count,
		HalfExtent: math.Min(ground.Width, ground.Depth) / 2,
		Clearance:  spec.Clearance,
		Radius:     radius,
		Seed:       spec.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("trees: %w", err)
	}

	trees := make([]ecs.Entity, 0, len(positions))
	for _, p := range positions {
		tree := w.CreateEntity()
		if err := ecs.Add(w, tree, component.TreeTagComponent, &component.TreeTag{}); err != nil {
			return nil, fmt.Errorf("trees: add tag: %w", err)
		}
		if err := ecs.Add(w, tree, component.TransformComponent, &component.Transform{Pose: nav.Pose{
			Position: mgl64.Vec3{p[0], 0, p[1]},
		}}); err != nil {
			return nil, fmt.Errorf("trees: add transform: %w", err)
		}
		if err := ecs.Add(w, tree, component.ShapeComponent, &component.Shape{Kind: component.ShapeCircle, Radius: radius}); err != nil {
			return nil, fmt.Errorf("trees: add shape: %w", err)
		}
		if err := ecs.Add(w, tree, component.SurfaceComponent, &component.Surface{Kind: component.SurfaceObstacle}); err != nil {
			return nil, fmt.Errorf("trees: add surface: %w", err)
		}
		if err := ecs.Add(w, tree, component.RenderableComponent, &component.Renderable{
			Color: spec.Color.RGBA,
			Layer: layerTrees,
		}); err != nil {
			return nil, fmt.Errorf("trees: add renderable: %w", err)
		}
		trees = append(trees, tree)
	}
	return trees, nil
}
