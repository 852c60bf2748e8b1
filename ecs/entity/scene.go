package entity

import (
	"fmt"

	"github.com/milk9111/clickwalk/camrig"
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
	"github.com/milk9111/clickwalk/nav"
	"github.com/milk9111/clickwalk/prefabs"
)

// Overrides replace prefab values at build time. Zero values keep the prefab.
type Overrides struct {
	Stop     *nav.StopMode
	AxisMode *camrig.Mode
	PanSpeed float64
}

type Scene struct {
	Ground ecs.Entity
	Trees  []ecs.Entity
	Actor  ecs.Entity
	Target ecs.Entity
	Camera ecs.Entity
	Input  ecs.Entity
}

// BuildScene populates w with the ground, trees, actor, target marker, camera
// and the input singleton.
func BuildScene(w *ecs.World, o Overrides) (*Scene, error) {
	groundSpec, err := prefabs.LoadGroundSpec()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	s := &Scene{}
	if s.Ground, err = NewGround(w, groundSpec); err != nil {
		return nil, err
	}
	if s.Trees, err = NewTrees(w, groundSpec); err != nil {
		return nil, err
	}
	if s.Actor, err = NewActor(w, o.Stop); err != nil {
		return nil, err
	}
	if s.Target, err = NewTarget(w); err != nil {
		return nil, err
	}
	if s.Camera, err = NewCamera(w, o.PanSpeed, o.AxisMode); err != nil {
		return nil, err
	}

	s.Input = w.CreateEntity()
	if err := ecs.Add(w, s.Input, component.InputComponent, &component.Input{}); err != nil {
		return nil, fmt.Errorf("scene: add input: %w", err)
	}
	return s, nil
}
