package system

import (
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, dt float64) {
	if w == nil || dt <= 0 {
		return
	}

	ecs.ForEach(w, component.AnimationComponent, func(e ecs.Entity, anim *component.Animation) {
		for name, st := range anim.Clips {
			if !st.Playing {
				continue
			}
			def, ok := anim.Defs[name]
			if !ok || def.Frames <= 0 || def.FPS <= 0 {
				continue
			}

			frameTime := 1 / def.FPS
			st.Elapsed += dt
			for st.Elapsed >= frameTime {
				st.Elapsed -= frameTime
				st.Frame++
				if st.Frame < def.Frames {
					continue
				}
				if st.Loop {
					st.Frame = 0
					continue
				}
				st.Frame = def.Frames - 1
				st.Playing = false
				st.Elapsed = 0
				break
			}
		}
	})
}
