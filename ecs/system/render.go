package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/clickwalk/common"
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
	"github.com/milk9111/clickwalk/nav"
	"golang.org/x/image/colornames"
)

// RenderSystem draws the scene from the active camera, top down.
type RenderSystem struct {
	Debug      bool
	Background color.Color
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Debug: debug, Background: colornames.Midnightblue}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(r.Background)

	proj, ok := ActiveProjection(w)
	if !ok {
		return
	}

	entities := w.Query(component.TransformComponent, component.RenderableComponent)
	sort.SliceStable(entities, func(i, j int) bool {
		ri, _ := ecs.Get(w, entities[i], component.RenderableComponent)
		rj, _ := ecs.Get(w, entities[j], component.RenderableComponent)
		if ri.Layer != rj.Layer {
			return ri.Layer < rj.Layer
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		rend, _ := ecs.Get(w, e, component.RenderableComponent)
		if rend.DebugOnly && !r.Debug {
			continue
		}

		if ground, ok := ecs.Get(w, e, component.GroundComponent); ok {
			drawGround(screen, proj, t.Position, ground, rend.Color)
			continue
		}
		if trigger, ok := ecs.Get(w, e, component.TriggerComponent); ok {
			if !trigger.Parked {
				drawMarker(screen, proj, t.Position, trigger.Size, rend.Color)
			}
			continue
		}
		shape, ok := ecs.Get(w, e, component.ShapeComponent)
		if !ok {
			continue
		}
		if shape.Kind == component.ShapeCircle {
			cx, cy := proj.ToScreen(t.Position)
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(proj.Scale(shape.Radius)), rend.Color, true)
			continue
		}

		anim, _ := ecs.Get(w, e, component.AnimationComponent)
		drawActor(screen, proj, t.Pose, shape, rend.Color, anim)
	}
}

func drawGround(screen *ebiten.Image, proj common.Projection, center mgl64.Vec3, g *component.Ground, clr color.RGBA) {
	x0, y0 := proj.ToScreen(mgl64.Vec3{center.X() - g.Width/2, 0, center.Z() + g.Depth/2})
	width, depth := proj.Scale(g.Width), proj.Scale(g.Depth)
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(width), float32(depth), clr, false)

	if g.Tiles <= 1 {
		return
	}
	line := shade(clr, 0.8)
	for i := 1; i < g.Tiles; i++ {
		fx := float32(x0 + width*float64(i)/float64(g.Tiles))
		fy := float32(y0 + depth*float64(i)/float64(g.Tiles))
		vector.StrokeLine(screen, fx, float32(y0), fx, float32(y0+depth), 1, line, false)
		vector.StrokeLine(screen, float32(x0), fy, float32(x0+width), fy, 1, line, false)
	}
}

func drawMarker(screen *ebiten.Image, proj common.Projection, at mgl64.Vec3, size float64, clr color.RGBA) {
	cx, cy := proj.ToScreen(at)
	half := proj.Scale(size / 2)
	if half < 4 {
		half = 4
	}
	x, y, s := float32(cx), float32(cy), float32(half)
	vector.StrokeLine(screen, x-s, y-s, x+s, y+s, 2, clr, true)
	vector.StrokeLine(screen, x-s, y+s, x+s, y-s, 2, clr, true)
	vector.StrokeCircle(screen, x, y, s*1.5, 1, clr, true)
}

// drawActor draws the actor footprint with a nose showing its facing. The
// playing clip modulates the body: idle breathes, running bobs the nose.
func drawActor(screen *ebiten.Image, proj common.Projection, pose nav.Pose, shape *component.Shape, clr color.RGBA, anim *component.Animation) {
	scale, reach := 1.0, 1.0
	if name, frame, ok := anim.Dominant(nav.ClipRunning, nav.ClipIdle); ok {
		def := anim.Defs[name]
		phase := 0.0
		if def.Frames > 0 {
			phase = 2 * math.Pi * float64(frame) / float64(def.Frames)
		}
		switch name {
		case nav.ClipRunning:
			reach = 1 + 0.25*math.Sin(phase)
		case nav.ClipIdle:
			scale = 1 + 0.05*math.Sin(phase)
		}
	}

	cx, cy := proj.ToScreen(pose.Position)
	width := proj.Scale(shape.Size.X()) * scale
	depth := proj.Scale(shape.Size.Z()) * scale
	vector.DrawFilledRect(screen, float32(cx-width/2), float32(cy-depth/2), float32(width), float32(depth), clr, true)
	vector.StrokeRect(screen, float32(cx-width/2), float32(cy-depth/2), float32(width), float32(depth), 1, shade(clr, 0.6), true)

	nose := pose.Position.Add(pose.Forward().Mul(shape.Size.Z() * reach))
	nx, ny := proj.ToScreen(nose)
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(nx), float32(ny), 3, colornames.White, true)
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(common.Clamp(float64(c.R)*f, 0, 255)),
		G: uint8(common.Clamp(float64(c.G)*f, 0, 255)),
		B: uint8(common.Clamp(float64(c.B)*f, 0, 255)),
		A: c.A,
	}
}
