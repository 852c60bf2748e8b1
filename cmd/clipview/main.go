// Command clipview plays the actor prefab's animation clips side by side so
// frame counts and rates can be tuned without walking the actor around.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
	"github.com/milk9111/clickwalk/ecs/system"
	"github.com/milk9111/clickwalk/prefabs"
)

const (
	screenWidth  = 640
	screenHeight = 320
	boxSize      = 64
)

type clipView struct {
	name   string
	entity ecs.Entity
}

type previewGame struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	clips     []clipView
	color     color.RGBA
}

func newPreviewGame(only string) (*previewGame, error) {
	spec, err := prefabs.LoadActorSpec()
	if err != nil {
		return nil, err
	}

	defs := make([]component.ClipDef, 0, len(spec.Animation.Clips))
	for _, c := range spec.Animation.Clips {
		defs = append(defs, component.ClipDef{Name: c.Name, Frames: c.Frames, FPS: c.FPS, Loop: c.Loop})
	}

	g := &previewGame{
		world:     ecs.NewWorld(),
		scheduler: ecs.NewScheduler(system.NewAnimationSystem()),
		color:     spec.Color.RGBA,
	}
	for _, def := range defs {
		if only != "" && def.Name != only {
			continue
		}
		e := g.world.CreateEntity()
		anim := component.NewAnimation(defs)
		anim.Play(def.Name, true)
		if err := ecs.Add(g.world, e, component.AnimationComponent, anim); err != nil {
			return nil, err
		}
		g.clips = append(g.clips, clipView{name: def.Name, entity: e})
	}
	if len(g.clips) == 0 {
		return nil, fmt.Errorf("clipview: no clip named %q", only)
	}
	return g, nil
}

func (g *previewGame) Update() error {
	g.scheduler.Update(g.world, 1/float64(ebiten.TPS()))
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})

	slot := float32(screenWidth) / float32(len(g.clips))
	for i, c := range g.clips {
		anim, ok := ecs.Get(g.world, c.entity, component.AnimationComponent)
		if !ok {
			continue
		}
		st := anim.Clips[c.name]
		def := anim.Defs[c.name]

		phase := 0.0
		if def.Frames > 0 {
			phase = 2 * math.Pi * float64(st.Frame) / float64(def.Frames)
		}
		size := float32(boxSize * (1 + 0.1*math.Sin(phase)))
		cx := slot*float32(i) + slot/2
		cy := float32(screenHeight) / 2
		vector.DrawFilledRect(screen, cx-size/2, cy-size/2, size, size, g.color, true)

		label := fmt.Sprintf("%s\nframe %d/%d\n%.0f fps", c.name, st.Frame+1, def.Frames, def.FPS)
		ebitenutil.DebugPrintAt(screen, label, int(cx)-boxSize/2, int(cy)+boxSize)
	}
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	clip := flag.String("clip", "", "only show this clip")
	dir := flag.String("prefabs", prefabs.Dir, "directory checked for prefab overrides")
	flag.Parse()

	prefabs.Dir = *dir
	g, err := newPreviewGame(*clip)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Actor Clip Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
