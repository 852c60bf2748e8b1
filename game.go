package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/clickwalk/camrig"
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
	"github.com/milk9111/clickwalk/ecs/entity"
	"github.com/milk9111/clickwalk/ecs/system"
	"github.com/milk9111/clickwalk/nav"
	"github.com/milk9111/clickwalk/prefabs"
	"github.com/milk9111/clickwalk/settings"
)

type Options struct {
	Debug    bool
	Watch    bool
	Stop     *nav.StopMode
	AxisMode *camrig.Mode
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	scene     *entity.Scene
	physics   *system.PhysicsSystem
	render    *system.RenderSystem
	hud       *system.HUDSystem

	settings *settings.Manager
	watcher  *prefabs.Watcher

	debug   bool
	paused  bool
	pauseUI *ebitenui.UI

	width  int
	height int
}

func NewGame(opts Options) (*Game, error) {
	world := ecs.NewWorld()
	scene, err := entity.BuildScene(world, entity.Overrides{Stop: opts.Stop, AxisMode: opts.AxisMode})
	if err != nil {
		return nil, err
	}

	store, err := settings.Open()
	if err != nil {
		log.Printf("%v", err)
	}

	g := &Game{
		world:    world,
		scene:    scene,
		physics:  system.NewPhysicsSystem(opts.Debug),
		render:   system.NewRenderSystem(opts.Debug),
		hud:      system.NewHUDSystem(),
		settings: store,
		debug:    opts.Debug,
	}
	g.applyStoredSettings(opts)

	var hotReload ecs.System
	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("hotreload: not watching %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = watcher
			hotReload = system.NewHotReloadSystem(watcher)
		}
	}

	var clipboard ecs.System
	if opts.Debug {
		clipboard = system.NewClipboardSystem()
	}

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		hotReload,
		system.NewCameraSystem(),
		system.NewClickMoveSystem(g.physics, opts.Debug),
		system.NewNavigationSystem(opts.Debug),
		g.physics,
		system.NewAnimationSystem(),
		clipboard,
		g.hud,
	)
	g.pauseUI = NewPauseUI(g)

	return g, nil
}

// applyStoredSettings fills in whatever the command line left unset from the
// saved preferences.
func (g *Game) applyStoredSettings(opts Options) {
	n, rig := g.navigator(), g.rig()
	if n == nil || rig == nil || g.settings == nil {
		return
	}
	pan, stop, axis := g.settings.Settings().Apply(rig.PanSpeed, n.Stop, rig.Mode)
	rig.PanSpeed = pan
	if opts.Stop == nil {
		n.Stop = stop
	}
	if opts.AxisMode == nil && axis != rig.Mode {
		rig.SetMode(axis)
	}
}

func (g *Game) navigator() *nav.Navigator {
	n, _ := ecs.Get(g.world, g.scene.Actor, component.NavigationComponent)
	return n
}

func (g *Game) rig() *camrig.Rig {
	cam, ok := ecs.Get(g.world, g.scene.Camera, component.CameraComponent)
	if !ok {
		return nil
	}
	return cam.Rig
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.scheduler.Update(g.world, 1/float64(ebiten.TPS()))
	return nil
}

// setPaused also forgets held pan keys, since releases are not seen while the
// menu is open.
func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.rig().Reset()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.debug {
		system.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
		system.DrawNavigationDebug(g.world, screen)
	}
	g.hud.Draw(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// Layout follows the window so the view never stretches.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		system.SetViewport(g.world, outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("hotreload: close: %v", err)
		}
	}
}

var stopModes = []nav.StopMode{nav.StopDistance, nav.StopTrigger, nav.StopEither}

var panSpeeds = []float64{2, 3, 5, 8}

func (g *Game) cycleStopMode() nav.StopMode {
	n := g.navigator()
	next := stopModes[0]
	for i, m := range stopModes {
		if m == n.Stop {
			next = stopModes[(i+1)%len(stopModes)]
		}
	}
	n.Stop = next
	g.settings.SetStopMode(next)
	return next
}

func (g *Game) cycleAxisMode() camrig.Mode {
	rig := g.rig()
	next := camrig.Held
	if rig.Mode == camrig.Held {
		next = camrig.LastWrite
	}
	rig.SetMode(next)
	g.settings.SetAxisMode(next)
	return next
}

func (g *Game) cyclePanSpeed() float64 {
	rig := g.rig()
	next := panSpeeds[0]
	for _, s := range panSpeeds {
		if s > rig.PanSpeed {
			next = s
			break
		}
	}
	rig.PanSpeed = next
	g.settings.SetPanSpeed(next)
	return next
}

func (g *Game) saveSettings() error {
	return g.settings.Save()
}
