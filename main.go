package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/clickwalk/camrig"
	"github.com/milk9111/clickwalk/common"
	"github.com/milk9111/clickwalk/nav"
	"github.com/milk9111/clickwalk/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (physics outlines, target marker, C copies the actor position)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	stopFlag := flag.String("stop", "", "arrival detection: distance, trigger or either (default from prefab)")
	axisFlag := flag.String("axis", "", "camera key handling: held or last_write (default from prefab)")
	watch := flag.Bool("watch", false, "reload actor and camera prefabs when they change on disk")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory checked for prefab overrides")
	flag.Parse()

	prefabs.Dir = *prefabDir
	opts := Options{Debug: *debug, Watch: *watch}
	if *stopFlag != "" {
		stop, err := nav.ParseStopMode(*stopFlag)
		if err != nil {
			log.Fatal(err)
		}
		opts.Stop = &stop
	}
	if *axisFlag != "" {
		axis, err := camrig.ParseMode(*axisFlag)
		if err != nil {
			log.Fatal(err)
		}
		opts.AxisMode = &axis
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("clickwalk")

	game, err := NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
