package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/clickwalk/common"
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/nav"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMessageLife = 2.5
	hudMargin      = 12
	hudHint        = "Click the ground to walk. Arrow keys pan. Esc pauses."
)

// HUDSystem shows a control hint and a fading line for the latest
// navigation or debug event.
type HUDSystem struct {
	face    text.Face
	message string
	age     float64
}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUDSystem) Update(w *ecs.World, dt float64) {
	if h == nil || w == nil {
		return
	}
	h.age += dt

	for _, ev := range w.Events().Pending() {
		var msg string
		switch data := ev.Data.(type) {
		case NavigationEvent:
			msg = describeNavigation(data)
		case PositionCopiedEvent:
			msg = "Copied " + data.Text
		}
		if msg != "" {
			h.message = msg
			h.age = 0
		}
	}
}

func describeNavigation(ev NavigationEvent) string {
	switch ev.Transition {
	case nav.Started:
		return fmt.Sprintf("Walking to %.1f, %.1f", ev.Target.X(), ev.Target.Z())
	case nav.Retargeted:
		return fmt.Sprintf("Now walking to %.1f, %.1f", ev.Target.X(), ev.Target.Z())
	case nav.Arrived:
		return "Arrived"
	case nav.Cancelled:
		return "Reached the marker"
	default:
		return ""
	}
}

func (h *HUDSystem) Draw(screen *ebiten.Image) {
	if h == nil || screen == nil {
		return
	}
	height := float64(screen.Bounds().Dy())
	lineHeight := h.face.Metrics().HAscent + h.face.Metrics().HDescent

	h.drawLine(screen, hudHint, hudMargin, height-hudMargin-lineHeight, 0.7)

	if h.message == "" || h.age >= hudMessageLife {
		return
	}
	alpha := common.Lerp(1, 0, h.age/hudMessageLife)
	h.drawLine(screen, h.message, hudMargin, height-hudMargin-2*lineHeight-4, alpha)
}

func (h *HUDSystem) drawLine(screen *ebiten.Image, s string, x, y, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, h.face, op)
}
