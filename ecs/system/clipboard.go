package system

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
	"golang.design/x/clipboard"
)

const EventPositionCopied = "position_copied"

type PositionCopiedEvent struct {
	Text string
}

// ClipboardSystem copies the actor position to the system clipboard when the
// copy key is pressed. Used while placing prefabs by hand.
type ClipboardSystem struct {
	enabled bool
	write   func(string)
}

func NewClipboardSystem() *ClipboardSystem {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: unavailable: %v", err)
		return &ClipboardSystem{}
	}
	return &ClipboardSystem{
		enabled: true,
		write: func(s string) {
			clipboard.Write(clipboard.FmtText, []byte(s))
		},
	}
}

func (cs *ClipboardSystem) Update(w *ecs.World, dt float64) {
	if cs == nil || w == nil {
		return
	}
	in := frameInput(w)
	if in == nil || !in.CopyPosition {
		return
	}
	actor, ok := w.First(component.ActorTagComponent)
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, actor, component.TransformComponent)
	if !ok {
		return
	}

	s := FormatPosition(transform.Position)
	if cs.enabled && cs.write != nil {
		cs.write(s)
	}
	log.Printf("clipboard: actor at %s", s)
	w.Events().Push(ecs.Event{Type: EventPositionCopied, Data: PositionCopiedEvent{Text: s}})
}

// FormatPosition renders p the way prefab transforms are written.
func FormatPosition(p mgl64.Vec3) string {
	return fmt.Sprintf("x: %.2f, y: %.2f, z: %.2f", p.X(), p.Y(), p.Z())
}
