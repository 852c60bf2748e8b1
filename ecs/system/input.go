package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/clickwalk/ecs"
	"github.com/milk9111/clickwalk/ecs/component"
)

var mouseButtonBits = []struct {
	button ebiten.MouseButton
	bit    int
}{
	{ebiten.MouseButtonLeft, component.ButtonPrimary},
	{ebiten.MouseButtonRight, component.ButtonSecondary},
	{ebiten.MouseButtonMiddle, component.ButtonAuxiliary},
}

// InputSystem copies this frame's ebiten input into the input singleton.
type InputSystem struct {
	keys    []ebiten.Key
	touches []ebiten.TouchID
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	in := frameInput(w)
	if in == nil {
		return
	}
	in.Reset()

	i.keys = inpututil.AppendJustPressedKeys(i.keys[:0])
	for _, k := range i.keys {
		in.Keys = append(in.Keys, component.KeyEvent{Key: k.String(), Pressed: true})
		if k == ebiten.KeyC {
			in.CopyPosition = true
		}
	}
	i.keys = inpututil.AppendJustReleasedKeys(i.keys[:0])
	for _, k := range i.keys {
		in.Keys = append(in.Keys, component.KeyEvent{Key: k.String(), Pressed: false})
	}

	// A pointer-down reports every button held at that moment.
	mask := 0
	pressed := false
	for _, b := range mouseButtonBits {
		if ebiten.IsMouseButtonPressed(b.button) {
			mask |= b.bit
		}
		if inpututil.IsMouseButtonJustPressed(b.button) {
			pressed = true
		}
	}
	if pressed {
		x, y := ebiten.CursorPosition()
		in.Pointers = append(in.Pointers, component.PointerEvent{Buttons: mask, X: float64(x), Y: float64(y)})
	}

	i.touches = inpututil.AppendJustPressedTouchIDs(i.touches[:0])
	for _, id := range i.touches {
		x, y := ebiten.TouchPosition(id)
		in.Pointers = append(in.Pointers, component.PointerEvent{Buttons: component.ButtonPrimary, X: float64(x), Y: float64(y)})
	}
}
