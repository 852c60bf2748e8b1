package component

import "image/color"

type Renderable struct {
	Color     color.RGBA
	Layer     int
	DebugOnly bool
}

var RenderableComponent = NewComponent[Renderable]()
