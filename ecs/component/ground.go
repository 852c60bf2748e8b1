package component

// Ground describes the navigable plane centred on its transform.
type Ground struct {
	Width float64
	Depth float64
	Tiles int
}

var GroundComponent = NewComponent[Ground]()
