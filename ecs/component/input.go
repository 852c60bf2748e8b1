package component

// Pointer button mask bits, matching DOM MouseEvent.buttons.
const (
	ButtonPrimary   = 1
	ButtonSecondary = 2
	ButtonAuxiliary = 4
)

type PointerEvent struct {
	Buttons int
	X       float64
	Y       float64
}

type KeyEvent struct {
	Key     string
	Pressed bool
}

// Input stores the input events gathered this frame.
type Input struct {
	Pointers     []PointerEvent
	Keys         []KeyEvent
	CopyPosition bool
}

func (in *Input) Reset() {
	in.Pointers = in.Pointers[:0]
	in.Keys = in.Keys[:0]
	in.CopyPosition = false
}

var InputComponent = NewComponent[Input]()
