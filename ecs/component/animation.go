package component

// ClipDef is one named clip from an actor prefab.
type ClipDef struct {
	Name   string
	Frames int
	FPS    float64
	Loop   bool
}

type ClipState struct {
	Frame   int
	Elapsed float64
	Loop    bool
	Playing bool
}

// Animation holds independently playable clips. It satisfies nav.Animator.
type Animation struct {
	Defs  map[string]ClipDef
	Clips map[string]*ClipState
}

func NewAnimation(defs []ClipDef) *Animation {
	a := &Animation{
		Defs:  make(map[string]ClipDef, len(defs)),
		Clips: make(map[string]*ClipState, len(defs)),
	}
	for _, d := range defs {
		a.Defs[d.Name] = d
	}
	return a
}

// Play starts clip from frame 0 unless it is already playing.
func (a *Animation) Play(clip string, loop bool) {
	if a == nil {
		return
	}
	if _, ok := a.Defs[clip]; !ok {
		return
	}
	if a.Clips == nil {
		a.Clips = make(map[string]*ClipState)
	}
	st, ok := a.Clips[clip]
	if ok && st.Playing {
		return
	}
	a.Clips[clip] = &ClipState{Loop: loop, Playing: true}
}

func (a *Animation) Stop(clip string) {
	if a == nil {
		return
	}
	if st, ok := a.Clips[clip]; ok {
		st.Playing = false
		st.Frame = 0
		st.Elapsed = 0
	}
}

func (a *Animation) IsPlaying(clip string) bool {
	if a == nil {
		return false
	}
	st, ok := a.Clips[clip]
	return ok && st.Playing
}

// Dominant returns the first playing clip in priority order and its frame.
func (a *Animation) Dominant(priority ...string) (string, int, bool) {
	if a == nil {
		return "", 0, false
	}
	for _, name := range priority {
		if st, ok := a.Clips[name]; ok && st.Playing {
			return name, st.Frame, true
		}
	}
	return "", 0, false
}

var AnimationComponent = NewComponent[Animation]()
