package component

// Trigger is the proximity volume that rides on the actor's movement target.
// While the actor has no target it is parked out of reach.
type Trigger struct {
	Size   float64
	Parked bool
}

var TriggerComponent = NewComponent[Trigger]()
