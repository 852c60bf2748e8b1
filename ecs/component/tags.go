package component

// ActorTag marks the entity that click-to-move drives.
type ActorTag struct{}

var ActorTagComponent = NewComponent[ActorTag]()

// TreeTag marks scattered scenery.
type TreeTag struct{}

var TreeTagComponent = NewComponent[TreeTag]()
