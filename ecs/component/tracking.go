package component

// Tracking records whether an entity is inside tracking range and where it
// was last seen.
type Tracking struct {
	Valid bool
	LastX float64
	LastY float64
	LastZ float64
	Seen  bool
}

var TrackingComponent = NewComponent[Tracking]()
