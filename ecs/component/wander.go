package component

// Wander drifts an entity around its origin along a noise path.
type Wander struct {
	OriginX float64
	OriginY float64
	Radius  float64
	Speed   float64
	Seed    int64
	T       float64
}

var WanderComponent = NewComponent[Wander]()
