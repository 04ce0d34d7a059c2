package component

// Transform is a grid position. Z is the render height used for elevation
// layering on the minimap.
type Transform struct {
	X float64
	Y float64
	Z float64
}

var TransformComponent = NewComponent[Transform]()
