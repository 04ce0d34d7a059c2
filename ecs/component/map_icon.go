package component

import "image/color"

// MapIcon is the minimap marker attached to an entity.
type MapIcon struct {
	Kind     string
	Priority int
	Sprite   int
	Size     float64
	Tint     color.RGBA
	Text     string
	// Native marks entities the game already draws its own icon for.
	Native bool
	// Hidden is set while the entity is outside reveal range.
	Hidden bool
	// Visible is the result of the kind's show rule for this tick.
	Visible bool
}

var MapIconComponent = NewComponent[MapIcon]()
