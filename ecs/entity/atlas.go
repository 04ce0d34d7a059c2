package entity

import (
	"github.com/milk9111/minimapicons/ecs/render"
	"github.com/milk9111/minimapicons/prefabs"
)

// AtlasCells lists the atlas cells the icon kinds draw from. Icons share a
// cell when they name the same sprite; the first one wins.
func AtlasCells(icons prefabs.IconsSpec) []render.AtlasCell {
	seen := map[int]bool{}
	cells := make([]render.AtlasCell, 0, len(icons.Icons))
	for _, icon := range icons.Icons {
		if seen[icon.Sprite] {
			continue
		}
		seen[icon.Sprite] = true
		cells = append(cells, render.AtlasCell{
			Index: icon.Sprite,
			Shape: render.Shape(icon.Shape),
			Color: icon.Color.RGBAOr(defaultTint),
		})
	}
	return cells
}
