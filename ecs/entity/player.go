package entity

import (
	"fmt"

	"github.com/milk9111/minimapicons/ecs"
	"github.com/milk9111/minimapicons/ecs/component"
	"github.com/milk9111/minimapicons/prefabs"
)

// PlayerIconKind is the icon kind used to draw the player in the world view.
const PlayerIconKind = "player"

func NewPlayer(w *ecs.World, icons prefabs.IconsSpec, at prefabs.PointSpec) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: at.X, Y: at.Y, Z: at.Z}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	// the player is only drawn in the world view, so it gets no EntityInfo
	if spec, ok := icons.Lookup(PlayerIconKind); ok {
		if err := ecs.Add(w, player, component.MapIconComponent.Kind(), mapIconFromSpec(spec)); err != nil {
			return 0, fmt.Errorf("player: add map icon: %w", err)
		}
		if err := ecs.Add(w, player, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer}); err != nil {
			return 0, fmt.Errorf("player: add render layer: %w", err)
		}
	}
	return player, nil
}
