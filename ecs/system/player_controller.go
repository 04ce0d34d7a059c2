package system

import (
	"math"

	"github.com/milk9111/minimapicons/common"
	"github.com/milk9111/minimapicons/ecs"
	"github.com/milk9111/minimapicons/ecs/component"
)

const (
	playerSpeed = 0.35
	minMapZoom  = 0.5
	maxMapZoom  = 3.0
	mapZoomStep = 0.25
)

// PlayerControllerSystem applies the player's input to its position and to
// the map overlays.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}

	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		dx, dy := input.MoveX, input.MoveY
		if l := math.Hypot(dx, dy); l > 1 {
			dx, dy = dx/l, dy/l
		}
		t.X += dx * playerSpeed
		t.Y += dy * playerSpeed
	}

	if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok && input.ZoomDelta != 0 {
		cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
		cam.MapZoom = common.Clamp(cam.MapZoom+input.ZoomDelta*mapZoomStep, minMapZoom, maxMapZoom)
	}

	if uiEntity, ok := ecs.First(w, component.MapUIComponent.Kind()); ok {
		ui, _ := ecs.Get(w, uiEntity, component.MapUIComponent.Kind())
		if input.ToggleMap {
			ui.Mode = (ui.Mode + 1) % 3
		}
		if input.ToggleFullscreenPanel {
			ui.FullscreenPanel = !ui.FullscreenPanel
		}
		if input.ToggleLargePanel {
			ui.LargePanel = !ui.LargePanel
		}
	}
}
