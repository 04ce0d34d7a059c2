package system

import (
	"github.com/milk9111/minimapicons/common"
	"github.com/milk9111/minimapicons/ecs"
	"github.com/milk9111/minimapicons/ecs/component"
)

const (
	smallMapMargin   = 16.0
	smallMapFraction = 0.22
	followSmoothing  = 0.2
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera toward the player and lays the small map out in the
// top right corner of the viewport.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !ecs.IsAlive(w, cs.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			cs.camEntity = camEntity
		}
	}
	if !ecs.IsAlive(w, cs.targetEntity) {
		if target, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
			cs.targetEntity = target
		}
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	if target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind()); ok {
		cam.X = common.Lerp(cam.X, target.X, followSmoothing)
		cam.Y = common.Lerp(cam.Y, target.Y, followSmoothing)
	}

	if uiEntity, ok := ecs.First(w, component.MapUIComponent.Kind()); ok {
		ui, _ := ecs.Get(w, uiEntity, component.MapUIComponent.Kind())
		side := cam.Height * smallMapFraction
		ui.SmallW = side
		ui.SmallH = side
		ui.SmallX = cam.Width - side - smallMapMargin
		ui.SmallY = smallMapMargin
	}
}
