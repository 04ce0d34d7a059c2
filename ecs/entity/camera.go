package entity

import (
	"fmt"

	"github.com/milk9111/minimapicons/ecs"
	"github.com/milk9111/minimapicons/ecs/component"
	"github.com/milk9111/minimapicons/prefabs"
)

// NewCamera creates the viewport entity. It also carries the map UI state.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec, width, height float64) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	mapZoom := spec.MapZoom
	if mapZoom <= 0 {
		mapZoom = 1
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Width:   width,
		Height:  height,
		Zoom:    zoom,
		MapZoom: mapZoom,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}

	if err := ecs.Add(w, camera, component.MapUIComponent.Kind(), &component.MapUI{
		Mode:   component.MapModeSmall,
		InGame: true,
	}); err != nil {
		return 0, fmt.Errorf("camera: add map ui: %w", err)
	}
	return camera, nil
}
