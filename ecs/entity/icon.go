package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/minimapicons/ecs"
	"github.com/milk9111/minimapicons/ecs/component"
	"github.com/milk9111/minimapicons/minimap"
	"github.com/milk9111/minimapicons/prefabs"
)

var defaultTint = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// NewIconEntity creates a trackable entity carrying the icon described by spec.
func NewIconEntity(w *ecs.World, spec prefabs.IconSpec, x, y, z float64) (ecs.Entity, error) {
	cat, err := minimap.ParseCategory(spec.Category)
	if err != nil {
		return 0, fmt.Errorf("icon %q: %w", spec.Kind, err)
	}

	e := ecs.CreateEntity(w)
	add := func(name string, fn func() error) error {
		if err := fn(); err != nil {
			ecs.DestroyEntity(w, e)
			return fmt.Errorf("icon %q: add %s: %w", spec.Kind, name, err)
		}
		return nil
	}

	if err := add("transform", func() error {
		return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, Z: z})
	}); err != nil {
		return 0, err
	}
	if err := add("info", func() error {
		return ecs.Add(w, e, component.EntityInfoComponent.Kind(), &component.EntityInfo{
			Category: cat,
			League:   minimap.League(spec.League),
			Path:     spec.Path,
		})
	}); err != nil {
		return 0, err
	}
	if err := add("map_icon", func() error {
		return ecs.Add(w, e, component.MapIconComponent.Kind(), mapIconFromSpec(spec))
	}); err != nil {
		return 0, err
	}
	if err := add("tracking", func() error {
		return ecs.Add(w, e, component.TrackingComponent.Kind(), &component.Tracking{})
	}); err != nil {
		return 0, err
	}
	if err := add("render_layer", func() error {
		return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer})
	}); err != nil {
		return 0, err
	}
	return e, nil
}

func mapIconFromSpec(spec prefabs.IconSpec) *component.MapIcon {
	return &component.MapIcon{
		Kind:     spec.Kind,
		Priority: spec.Priority,
		Sprite:   spec.Sprite,
		Size:     spec.Size,
		Tint:     spec.Color.RGBAOr(defaultTint),
		Text:     spec.Text,
		Native:   spec.Native,
		Visible:  true,
	}
}

// ApplyIconSpecs updates the icon fields of existing entities from icons,
// keeping per-tick state such as Hidden and Visible. It returns the number of
// entities updated.
func ApplyIconSpecs(w *ecs.World, icons prefabs.IconsSpec) int {
	n := 0
	ecs.ForEach(w, component.MapIconComponent.Kind(), func(e ecs.Entity, icon *component.MapIcon) {
		spec, ok := icons.Lookup(icon.Kind)
		if !ok {
			return
		}
		next := mapIconFromSpec(spec)
		next.Hidden = icon.Hidden
		next.Visible = icon.Visible
		*icon = *next
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer.Index = spec.RenderLayer
		}
		n++
	})
	return n
}
