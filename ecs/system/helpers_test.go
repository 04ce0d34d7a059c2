package system

import (
	"testing"

	"github.com/milk9111/minimapicons/ecs"
	"github.com/milk9111/minimapicons/ecs/component"
	"github.com/milk9111/minimapicons/minimap"
	"github.com/stretchr/testify/require"
)

func addPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	return e
}

func addTracked(t *testing.T, w *ecs.World, kind string, cat minimap.Category, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	require.NoError(t, ecs.Add(w, e, component.EntityInfoComponent.Kind(), &component.EntityInfo{
		Category: cat,
		Path:     "Metadata/Test/" + kind,
	}))
	require.NoError(t, ecs.Add(w, e, component.MapIconComponent.Kind(), &component.MapIcon{
		Kind:    kind,
		Size:    16,
		Visible: true,
	}))
	require.NoError(t, ecs.Add(w, e, component.TrackingComponent.Kind(), &component.Tracking{}))
	return e
}

func addMapUI(t *testing.T, w *ecs.World, ui component.MapUI, cam component.Camera) {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.MapUIComponent.Kind(), &ui))
	require.NoError(t, ecs.Add(w, e, component.CameraComponent.Kind(), &cam))
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	require.True(t, ok)
	return v
}
