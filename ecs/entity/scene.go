package entity

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/milk9111/minimapicons/ecs"
	"github.com/milk9111/minimapicons/ecs/component"
	"github.com/milk9111/minimapicons/prefabs"
)

// Scene holds the handles BuildScene created.
type Scene struct {
	Player  ecs.Entity
	Camera  ecs.Entity
	Spawned []ecs.Entity
}

// BuildScene populates w from the scene spec. Scatter positions depend only
// on the scene seed, so a scene always builds the same way.
func BuildScene(w *ecs.World, icons prefabs.IconsSpec, scene prefabs.SceneSpec, width, height float64) (Scene, error) {
	if w == nil {
		return Scene{}, fmt.Errorf("build scene: world is nil")
	}

	var out Scene
	var err error
	if out.Camera, err = NewCamera(w, scene.Camera, width, height); err != nil {
		return Scene{}, fmt.Errorf("build scene: %w", err)
	}
	if out.Player, err = NewPlayer(w, icons, scene.Player); err != nil {
		return Scene{}, fmt.Errorf("build scene: %w", err)
	}

	for i, spawn := range scene.Spawns {
		spec, ok := icons.Lookup(spawn.Kind)
		if !ok {
			return Scene{}, fmt.Errorf("build scene: spawn %d: unknown icon kind %q", i, spawn.Kind)
		}
		rng := rand.New(rand.NewPCG(uint64(scene.Seed), uint64(i)))
		count := max(spawn.Count, 1)
		for n := 0; n < count; n++ {
			x, y := spawn.X, spawn.Y
			if count > 1 && spawn.Spread > 0 {
				angle := rng.Float64() * 2 * math.Pi
				dist := math.Sqrt(rng.Float64()) * spawn.Spread
				x += math.Cos(angle) * dist
				y += math.Sin(angle) * dist
			}
			e, err := NewIconEntity(w, spec, x, y, spawn.Z)
			if err != nil {
				return Scene{}, fmt.Errorf("build scene: spawn %d: %w", i, err)
			}
			if spawn.Wander != nil && spawn.Wander.Radius > 0 {
				if err := ecs.Add(w, e, component.WanderComponent.Kind(), &component.Wander{
					OriginX: x,
					OriginY: y,
					Radius:  spawn.Wander.Radius,
					Speed:   spawn.Wander.Speed,
					Seed:    scene.Seed + int64(len(out.Spawned)),
				}); err != nil {
					return Scene{}, fmt.Errorf("build scene: spawn %d: add wander: %w", i, err)
				}
			}
			out.Spawned = append(out.Spawned, e)
		}
	}
	return out, nil
}
