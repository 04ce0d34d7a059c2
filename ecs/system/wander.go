package system

import (
	perlin "github.com/aquilax/go-perlin"
	"github.com/milk9111/minimapicons/ecs"
	"github.com/milk9111/minimapicons/ecs/component"
)

const (
	wanderAlpha   = 2.0
	wanderBeta    = 2.0
	wanderOctaves = 3

	// wanderYOffset decorrelates the two axes sampled from one noise field.
	wanderYOffset = 31.7
)

// WanderSystem drifts entities around their origin along a perlin path.
type WanderSystem struct {
	noise map[int64]*perlin.Perlin
}

func NewWanderSystem() *WanderSystem {
	return &WanderSystem{noise: map[int64]*perlin.Perlin{}}
}

func (ws *WanderSystem) Update(w *ecs.World) {
	for _, e := range ecs.Query(w, component.WanderComponent.Kind(), component.TransformComponent.Kind()) {
		wd, _ := ecs.Get(w, e, component.WanderComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		wd.T += wd.Speed
		dx, dy := ws.offset(wd)
		t.X = wd.OriginX + dx
		t.Y = wd.OriginY + dy
	}
}

func (ws *WanderSystem) offset(wd *component.Wander) (float64, float64) {
	p, ok := ws.noise[wd.Seed]
	if !ok {
		p = perlin.NewPerlin(wanderAlpha, wanderBeta, wanderOctaves, wd.Seed)
		ws.noise[wd.Seed] = p
	}
	return wd.Radius * p.Noise2D(wd.T, 0.5), wd.Radius * p.Noise2D(0.5, wd.T+wanderYOffset)
}
