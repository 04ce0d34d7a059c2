package minimap

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestProjectPointSymmetry(t *testing.T) {
	deltas := []cp.Vector{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -3.5, Y: 7.25}, {X: 120, Y: -40}, {X: 0.001, Y: 0.002}}
	ratios := []float64{0, 1.5, -2, 33}
	for _, d := range deltas {
		for _, r := range ratios {
			got := Project(d, 120, 240, r)
			neg := Project(d.Neg(), 120, 240, -r)
			assert.Equal(t, got.Neg(), neg, "delta=%v ratio=%v", d, r)
			assert.Equal(t, got, Project(d, 120, 240, r), "deterministic")
		}
	}
}

func TestProjectZeroMapsToAnchor(t *testing.T) {
	cases := []struct {
		name        string
		diag, scale float64
	}{
		{"small", 110, SmallMapScale},
		{"large", 734, 412.5},
		{"zero_scale", 10, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, cp.Vector{}, Project(cp.Vector{}, c.diag, c.scale, 0))
		})
	}
}

func TestProjectBasis(t *testing.T) {
	diag, scale := 240.0, 240.0
	cos := math.Cos(cameraAngle)
	sin := math.Sin(cameraAngle)

	// Moving along +x goes right and up; along +y goes left and up.
	px := Project(cp.Vector{X: 10}, diag, scale, 0)
	assert.InDelta(t, 10*cos, px.X, 1e-9)
	assert.InDelta(t, -10*sin, px.Y, 1e-9)

	py := Project(cp.Vector{Y: 10}, diag, scale, 0)
	assert.InDelta(t, -10*cos, py.X, 1e-9)
	assert.InDelta(t, -10*sin, py.Y, 1e-9)

	// Depth only moves vertically.
	pz := Project(cp.Vector{}, diag, scale, 4)
	assert.Equal(t, cp.Vector{Y: 4}, pz)
}

func TestDepthRatio(t *testing.T) {
	assert.InDelta(t, 1.0, DepthRatio(SmallMap, 20, 1), 1e-12)
	assert.InDelta(t, 2.0, DepthRatio(LargeMap, 9, 2), 1e-12)
	assert.InDelta(t, 0.5, DepthRatio(LargeMap, 9, 0.5), 1e-12)
	assert.Equal(t, 0.0, DepthRatio(Unavailable, 100, 1))
}

func TestLocate(t *testing.T) {
	view := ViewState{Mode: SmallMap, Anchor: cp.Vector{X: 100, Y: 50}, Diagonal: 240, Scale: 999, MapZoom: 1}

	pos, ok := Locate(view, cp.Vector{}, 0)
	assert.True(t, ok)
	assert.Equal(t, view.Anchor, pos)

	// Small map ignores the camera scale.
	pos, _ = Locate(view, cp.Vector{X: 5}, 0)
	want := view.Anchor.Add(Project(cp.Vector{X: 5}, 240, SmallMapScale, 0))
	assert.Equal(t, want, pos)

	view.Mode = Unavailable
	_, ok = Locate(view, cp.Vector{X: 5}, 0)
	assert.False(t, ok)
}
