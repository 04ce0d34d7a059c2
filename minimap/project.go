package minimap

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	// cameraAngle is the tilt of the in-game camera. The minimap basis is the
	// grid rotated by 45 degrees and foreshortened by this angle.
	cameraAngle = 38 * math.Pi / 180

	// SmallMapScale replaces the camera-derived scale while the small map is
	// shown. The two modes are calibrated independently.
	SmallMapScale = 240.0

	smallMapDepthDivisor = 20.0
	largeMapDepthFactor  = 9.0
)

// Project maps a grid delta (candidate minus player) to a screen delta
// relative to the minimap anchor. depthRatio shifts the result vertically so
// that elevation layers separate on screen.
func Project(delta cp.Vector, diag, scale, depthRatio float64) cp.Vector {
	if scale == 0 {
		return cp.Vector{}
	}
	cos := diag * math.Cos(cameraAngle) / scale
	sin := diag * math.Sin(cameraAngle) / scale
	return cp.Vector{
		X: (delta.X - delta.Y) * cos,
		Y: depthRatio - (delta.X+delta.Y)*sin,
	}
}

// DepthRatio converts an elevation difference to the vertical offset Project
// expects. The divisors differ per mode to match each mode's on-screen scale.
func DepthRatio(mode Mode, dz, zoom float64) float64 {
	switch mode {
	case LargeMap:
		return dz / (largeMapDepthFactor / zoom)
	case SmallMap:
		return dz / smallMapDepthDivisor
	default:
		return 0
	}
}

// ScaleFor returns the projection scale used by the view's mode.
func ScaleFor(view ViewState) float64 {
	if view.Mode == SmallMap {
		return SmallMapScale
	}
	return view.Scale
}

// Locate returns the absolute screen position of a candidate at gridDelta from
// the player with elevation difference dz. ok is false when the view is
// unavailable.
func Locate(view ViewState, gridDelta cp.Vector, dz float64) (pos cp.Vector, ok bool) {
	if view.Mode == Unavailable {
		return cp.Vector{}, false
	}
	d := Project(gridDelta, view.Diagonal, ScaleFor(view), DepthRatio(view.Mode, dz, view.MapZoom))
	return view.Anchor.Add(d), true
}
