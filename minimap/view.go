package minimap

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
)

// Mode is the minimap presentation active for a frame.
type Mode int

const (
	Unavailable Mode = iota
	SmallMap
	LargeMap
)

func (m Mode) String() string {
	switch m {
	case SmallMap:
		return "small"
	case LargeMap:
		return "large"
	default:
		return "unavailable"
	}
}

const (
	// DefaultCacheTTL bounds how often layout-dependent values are re-read.
	DefaultCacheTTL = 100 * time.Millisecond

	// largeMapAnchorBias moves the large map anchor up from the rectangle center.
	largeMapAnchorBias = -20.0

	narrowCameraWidth = 1024.0
	narrowCameraK     = 1120.0
	wideCameraK       = 1024.0
)

// ViewState is the per-frame scalar state shared by every icon in a frame.
type ViewState struct {
	Mode     Mode
	Anchor   cp.Vector
	Diagonal float64
	Scale    float64
	MapZoom  float64
}

// MapSource exposes the live map and camera geometry the tracker reads.
type MapSource interface {
	SmallMapVisible() bool
	SmallMapRect() Rect
	LargeMapVisible() bool
	LargeMapRect() Rect
	LargeMapShift() cp.Vector
	LargeMapZoom() float64
	CameraSize() (w, h float64)
}

// Tracker derives a ViewState from a MapSource once per frame.
type Tracker struct {
	src     MapSource
	mapRect *TimeCache[Rect]
	diag    *TimeCache[float64]

	warnedDegenerate bool
}

func NewTracker(src MapSource, ttl time.Duration) *Tracker {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	t := &Tracker{src: src}
	t.mapRect = NewTimeCache(ttl, src.LargeMapRect)
	t.diag = NewTimeCache(ttl, t.loadDiagonal)
	return t
}

// Refresh computes the ViewState for the frame starting at now.
func (t *Tracker) Refresh(now time.Time) ViewState {
	zoom := t.src.LargeMapZoom()
	view := ViewState{
		Diagonal: t.diag.Value(now),
		Scale:    t.scale(zoom),
		MapZoom:  zoom,
	}

	switch {
	case t.src.SmallMapVisible():
		view.Mode = SmallMap
		view.Anchor = t.src.SmallMapRect().Center()
	case t.src.LargeMapVisible():
		view.Mode = LargeMap
		r := t.mapRect.Value(now)
		center := cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2 + largeMapAnchorBias}
		view.Anchor = center.Add(t.src.LargeMapShift())
	default:
		view.Mode = Unavailable
	}
	return view
}

// Invalidate drops cached layout so the next Refresh re-reads it.
func (t *Tracker) Invalidate() {
	t.mapRect.Invalidate()
	t.diag.Invalidate()
}

// loadDiagonal prefers the small map metrics whenever the small map is shown,
// independent of which mode the anchor uses.
func (t *Tracker) loadDiagonal() float64 {
	if t.src.SmallMapVisible() {
		r := t.src.SmallMapRect()
		return math.Hypot(r.Width, r.Height) / 2
	}
	w, h := t.src.CameraSize()
	return math.Hypot(w, h) / 2
}

func (t *Tracker) scale(zoom float64) float64 {
	w, h := t.src.CameraSize()
	if h <= 0 || zoom <= 0 {
		if !t.warnedDegenerate {
			mmLog().Debug().Float64("camera_h", h).Float64("zoom", zoom).Msg("degenerate camera, large map scale is zero")
			t.warnedDegenerate = true
		}
		return 0
	}
	t.warnedDegenerate = false
	k := wideCameraK
	if w < narrowCameraWidth {
		k = narrowCameraK
	}
	return k / h * w * 3 / 4 / zoom
}
