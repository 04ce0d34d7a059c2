package system

import (
	"math"

	"github.com/milk9111/minimapicons/ecs"
	"github.com/milk9111/minimapicons/ecs/component"
)

// TrackingEventType is the ecs.Event type carrying an ecs.TrackingEvent.
const TrackingEventType = "tracking"

// TrackingSystem marks entities within Range of the player as valid and
// remembers where they were last seen. Icons beyond RevealRange are hidden.
type TrackingSystem struct {
	Range       float64
	RevealRange float64
}

func NewTrackingSystem(trackRange, revealRange float64) *TrackingSystem {
	return &TrackingSystem{Range: trackRange, RevealRange: revealRange}
}

func (ts *TrackingSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	for _, e := range ecs.Query(w, component.TrackingComponent.Kind(), component.TransformComponent.Kind()) {
		if e == player {
			continue
		}
		tr, _ := ecs.Get(w, e, component.TrackingComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		d := math.Hypot(t.X-pt.X, t.Y-pt.Y)
		valid := d <= ts.Range
		switch {
		case valid && !tr.Valid:
			w.Events().Push(ecs.Event{Type: TrackingEventType, Data: ecs.TrackingEvent{Entity: e, Kind: ecs.TrackingAcquired}})
		case !valid && tr.Valid:
			w.Events().Push(ecs.Event{Type: TrackingEventType, Data: ecs.TrackingEvent{Entity: e, Kind: ecs.TrackingLost}})
		}
		tr.Valid = valid
		if valid {
			tr.LastX, tr.LastY, tr.LastZ = t.X, t.Y, t.Z
			tr.Seen = true
		}

		if icon, ok := ecs.Get(w, e, component.MapIconComponent.Kind()); ok {
			icon.Hidden = d > ts.RevealRange
		}
	}
}
