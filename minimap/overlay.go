package minimap

import (
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Frame is the selected and placed icon set for one tick.
type Frame struct {
	View     ViewState
	Settings Settings
	Valid    []Descriptor
	Stale    []Descriptor
}

// Overlay runs the per-frame pipeline: refresh the view, select and place
// icons, then draw them on request.
type Overlay struct {
	tracker  *Tracker
	settings *SettingsStore
	alerts   atomic.Pointer[Alerts]
	now      func() time.Time

	pending *errgroup.Group
	next    Frame
	frame   Frame
	report  Report
}

func NewOverlay(tracker *Tracker, settings *SettingsStore, alerts Alerts) *Overlay {
	o := &Overlay{
		tracker:  tracker,
		settings: settings,
		now:      time.Now,
	}
	o.SetAlerts(alerts)
	return o
}

// SetAlerts swaps the alert size table used by subsequent ticks.
func (o *Overlay) SetAlerts(a Alerts) {
	if a == nil {
		a = Alerts{}
	}
	o.alerts.Store(&a)
}

// SetClock overrides the time source used for layout caching.
func (o *Overlay) SetClock(now func() time.Time) {
	if now != nil {
		o.now = now
	}
}

// Tick snapshots src and builds the next frame. With UseWorkerThread the
// selection runs on a separate goroutine and Draw waits for it.
func (o *Overlay) Tick(src EntitySource) {
	o.join()

	set := o.settings.Get()
	view := o.tracker.Refresh(o.now())
	if view.Mode == Unavailable || src == nil {
		o.frame = Frame{View: view, Settings: set}
		return
	}
	player, ok := src.Player()
	if !ok {
		o.frame = Frame{View: ViewState{Mode: Unavailable}, Settings: set}
		return
	}

	valid := src.Valid()
	var notValid []Entity
	if set.DrawNotValid {
		notValid = src.NotValid()
	}
	sel := Selector{Settings: set, Alerts: *o.alerts.Load()}

	build := func() Frame {
		f := Frame{
			View:     view,
			Settings: set,
			Valid:    sel.Select(view, valid, false),
			Stale:    sel.Select(view, notValid, true),
		}
		Place(view, player, f.Valid)
		Place(view, player, f.Stale)
		return f
	}

	if !set.UseWorkerThread {
		o.frame = build()
		return
	}
	g := &errgroup.Group{}
	g.Go(func() error {
		o.next = build()
		return nil
	})
	o.pending = g
}

// join publishes the frame of a pending worker task.
func (o *Overlay) join() {
	if o.pending == nil {
		return
	}
	_ = o.pending.Wait()
	o.pending = nil
	o.frame = o.next
	o.next = Frame{}
}

// Draw issues the frame's draw calls and returns how many icons were drawn.
func (o *Overlay) Draw(b Backend, host Host) int {
	o.join()
	f := o.frame
	o.report = newReport(f)
	if f.View.Mode == Unavailable || !Gate(f.Settings, host, f.View.Mode) {
		return 0
	}
	n := Pass(b, f.Valid, f.Settings.TextOffset)
	if f.Settings.DrawNotValid {
		n += Pass(b, f.Stale, f.Settings.TextOffset)
	}
	o.report.Drawn = n
	return n
}

// Frame returns the most recently published frame.
func (o *Overlay) Frame() Frame {
	o.join()
	return o.frame
}

// Report describes the last drawn frame.
func (o *Overlay) Report() Report {
	return o.report
}
