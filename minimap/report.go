package minimap

// Report summarizes a drawn frame for debugging.
type Report struct {
	Mode    string       `json:"mode"`
	AnchorX float64      `json:"anchor_x"`
	AnchorY float64      `json:"anchor_y"`
	Scale   float64      `json:"scale"`
	Drawn   int          `json:"drawn"`
	Icons   []ReportIcon `json:"icons"`
}

type ReportIcon struct {
	ID       uint64  `json:"id"`
	Path     string  `json:"path"`
	Priority int     `json:"priority"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Hidden   bool    `json:"hidden,omitempty"`
	Stale    bool    `json:"stale,omitempty"`
}

func newReport(f Frame) Report {
	r := Report{
		Mode:    f.View.Mode.String(),
		AnchorX: f.View.Anchor.X,
		AnchorY: f.View.Anchor.Y,
		Scale:   ScaleFor(f.View),
		Icons:   make([]ReportIcon, 0, len(f.Valid)+len(f.Stale)),
	}
	for _, set := range [][]Descriptor{f.Valid, f.Stale} {
		for _, d := range set {
			icon := ReportIcon{
				Priority: d.Priority,
				X:        d.Position.X,
				Y:        d.Position.Y,
				Hidden:   d.Hidden,
				Stale:    d.Stale,
			}
			if d.Entity != nil {
				icon.ID = d.Entity.ID()
				icon.Path = d.Entity.Path()
			}
			r.Icons = append(r.Icons, icon)
		}
	}
	return r
}
