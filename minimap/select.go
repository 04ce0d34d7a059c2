package minimap

import (
	"sort"
	"strings"

	"github.com/jakecoffman/cp"
)

// Descriptor is one drawable icon for the current frame. Descriptors are
// rebuilt every frame and never retained.
type Descriptor struct {
	Entity        Entity
	Priority      int
	Texture       Texture
	Width, Height float64
	Text          string
	HasIngameIcon bool
	Hidden        bool
	Stale         bool

	GridPos cp.Vector
	Z       float64

	// Position and DrawRect are filled in by Place.
	Position cp.Vector
	DrawRect Rect
}

// Selector filters entity snapshots down to drawable icons.
type Selector struct {
	Settings Settings
	// Alerts overrides the icon's texture size for entities whose path matches.
	Alerts Alerts
}

// Select returns the drawable icons of entities in ascending priority order.
// stale selects the rule set for entities that left tracking range.
func (s Selector) Select(view ViewState, entities []Entity, stale bool) []Descriptor {
	if view.Mode == Unavailable {
		return nil
	}
	out := make([]Descriptor, 0, len(entities))
	for _, e := range entities {
		if e == nil {
			continue
		}
		d, ok := s.describe(e, stale)
		if !ok {
			continue
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

func (s Selector) describe(e Entity, stale bool) (Descriptor, bool) {
	if e.Category() == CategoryWorldItem {
		return Descriptor{}, false
	}
	if stale && e.Valid() {
		return Descriptor{}, false
	}
	icon := e.Icon()
	if icon == nil || !icon.Show() {
		return Descriptor{}, false
	}
	if !s.Settings.DrawMonsters && e.Category() == CategoryMonster {
		return Descriptor{}, false
	}
	if s.doubleIcon(e, icon, stale) {
		return Descriptor{}, false
	}
	z, ok := e.Elevation()
	if !ok {
		mmLog().Debug().Uint64("entity", e.ID()).Str("path", e.Path()).Msg("no render geometry, skipping icon")
		return Descriptor{}, false
	}

	tex := icon.MainTexture()
	d := Descriptor{
		Entity:        e,
		Priority:      icon.Priority(),
		Texture:       tex,
		Width:         tex.Size,
		Height:        tex.Size,
		Text:          icon.Text(),
		HasIngameIcon: icon.HasIngameIcon(),
		Hidden:        icon.Hidden(),
		Stale:         stale,
		GridPos:       icon.GridPosition(),
		Z:             z,
	}
	if size, ok := s.Alerts.SizeFor(e.Path()); ok {
		d.Width = float64(size.Width)
		d.Height = float64(size.Height)
	}
	return d, true
}

// doubleIcon reports whether the game already draws its own icon for e.
func (s Selector) doubleIcon(e Entity, icon Icon, stale bool) bool {
	if !icon.HasIngameIcon() || e.Category() == CategoryMonster || e.League() == OverrideLeague {
		return false
	}
	if !stale {
		return true
	}
	return !s.Settings.DrawReplacementsWhenOutOfRange && !strings.Contains(e.Path(), AlwaysReplacePath)
}

// Place computes screen positions and draw rectangles for descs relative to
// player. Descriptors are updated in place.
func Place(view ViewState, player Player, descs []Descriptor) {
	for i := range descs {
		d := &descs[i]
		pos, ok := Locate(view, d.GridPos.Sub(player.GridPos), d.Z-player.Z)
		if !ok {
			continue
		}
		d.Position = pos
		d.DrawRect = RectAround(pos, d.Width, d.Height)
	}
}
