package minimap

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/jakecoffman/cp"
)

// Category is the coarse entity type the selection rules key on.
type Category int

const (
	CategoryOther Category = iota
	CategoryMonster
	CategoryWorldItem
	CategoryChest
	CategoryNPC
	CategoryTerrain
)

var categoryNames = map[Category]string{
	CategoryOther:     "other",
	CategoryMonster:   "monster",
	CategoryWorldItem: "world_item",
	CategoryChest:     "chest",
	CategoryNPC:       "npc",
	CategoryTerrain:   "terrain",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory accepts the names produced by Category.String.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryOther, nil
	}
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return CategoryOther, fmt.Errorf("minimap: unknown category %q", s)
}

// League groups entities by the content they come from.
type League string

const (
	LeagueNone  League = ""
	LeagueHeist League = "heist"

	// OverrideLeague always gets a custom icon even when the entity already
	// has a native one.
	OverrideLeague = LeagueHeist
)

// AlwaysReplacePath marks terrain objects whose stale markers are drawn even
// when replacements for native icons are disabled.
const AlwaysReplacePath = "Metadata/Terrain/Leagues/Delve/Objects/DelveWall"

// Texture references a region of an image registered with the backend.
type Texture struct {
	FileName string
	UV       Rect
	Size     float64
	Tint     color.RGBA
}

// Icon is the drawable capability attached to an entity by the host.
type Icon interface {
	Priority() int
	MainTexture() Texture
	Text() string
	HasIngameIcon() bool
	Show() bool
	Hidden() bool
	GridPosition() cp.Vector
}

// Entity is a read-only per-frame snapshot of a trackable world object.
type Entity interface {
	ID() uint64
	Category() Category
	League() League
	Path() string
	Valid() bool
	// Elevation reports the render height, ok is false when the entity has
	// no renderable geometry.
	Elevation() (z float64, ok bool)
	// Icon returns nil when the entity carries no icon.
	Icon() Icon
}

// Player is the reference point every icon is projected against.
type Player struct {
	GridPos cp.Vector
	Z       float64
}

// EntitySource yields the entity collections for one frame.
type EntitySource interface {
	Player() (Player, bool)
	Valid() []Entity
	NotValid() []Entity
}

// Host reports the game UI state used by the frame gate.
type Host interface {
	InGame() bool
	FullscreenPanelVisible() bool
	LargePanelVisible() bool
}
