package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/minimapicons/ecs"
	"github.com/milk9111/minimapicons/ecs/component"
	"github.com/milk9111/minimapicons/ecs/render"
	"github.com/milk9111/minimapicons/minimap"
)

// MinimapSystem adapts the world to the minimap overlay. It is the overlay's
// map source and host, and snapshots icon entities each tick.
type MinimapSystem struct {
	overlay *minimap.Overlay
	world   *ecs.World
	face    text.Face
}

func NewMinimapSystem(settings *minimap.SettingsStore, alerts minimap.Alerts) *MinimapSystem {
	ms := &MinimapSystem{}
	ms.overlay = minimap.NewOverlay(minimap.NewTracker(ms, minimap.DefaultCacheTTL), settings, alerts)
	return ms
}

func (ms *MinimapSystem) Overlay() *minimap.Overlay {
	return ms.overlay
}

func (ms *MinimapSystem) Update(w *ecs.World) {
	ms.world = w
	for _, evt := range w.Events().Drain() {
		if te, ok := evt.Data.(ecs.TrackingEvent); ok {
			sysLog().Debug().Uint64("entity", uint64(te.Entity)).Str("kind", string(te.Kind)).Msg("tracking changed")
		}
	}
	ms.overlay.Tick(snapshotWorld(w))
}

func (ms *MinimapSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	ms.world = w
	if ms.face == nil {
		ms.face = render.DefaultFace()
	}
	ms.overlay.Draw(render.NewBackend(screen, ms.face), ms)
}

func (ms *MinimapSystem) mapUI() (component.MapUI, bool) {
	e, ok := ecs.First(ms.world, component.MapUIComponent.Kind())
	if !ok {
		return component.MapUI{}, false
	}
	ui, ok := ecs.Get(ms.world, e, component.MapUIComponent.Kind())
	if !ok {
		return component.MapUI{}, false
	}
	return *ui, true
}

func (ms *MinimapSystem) camera() (component.Camera, bool) {
	e, ok := ecs.First(ms.world, component.CameraComponent.Kind())
	if !ok {
		return component.Camera{}, false
	}
	cam, ok := ecs.Get(ms.world, e, component.CameraComponent.Kind())
	if !ok {
		return component.Camera{}, false
	}
	return *cam, true
}

func (ms *MinimapSystem) SmallMapVisible() bool {
	ui, ok := ms.mapUI()
	return ok && ui.Mode == component.MapModeSmall
}

func (ms *MinimapSystem) SmallMapRect() minimap.Rect {
	ui, _ := ms.mapUI()
	return minimap.Rect{X: ui.SmallX, Y: ui.SmallY, Width: ui.SmallW, Height: ui.SmallH}
}

func (ms *MinimapSystem) LargeMapVisible() bool {
	ui, ok := ms.mapUI()
	return ok && ui.Mode == component.MapModeLarge
}

// LargeMapRect covers the whole viewport.
func (ms *MinimapSystem) LargeMapRect() minimap.Rect {
	cam, _ := ms.camera()
	return minimap.Rect{Width: cam.Width, Height: cam.Height}
}

func (ms *MinimapSystem) LargeMapShift() cp.Vector {
	ui, _ := ms.mapUI()
	return cp.Vector{X: ui.ShiftX, Y: ui.ShiftY}
}

func (ms *MinimapSystem) LargeMapZoom() float64 {
	cam, _ := ms.camera()
	return cam.MapZoom
}

func (ms *MinimapSystem) CameraSize() (float64, float64) {
	cam, _ := ms.camera()
	return cam.Width, cam.Height
}

func (ms *MinimapSystem) InGame() bool {
	ui, ok := ms.mapUI()
	return ok && ui.InGame
}

func (ms *MinimapSystem) FullscreenPanelVisible() bool {
	ui, _ := ms.mapUI()
	return ui.FullscreenPanel
}

func (ms *MinimapSystem) LargePanelVisible() bool {
	ui, _ := ms.mapUI()
	return ui.LargePanel
}

// worldSnapshot is a copy of the icon entities for one tick. It shares no
// memory with the world so it can be read off the main goroutine.
type worldSnapshot struct {
	player    minimap.Player
	hasPlayer bool
	valid     []minimap.Entity
	notValid  []minimap.Entity
}

func (s *worldSnapshot) Player() (minimap.Player, bool) { return s.player, s.hasPlayer }
func (s *worldSnapshot) Valid() []minimap.Entity        { return s.valid }
func (s *worldSnapshot) NotValid() []minimap.Entity     { return s.notValid }

func snapshotWorld(w *ecs.World) *worldSnapshot {
	snap := &worldSnapshot{}
	player, hasPlayer := ecs.First(w, component.PlayerTagComponent.Kind())
	if hasPlayer {
		if pt, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			snap.player = minimap.Player{GridPos: cp.Vector{X: pt.X, Y: pt.Y}, Z: pt.Z}
			snap.hasPlayer = true
		}
	}

	for _, e := range ecs.Query(w, component.EntityInfoComponent.Kind(), component.MapIconComponent.Kind()) {
		if hasPlayer && e == player {
			continue
		}
		info, _ := ecs.Get(w, e, component.EntityInfoComponent.Kind())
		icon, _ := ecs.Get(w, e, component.MapIconComponent.Kind())

		ent := &entitySnapshot{id: uint64(e), info: *info, valid: true}
		tr, tracked := ecs.Get(w, e, component.TrackingComponent.Kind())
		if tracked {
			ent.valid = tr.Valid
		}

		var pos cp.Vector
		if ent.valid {
			if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
				pos = cp.Vector{X: t.X, Y: t.Y}
				ent.z, ent.renderable = t.Z, true
			}
		} else {
			if !tr.Seen {
				continue
			}
			pos = cp.Vector{X: tr.LastX, Y: tr.LastY}
			ent.z, ent.renderable = tr.LastZ, true
		}

		ent.icon = &iconSnapshot{
			priority: icon.Priority,
			texture: minimap.Texture{
				FileName: render.IconsFile,
				UV:       minimap.SpriteUV(icon.Sprite),
				Size:     icon.Size,
				Tint:     icon.Tint,
			},
			text:   icon.Text,
			native: icon.Native,
			show:   icon.Visible,
			hidden: icon.Hidden,
			pos:    pos,
		}

		if ent.valid {
			snap.valid = append(snap.valid, ent)
		} else {
			snap.notValid = append(snap.notValid, ent)
		}
	}
	return snap
}

type entitySnapshot struct {
	id         uint64
	info       component.EntityInfo
	valid      bool
	z          float64
	renderable bool
	icon       *iconSnapshot
}

func (e *entitySnapshot) ID() uint64                 { return e.id }
func (e *entitySnapshot) Category() minimap.Category { return e.info.Category }
func (e *entitySnapshot) League() minimap.League     { return e.info.League }
func (e *entitySnapshot) Path() string               { return e.info.Path }
func (e *entitySnapshot) Valid() bool                { return e.valid }
func (e *entitySnapshot) Elevation() (float64, bool) { return e.z, e.renderable }

func (e *entitySnapshot) Icon() minimap.Icon {
	if e.icon == nil {
		return nil
	}
	return e.icon
}

type iconSnapshot struct {
	priority int
	texture  minimap.Texture
	text     string
	native   bool
	show     bool
	hidden   bool
	pos      cp.Vector
}

func (i *iconSnapshot) Priority() int                { return i.priority }
func (i *iconSnapshot) MainTexture() minimap.Texture { return i.texture }
func (i *iconSnapshot) Text() string                 { return i.text }
func (i *iconSnapshot) HasIngameIcon() bool          { return i.native }
func (i *iconSnapshot) Show() bool                   { return i.show }
func (i *iconSnapshot) Hidden() bool                 { return i.hidden }
func (i *iconSnapshot) GridPosition() cp.Vector      { return i.pos }
