package minimap

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

type fakeIcon struct {
	priority int
	texture  Texture
	text     string
	native   bool
	hide     bool
	hidden   bool
	pos      cp.Vector
}

func (i *fakeIcon) Priority() int           { return i.priority }
func (i *fakeIcon) MainTexture() Texture    { return i.texture }
func (i *fakeIcon) Text() string            { return i.text }
func (i *fakeIcon) HasIngameIcon() bool     { return i.native }
func (i *fakeIcon) Show() bool              { return !i.hide }
func (i *fakeIcon) Hidden() bool            { return i.hidden }
func (i *fakeIcon) GridPosition() cp.Vector { return i.pos }

type fakeEntity struct {
	id       uint64
	category Category
	league   League
	path     string
	valid    bool
	z        float64
	noRender bool
	icon     *fakeIcon
}

func (e *fakeEntity) ID() uint64         { return e.id }
func (e *fakeEntity) Category() Category { return e.category }
func (e *fakeEntity) League() League     { return e.league }
func (e *fakeEntity) Path() string       { return e.path }
func (e *fakeEntity) Valid() bool        { return e.valid }
func (e *fakeEntity) Elevation() (float64, bool) {
	return e.z, !e.noRender
}
func (e *fakeEntity) Icon() Icon {
	if e.icon == nil {
		return nil
	}
	return e.icon
}

func newEntity(id uint64, priority int) *fakeEntity {
	return &fakeEntity{
		id:       id,
		category: CategoryChest,
		path:     "Metadata/Chests/Chest",
		valid:    true,
		icon: &fakeIcon{
			priority: priority,
			texture:  Texture{FileName: "Icons.png", UV: SpriteUV(1), Size: 32, Tint: color.RGBA{A: 0xff}},
			pos:      cp.Vector{X: float64(id), Y: 0},
		},
	}
}

type fakeMap struct {
	smallVisible bool
	smallRect    Rect
	largeVisible bool
	largeRect    Rect
	shift        cp.Vector
	zoom         float64
	camW, camH   float64

	largeRectReads int
}

func (m *fakeMap) SmallMapVisible() bool { return m.smallVisible }
func (m *fakeMap) SmallMapRect() Rect    { return m.smallRect }
func (m *fakeMap) LargeMapVisible() bool { return m.largeVisible }
func (m *fakeMap) LargeMapRect() Rect {
	m.largeRectReads++
	return m.largeRect
}
func (m *fakeMap) LargeMapShift() cp.Vector       { return m.shift }
func (m *fakeMap) LargeMapZoom() float64          { return m.zoom }
func (m *fakeMap) CameraSize() (float64, float64) { return m.camW, m.camH }

type fakeSource struct {
	player    Player
	hasPlayer bool
	valid     []Entity
	notValid  []Entity
}

func (s *fakeSource) Player() (Player, bool) { return s.player, s.hasPlayer }
func (s *fakeSource) Valid() []Entity        { return s.valid }
func (s *fakeSource) NotValid() []Entity     { return s.notValid }

type fakeHost struct {
	inGame     bool
	fullscreen bool
	large      bool
}

func (h fakeHost) InGame() bool                 { return h.inGame }
func (h fakeHost) FullscreenPanelVisible() bool { return h.fullscreen }
func (h fakeHost) LargePanelVisible() bool      { return h.large }

type imageCall struct {
	file string
	dest Rect
	uv   Rect
	tint color.RGBA
}

type textCall struct {
	text  string
	pos   cp.Vector
	align Align
}

type recordBackend struct {
	images []imageCall
	texts  []textCall
}

func (b *recordBackend) DrawImage(file string, dest, uv Rect, tint color.RGBA) {
	b.images = append(b.images, imageCall{file: file, dest: dest, uv: uv, tint: tint})
}

func (b *recordBackend) DrawText(text string, pos cp.Vector, align Align) {
	b.texts = append(b.texts, textCall{text: text, pos: pos, align: align})
}
