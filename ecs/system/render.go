package system

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/minimapicons/ecs"
	"github.com/milk9111/minimapicons/ecs/component"
	"github.com/milk9111/minimapicons/ecs/render"
	"github.com/milk9111/minimapicons/minimap"
)

// TileSize is the on-screen size of one grid unit at camera zoom 1.
const TileSize = 24.0

var (
	backgroundColor = color.RGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff}
	gridColor       = color.RGBA{R: 0x24, G: 0x28, B: 0x30, A: 0xff}
	rangeColor      = color.RGBA{R: 0x50, G: 0x70, B: 0x50, A: 0xff}
)

// RenderSystem draws the top-down world view under the minimap overlay.
type RenderSystem struct {
	camEntity ecs.Entity
	// TrackingRange is outlined around the player when positive.
	TrackingRange float64
}

func NewRenderSystem(trackingRange float64) *RenderSystem {
	return &RenderSystem{TrackingRange: trackingRange}
}

func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if !ecs.IsAlive(w, r.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	tile := TileSize * zoom

	screen.Fill(backgroundColor)
	r.drawGrid(screen, cam, tile)

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok && r.TrackingRange > 0 {
		if pt, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			x, y := worldToScreen(cam, tile, pt.X, pt.Y)
			vector.StrokeCircle(screen, float32(x), float32(y), float32(r.TrackingRange*tile), 1, rangeColor, true)
		}
	}

	atlas := render.GetImage(render.IconsFile)
	if atlas == nil {
		return
	}

	entities := ecs.Query(w, component.TransformComponent.Kind(), component.MapIconComponent.Kind())
	sortByLayer(w, entities)

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		icon, _ := ecs.Get(w, e, component.MapIconComponent.Kind())

		uv := minimap.SpriteUV(icon.Sprite)
		b := atlas.Bounds()
		src := image.Rect(
			b.Min.X+int(uv.X*float64(b.Dx())),
			b.Min.Y+int(uv.Y*float64(b.Dy())),
			b.Min.X+int((uv.X+uv.Width)*float64(b.Dx())),
			b.Min.Y+int((uv.Y+uv.Height)*float64(b.Dy())),
		)
		img, ok := atlas.SubImage(src).(*ebiten.Image)
		if !ok {
			continue
		}

		// lift by elevation so stacked entities read as higher
		x, y := worldToScreen(cam, tile, t.X, t.Y)
		y -= t.Z * zoom

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(src.Dx())/2, -float64(src.Dy())/2)
		op.GeoM.Scale(tile/float64(src.Dx()), tile/float64(src.Dy()))
		op.GeoM.Translate(x, y)
		if icon.Tint != (color.RGBA{}) {
			op.ColorScale.ScaleWithColor(icon.Tint)
		}
		if tr, ok := ecs.Get(w, e, component.TrackingComponent.Kind()); ok && !tr.Valid {
			op.ColorScale.ScaleAlpha(0.35)
		}
		screen.DrawImage(img, op)
	}
}

func (r *RenderSystem) drawGrid(screen *ebiten.Image, cam *component.Camera, tile float64) {
	const step = 4.0
	halfW := cam.Width / tile / 2
	halfH := cam.Height / tile / 2
	startX := float64(int((cam.X-halfW)/step)-1) * step
	startY := float64(int((cam.Y-halfH)/step)-1) * step
	for gx := startX; gx <= cam.X+halfW+step; gx += step {
		x, _ := worldToScreen(cam, tile, gx, 0)
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(cam.Height), 1, gridColor, false)
	}
	for gy := startY; gy <= cam.Y+halfH+step; gy += step {
		_, y := worldToScreen(cam, tile, 0, gy)
		vector.StrokeLine(screen, 0, float32(y), float32(cam.Width), float32(y), 1, gridColor, false)
	}
}

func worldToScreen(cam *component.Camera, tile, x, y float64) (float64, float64) {
	return (x-cam.X)*tile + cam.Width/2, (y-cam.Y)*tile + cam.Height/2
}

// sortByLayer orders entities by render layer, then by entity handle.
func sortByLayer(w *ecs.World, entities []ecs.Entity) {
	layer := func(e ecs.Entity) int {
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return l.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layer(entities[i]), layer(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
}
