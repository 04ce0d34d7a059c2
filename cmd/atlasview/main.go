// Command atlasview shows the icon atlas generated from icons.yaml, one cell
// at a time or as the full sheet.
package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/minimapicons/ecs/entity"
	"github.com/milk9111/minimapicons/ecs/render"
	"github.com/milk9111/minimapicons/minimap"
	"github.com/milk9111/minimapicons/prefabs"
	"github.com/rs/zerolog/log"
)

const viewSize = 512

type atlasGame struct {
	atlas   *ebiten.Image
	cells   []int
	labels  map[int]string
	current int
	sheet   bool
}

func (g *atlasGame) Update() error {
	if len(g.cells) == 0 {
		return nil
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.current = (g.current + 1) % len(g.cells)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.current = (g.current + len(g.cells) - 1) % len(g.cells)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.sheet = !g.sheet
	}
	return nil
}

func (g *atlasGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x20, 0xff})
	if g.atlas == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	if g.sheet {
		s := float64(viewSize) / float64(g.atlas.Bounds().Dx())
		op.GeoM.Scale(s, s)
		screen.DrawImage(g.atlas, op)
		ebitenutil.DebugPrint(screen, "sheet  (space: single cell)")
		return
	}

	idx := g.cells[g.current]
	src := cellRect(g.atlas.Bounds(), idx)
	sub := g.atlas.SubImage(src).(*ebiten.Image)
	s := float64(viewSize) / 2 / float64(src.Dx())
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(viewSize/4, viewSize/4)
	screen.DrawImage(sub, op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("cell %d: %s  (left/right, space: sheet)", idx, g.labels[idx]))
}

func (g *atlasGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func cellRect(bounds image.Rectangle, index int) image.Rectangle {
	uv := minimap.SpriteUV(index)
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	return image.Rect(
		int(uv.X*w), int(uv.Y*h),
		int((uv.X+uv.Width)*w), int((uv.Y+uv.Height)*h),
	).Add(bounds.Min)
}

func main() {
	icons, err := prefabs.LoadIconsSpec()
	if err != nil {
		log.Fatal().Err(err).Msg("load icons")
	}
	atlas, err := render.BuildAtlas(entity.AtlasCells(icons))
	if err != nil {
		log.Fatal().Err(err).Msg("build atlas")
	}

	g := &atlasGame{atlas: atlas, labels: map[int]string{minimap.IndicatorSprite: "indicator"}}
	for _, c := range entity.AtlasCells(icons) {
		g.cells = append(g.cells, c.Index)
	}
	for i := len(icons.Icons) - 1; i >= 0; i-- {
		g.labels[icons.Icons[i].Sprite] = icons.Icons[i].Kind
	}
	g.cells = append(g.cells, minimap.IndicatorSprite)

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("Icon Atlas")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}
