package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/minimapicons/minimap"
)

const (
	// IconsFile and SpritesFile are the keys the atlas is registered under.
	IconsFile   = "Icons.png"
	SpritesFile = "sprites.png"

	CellSize = 32
)

// Shape is how an atlas cell is drawn.
type Shape string

const (
	ShapeCircle Shape = "circle"
	ShapeSquare Shape = "square"
	ShapeRing   Shape = "ring"
	ShapeCross  Shape = "cross"
)

// AtlasCell describes one generated atlas cell.
type AtlasCell struct {
	Index int
	Shape Shape
	Color color.Color
}

var indicatorCell = AtlasCell{
	Index: minimap.IndicatorSprite,
	Shape: ShapeCircle,
	Color: color.RGBA{R: 0x20, G: 0xe0, B: 0xf0, A: 0xff},
}

// BuildAtlas draws cells into a new atlas image and registers it under both
// atlas keys. The indicator cell is always drawn.
func BuildAtlas(cells []AtlasCell) (*ebiten.Image, error) {
	if err := validateCells(cells); err != nil {
		return nil, err
	}
	img := ebiten.NewImage(minimap.SpriteColumns*CellSize, minimap.SpriteRows*CellSize)
	for _, c := range cells {
		if err := drawCell(img, c); err != nil {
			return nil, err
		}
	}
	if err := drawCell(img, indicatorCell); err != nil {
		return nil, err
	}

	RegisterImage(IconsFile, img)
	RegisterImage(SpritesFile, img)
	return img, nil
}

func validateCells(cells []AtlasCell) error {
	for _, c := range cells {
		if c.Index == minimap.IndicatorSprite {
			return fmt.Errorf("render: atlas cell %d is reserved", c.Index)
		}
		if err := checkCell(c); err != nil {
			return err
		}
	}
	return nil
}

func checkCell(c AtlasCell) error {
	if c.Index < 0 || c.Index >= minimap.SpriteColumns*minimap.SpriteRows {
		return fmt.Errorf("render: atlas cell %d out of range", c.Index)
	}
	switch c.Shape {
	case ShapeCircle, ShapeSquare, ShapeRing, ShapeCross, "":
		return nil
	}
	return fmt.Errorf("render: unknown shape %q", c.Shape)
}

func drawCell(img *ebiten.Image, c AtlasCell) error {
	if err := checkCell(c); err != nil {
		return err
	}
	clr := c.Color
	if clr == nil {
		clr = color.White
	}
	x := float32(c.Index%minimap.SpriteColumns) * CellSize
	y := float32(c.Index/minimap.SpriteColumns) * CellSize
	cx, cy := x+CellSize/2, y+CellSize/2
	r := float32(CellSize)/2 - 2

	switch c.Shape {
	case ShapeSquare:
		vector.DrawFilledRect(img, x+3, y+3, CellSize-6, CellSize-6, clr, false)
	case ShapeRing:
		vector.StrokeCircle(img, cx, cy, r-2, 4, clr, true)
	case ShapeCross:
		vector.StrokeLine(img, x+4, y+4, x+CellSize-4, y+CellSize-4, 5, clr, true)
		vector.StrokeLine(img, x+CellSize-4, y+4, x+4, y+CellSize-4, 5, clr, true)
	case ShapeCircle, "":
		vector.DrawFilledCircle(img, cx, cy, r, clr, true)
	default:
		return fmt.Errorf("render: unknown shape %q", c.Shape)
	}
	return nil
}
