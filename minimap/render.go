package minimap

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Align is the horizontal anchoring of drawn text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Backend receives draw calls. Both methods are fire and forget.
type Backend interface {
	DrawImage(file string, dest, uv Rect, tint color.RGBA)
	DrawText(text string, pos cp.Vector, align Align)
}

const (
	// SpriteColumns and SpriteRows describe the icon atlas grid.
	SpriteColumns = 8
	SpriteRows    = 8

	// IndicatorSprite is the small cyan circle drawn over hidden icons.
	IndicatorSprite = 7
)

// SpriteUV returns the normalized source rectangle of atlas cell index.
func SpriteUV(index int) Rect {
	col := index % SpriteColumns
	row := index / SpriteColumns
	return Rect{
		X:      float64(col) / SpriteColumns,
		Y:      float64(row) / SpriteRows,
		Width:  1.0 / SpriteColumns,
		Height: 1.0 / SpriteRows,
	}
}

var indicatorTint = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Gate reports whether the overlay may draw this frame.
func Gate(s Settings, host Host, mode Mode) bool {
	if !s.Enable || host == nil || !host.InGame() {
		return false
	}
	if s.DrawOnlyOnLargeMap && mode != LargeMap {
		return false
	}
	if !s.IgnoreFullscreenPanels && host.FullscreenPanelVisible() {
		return false
	}
	if !s.IgnoreLargePanels && host.LargePanelVisible() {
		return false
	}
	return true
}

// Pass draws placed descriptors in order and returns the number drawn.
func Pass(b Backend, descs []Descriptor, textOffset float64) int {
	drawn := 0
	for i := range descs {
		d := &descs[i]
		b.DrawImage(d.Texture.FileName, d.DrawRect, d.Texture.UV, d.Texture.Tint)
		if d.Hidden {
			b.DrawImage(d.Texture.FileName, IndicatorRect(d.DrawRect), SpriteUV(IndicatorSprite), indicatorTint)
		}
		if d.Text != "" {
			b.DrawText(d.Text, d.Position.Add(cp.Vector{Y: textOffset}), AlignCenter)
		}
		drawn++
	}
	return drawn
}

// IndicatorRect is r shrunk to half its size around the same center. r is
// passed by value so the caller's rectangle keeps its size.
func IndicatorRect(r Rect) Rect {
	r.Inflate(-r.Width/4, -r.Height/4)
	return r
}
