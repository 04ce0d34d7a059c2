package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/minimapicons/minimap"
	"golang.org/x/image/font/basicfont"
)

// Backend draws minimap calls onto an ebiten image.
type Backend struct {
	Screen *ebiten.Image
	Face   text.Face
}

// DefaultFace is the label font.
func DefaultFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

func NewBackend(screen *ebiten.Image, face text.Face) *Backend {
	if face == nil {
		face = DefaultFace()
	}
	return &Backend{Screen: screen, Face: face}
}

func (b *Backend) DrawImage(file string, dest, uv minimap.Rect, tint color.RGBA) {
	img := GetImage(file)
	if img == nil || b.Screen == nil {
		return
	}
	src := sourceRect(img.Bounds(), uv)
	if src.Empty() || dest.Width <= 0 || dest.Height <= 0 {
		return
	}
	sub, ok := img.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dest.Width/float64(src.Dx()), dest.Height/float64(src.Dy()))
	op.GeoM.Translate(dest.X, dest.Y)
	op.ColorScale.ScaleWithColor(effectiveTint(tint))
	op.Filter = ebiten.FilterLinear
	b.Screen.DrawImage(sub, op)
}

func (b *Backend) DrawText(s string, pos cp.Vector, align minimap.Align) {
	if b.Screen == nil || b.Face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.PrimaryAlign = textAlign(align)
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(b.Screen, s, b.Face, op)
}

// sourceRect converts a normalized UV rectangle to pixels within bounds.
func sourceRect(bounds image.Rectangle, uv minimap.Rect) image.Rectangle {
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	r := image.Rect(
		int(math.Round(uv.X*w)),
		int(math.Round(uv.Y*h)),
		int(math.Round((uv.X+uv.Width)*w)),
		int(math.Round((uv.Y+uv.Height)*h)),
	)
	return r.Add(bounds.Min).Intersect(bounds)
}

// effectiveTint treats the zero color as untinted.
func effectiveTint(c color.RGBA) color.RGBA {
	if c == (color.RGBA{}) {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return c
}

func textAlign(a minimap.Align) text.Align {
	switch a {
	case minimap.AlignCenter:
		return text.AlignCenter
	case minimap.AlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
