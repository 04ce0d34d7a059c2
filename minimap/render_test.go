package minimap

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placed(hidden bool, text string) Descriptor {
	d := Descriptor{
		Texture:  Texture{FileName: "Icons.png", UV: SpriteUV(3), Size: 32},
		Width:    32,
		Height:   32,
		Hidden:   hidden,
		Text:     text,
		Position: cp.Vector{X: 100, Y: 60},
	}
	d.DrawRect = RectAround(d.Position, d.Width, d.Height)
	return d
}

func TestPassHiddenDecoration(t *testing.T) {
	descs := []Descriptor{placed(true, "")}
	before := descs[0].DrawRect

	b := &recordBackend{}
	n := Pass(b, descs, 0)

	assert.Equal(t, 1, n)
	require.Len(t, b.images, 2)
	assert.Equal(t, before, b.images[0].dest)
	assert.Equal(t, SpriteUV(3), b.images[0].uv)

	deco := b.images[1]
	assert.Equal(t, SpriteUV(IndicatorSprite), deco.uv)
	assert.Equal(t, "Icons.png", deco.file)
	assert.Equal(t, 16.0, deco.dest.Width)
	assert.Equal(t, 16.0, deco.dest.Height)
	assert.Equal(t, before.Center(), deco.dest.Center())

	assert.Equal(t, before, descs[0].DrawRect, "stored rectangle keeps its size")
}

func TestPassText(t *testing.T) {
	descs := []Descriptor{placed(true, "Strongbox"), placed(false, "")}
	b := &recordBackend{}
	Pass(b, descs, -12)

	require.Len(t, b.texts, 1)
	assert.Equal(t, "Strongbox", b.texts[0].text)
	assert.Equal(t, cp.Vector{X: 100, Y: 48}, b.texts[0].pos)
	assert.Equal(t, AlignCenter, b.texts[0].align)
	assert.Len(t, b.images, 3)
}

func TestIndicatorRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 40, Height: 24}
	got := IndicatorRect(r)
	assert.Equal(t, Rect{X: 20, Y: 26, Width: 20, Height: 12}, got)
	assert.Equal(t, Rect{X: 10, Y: 20, Width: 40, Height: 24}, r)
}

func TestSpriteUV(t *testing.T) {
	assert.Equal(t, Rect{Width: 0.125, Height: 0.125}, SpriteUV(0))
	assert.Equal(t, Rect{X: 0.875, Width: 0.125, Height: 0.125}, SpriteUV(IndicatorSprite))
	assert.Equal(t, Rect{X: 0.125, Y: 0.125, Width: 0.125, Height: 0.125}, SpriteUV(9))
}

func TestGate(t *testing.T) {
	inGame := fakeHost{inGame: true}
	cases := []struct {
		name     string
		settings func(*Settings)
		host     Host
		mode     Mode
		want     bool
	}{
		{name: "open", host: inGame, mode: SmallMap, want: true},
		{name: "disabled", settings: func(s *Settings) { s.Enable = false }, host: inGame, mode: SmallMap},
		{name: "not_in_game", host: fakeHost{}, mode: SmallMap},
		{name: "nil_host", mode: SmallMap},
		{name: "large_only_small", settings: func(s *Settings) { s.DrawOnlyOnLargeMap = true }, host: inGame, mode: SmallMap},
		{name: "large_only_large", settings: func(s *Settings) { s.DrawOnlyOnLargeMap = true }, host: inGame, mode: LargeMap, want: true},
		{name: "fullscreen_panel", host: fakeHost{inGame: true, fullscreen: true}, mode: LargeMap},
		{
			name:     "fullscreen_panel_ignored",
			settings: func(s *Settings) { s.IgnoreFullscreenPanels = true },
			host:     fakeHost{inGame: true, fullscreen: true},
			mode:     LargeMap,
			want:     true,
		},
		{name: "large_panel", host: fakeHost{inGame: true, large: true}, mode: SmallMap},
		{
			name:     "large_panel_ignored",
			settings: func(s *Settings) { s.IgnoreLargePanels = true },
			host:     fakeHost{inGame: true, large: true},
			mode:     SmallMap,
			want:     true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := DefaultSettings()
			if c.settings != nil {
				c.settings(&s)
			}
			assert.Equal(t, c.want, Gate(s, c.host, c.mode))
		})
	}
}
