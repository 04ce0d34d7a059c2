package prefabs

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadIconsSpec(t *testing.T) {
	spec, err := LoadIconsSpec()
	require.NoError(t, err)
	require.NotEmpty(t, spec.Icons)

	chest, ok := spec.Lookup("chest")
	require.True(t, ok)
	assert.Equal(t, "chest", chest.Category)
	assert.Equal(t, color.RGBA{R: 0xe0, G: 0xc0, B: 0x50, A: 0xff}, chest.Color.RGBAOr(color.RGBA{}))

	_, ok = spec.Lookup("missing")
	assert.False(t, ok)

	rules := spec.ShowRules()
	assert.Equal(t, "valid", rules["shrine"])
	assert.NotContains(t, rules, "chest")
}

func TestIconsSpecValidate(t *testing.T) {
	base := IconSpec{Kind: "a", Category: "chest", Sprite: 0, Size: 10}
	with := func(mod func(*IconSpec)) IconSpec {
		s := base
		mod(&s)
		return s
	}
	cases := []struct {
		name  string
		icons []IconSpec
		ok    bool
	}{
		{"valid", []IconSpec{base}, true},
		{"empty_kind", []IconSpec{with(func(s *IconSpec) { s.Kind = " " })}, false},
		{"duplicate", []IconSpec{base, base}, false},
		{"indicator_sprite", []IconSpec{with(func(s *IconSpec) { s.Sprite = 7 })}, false},
		{"sprite_out_of_range", []IconSpec{with(func(s *IconSpec) { s.Sprite = 64 })}, false},
		{"bad_category", []IconSpec{with(func(s *IconSpec) { s.Category = "vehicle" })}, false},
		{"zero_size", []IconSpec{with(func(s *IconSpec) { s.Size = 0 })}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := IconsSpec{Icons: c.icons}.Validate()
			if c.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidSpec)
		})
	}
}

func TestLoadSceneSpec(t *testing.T) {
	spec, err := LoadSceneSpec()
	require.NoError(t, err)
	assert.Greater(t, spec.Tracking.Range, 0.0)
	assert.LessOrEqual(t, spec.Tracking.RevealRange, spec.Tracking.Range)
	assert.NotEmpty(t, spec.Spawns)

	icons, err := LoadIconsSpec()
	require.NoError(t, err)
	for _, s := range spec.Spawns {
		_, ok := icons.Lookup(s.Kind)
		assert.True(t, ok, "spawn kind %q has no icon", s.Kind)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		err  bool
	}{
		{`"#ff0000"`, color.RGBA{R: 0xff, A: 0xff}, false},
		{`"00ff0080"`, color.RGBA{G: 0x80, A: 0x80}, false},
		{`"#fff"`, color.RGBA{}, true},
		{`"#gg0000"`, color.RGBA{}, true},
		{`[1, 2]`, color.RGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.RGBAOr(color.RGBA{}))
		})
	}

	var unset *YAMLColor
	def := color.RGBA{B: 1, A: 2}
	assert.Equal(t, def, unset.RGBAOr(def))
}

func TestCleanPrefabPath(t *testing.T) {
	assert.Equal(t, "icons.yaml", cleanPrefabPath("prefabs/icons.yaml"))
	assert.Equal(t, "icons.yaml", cleanPrefabPath("icons.yaml"))
	assert.Equal(t, "", cleanPrefabPath(""))
}
