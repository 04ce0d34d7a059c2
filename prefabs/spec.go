package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/minimapicons/minimap"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// IconSpec describes one kind of map icon and the entities that carry it.
type IconSpec struct {
	Kind        string     `yaml:"kind"`
	Category    string     `yaml:"category"`
	League      string     `yaml:"league"`
	Path        string     `yaml:"path"`
	Priority    int        `yaml:"priority"`
	Sprite      int        `yaml:"sprite"`
	Shape       string     `yaml:"shape"`
	Color       *YAMLColor `yaml:"color"`
	Size        float64    `yaml:"size"`
	Text        string     `yaml:"text"`
	Native      bool       `yaml:"native"`
	Show        string     `yaml:"show"`
	RenderLayer int        `yaml:"render_layer"`
}

type IconsSpec struct {
	Icons []IconSpec `yaml:"icons"`
}

func LoadIconsSpec() (IconsSpec, error) {
	spec, err := LoadSpec[IconsSpec]("icons.yaml")
	if err != nil {
		return IconsSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return IconsSpec{}, err
	}
	return spec, nil
}

// Validate checks kinds are unique and sprites fit the atlas.
func (s IconsSpec) Validate() error {
	seen := make(map[string]bool, len(s.Icons))
	for i, icon := range s.Icons {
		kind := strings.TrimSpace(icon.Kind)
		if kind == "" {
			return fmt.Errorf("%w: icon %d has no kind", ErrInvalidSpec, i)
		}
		if seen[kind] {
			return fmt.Errorf("%w: duplicate icon kind %q", ErrInvalidSpec, kind)
		}
		seen[kind] = true
		if _, err := minimap.ParseCategory(icon.Category); err != nil {
			return fmt.Errorf("%w: icon %q: %v", ErrInvalidSpec, kind, err)
		}
		if icon.Sprite < 0 || icon.Sprite >= minimap.SpriteColumns*minimap.SpriteRows || icon.Sprite == minimap.IndicatorSprite {
			return fmt.Errorf("%w: icon %q uses sprite %d", ErrInvalidSpec, kind, icon.Sprite)
		}
		if icon.Size <= 0 {
			return fmt.Errorf("%w: icon %q has size %v", ErrInvalidSpec, kind, icon.Size)
		}
	}
	return nil
}

func (s IconsSpec) Lookup(kind string) (IconSpec, bool) {
	for _, icon := range s.Icons {
		if icon.Kind == kind {
			return icon, true
		}
	}
	return IconSpec{}, false
}

// ShowRules maps icon kinds to their show expressions.
func (s IconsSpec) ShowRules() map[string]string {
	rules := make(map[string]string, len(s.Icons))
	for _, icon := range s.Icons {
		if strings.TrimSpace(icon.Show) != "" {
			rules[icon.Kind] = icon.Show
		}
	}
	return rules
}

// SceneSpec lays out the demo world.
type SceneSpec struct {
	Seed     int64        `yaml:"seed"`
	Player   PointSpec    `yaml:"player"`
	Camera   CameraSpec   `yaml:"camera"`
	Tracking TrackingSpec `yaml:"tracking"`
	Spawns   []SpawnSpec  `yaml:"spawns"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type CameraSpec struct {
	Zoom    float64 `yaml:"zoom"`
	MapZoom float64 `yaml:"map_zoom"`
}

type TrackingSpec struct {
	Range       float64 `yaml:"range"`
	RevealRange float64 `yaml:"reveal_range"`
}

// SpawnSpec places Count entities of an icon kind, scattered within Spread
// of the point.
type SpawnSpec struct {
	Kind   string      `yaml:"kind"`
	X      float64     `yaml:"x"`
	Y      float64     `yaml:"y"`
	Z      float64     `yaml:"z"`
	Count  int         `yaml:"count"`
	Spread float64     `yaml:"spread"`
	Wander *WanderSpec `yaml:"wander"`
}

type WanderSpec struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

func LoadSceneSpec() (SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec]("scene.yaml")
	if err != nil {
		return SceneSpec{}, err
	}
	if spec.Tracking.Range <= 0 {
		return SceneSpec{}, fmt.Errorf("%w: tracking range must be positive", ErrInvalidSpec)
	}
	if spec.Tracking.RevealRange <= 0 || spec.Tracking.RevealRange > spec.Tracking.Range {
		spec.Tracking.RevealRange = spec.Tracking.Range
	}
	if spec.Camera.Zoom <= 0 {
		spec.Camera.Zoom = 1
	}
	if spec.Camera.MapZoom <= 0 {
		spec.Camera.MapZoom = 1
	}
	return spec, nil
}

type YAMLColor struct {
	color.Color
}

// RGBAOr returns the color as RGBA, or def when unset.
func (c *YAMLColor) RGBAOr(def color.RGBA) color.RGBA {
	if c == nil || c.Color == nil {
		return def
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
