package minimap

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Settings are the user toggles consumed by the overlay.
type Settings struct {
	Enable                         bool    `mapstructure:"enable" json:"enable"`
	DrawMonsters                   bool    `mapstructure:"draw_monsters" json:"draw_monsters"`
	DrawOnlyOnLargeMap             bool    `mapstructure:"draw_only_on_large_map" json:"draw_only_on_large_map"`
	IgnoreFullscreenPanels         bool    `mapstructure:"ignore_fullscreen_panels" json:"ignore_fullscreen_panels"`
	IgnoreLargePanels              bool    `mapstructure:"ignore_large_panels" json:"ignore_large_panels"`
	DrawNotValid                   bool    `mapstructure:"draw_not_valid" json:"draw_not_valid"`
	DrawReplacementsWhenOutOfRange bool    `mapstructure:"draw_replacements_when_out_of_range" json:"draw_replacements_when_out_of_range"`
	TextOffset                     float64 `mapstructure:"text_offset" json:"text_offset"`
	UseWorkerThread                bool    `mapstructure:"use_worker_thread" json:"use_worker_thread"`
}

func DefaultSettings() Settings {
	return Settings{
		Enable:       true,
		DrawMonsters: true,
		DrawNotValid: true,
		TextOffset:   -12,
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("enable", d.Enable)
	v.SetDefault("draw_monsters", d.DrawMonsters)
	v.SetDefault("draw_only_on_large_map", d.DrawOnlyOnLargeMap)
	v.SetDefault("ignore_fullscreen_panels", d.IgnoreFullscreenPanels)
	v.SetDefault("ignore_large_panels", d.IgnoreLargePanels)
	v.SetDefault("draw_not_valid", d.DrawNotValid)
	v.SetDefault("draw_replacements_when_out_of_range", d.DrawReplacementsWhenOutOfRange)
	v.SetDefault("text_offset", d.TextOffset)
	v.SetDefault("use_worker_thread", d.UseWorkerThread)
}

// SettingsStore publishes the current Settings to readers on any goroutine.
type SettingsStore struct {
	v   *viper.Viper
	cur atomic.Pointer[Settings]
}

// NewSettingsStore returns a store holding s with no backing file.
func NewSettingsStore(s Settings) *SettingsStore {
	store := &SettingsStore{}
	store.cur.Store(&s)
	return store
}

// LoadSettings reads a yaml settings file. Keys missing from the file keep
// their defaults.
func LoadSettings(path string) (*SettingsStore, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("minimap: read settings %s: %w", path, err)
	}
	return newViperStore(v)
}

// ReadSettings reads yaml settings from r.
func ReadSettings(r io.Reader) (*SettingsStore, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("minimap: read settings: %w", err)
	}
	return newViperStore(v)
}

func newViperStore(v *viper.Viper) (*SettingsStore, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("minimap: decode settings: %w", err)
	}
	store := &SettingsStore{v: v}
	store.cur.Store(&s)
	return store, nil
}

func (s *SettingsStore) Get() Settings {
	return *s.cur.Load()
}

// Set replaces the current settings, e.g. from a settings panel.
func (s *SettingsStore) Set(next Settings) {
	s.cur.Store(&next)
}

// Watch reloads the backing file whenever it changes. A file that fails to
// decode leaves the current settings in place.
func (s *SettingsStore) Watch(onChange func(Settings)) {
	if s.v == nil || s.v.ConfigFileUsed() == "" {
		return
	}
	s.v.OnConfigChange(func(e fsnotify.Event) {
		var next Settings
		if err := s.v.Unmarshal(&next); err != nil {
			mmLog().Warn().Err(err).Str("file", e.Name).Msg("settings reload failed")
			return
		}
		s.Set(next)
		mmLog().Info().Str("file", e.Name).Msg("settings reloaded")
		if onChange != nil {
			onChange(next)
		}
	})
	s.v.WatchConfig()
}
