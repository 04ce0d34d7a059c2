package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/minimapicons/assets"
	"github.com/milk9111/minimapicons/minimap"
	"github.com/milk9111/minimapicons/prefabs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	settingsPath := flag.String("settings", "", "minimap settings yaml (embedded defaults when empty)")
	alertsPath := flag.String("alerts", "", "alert size config (embedded defaults when empty)")
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	settings, err := loadSettings(*settingsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load settings")
	}
	alerts, err := loadAlerts(*alertsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load alerts")
	}

	var watchDirs []string
	if *alertsPath != "" {
		watchDirs = append(watchDirs, filepath.Dir(*alertsPath))
	}
	if info, err := os.Stat(prefabs.Dir); err == nil && info.IsDir() {
		watchDirs = append(watchDirs, prefabs.Dir)
	}
	var watcher *prefabs.Watcher
	if len(watchDirs) > 0 {
		watcher, err = prefabs.NewWatcher(watchDirs...)
		if err != nil {
			log.Warn().Err(err).Msg("hot reload disabled")
		} else {
			defer watcher.Close()
		}
	}

	game, err := NewGame(gameConfig{
		Settings:   settings,
		Alerts:     alerts,
		AlertsPath: *alertsPath,
		Watcher:    watcher,
		Debug:      *debug,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("start game")
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("minimap icons")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}

func loadSettings(path string) (*minimap.SettingsStore, error) {
	if path == "" {
		return assets.DefaultSettings()
	}
	store, err := minimap.LoadSettings(path)
	if err != nil {
		return nil, err
	}
	store.Watch(nil)
	return store, nil
}

func loadAlerts(path string) (minimap.Alerts, error) {
	if path == "" {
		return assets.DefaultAlerts()
	}
	return minimap.LoadAlerts(path)
}
