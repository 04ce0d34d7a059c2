package main

import (
	"fmt"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/minimapicons/common"
	"github.com/milk9111/minimapicons/ecs"
	"github.com/milk9111/minimapicons/ecs/entity"
	"github.com/milk9111/minimapicons/ecs/render"
	"github.com/milk9111/minimapicons/ecs/system"
	"github.com/milk9111/minimapicons/minimap"
	"github.com/milk9111/minimapicons/prefabs"
	"github.com/rs/zerolog/log"
	"golang.design/x/clipboard"
)

type Game struct {
	frames int
	debug  bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	minimap   *system.MinimapSystem
	showRules *system.ShowRuleSystem

	settings     *minimap.SettingsStore
	settingsUI   *SettingsUI
	showSettings bool

	alertsPath  string
	watcher     *prefabs.Watcher
	clipboardOK bool
}

type gameConfig struct {
	Settings   *minimap.SettingsStore
	Alerts     minimap.Alerts
	AlertsPath string
	Watcher    *prefabs.Watcher
	Debug      bool
}

func NewGame(cfg gameConfig) (*Game, error) {
	icons, err := prefabs.LoadIconsSpec()
	if err != nil {
		return nil, err
	}
	scene, err := prefabs.LoadSceneSpec()
	if err != nil {
		return nil, err
	}
	if _, err := render.BuildAtlas(entity.AtlasCells(icons)); err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	if _, err := entity.BuildScene(world, icons, scene, common.BaseWidth, common.BaseHeight); err != nil {
		return nil, err
	}

	showRules, err := system.NewShowRuleSystem(icons.ShowRules())
	if err != nil {
		return nil, err
	}
	mm := system.NewMinimapSystem(cfg.Settings, cfg.Alerts)

	// Drawers run in this order, so the world view goes before the overlay.
	scheduler := ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewPlayerControllerSystem(),
		system.NewWanderSystem(),
		system.NewCameraSystem(),
		system.NewTrackingSystem(scene.Tracking.Range, scene.Tracking.RevealRange),
		showRules,
		system.NewRenderSystem(scene.Tracking.Range),
		mm,
	)

	g := &Game{
		debug:      cfg.Debug,
		world:      world,
		scheduler:  scheduler,
		minimap:    mm,
		showRules:  showRules,
		settings:   cfg.Settings,
		settingsUI: NewSettingsUI(cfg.Settings),
		alertsPath: cfg.AlertsPath,
		watcher:    cfg.Watcher,
	}
	if err := clipboard.Init(); err != nil {
		log.Warn().Err(err).Msg("clipboard unavailable, frame reports go to the log")
	} else {
		g.clipboardOK = true
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showSettings = !g.showSettings
		g.settingsUI.Refresh()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.dumpReport()
	}
	g.drainWatcher()

	if g.showSettings {
		g.settingsUI.ui.Update()
	}
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scheduler.Draw(g.world, screen)

	r := g.minimap.Overlay().Report()
	msg := fmt.Sprintf("FPS: %.2f  map: %s  icons: %d\nWASD move  Tab map  +/- zoom  I/P panels  F1 settings  F2 report", ebiten.ActualFPS(), r.Mode, r.Drawn)
	if g.debug {
		msg += fmt.Sprintf("\nanchor: %.0f,%.0f  scale: %.1f", r.AnchorX, r.AnchorY, r.Scale)
	}
	ebitenutil.DebugPrint(screen, msg)

	if g.showSettings {
		g.settingsUI.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// dumpReport copies the last frame report to the clipboard as JSON.
func (g *Game) dumpReport() {
	b, err := sonic.ConfigStd.MarshalIndent(g.minimap.Overlay().Report(), "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("encode frame report")
		return
	}
	if !g.clipboardOK {
		log.Info().RawJSON("report", b).Msg("frame report")
		return
	}
	clipboard.Write(clipboard.FmtText, b)
	log.Info().Int("bytes", len(b)).Msg("frame report copied to clipboard")
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Warn().Err(err).Msg("watcher error")
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch {
	case g.alertsPath != "" && samePath(name, g.alertsPath):
		alerts, err := minimap.LoadAlerts(g.alertsPath)
		if err != nil {
			log.Warn().Err(err).Msg("alert reload failed, keeping previous table")
			return
		}
		g.minimap.Overlay().SetAlerts(alerts)
		log.Info().Int("entries", len(alerts)).Msg("alerts reloaded")

	case prefabs.IsPrefab(name) && filepath.Base(name) == "icons.yaml":
		icons, err := prefabs.LoadIconsSpec()
		if err != nil {
			log.Warn().Err(err).Msg("icon reload failed")
			return
		}
		if err := g.showRules.SetRules(icons.ShowRules()); err != nil {
			log.Warn().Err(err).Msg("show rule reload failed")
			return
		}
		if _, err := render.BuildAtlas(entity.AtlasCells(icons)); err != nil {
			log.Warn().Err(err).Msg("atlas rebuild failed")
		}
		n := entity.ApplyIconSpecs(g.world, icons)
		log.Info().Int("entities", n).Msg("icons reloaded")

	case prefabs.IsPrefab(name):
		log.Info().Str("file", name).Msg("scene changes apply on restart")
	}
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
