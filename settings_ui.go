package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/minimapicons/common"
	"github.com/milk9111/minimapicons/minimap"
	"golang.org/x/image/font/basicfont"
)

// settingToggle binds one boolean setting to a panel button.
type settingToggle struct {
	label string
	get   func(minimap.Settings) bool
	set   func(*minimap.Settings, bool)
}

var settingToggles = []settingToggle{
	{"Enable", func(s minimap.Settings) bool { return s.Enable }, func(s *minimap.Settings, v bool) { s.Enable = v }},
	{"Draw monsters", func(s minimap.Settings) bool { return s.DrawMonsters }, func(s *minimap.Settings, v bool) { s.DrawMonsters = v }},
	{"Draw only on large map", func(s minimap.Settings) bool { return s.DrawOnlyOnLargeMap }, func(s *minimap.Settings, v bool) { s.DrawOnlyOnLargeMap = v }},
	{"Ignore fullscreen panels", func(s minimap.Settings) bool { return s.IgnoreFullscreenPanels }, func(s *minimap.Settings, v bool) { s.IgnoreFullscreenPanels = v }},
	{"Ignore large panels", func(s minimap.Settings) bool { return s.IgnoreLargePanels }, func(s *minimap.Settings, v bool) { s.IgnoreLargePanels = v }},
	{"Draw out of range", func(s minimap.Settings) bool { return s.DrawNotValid }, func(s *minimap.Settings, v bool) { s.DrawNotValid = v }},
	{"Replacements out of range", func(s minimap.Settings) bool { return s.DrawReplacementsWhenOutOfRange }, func(s *minimap.Settings, v bool) { s.DrawReplacementsWhenOutOfRange = v }},
	{"Worker thread", func(s minimap.Settings) bool { return s.UseWorkerThread }, func(s *minimap.Settings, v bool) { s.UseWorkerThread = v }},
}

func toggleLabel(name string, on bool) string {
	if on {
		return fmt.Sprintf("%s: On", name)
	}
	return fmt.Sprintf("%s: Off", name)
}

// SettingsUI is the F1 panel. Buttons write straight through to the store.
type SettingsUI struct {
	ui      *ebitenui.UI
	store   *minimap.SettingsStore
	buttons []*widget.Button
}

func NewSettingsUI(store *minimap.SettingsStore) *SettingsUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	s := &SettingsUI{store: store}

	title := widget.NewText(
		widget.TextOpts.Text("Minimap icons (F1 to close)", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)

	cur := store.Get()
	for _, tg := range settingToggles {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
			widget.ButtonOpts.Text(toggleLabel(tg.label, tg.get(cur)), &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				next := s.store.Get()
				tg.set(&next, !tg.get(next))
				s.store.Set(next)
				s.Refresh()
			}),
		)
		s.buttons = append(s.buttons, btn)
		panel.AddChild(btn)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	s.ui = &ebitenui.UI{Container: root}
	return s
}

// Refresh relabels the buttons from the store, e.g. after a file reload.
func (s *SettingsUI) Refresh() {
	cur := s.store.Get()
	for i, tg := range settingToggles {
		if text := s.buttons[i].Text(); text != nil {
			text.Label = toggleLabel(tg.label, tg.get(cur))
		}
	}
}
