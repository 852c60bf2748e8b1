package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/milk9111/clickwalk/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewPauseUI builds the centered pause menu: resume, the three tunables and
// a save button. Buttons use colored nine-slices and the built-in basic font,
// so no theme assets are needed.
func NewPauseUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, white),
		widget.TextOpts.WidgetOpts(centered),
	)
	status := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}),
		widget.TextOpts.WidgetOpts(centered),
	)

	newButton := func(label string, onClick func(b *widget.Button)) *widget.Button {
		var btn *widget.Button
		btn = widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHoverImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 6, Bottom: 6, Left: 16, Right: 16}),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick(btn)
			}),
		)
		return btn
	}

	resumeBtn := newButton("Resume", func(*widget.Button) {
		g.setPaused(false)
	})
	stopBtn := newButton(stopLabel(g.navigator().Stop.String()), func(b *widget.Button) {
		b.SetText(stopLabel(g.cycleStopMode().String()))
		status.Label = ""
	})
	axisBtn := newButton(axisLabel(g.rig().Mode.String()), func(b *widget.Button) {
		b.SetText(axisLabel(g.cycleAxisMode().String()))
		status.Label = ""
	})
	panBtn := newButton(panLabel(g.rig().PanSpeed), func(b *widget.Button) {
		b.SetText(panLabel(g.cyclePanSpeed()))
		status.Label = ""
	})
	saveBtn := newButton("Save settings", func(*widget.Button) {
		if err := g.saveSettings(); err != nil {
			log.Printf("%v", err)
			status.Label = "Could not save settings"
			return
		}
		status.Label = "Settings saved"
	})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(resumeBtn)
	panel.AddChild(stopBtn)
	panel.AddChild(axisBtn)
	panel.AddChild(panBtn)
	panel.AddChild(saveBtn)
	panel.AddChild(status)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func stopLabel(mode string) string {
	return "Stop on: " + mode
}

func axisLabel(mode string) string {
	return "Camera keys: " + mode
}

func panLabel(speed float64) string {
	return fmt.Sprintf("Pan speed: %.0f", speed)
}
