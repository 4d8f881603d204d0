package app

import (
	"fmt"

	"github.com/Faultbox/folio3d/internal/engine/ui2d"
	"github.com/Faultbox/folio3d/internal/portfolio"
)

var helpLines = []string{
	"Drag to orbit the camera",
	"Right-drag or Shift-drag to pan",
	"Scroll to zoom",
	"Click the logo to switch models",
	"Hover to highlight",
	"1 / 2 / 3  Next.js, React, Tailwind",
	"R  resume    O  open resume",
	"F  fullscreen    F12  screenshot",
	"B  pick bounds    Home  reset camera",
	"H  hide this panel",
}

// overlay is the HUD drawn over the scene.
type overlay struct {
	showHelp bool
	showFPS  bool
	fps      int
}

func (o *overlay) draw(ctx *ui2d.Context, state portfolio.SwitcherState) {
	style := ui2d.DefaultPanelStyle()

	label := state.Active.Label()
	if o.showFPS {
		label = fmt.Sprintf("%s  |  %d fps", label, o.fps)
	}
	w, _ := ctx.Canvas().MeasureText(label, 1)
	ctx.BeginPanel("model", ui2d.Rect{X: 16, Y: 16, W: w + 2*style.Padding, H: 13 + 2*style.Padding + 4}, style)
	ctx.LabelStyled(label, ui2d.ColorHighlight, 1)
	ctx.EndPanel()

	if !o.showHelp {
		return
	}
	_, sh := ctx.ScreenSize()
	lineH := float32(13 + 4)
	h := float32(len(helpLines)+1)*lineH + 2*style.Padding + 4
	ctx.BeginPanel("help", ui2d.Rect{X: 16, Y: sh - h - 16, W: 300, H: h}, style)
	ctx.LabelStyled("Controls", ui2d.ColorText, 1)
	for _, line := range helpLines {
		ctx.LabelStyled(line, ui2d.ColorTextDim, 1)
	}
	ctx.EndPanel()
}
