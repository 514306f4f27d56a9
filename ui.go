// ui.go
package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	euiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/font"
)

// newPauseUI builds the dimmed "paused" overlay shown while the simulation
// clock is stopped.
func newPauseUI(face font.Face) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(euiimage.NewNineSliceColor(color.NRGBA{A: 160})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	label := widget.NewText(
		widget.TextOpts.Text("PAUSED - press P to resume", face, color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	root.AddChild(label)

	return &ebitenui.UI{Container: root}
}
