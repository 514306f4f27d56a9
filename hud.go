// hud.go
package main

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	rcgeom "github.com/harbdog/raycaster-go/geom"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"retrograde/world"
)

// HUD draws the status text overlay. Text composition lives out here in the
// shell; the core renderer only ever produces the world view.
type HUD struct {
	face font.Face
}

func newHUD() (*HUD, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse hud font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: 20})
	return &HUD{face: face}, nil
}

func (h *HUD) Draw(screen *ebiten.Image, w *world.World) {
	health := rcgeom.Clamp(w.Player.Health, 0, 100)
	text.Draw(screen, fmt.Sprintf("HEALTH %3.0f", health), h.face, 16, 28, color.White)
	text.Draw(screen, fmt.Sprintf("LEVEL %d", w.LevelIndex+1), h.face, 16, 54, color.White)
	text.Draw(screen, fmt.Sprintf("FPS %0.f", ebiten.ActualFPS()), h.face, 16, 80, color.RGBA{R: 160, G: 160, B: 160, A: 255})
}
