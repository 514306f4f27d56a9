// main.go
package main

import (
	"embed"
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	rcgeom "github.com/harbdog/raycaster-go/geom"

	"retrograde/render"
	"retrograde/world"
)

//go:embed levels/*.json
var levelFiles embed.FS

var levelNames = []string{
	"levels/level1.json",
	"levels/level2.json",
}

const turnSpeed = 2.5 // radians per second for keyboard turning

// Game is the platform shell: it owns the clock, captures input, runs the
// fixed-timestep simulation and blits the renderer's pixel buffer. Everything
// it does for the core is expressible through the world's Input/Action
// surface.
type Game struct {
	cfg      Config
	textures render.Source
	world    *world.World
	renderer *render.Renderer
	scene    *ebiten.Image
	hud      *HUD
	pauseUI  *ebitenui.UI

	paused       bool
	lastUpdate   time.Time
	accumulator  float64
	pendingLevel int

	mouseX, mouseY int

	// optional audio collaborator; nil drops the sounds on the floor
	playSound func(world.PlaySound)
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	textures, err := buildTextures()
	if err != nil {
		log.Fatalf("textures: %v", err)
	}
	hud, err := newHUD()
	if err != nil {
		log.Fatalf("hud: %v", err)
	}

	sceneWidth := int(float64(cfg.ScreenWidth) * cfg.RenderScale)
	sceneHeight := int(float64(cfg.ScreenHeight) * cfg.RenderScale)

	g := &Game{
		cfg:          cfg,
		textures:     textures,
		renderer:     render.NewRenderer(sceneWidth, sceneHeight, rcgeom.Radians(cfg.FovDegrees), cfg.FizzleSeed),
		scene:        ebiten.NewImage(sceneWidth, sceneHeight),
		hud:          hud,
		pauseUI:      newPauseUI(hud.face),
		pendingLevel: -1,
		lastUpdate:   time.Now(),
	}
	if err := g.loadLevel(0); err != nil {
		log.Fatalf("level: %v", err)
	}

	ebiten.SetWindowTitle("retrograde")
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Vsync)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func (g *Game) loadLevel(index int) error {
	index = ((index % len(levelNames)) + len(levelNames)) % len(levelNames)
	data, err := levelFiles.ReadFile(levelNames[index])
	if err != nil {
		return fmt.Errorf("read level %d: %w", index, err)
	}
	m, err := world.LoadTilemap(data)
	if err != nil {
		return fmt.Errorf("load level %d: %w", index, err)
	}
	w, err := world.NewWorld(m, index)
	if err != nil {
		return fmt.Errorf("spawn level %d: %w", index, err)
	}
	g.world = w
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		if g.paused {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
			g.lastUpdate = time.Now()
		}
	}
	if g.paused {
		g.pauseUI.Update()
		g.mouseX, g.mouseY = ebiten.CursorPosition()
		return nil
	}

	now := time.Now()
	elapsed := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now
	// cap elapsed time so a stall cannot snowball into a catch-up spiral
	if elapsed > g.cfg.MaxTimeStep {
		elapsed = g.cfg.MaxTimeStep
	}
	g.accumulator += elapsed

	steps := 0
	for g.accumulator >= g.cfg.TimeStep {
		g.accumulator -= g.cfg.TimeStep
		steps++
	}
	input := g.readInput(elapsed, steps)

	for i := 0; i < steps; i++ {
		for _, action := range g.world.Update(g.cfg.TimeStep, input) {
			g.handleAction(action)
		}
	}
	if g.pendingLevel >= 0 {
		index := g.pendingLevel
		g.pendingLevel = -1
		if err := g.loadLevel(index); err != nil {
			return err
		}
	}
	return nil
}

// readInput folds this frame's device state into the world's input contract.
// Rotation is split evenly across the frame's sub-steps so mouse turns do not
// multiply with the step count.
func (g *Game) readInput(elapsed float64, steps int) world.Input {
	var in world.Input

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.Movement.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.Movement.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Movement.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Movement.X++
	}

	rotation := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		rotation += turnSpeed * elapsed
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		rotation -= turnSpeed * elapsed
	}
	mx, my := ebiten.CursorPosition()
	rotation += float64(mx-g.mouseX) * g.cfg.MouseSensitivity
	g.mouseX, g.mouseY = mx, my

	if steps > 0 {
		in.Rotation = rotation / float64(steps)
	}

	in.Fire = ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return in
}

func (g *Game) handleAction(action world.Action) {
	switch a := action.(type) {
	case world.LoadLevel:
		g.pendingLevel = a.Index
	case world.PlaySound:
		if g.playSound != nil {
			g.playSound(a)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snapshot, err := g.world.Snapshot()
	if err != nil {
		// reflection failure over our own types is a programming error
		log.Fatalf("snapshot: %v", err)
	}
	buf := g.renderer.Draw(snapshot, g.textures)
	g.scene.WritePixels(buf.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(g.cfg.ScreenWidth)/float64(buf.Width),
		float64(g.cfg.ScreenHeight)/float64(buf.Height),
	)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.scene, op)

	g.hud.Draw(screen, snapshot)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
