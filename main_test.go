package main

import (
	"encoding/json"
	"testing"

	"retrograde/render"
	"retrograde/world"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		t.Errorf("Expected positive screen dimensions, got %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.RenderScale <= 0 || cfg.RenderScale > 1 {
		t.Errorf("Expected a render scale in (0, 1], got %v", cfg.RenderScale)
	}
	if cfg.TimeStep <= 0 || cfg.MaxTimeStep < cfg.TimeStep {
		t.Errorf("Expected 0 < timeStep <= maxTimeStep, got %v and %v", cfg.TimeStep, cfg.MaxTimeStep)
	}
	if cfg.FovDegrees <= 0 || cfg.FovDegrees >= 180 {
		t.Errorf("Expected a sane field of view, got %v", cfg.FovDegrees)
	}
}

func TestBuildTexturesCoversEveryRequiredID(t *testing.T) {
	src, err := buildTextures()
	if err != nil {
		t.Fatalf("Failed to build textures: %v", err)
	}
	if err := render.ValidateSource(src, world.RequiredTextures()); err != nil {
		t.Errorf("Expected the generated set to validate: %v", err)
	}
}

func TestEmbeddedLevelsLoadAndSpawn(t *testing.T) {
	if len(levelNames) == 0 {
		t.Fatal("Expected at least one embedded level")
	}
	for _, name := range levelNames {
		t.Run(name, func(t *testing.T) {
			data, err := levelFiles.ReadFile(name)
			if err != nil {
				t.Fatalf("Failed to read level: %v", err)
			}
			if !json.Valid(data) {
				t.Fatal("Level data is not valid JSON")
			}
			m, err := world.LoadTilemap(data)
			if err != nil {
				t.Fatalf("Failed to load level: %v", err)
			}
			if _, err := world.NewWorld(m, 0); err != nil {
				t.Fatalf("Failed to spawn world: %v", err)
			}
		})
	}
}
