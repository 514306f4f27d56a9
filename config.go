// config.go
package main

import (
	"github.com/spf13/viper"
)

// Config is the shell's tunable surface. Everything has a sensible default;
// an optional retrograde config file overrides per machine.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	RenderScale  float64
	Fullscreen   bool
	Vsync        bool

	FovDegrees       float64
	MouseSensitivity float64

	// simulation pacing
	TimeStep    float64 // fixed sub-step interval in seconds
	MaxTimeStep float64 // elapsed-time cap per frame, bounds catch-up work

	FizzleSeed int64
}

func loadConfig() (Config, error) {
	v := viper.New()
	v.SetConfigName("retrograde")
	v.AddConfigPath(".")
	v.SetEnvPrefix("retrograde")
	v.AutomaticEnv()

	v.SetDefault("screenWidth", 1024)
	v.SetDefault("screenHeight", 768)
	v.SetDefault("renderScale", 0.5)
	v.SetDefault("fullscreen", false)
	v.SetDefault("vsync", true)
	v.SetDefault("fovDegrees", 70.0)
	v.SetDefault("mouseSensitivity", 0.002)
	v.SetDefault("timeStep", 1.0/120)
	v.SetDefault("maxTimeStep", 1.0/20)
	v.SetDefault("fizzleSeed", 1992)

	if err := v.ReadInConfig(); err != nil {
		// a missing config file is fine, anything else is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		ScreenWidth:      v.GetInt("screenWidth"),
		ScreenHeight:     v.GetInt("screenHeight"),
		RenderScale:      v.GetFloat64("renderScale"),
		Fullscreen:       v.GetBool("fullscreen"),
		Vsync:            v.GetBool("vsync"),
		FovDegrees:       v.GetFloat64("fovDegrees"),
		MouseSensitivity: v.GetFloat64("mouseSensitivity"),
		TimeStep:         v.GetFloat64("timeStep"),
		MaxTimeStep:      v.GetFloat64("maxTimeStep"),
		FizzleSeed:       v.GetInt64("fizzleSeed"),
	}, nil
}
