// Package config provides YAML-based configuration loading for the
// artillery game: session setup, display, audio, asset location and
// input bindings. Physics constants are fixed by the game package.
package config

import (
	"errors"
	"fmt"
)

// Config contains the complete application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Assets  AssetsConfig  `yaml:"assets"`
	Keys    KeyBindings   `yaml:"keys"`
}

// Point is a playfield coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GameConfig defines how a session starts.
type GameConfig struct {
	Enemies      int   `yaml:"enemies"`       // Number of randomly placed enemy tanks
	Player       Point `yaml:"player"`        // Player tank center
	Launch       Point `yaml:"launch"`        // Missile spawn point
	InitialAmmo  int   `yaml:"initial_ammo"`  // Ammunition at start
	InitialSpeed int   `yaml:"initial_speed"` // Launch speed at start
	InitialAngle int   `yaml:"initial_angle"` // Tenths of a degree, 0 = straight up
}

// DisplayConfig defines rendering parameters.
type DisplayConfig struct {
	FPS        int    `yaml:"fps"`
	Background string `yaml:"background"` // Hex color of the sky
}

// AudioConfig defines sound effect playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 (silent) to 1.0
}

// AssetsConfig points at the resource directory.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// Binding lists the terminal keys and mouse buttons that trigger an action.
// Key names use Bubble Tea's KeyMsg.String() form ("up", " ", "ctrl+c").
type Binding struct {
	Keys  []string `yaml:"keys"`
	Mouse []string `yaml:"mouse"`
}

// KeyBindings maps every game action to its inputs.
type KeyBindings struct {
	SpeedUp   Binding `yaml:"speed_up"`
	SpeedDown Binding `yaml:"speed_down"`
	AimLeft   Binding `yaml:"aim_left"`
	AimRight  Binding `yaml:"aim_right"`
	Fire      Binding `yaml:"fire"`
	Restart   Binding `yaml:"restart"`
	Quit      Binding `yaml:"quit"`
}

// MouseButtons lists the accepted mouse button names.
var MouseButtons = []string{"left", "middle", "right", "wheel_up", "wheel_down", "backward", "forward"}

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("invalid configuration")

// Limits shared with the game rules.
const (
	MinSpeed = 30
	MaxSpeed = 80
	MinAngle = -900
	MaxAngle = 900
	MaxAmmo  = 30
)

// Validate checks that every value is within its allowed range.
func (c Config) Validate() error {
	g := c.Game
	switch {
	case g.Enemies < 0 || g.Enemies > 100:
		return fmt.Errorf("config: game.enemies %d out of range [0, 100]: %w", g.Enemies, ErrInvalid)
	case g.InitialAmmo < 0 || g.InitialAmmo > MaxAmmo:
		return fmt.Errorf("config: game.initial_ammo %d out of range [0, %d]: %w", g.InitialAmmo, MaxAmmo, ErrInvalid)
	case g.InitialSpeed < MinSpeed || g.InitialSpeed > MaxSpeed:
		return fmt.Errorf("config: game.initial_speed %d out of range [%d, %d]: %w", g.InitialSpeed, MinSpeed, MaxSpeed, ErrInvalid)
	case g.InitialAngle < MinAngle || g.InitialAngle > MaxAngle:
		return fmt.Errorf("config: game.initial_angle %d out of range [%d, %d]: %w", g.InitialAngle, MinAngle, MaxAngle, ErrInvalid)
	case c.Display.FPS < 1 || c.Display.FPS > 240:
		return fmt.Errorf("config: display.fps %d out of range [1, 240]: %w", c.Display.FPS, ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("config: audio.volume %.2f out of range [0, 1]: %w", c.Audio.Volume, ErrInvalid)
	case c.Assets.Dir == "":
		return fmt.Errorf("config: assets.dir is empty: %w", ErrInvalid)
	}

	for name, b := range c.Keys.byName() {
		for _, m := range b.Mouse {
			if !isMouseButton(m) {
				return fmt.Errorf("config: keys.%s: unknown mouse button %q: %w", name, m, ErrInvalid)
			}
		}
	}
	if len(c.Keys.Quit.Keys) == 0 {
		return fmt.Errorf("config: keys.quit needs at least one key: %w", ErrInvalid)
	}
	return nil
}

// byName returns the bindings keyed by their YAML names.
func (k KeyBindings) byName() map[string]Binding {
	return map[string]Binding{
		"speed_up":   k.SpeedUp,
		"speed_down": k.SpeedDown,
		"aim_left":   k.AimLeft,
		"aim_right":  k.AimRight,
		"fire":       k.Fire,
		"restart":    k.Restart,
		"quit":       k.Quit,
	}
}

func isMouseButton(name string) bool {
	for _, b := range MouseButtons {
		if b == name {
			return true
		}
	}
	return false
}
