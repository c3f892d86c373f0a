package config

import (
	_ "embed"
)

//go:embed defaults/artillery.yaml
var defaultArtilleryYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/artillery.yaml and is used if the embedded file
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Enemies:      10,
			Player:       Point{X: 100, Y: 500},
			Launch:       Point{X: 110, Y: 490},
			InitialAmmo:  10,
			InitialSpeed: 50,
			InitialAngle: 450,
		},
		Display: DisplayConfig{
			FPS:        60,
			Background: "#66B2FF",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  1.0,
		},
		Assets: AssetsConfig{
			Dir: "resources",
		},
		Keys: KeyBindings{
			SpeedUp:   Binding{Keys: []string{"up"}, Mouse: []string{"wheel_down"}},
			SpeedDown: Binding{Keys: []string{"down"}, Mouse: []string{"wheel_up"}},
			AimLeft:   Binding{Keys: []string{"left"}, Mouse: []string{"forward"}},
			AimRight:  Binding{Keys: []string{"right"}, Mouse: []string{"backward"}},
			Fire:      Binding{Keys: []string{" "}, Mouse: []string{"left"}},
			Restart:   Binding{Keys: []string{"r"}},
			Quit:      Binding{Keys: []string{"esc", "ctrl+c"}},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArtilleryYAML
}
