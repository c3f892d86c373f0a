// artillery is a terminal artillery game: aim your tank, pick a launch
// speed and lob missiles at the enemy tanks without hitting yourself.
//
// Usage:
//
//	artillery                - Play
//	artillery keys           - Show the input bindings
//	artillery config         - Print the default configuration file
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: from config, 60)
//	--seed <value>    - Set RNG seed for reproducible enemy placement
//	--config <path>   - Use a custom config YAML
//	--assets <dir>    - Resource directory with images and sounds
//	--log <path>      - Log file (default: ~/.artillery/artillery.log)
//	--log-level <lvl> - debug, info, warn or error
//	--mute            - Disable sound effects
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagAssets   string
	flagLog      string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "artillery",
	Short: "Artillery - lob missiles at enemy tanks in your terminal",
	Long: `Artillery is a real-time terminal game. Your tank sits on the left of
the field; enemy tanks are scattered around it. Aim, choose a launch speed
and fire. Missiles fly in ballistic arcs and fall back down, so a steep
shot can land on your own tank.

Controls (defaults):
  Left/Right     - Aim (mouse forward/backward buttons too)
  Up/Down        - Launch speed (mouse wheel too)
  Space          - Fire (left click too)
  R              - Restart (after game over)
  Esc/Ctrl+C     - Quit

Examples:
  artillery
  artillery --seed 42 --fps 120
  artillery --assets ./resources --mute
  artillery config > ~/.artillery/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Resource directory (default: from config)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "~/.artillery/artillery.log", "Log file path (empty = no log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	// Add subcommands
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}
