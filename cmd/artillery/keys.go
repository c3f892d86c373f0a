package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-artillery/internal/config"
	"github.com/vovakirdan/tui-artillery/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the input bindings",
	Long:  `Shows the keys and mouse buttons bound to each action, after applying the configuration.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration file",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.artillery/config.yaml or pass it with --config to customize the game.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runKeys(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	km := tui.NewKeyMapper(cfg.Keys)

	// Calculate column widths
	maxKeyLen := len("Input")
	for _, group := range km.FullHelp() {
		for _, b := range group {
			if n := len(b.Help().Key); n > maxKeyLen {
				maxKeyLen = n
			}
		}
	}

	fmt.Printf("  %-*s  %s\n", maxKeyLen, "Input", "Action")
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "-----", "------")
	for _, group := range km.FullHelp() {
		for _, b := range group {
			fmt.Printf("  %-*s  %s\n", maxKeyLen, b.Help().Key, b.Help().Desc)
		}
	}
}

func runConfig(cmd *cobra.Command, args []string) {
	//nolint:errcheck // Nothing to do if stdout is gone
	os.Stdout.Write(config.DefaultYAML())
}
