// cliotris-desktop plays cliotris in a native window.
//
// Usage:
//
//	cliotris-desktop [--seed n] [--config path] [--sound]
//
// Press C in game to copy the board to the clipboard as text.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cliotris/internal/audio"
	"github.com/vovakirdan/cliotris/internal/config"
	"github.com/vovakirdan/cliotris/internal/platform/desktop"
)

var (
	flagSeed   int64
	flagConfig string
	flagSound  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "cliotris-desktop",
	Short:        "Play cliotris in a window",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues (overrides audio.enabled)")
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	opts := desktop.Options{Config: cfg, Seed: flagSeed}
	if flagSound || cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio.Volume)
		if err := player.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			defer player.Close()
			opts.Sounds = player
		}
	}

	game, err := desktop.New(opts)
	if err != nil {
		return err
	}
	return desktop.Run(game)
}
