// cliotris is a falling-blocks game where pink pieces are cleared by
// clicking or rubbing them instead of completing rows.
//
// Usage:
//
//	cliotris play [mode]     - Play in this terminal (default mode: cliotris)
//	cliotris list            - List game modes
//	cliotris serve           - Start SSH server for remote play
//	cliotris web             - Serve the browser client over a websocket
//	cliotris config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Load gameplay settings from a YAML file
//	--sound           - Play sound cues
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cliotris/internal/audio"
	"github.com/vovakirdan/cliotris/internal/config"
	_ "github.com/vovakirdan/cliotris/internal/games/cliotris" // register game modes
)

var (
	// Global flags
	flagFPS    int
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
	Use:   "cliotris",
	Short: "Cliotris - falling blocks with rub-to-clear pink pieces",
	Long: `Cliotris is a falling-blocks game for the terminal, the browser and
the desktop. Complete rows to clear them, or click and rub the pink
pieces to wipe their whole row or column.

Available commands:
  play     - Play in this terminal
  list     - Show all game modes
  serve    - Start SSH server for remote play
  web      - Serve the browser client
  config   - Print the effective configuration

Examples:
  cliotris play
  cliotris play cliotris_strict --seed 42
  cliotris serve --ssh :2222
  cliotris web --addr :8080
  cliotris config > ~/.cliotris/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues (overrides audio.enabled)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the gameplay configuration from --config and the
// usual search path.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// openSound starts the audio player when sound is enabled. It returns nil
// when sound is off or the device cannot be opened.
func openSound(cfg config.Config) *audio.Player {
	if !flagSound && !cfg.Audio.Enabled {
		return nil
	}
	player := audio.NewPlayer(cfg.Audio.Volume)
	if err := player.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		return nil
	}
	return player
}

// signalContext is cancelled on interrupt or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
