package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cliotris/internal/core"
	"github.com/vovakirdan/cliotris/internal/games/cliotris"
	"github.com/vovakirdan/cliotris/internal/platform/tui"
	"github.com/vovakirdan/cliotris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in this terminal",
	Long: `Start playing the given game mode. Without a mode, a picker lists
the registered modes.

Controls:
  Left/Right  - Move
  Up          - Rotate
  Down        - Soft drop
  Space       - Hard drop
  Mouse       - Click or rub a pink piece to wipe its row or column
  P           - Pause
  R           - Restart
  ?           - Help
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Examples:
  cliotris play
  cliotris play cliotris_strict
  cliotris play --seed 42 --sound`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	gameID := string(cliotris.ModeClassic)
	switch {
	case len(args) > 0:
		gameID = args[0]
	case term.IsTerminal(int(os.Stdin.Fd())):
		picked, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}
		if picked == "" {
			return nil
		}
		gameID = picked
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game mode %q (see 'cliotris list')", gameID)
	}
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}
	game, err := registry.Create(gameID, gameCfg)
	if err != nil {
		return err
	}

	var best int
	opts := tui.Options{
		OnGameOver: func(st core.GameState) {
			best = max(best, st.Score)
		},
	}
	if player := openSound(gameCfg); player != nil {
		defer player.Close()
		opts.Sounds = player
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if err := tui.Run(game, rc, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	best = max(best, game.State().Score)
	fmt.Fprintf(cmd.OutOrStdout(), "Best score: %d\n", best)
	return nil
}
