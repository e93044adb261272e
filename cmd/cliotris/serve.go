package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cliotris/internal/platform/tui"
)

var (
	sshDefaults = tui.DefaultSSHServerConfig()

	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagSSHMode     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the game over SSH",
	Long: `Run an SSH server. Every connection plays its own game in the
caller's terminal; clicks and drags work when the terminal reports
mouse motion.

Without --host-key a key is created at ~/.cliotris/host_key on first
start.

Examples:
  cliotris serve
  cliotris serve --ssh :2222 --idle-timeout 10m
  cliotris serve --mode cliotris_strict

Connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&flagSSHAddr, "ssh", sshDefaults.Address, "listen address (host:port)")
	f.StringVar(&flagHostKey, "host-key", "", "host key file")
	f.DurationVar(&flagIdleTimeout, "idle-timeout", sshDefaults.IdleTimeout, "disconnect sessions idle this long")
	f.StringVar(&flagSSHMode, "mode", sshDefaults.GameID, "game mode every session plays")
}

func runServe(cmd *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := sshDefaults
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = flagIdleTimeout
	cfg.GameID = flagSSHMode
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Game = gameCfg

	server, err := tui.NewSSHServer(cfg, nil)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "serving SSH on %s, Ctrl+C stops\n", server.Addr())
	return server.ListenAndServe(ctx)
}
