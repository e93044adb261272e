package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cliotris/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser client",
	Long: `Start an HTTP server with a canvas client. Every browser tab plays its
own game over a websocket; gravity and gesture recognition run on the
server.

Examples:
  cliotris web
  cliotris web --addr :9000`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", web.DefaultServerConfig().Address, "HTTP listen address (host:port)")
}

func runWeb(cmd *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := web.DefaultServerConfig()
	cfg.Address = flagWebAddr
	cfg.Seed = flagSeed
	cfg.Game = gameCfg

	server, err := web.NewServer(cfg, nil)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "open http://localhost%s in a browser, Ctrl+C stops\n", cfg.Address)
	return server.ListenAndServe(ctx)
}
