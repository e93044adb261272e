// Package web serves the game to browsers over a websocket. Every
// connection plays its own session; the server runs gravity and gesture
// recognition and pushes snapshots to a canvas client.
package web

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/cliotris/internal/config"
	"github.com/vovakirdan/cliotris/internal/games/cliotris"
	"github.com/vovakirdan/cliotris/internal/gesture"
)

//go:embed static/index.html
var indexHTML []byte

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// DropInterval is the gravity period of every session.
	DropInterval time.Duration

	// Seed fixes the piece sequence of every session. Zero means random.
	Seed int64

	// Game is the gameplay configuration shared by all sessions.
	Game config.Config

	// Generator, when set, supplies pieces for each new session.
	Generator func() cliotris.Generator
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:      ":8080",
		DropInterval: cliotris.DropInterval,
		Game:         config.Default(),
	}
}

// Server hands out sessions to websocket clients.
type Server struct {
	config   ServerConfig
	logger   *log.Logger
	upgrader websocket.Upgrader
	mux      *http.ServeMux
	now      func() time.Time
	active   atomic.Int64
}

// NewServer creates a web server. A nil logger logs to stderr.
func NewServer(cfg ServerConfig, logger *log.Logger) (*Server, error) {
	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}
	if _, err := cliotris.ParseOverflowPolicy(cfg.Game.Rules.LockOverflow); err != nil {
		return nil, fmt.Errorf("web: %w", err)
	}
	if cfg.DropInterval <= 0 {
		cfg.DropInterval = cliotris.DropInterval
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "cliotris-web",
		})
	}

	s := &Server{
		config: cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		mux: http.NewServeMux(),
		now: time.Now,
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/ws", s.handleWS)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, "ok %d\n", s.active.Load())
	})
	return s, nil
}

// Handler returns the HTTP handler, for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Active returns the number of connected players.
func (s *Server) Active() int64 {
	return s.active.Load()
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting web server", "address", s.config.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: listen: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Stopping web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	remote := conn.RemoteAddr().String()
	n := s.active.Add(1)
	defer s.active.Add(-1)
	s.logger.Info("player connected", "remote", remote, "active", n)
	start := s.now()

	c := &client{
		conn:   conn,
		logger: s.logger,
		now:    s.now,
		cancel: cancel,
	}
	session := cliotris.NewSession(s.sessionOptions(remote))
	cellPx := session.CellPx()
	c.tracker = gesture.NewTracker(s.config.Game.Thresholds(), cliotris.Cols*cellPx, cliotris.Rows*cellPx)

	if err := c.write(helloMessage(cellPx)); err != nil {
		return
	}
	snap := session.Snapshot()
	if err := c.write(ServerMessage{Type: MsgState, State: &snap}); err != nil {
		return
	}
	c.loop = cliotris.NewLoop(session, s.config.DropInterval, c.publish)

	go func() {
		_ = c.loop.Run(ctx)
	}()
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	c.readLoop()
	s.logger.Info("player disconnected", "remote", remote, "score", c.loop.Snapshot().Score, "duration", s.now().Sub(start).Round(time.Second))
}

func (s *Server) sessionOptions(remote string) cliotris.Options {
	seed := s.config.Seed
	if seed == 0 {
		seed = s.now().UnixNano()
	}
	overflow, _ := cliotris.ParseOverflowPolicy(s.config.Game.Rules.LockOverflow)
	opts := cliotris.Options{
		Seed:          seed,
		SpecialChance: s.config.Game.Spawn.SpecialChance,
		Overflow:      overflow,
		CellPx:        s.config.Game.Render.CellPX,
		Listener: func(e cliotris.Event) {
			if e.Kind == cliotris.EventGameOver {
				s.logger.Info("game over", "remote", remote, "score", e.Score)
			}
		},
	}
	if s.config.Generator != nil {
		opts.Generator = s.config.Generator()
	}
	return opts
}
