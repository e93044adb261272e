package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cliotris/internal/config"
	"github.com/vovakirdan/cliotris/internal/games/cliotris"
)

func newTestServer(t *testing.T, pieces ...cliotris.Piece) *httptest.Server {
	t.Helper()

	cfg := DefaultServerConfig()
	cfg.DropInterval = time.Hour
	cfg.Seed = 1
	if len(pieces) > 0 {
		cfg.Generator = func() cliotris.Generator { return cliotris.NewSequence(pieces...) }
	}
	srv, err := NewServer(cfg, log.New(io.Discard))
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

// greet consumes the hello and initial state messages.
func greet(t *testing.T, conn *websocket.Conn) (ServerMessage, cliotris.Snapshot) {
	t.Helper()

	hello := read(t, conn)
	require.Equal(t, MsgHello, hello.Type)
	state := read(t, conn)
	require.Equal(t, MsgState, state.Type)
	require.NotNil(t, state.State)
	return hello, *state.State
}

func TestIndexIsServed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "<canvas")

	resp, err = http.Get(ts.URL + "/missing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHelloCarriesBoardAndPalette(t *testing.T) {
	ts := newTestServer(t, cliotris.NewPiece(cliotris.KindO, 0))
	conn := dial(t, ts)

	hello, snap := greet(t, conn)

	assert.Equal(t, cliotris.Cols, hello.Cols)
	assert.Equal(t, cliotris.Rows, hello.Rows)
	assert.Equal(t, cliotris.DefaultCellPx, hello.CellPx)
	assert.Equal(t, "#ff5fbf", hello.Palette["W"])
	assert.Len(t, hello.Palette, 8)

	require.NotNil(t, snap.Piece)
	assert.Equal(t, cliotris.KindO, snap.Piece.Kind)
	assert.True(t, snap.Running)
}

func TestCommandsMoveThePiece(t *testing.T) {
	ts := newTestServer(t, cliotris.NewPiece(cliotris.KindO, 0))
	conn := dial(t, ts)
	_, before := greet(t, conn)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgLeft}))
	msg := read(t, conn)

	require.Equal(t, MsgState, msg.Type)
	require.NotNil(t, msg.State.Piece)
	assert.Equal(t, before.Piece.Cells[0].X-1, msg.State.Piece.Cells[0].X)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgHardDrop}))
	msg = read(t, conn)
	assert.Equal(t, cliotris.KindO, msg.State.At(before.Piece.Cells[0].X-1, cliotris.Rows-1))
}

func TestClickWipesFallingSpecialPiece(t *testing.T) {
	ts := newTestServer(t,
		cliotris.NewPiece(cliotris.KindWipe, 0),
		cliotris.NewPiece(cliotris.KindT, 0),
	)
	conn := dial(t, ts)
	_, snap := greet(t, conn)
	require.Equal(t, cliotris.KindWipe, snap.Piece.Kind)

	cell := snap.Piece.Cells[1]
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgClick, X: cell.X, Y: cell.Y}))
	msg := read(t, conn)

	assert.Equal(t, cliotris.WipeScore, msg.State.Score)
	assert.Equal(t, 1, msg.State.Wipes)
	assert.Equal(t, cliotris.KindT, msg.State.Piece.Kind)
}

func TestPointerRubWipes(t *testing.T) {
	ts := newTestServer(t,
		cliotris.NewPiece(cliotris.KindWipe, 0),
		cliotris.NewPiece(cliotris.KindT, 0),
	)
	conn := dial(t, ts)
	_, snap := greet(t, conn)

	cellPx := cliotris.DefaultCellPx
	cell := snap.Piece.Cells[1]
	x, y := cell.X*cellPx+cellPx/2, cell.Y*cellPx+cellPx/2

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgPointer, Phase: "down", ID: 1, X: x, Y: y}))
	for k := 1; k <= 5; k++ {
		dx := 12
		if k%2 == 0 {
			dx = 0
		}
		require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgPointer, Phase: "move", ID: 1, X: x + dx, Y: y}))
	}

	// Pointer samples that do not complete a gesture publish nothing, so
	// the next message is the wipe.
	msg := read(t, conn)
	require.Equal(t, MsgState, msg.Type)
	assert.Equal(t, cliotris.WipeScore, msg.State.Score)

	// The rub ends tracking; releasing is not a tap.
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgPointer, Phase: "up", ID: 1, X: x, Y: y}))
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgPause}))
	msg = read(t, conn)
	assert.True(t, msg.State.Paused)
	assert.Equal(t, cliotris.WipeScore, msg.State.Score)
}

func TestGameOverIsAnnouncedOnce(t *testing.T) {
	ts := newTestServer(t, cliotris.NewPiece(cliotris.KindO, 0))
	conn := dial(t, ts)
	greet(t, conn)

	var over ServerMessage
	for i := 0; i < cliotris.Rows; i++ {
		require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgHardDrop}))
		msg := read(t, conn)
		require.Equal(t, MsgState, msg.Type)
		if msg.State.Over {
			over = read(t, conn)
			break
		}
	}
	require.Equal(t, MsgGameOver, over.Type)
	assert.Equal(t, 0, over.Score)

	// Commands after the end change nothing and do not repeat the notice.
	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgLeft}))
	msg := read(t, conn)
	assert.Equal(t, MsgState, msg.Type)
	assert.True(t, msg.State.Over)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgRestart}))
	msg = read(t, conn)
	assert.Equal(t, MsgState, msg.Type)
	assert.False(t, msg.State.Over)
}

func TestNewServerRejectsBadConfig(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.Game.Rules.LockOverflow = "explode"
	_, err := NewServer(cfg, log.New(io.Discard))
	assert.Error(t, err)

	cfg = DefaultServerConfig()
	cfg.Game = config.Default()
	cfg.Game.Render.CellPX = 1
	_, err = NewServer(cfg, log.New(io.Discard))
	assert.Error(t, err)
}

func TestGameOverSendsZeroScore(t *testing.T) {
	ts := newTestServer(t, cliotris.NewPiece(cliotris.KindO, 0))
	conn := dial(t, ts)
	greet(t, conn)

	for i := 0; i < cliotris.Rows; i++ {
		require.NoError(t, conn.WriteJSON(ClientMessage{Type: MsgHardDrop}))
		if msg := read(t, conn); msg.State.Over {
			break
		}
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var raw map[string]any
	require.NoError(t, conn.ReadJSON(&raw))
	assert.Equal(t, MsgGameOver, raw["type"])
	require.Contains(t, raw, "score")
	assert.EqualValues(t, 0, raw["score"])
}
