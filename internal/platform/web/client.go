package web

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/cliotris/internal/core"
	"github.com/vovakirdan/cliotris/internal/games/cliotris"
	"github.com/vovakirdan/cliotris/internal/gesture"
)

const writeWait = 5 * time.Second

// client is one browser connection playing its own session. All writes
// happen inside the loop's lock, apart from the greeting sent before the
// loop starts.
type client struct {
	conn     *websocket.Conn
	loop     *cliotris.Loop
	tracker  *gesture.Tracker
	logger   *log.Logger
	now      func() time.Time
	cancel   context.CancelFunc
	overSent bool
}

func (c *client) publish(snap cliotris.Snapshot) {
	if err := c.write(ServerMessage{Type: MsgState, State: &snap}); err != nil {
		c.cancel()
		return
	}
	if !snap.Over {
		c.overSent = false
		return
	}
	if c.overSent {
		return
	}
	c.overSent = true
	if err := c.write(ServerMessage{Type: MsgGameOver, Score: snap.Score}); err != nil {
		c.cancel()
	}
}

func (c *client) write(msg ServerMessage) error {
	_ = c.conn.SetWriteDeadline(c.now().Add(writeWait))
	if err := c.conn.WriteJSON(msg); err != nil {
		c.logger.Debug("write failed", "remote", c.conn.RemoteAddr(), "err", err)
		return err
	}
	return nil
}

// readLoop applies browser commands until the connection fails.
func (c *client) readLoop() {
	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Debug("read failed", "remote", c.conn.RemoteAddr(), "err", err)
			}
			return
		}
		c.handle(msg)
	}
}

func (c *client) handle(msg ClientMessage) {
	switch msg.Type {
	case MsgLeft:
		c.loop.Do(func(s *cliotris.Session) { s.MoveLeft() })
	case MsgRight:
		c.loop.Do(func(s *cliotris.Session) { s.MoveRight() })
	case MsgSoftDrop:
		c.loop.Do(func(s *cliotris.Session) { s.SoftDrop() })
	case MsgHardDrop:
		c.loop.Do(func(s *cliotris.Session) { s.HardDrop() })
	case MsgRotate:
		c.loop.Do(func(s *cliotris.Session) { s.Rotate() })
	case MsgPause:
		c.loop.Do(func(s *cliotris.Session) { s.TogglePause() })
	case MsgRestart:
		c.loop.Do(func(s *cliotris.Session) {
			s.Restart()
			c.tracker.Reset()
		})
	case MsgClick:
		c.loop.Do(func(s *cliotris.Session) { s.Click(msg.X, msg.Y) })
	case MsgPointer:
		phase, ok := pointerPhase(msg.Phase)
		if !ok {
			c.logger.Debug("bad pointer phase", "phase", msg.Phase)
			return
		}
		c.pointer(core.PointerEvent{Phase: phase, ID: msg.ID, X: msg.X, Y: msg.Y, Time: c.now()})
	case MsgWheel:
		c.pointer(core.PointerEvent{Phase: core.PointerWheel, X: msg.X, Y: msg.Y, Wheel: sign(msg.Delta), Time: c.now()})
	default:
		c.logger.Debug("unknown message", "type", msg.Type)
	}
}

// pointer feeds a pointer sample to the tracker. Only samples that complete
// a tap or a rub produce a new state message.
func (c *client) pointer(ev core.PointerEvent) {
	c.loop.Update(func(s *cliotris.Session) bool {
		res := c.tracker.Handle(ev)
		if res.Kind == gesture.ResultNone {
			return false
		}
		s.ApplyGesture(res)
		return true
	})
}
