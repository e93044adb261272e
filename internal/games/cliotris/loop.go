package cliotris

import (
	"context"
	"sync"
	"time"
)

// Loop owns a session for shells that drive gravity from one goroutine and
// deliver commands from another. Every mutation runs under one mutex and the
// resulting snapshot is published before the lock is released, so observers
// see snapshots in mutation order.
type Loop struct {
	mu       sync.Mutex
	session  *Session
	interval time.Duration
	publish  func(Snapshot)
}

// NewLoop wraps s. publish may be nil.
func NewLoop(s *Session, interval time.Duration, publish func(Snapshot)) *Loop {
	if interval <= 0 {
		interval = DropInterval
	}
	return &Loop{session: s, interval: interval, publish: publish}
}

// Run ticks gravity until ctx is cancelled. Ticks while the game is over or
// paused change nothing and publish nothing.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.mu.Lock()
			if l.session.Tick() {
				l.publishLocked()
			}
			l.mu.Unlock()
		}
	}
}

// Do runs fn against the session and publishes the new state.
func (l *Loop) Do(fn func(s *Session)) Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	fn(l.session)
	return l.publishLocked()
}

// Update runs fn against the session and publishes only when fn reports a
// change.
func (l *Loop) Update(fn func(s *Session) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if fn(l.session) {
		l.publishLocked()
	}
}

// Snapshot returns the current state without mutating it.
func (l *Loop) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session.Snapshot()
}

func (l *Loop) publishLocked() Snapshot {
	snap := l.session.Snapshot()
	if l.publish != nil {
		l.publish(snap)
	}
	return snap
}
