package core

// RuntimeConfig is what a front end tells a game when it (re)starts it.
type RuntimeConfig struct {
	ScreenW, ScreenH int   // in cells
	TickRate         int   // Step calls per second
	Seed             int64 // 0 picks one from the clock
}

// DefaultConfig describes an 80×24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the part of a game the front end shows outside the board.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult reports one tick: the state after it and the cues it raised in
// order.
type StepResult struct {
	State GameState
	Cues  []Cue
}

// Cue names a short audible event a platform may render as sound.
type Cue int

const (
	CueNone Cue = iota
	CueLock
	CueLineClear
	CueWipe
	CueGameOver
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueLock:
		return "Lock"
	case CueLineClear:
		return "LineClear"
	case CueWipe:
		return "Wipe"
	case CueGameOver:
		return "GameOver"
	default:
		return "None"
	}
}
