// Package registry maps game mode IDs to factories. Modes add themselves from
// init, so front ends only need a blank import of the game package.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/cliotris/internal/config"
	"github.com/vovakirdan/cliotris/internal/core"
)

// Game is what every front end drives: fixed-rate steps in, a cell buffer out.
// Implementations hold no terminal, window or network state.
type Game interface {
	// ID is the mode name used on the command line, e.g. "cliotris".
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions held during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// PointerGame is implemented by games that accept raw mouse, touch and wheel
// input in addition to actions. Pointer events are delivered as they arrive,
// between ticks; effects they cause are reported by the next Step.
type PointerGame interface {
	Game

	// HandlePointer consumes one pointer event in screen coordinates.
	HandlePointer(ev core.PointerEvent)
}

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a game for one player.
type Factory func(cfg config.Config) Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a mode. The title is read from a game built with default
// settings. Registering the same ID twice panics.
func Register(id string, f Factory) {
	title := f(config.Default()).Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: duplicate game %q", id))
	}
	entries[id] = entry{factory: f, title: title}
}

// List returns the registered modes ordered by ID.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Create builds a game for the mode id.
func Create(id string, cfg config.Config) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(cfg), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
