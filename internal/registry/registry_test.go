package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cliotris/internal/config"
	"github.com/vovakirdan/cliotris/internal/core"
)

type stubGame struct {
	id    string
	title string
	cfg   config.Config
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func stubFactory(id, title string) Factory {
	return func(cfg config.Config) Game {
		return &stubGame{id: id, title: title, cfg: cfg}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", stubFactory("zz_stub", "Stub"))

	require.True(t, Exists("zz_stub"))

	cfg := config.Default()
	cfg.Spawn.SpecialChance = 0.5
	g, err := Create("zz_stub", cfg)
	require.NoError(t, err)
	assert.Equal(t, "zz_stub", g.ID())
	assert.Equal(t, 0.5, g.(*stubGame).cfg.Spawn.SpecialChance)

	assert.Contains(t, List(), GameInfo{ID: "zz_stub", Title: "Stub"})
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", stubFactory("zz_dup", "Dup"))

	assert.Panics(t, func() {
		Register("zz_dup", stubFactory("zz_dup", "Dup again"))
	})
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_mode", config.Default())

	assert.EqualError(t, err, `registry: unknown game "no_such_mode"`)
	assert.False(t, Exists("no_such_mode"))
}

func TestListIsSorted(t *testing.T) {
	Register("zz_b", stubFactory("zz_b", "B"))
	Register("zz_a", stubFactory("zz_a", "A"))

	infos := List()
	for i := 1; i < len(infos); i++ {
		assert.Less(t, infos[i-1].ID, infos[i].ID)
	}
}
