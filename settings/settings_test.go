package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oomph-ac/blockgame/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestLoadOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	s, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
	assert.FileExists(t, path)

	assert.Error(t, SaveDefault(path))

	s, err = LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[World]
Generator = "hills"
Seed = 99

[Loop]
TickRate = 30

[Interaction]
Reach = 7.5
`), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hills", s.World.Generator)
	assert.Equal(t, int64(99), s.World.Seed)
	assert.Equal(t, 30, s.Loop.TickRate)
	assert.Equal(t, 7.5, s.Interaction.Reach)
	assert.Equal(t, DefaultSettings().Player, s.Player)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[World\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	s := DefaultSettings()
	s.World.Generator = "caves"
	s.Player.MoveSpeed = -1
	s.Interaction.RayStep = 10
	s.Interaction.BreakCooldown = 0
	s.Loop.TickRate = 0
	s.Log.Level = "loud"
	s.Validate()

	assert.Equal(t, DefaultSettings(), s)
}

func TestDefaultsMatchGame(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, game.DefaultJumpImpulse, float32(s.Player.JumpImpulse))
	assert.Equal(t, game.DefaultMoveSpeed, float32(s.Player.MoveSpeed))
	assert.Equal(t, game.DefaultMouseSensitivity, float32(s.Player.MouseSensitivity))
	assert.Equal(t, game.DefaultReach, float32(s.Interaction.Reach))
	assert.Equal(t, game.DefaultRayStep, float32(s.Interaction.RayStep))
}
