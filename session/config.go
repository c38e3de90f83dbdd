package session

import (
	"fmt"

	"github.com/oomph-ac/blockgame/player"
	"github.com/oomph-ac/blockgame/settings"
	"github.com/oomph-ac/blockgame/world"
	"github.com/sirupsen/logrus"
)

// ConfigFromSettings creates a Config from settings, generating the configured world. The clock and
// metrics are left unset.
func ConfigFromSettings(s settings.Settings, log *logrus.Logger) (Config, error) {
	gen, err := world.GeneratorByName(s.World.Generator, s.World.Seed)
	if err != nil {
		return Config{}, fmt.Errorf("create world: %w", err)
	}
	return Config{
		World:  world.New(gen, log),
		SpawnX: float32(s.Player.SpawnX),
		SpawnZ: float32(s.Player.SpawnZ),
		PlayerOpts: player.Opts{
			Reach:         float32(s.Interaction.Reach),
			RayStep:       float32(s.Interaction.RayStep),
			BreakCooldown: s.Interaction.BreakCooldown,
			PlaceCooldown: s.Interaction.PlaceCooldown,
		},
		JumpImpulse:      float32(s.Player.JumpImpulse),
		MoveSpeed:        float32(s.Player.MoveSpeed),
		MouseSensitivity: float32(s.Player.MouseSensitivity),
		TickRate:         s.Loop.TickRate,
		Log:              log,
	}, nil
}
